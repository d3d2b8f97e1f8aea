package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMissingColumn is returned when a required column is absent from the
// source header. Load errors are fatal: the session cannot start without
// a complete dataset.
var ErrMissingColumn = errors.New("missing required column")

var bom = []byte{0xef, 0xbb, 0xbf}

// universalReader strips a UTF-8 BOM and normalizes carriage returns so
// the csv reader can delimit lines from any OS.
type universalReader struct {
	r io.Reader
}

func (u *universalReader) Read(buf []byte) (int, error) {
	n, err := u.r.Read(buf)

	if bytes.HasPrefix(buf, bom) {
		copy(buf, buf[len(bom):])
		n -= len(bom)
	}

	for i, b := range buf[:n] {
		if b == '\r' {
			buf[i] = '\n'
		}
	}

	return n, err
}

// Load reads the source CSV exactly once and returns an owned Dataset
// handle. It fails when the file is unreadable, the header lacks a
// required column, or a numeric field does not parse.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses CSV data from r into a Dataset. Exposed separately so
// sources other than local files (uploads, object storage) can reuse
// the parser.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(&universalReader{r: r})
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		line++

		rec, err := parseRow(cols, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return New(records), nil
}

// mapColumns resolves the header to column indices, case-insensitively,
// and verifies every required column is present.
func mapColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	for _, name := range RequiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	return cols, nil
}

func parseRow(cols map[string]int, row []string) (Record, error) {
	get := func(col string) string {
		idx := cols[col]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var rec Record
	var err error

	if rec.Year, err = strconv.Atoi(get(ColYear)); err != nil {
		return rec, fmt.Errorf("bad year %q", get(ColYear))
	}
	if rec.SalaryUSD, err = strconv.ParseFloat(get(ColSalaryUSD), 64); err != nil {
		return rec, fmt.Errorf("bad salary %q", get(ColSalaryUSD))
	}
	if rec.GrowthRate, err = strconv.ParseFloat(get(ColGrowthRate), 64); err != nil {
		return rec, fmt.Errorf("bad growth rate %q", get(ColGrowthRate))
	}
	if rec.JobOpenings, err = strconv.Atoi(get(ColJobOpenings)); err != nil {
		return rec, fmt.Errorf("bad job openings %q", get(ColJobOpenings))
	}
	if rec.GenderDiversityIndex, err = strconv.ParseFloat(get(ColGenderDiversityIndex), 64); err != nil {
		return rec, fmt.Errorf("bad diversity index %q", get(ColGenderDiversityIndex))
	}

	rec.JobTitle = get(ColJobTitle)
	rec.Industry = get(ColIndustry)
	rec.ExperienceLevel = get(ColExperienceLevel)
	rec.AIAdoptionLevel = get(ColAIAdoptionLevel)
	rec.SkillComplexity = get(ColSkillComplexity)
	rec.Location = get(ColLocation)
	rec.RemoteWork = get(ColRemoteWork)
	rec.CompanySize = get(ColCompanySize)

	return rec, nil
}
