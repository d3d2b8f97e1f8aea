package dataset

import "sort"

// Dataset is the immutable in-memory relation. It is created once at
// startup and injected into every downstream computation — there is no
// process-wide singleton. Distinct-value metadata is computed at
// construction so selection widgets never rescan the rows.
type Dataset struct {
	records []Record

	yearMin    int
	yearMax    int
	jobTitles  []string
	industries []string
}

// New builds a Dataset from already-parsed records.
func New(records []Record) *Dataset {
	ds := &Dataset{records: records}

	jobSeen := make(map[string]bool)
	indSeen := make(map[string]bool)

	for i, r := range records {
		if i == 0 || r.Year < ds.yearMin {
			ds.yearMin = r.Year
		}
		if i == 0 || r.Year > ds.yearMax {
			ds.yearMax = r.Year
		}
		if !jobSeen[r.JobTitle] {
			jobSeen[r.JobTitle] = true
			ds.jobTitles = append(ds.jobTitles, r.JobTitle)
		}
		if !indSeen[r.Industry] {
			indSeen[r.Industry] = true
			ds.industries = append(ds.industries, r.Industry)
		}
	}

	sort.Strings(ds.jobTitles)
	sort.Strings(ds.industries)
	return ds
}

// Len returns the number of records.
func (ds *Dataset) Len() int { return len(ds.records) }

// Records returns the underlying rows. Callers must treat the slice as
// read-only.
func (ds *Dataset) Records() []Record { return ds.records }

// YearRange returns the minimum and maximum observed Year.
// Both are zero when the dataset is empty.
func (ds *Dataset) YearRange() (min, max int) { return ds.yearMin, ds.yearMax }

// JobTitles returns the distinct job titles, sorted.
func (ds *Dataset) JobTitles() []string { return ds.jobTitles }

// Industries returns the distinct industries, sorted.
func (ds *Dataset) Industries() []string { return ds.industries }
