package query

import (
	"sort"

	"github.com/BhargavPrasadKalichetti/Scientific-Data-Visualization/internal/dataset"
)

// FilterState captures the user-selected constraints: a year range and
// the selected subsets of job titles and industries. Each dimension is
// updated independently; the others are never touched. An empty
// selection is a valid state that yields an empty filtered relation.
type FilterState struct {
	YearMin    int
	YearMax    int
	JobTitles  map[string]bool
	Industries map[string]bool
}

// NewFilterState returns the default state for a dataset: the full
// observed year range with every job title and industry selected.
func NewFilterState(ds *dataset.Dataset) FilterState {
	min, max := ds.YearRange()
	fs := FilterState{
		YearMin:    min,
		YearMax:    max,
		JobTitles:  make(map[string]bool),
		Industries: make(map[string]bool),
	}
	for _, t := range ds.JobTitles() {
		fs.JobTitles[t] = true
	}
	for _, i := range ds.Industries() {
		fs.Industries[i] = true
	}
	return fs
}

// SetYearRange replaces the year range. Bounds are swapped when given
// out of order, mirroring a range slider that cannot invert.
func (fs *FilterState) SetYearRange(min, max int) {
	if min > max {
		min, max = max, min
	}
	fs.YearMin = min
	fs.YearMax = max
}

// SetJobTitles replaces the selected job titles.
func (fs *FilterState) SetJobTitles(titles []string) {
	fs.JobTitles = toSet(titles)
}

// SetIndustries replaces the selected industries.
func (fs *FilterState) SetIndustries(industries []string) {
	fs.Industries = toSet(industries)
}

// SelectedJobTitles returns the selected job titles, sorted.
func (fs FilterState) SelectedJobTitles() []string {
	return sortedKeys(fs.JobTitles)
}

// SelectedIndustries returns the selected industries, sorted.
func (fs FilterState) SelectedIndustries() []string {
	return sortedKeys(fs.Industries)
}

// Matches reports whether a record satisfies all three constraints.
func (fs FilterState) Matches(r dataset.Record) bool {
	if r.Year < fs.YearMin || r.Year > fs.YearMax {
		return false
	}
	if !fs.JobTitles[r.JobTitle] {
		return false
	}
	return fs.Industries[r.Industry]
}

// Apply returns the filtered relation: the subsequence of the dataset
// matching every constraint, in original order. Pure, no side effects.
func (fs FilterState) Apply(ds *dataset.Dataset) []dataset.Record {
	records := ds.Records()
	filtered := make([]dataset.Record, 0, len(records))
	for _, r := range records {
		if fs.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
