package state

import (
	"sync"

	"github.com/BhargavPrasadKalichetti/Scientific-Data-Visualization/internal/dataset"
	"github.com/BhargavPrasadKalichetti/Scientific-Data-Visualization/internal/query"
)

// Session owns the immutable dataset handle and the mutable filter
// state for one interactive session. The dataset is injected at
// startup; only the filter state ever changes, so it is the only thing
// the mutex guards. Setters replace whole fields and never mutate the
// maps a previous Filters() call handed out.
type Session struct {
	mu      sync.RWMutex
	ds      *dataset.Dataset
	filters query.FilterState
}

// NewSession creates a session with default filters: full year range,
// all categories selected.
func NewSession(ds *dataset.Dataset) *Session {
	return &Session{
		ds:      ds,
		filters: query.NewFilterState(ds),
	}
}

// Dataset returns the immutable dataset handle.
func (s *Session) Dataset() *dataset.Dataset {
	return s.ds
}

// Filters returns the current filter state.
func (s *Session) Filters() query.FilterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// SetYearRange updates the year range, leaving the other dimensions
// untouched.
func (s *Session) SetYearRange(min, max int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SetYearRange(min, max)
}

// SetJobTitles replaces the selected job titles.
func (s *Session) SetJobTitles(titles []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SetJobTitles(titles)
}

// SetIndustries replaces the selected industries.
func (s *Session) SetIndustries(industries []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SetIndustries(industries)
}

// Reset restores the default filter state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = query.NewFilterState(s.ds)
}

// Snapshot recomputes the full dashboard output from the current
// filter state. The state is copied under the read lock, so one
// computation sees exactly one filter state even while updates arrive.
func (s *Session) Snapshot() *query.Snapshot {
	s.mu.RLock()
	fs := s.filters
	s.mu.RUnlock()

	return query.Compute(s.ds, fs)
}
