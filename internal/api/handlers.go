package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/BhargavPrasadKalichetti/Scientific-Data-Visualization/internal/models"
	"github.com/BhargavPrasadKalichetti/Scientific-Data-Visualization/internal/state"
)

// DefaultDataLimit caps how many raw rows one /api/data call returns.
const DefaultDataLimit = 100

// Handler serves the dashboard API. It holds the single interactive
// session; the query engine itself stays pure.
type Handler struct {
	Session *state.Session
}

func NewHandler(session *state.Session) *Handler {
	return &Handler{Session: session}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.HealthCheck)

	r.Get("/api/meta", h.GetMeta)
	r.Get("/api/dashboard", h.GetDashboard)
	r.Get("/api/data", h.GetData)

	r.Get("/api/filters", h.GetFilters)
	r.Put("/api/filters/years", h.SetYearRange)
	r.Put("/api/filters/jobs", h.SetJobTitles)
	r.Put("/api/filters/industries", h.SetIndustries)
	r.Post("/api/filters/reset", h.ResetFilters)
}

// ============================================================================
// Health
// ============================================================================

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

// ============================================================================
// Dataset metadata
// ============================================================================

// GetMeta returns the dataset's year bounds and distinct category
// values for building the filter widgets.
func (h *Handler) GetMeta(w http.ResponseWriter, r *http.Request) {
	ds := h.Session.Dataset()
	min, max := ds.YearRange()

	resp := models.MetaResponse{
		Rows:       ds.Len(),
		YearMin:    min,
		YearMax:    max,
		JobTitles:  ds.JobTitles(),
		Industries: ds.Industries(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ============================================================================
// Filter state
// ============================================================================

func (h *Handler) GetFilters(w http.ResponseWriter, r *http.Request) {
	fs := h.Session.Filters()

	resp := models.FiltersResponse{
		YearMin:    fs.YearMin,
		YearMax:    fs.YearMax,
		JobTitles:  fs.SelectedJobTitles(),
		Industries: fs.SelectedIndustries(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// SetYearRange updates the year dimension. Out-of-order bounds are
// swapped rather than rejected, matching range-slider behavior.
func (h *Handler) SetYearRange(w http.ResponseWriter, r *http.Request) {
	var req models.YearRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	h.Session.SetYearRange(req.YearMin, req.YearMax)
	h.GetFilters(w, r)
}

// SetJobTitles replaces the selected job titles. Values not present in
// the dataset are dropped, keeping the selection a subset of the
// observed categories. An empty selection is accepted.
func (h *Handler) SetJobTitles(w http.ResponseWriter, r *http.Request) {
	var req models.SelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	h.Session.SetJobTitles(intersect(req.Values, h.Session.Dataset().JobTitles()))
	h.GetFilters(w, r)
}

// SetIndustries replaces the selected industries.
func (h *Handler) SetIndustries(w http.ResponseWriter, r *http.Request) {
	var req models.SelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	h.Session.SetIndustries(intersect(req.Values, h.Session.Dataset().Industries()))
	h.GetFilters(w, r)
}

// ResetFilters restores the defaults: full year range, all categories.
func (h *Handler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	h.Session.Reset()
	h.GetFilters(w, r)
}

// ============================================================================
// Dashboard
// ============================================================================

// GetDashboard recomputes and returns the full snapshot: KPI scalars
// plus every aggregation table, all derived from one filter state.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	snap := h.Session.Snapshot()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}

// GetData returns a paginated window of the filtered relation for the
// raw-table view.
func (h *Handler) GetData(w http.ResponseWriter, r *http.Request) {
	snap := h.Session.Snapshot()

	total := len(snap.Filtered)
	limit, offset := getPaginationParams(r, DefaultDataLimit)

	resp := models.DataResponse{
		Rows:   total,
		Limit:  limit,
		Offset: offset,
	}

	if offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		resp.Data = snap.Filtered[offset:end]
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ============================================================================
// Helpers
// ============================================================================

func getPaginationParams(r *http.Request, defaultLimit int) (int, int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// intersect keeps only the requested values that exist in the dataset.
func intersect(requested, known []string) []string {
	knownSet := make(map[string]bool, len(known))
	for _, k := range known {
		knownSet[k] = true
	}

	kept := make([]string, 0, len(requested))
	for _, v := range requested {
		if knownSet[v] {
			kept = append(kept, v)
		}
	}
	return kept
}
