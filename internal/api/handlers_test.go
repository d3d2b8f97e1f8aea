package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/BhargavPrasadKalichetti/Scientific-Data-Visualization/internal/dataset"
	"github.com/BhargavPrasadKalichetti/Scientific-Data-Visualization/internal/models"
	"github.com/BhargavPrasadKalichetti/Scientific-Data-Visualization/internal/query"
	"github.com/BhargavPrasadKalichetti/Scientific-Data-Visualization/internal/state"
)

func testRouter() *chi.Mux {
	ds := dataset.New([]dataset.Record{
		{Year: 2020, JobTitle: "Data Scientist", Industry: "Technology", SalaryUSD: 120000, GrowthRate: 3.5, JobOpenings: 150, GenderDiversityIndex: 0.45, ExperienceLevel: "Senior", AIAdoptionLevel: "High", SkillComplexity: "High", Location: "New York", RemoteWork: "Yes", CompanySize: "Large"},
		{Year: 2021, JobTitle: "ML Engineer", Industry: "Finance", SalaryUSD: 135000, GrowthRate: 4.2, JobOpenings: 90, GenderDiversityIndex: 0.38, ExperienceLevel: "Mid", AIAdoptionLevel: "Medium", SkillComplexity: "High", Location: "London", RemoteWork: "No", CompanySize: "Medium"},
		{Year: 2022, JobTitle: "Data Scientist", Industry: "Healthcare", SalaryUSD: 110000, GrowthRate: 2.1, JobOpenings: 60, GenderDiversityIndex: 0.52, ExperienceLevel: "Junior", AIAdoptionLevel: "Low", SkillComplexity: "Medium", Location: "Berlin", RemoteWork: "Yes", CompanySize: "Small"},
	})

	h := NewHandler(state.NewSession(ds))
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if out != nil && rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode %s %s: %v", method, path, err)
		}
	}
	return rec
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, testRouter(), "GET", "/health", "", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Errorf("health: %d %q", rec.Code, rec.Body.String())
	}
}

func TestGetMeta(t *testing.T) {
	var meta models.MetaResponse
	doJSON(t, testRouter(), "GET", "/api/meta", "", &meta)

	if meta.Rows != 3 || meta.YearMin != 2020 || meta.YearMax != 2022 {
		t.Errorf("meta: %+v", meta)
	}
	if len(meta.JobTitles) != 2 || len(meta.Industries) != 3 {
		t.Errorf("meta categories: %+v", meta)
	}
}

func TestFilterFlow(t *testing.T) {
	r := testRouter()

	// Defaults: everything selected.
	var filters models.FiltersResponse
	doJSON(t, r, "GET", "/api/filters", "", &filters)
	if len(filters.JobTitles) != 2 {
		t.Fatalf("default filters: %+v", filters)
	}

	// Narrow to one title; unknown titles are dropped.
	doJSON(t, r, "PUT", "/api/filters/jobs", `{"values":["Data Scientist","Astronaut"]}`, &filters)
	if len(filters.JobTitles) != 1 || filters.JobTitles[0] != "Data Scientist" {
		t.Fatalf("after title update: %+v", filters)
	}
	// Other dimensions untouched.
	if len(filters.Industries) != 3 || filters.YearMin != 2020 {
		t.Errorf("title update touched other dimensions: %+v", filters)
	}

	// Dashboard reflects the narrowed state.
	var snap query.Snapshot
	doJSON(t, r, "GET", "/api/dashboard", "", &snap)
	if snap.RowCount != 2 {
		t.Errorf("dashboard rows: got %d, want 2", snap.RowCount)
	}

	// Reset restores defaults.
	doJSON(t, r, "POST", "/api/filters/reset", "", &filters)
	if len(filters.JobTitles) != 2 {
		t.Errorf("after reset: %+v", filters)
	}
}

func TestSetYearRange(t *testing.T) {
	r := testRouter()

	var filters models.FiltersResponse
	// Bounds arrive inverted; the API swaps them.
	doJSON(t, r, "PUT", "/api/filters/years", `{"year_min":2022,"year_max":2021}`, &filters)
	if filters.YearMin != 2021 || filters.YearMax != 2022 {
		t.Errorf("year range: %+v", filters)
	}

	var snap query.Snapshot
	doJSON(t, r, "GET", "/api/dashboard", "", &snap)
	if snap.RowCount != 2 {
		t.Errorf("rows in [2021, 2022]: got %d, want 2", snap.RowCount)
	}
}

func TestEmptySelectionDashboard(t *testing.T) {
	r := testRouter()

	doJSON(t, r, "PUT", "/api/filters/industries", `{"values":[]}`, nil)

	rec := doJSON(t, r, "GET", "/api/dashboard", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("empty selection must not error: %d", rec.Code)
	}

	// Means serialize as null, not 0.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	var kpis map[string]json.RawMessage
	if err := json.Unmarshal(raw["kpis"], &kpis); err != nil {
		t.Fatal(err)
	}
	if string(kpis["avg_salary"]) != "null" {
		t.Errorf("avg_salary on empty selection: %s", kpis["avg_salary"])
	}
	if string(kpis["total_openings"]) != "0" {
		t.Errorf("total_openings on empty selection: %s", kpis["total_openings"])
	}
}

func TestGetDataPagination(t *testing.T) {
	r := testRouter()

	var resp models.DataResponse
	doJSON(t, r, "GET", "/api/data?limit=2&offset=0", "", &resp)
	if resp.Rows != 3 || len(resp.Data) != 2 {
		t.Errorf("page 1: rows=%d len=%d", resp.Rows, len(resp.Data))
	}

	doJSON(t, r, "GET", "/api/data?limit=2&offset=2", "", &resp)
	if len(resp.Data) != 1 {
		t.Errorf("page 2: len=%d", len(resp.Data))
	}

	doJSON(t, r, "GET", "/api/data?limit=2&offset=10", "", &resp)
	if len(resp.Data) != 0 {
		t.Errorf("past the end: len=%d", len(resp.Data))
	}
}

func TestBadJSONRejected(t *testing.T) {
	r := testRouter()

	rec := doJSON(t, r, "PUT", "/api/filters/years", `{"year_min":`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad JSON: got %d, want 400", rec.Code)
	}
}
