package models

import (
	"github.com/BhargavPrasadKalichetti/Scientific-Data-Visualization/internal/dataset"
)

// MetaResponse describes the loaded dataset: year bounds and distinct
// category values, used by the frontend to build selection widgets.
type MetaResponse struct {
	Rows       int      `json:"rows"`
	YearMin    int      `json:"year_min"`
	YearMax    int      `json:"year_max"`
	JobTitles  []string `json:"job_titles"`
	Industries []string `json:"industries"`
}

// FiltersResponse is the current filter state.
type FiltersResponse struct {
	YearMin    int      `json:"year_min"`
	YearMax    int      `json:"year_max"`
	JobTitles  []string `json:"job_titles"`
	Industries []string `json:"industries"`
}

// YearRangeRequest updates the year dimension.
type YearRangeRequest struct {
	YearMin int `json:"year_min"`
	YearMax int `json:"year_max"`
}

// SelectionRequest replaces the selected values of one categorical
// dimension. An empty list is valid and yields an empty result set.
type SelectionRequest struct {
	Values []string `json:"values"`
}

// DataResponse is a paginated window of the filtered relation.
// Rows is the total match count before pagination.
type DataResponse struct {
	Rows   int              `json:"rows"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
	Data   []dataset.Record `json:"data"`
}
