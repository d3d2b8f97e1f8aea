package query

import (
	"strconv"

	"github.com/BhargavPrasadKalichetti/Scientific-Data-Visualization/internal/dataset"
)

// Metric is a scalar KPI that may be undefined. A mean over an empty
// filtered relation is reported as undefined (JSON null), never as 0 —
// the frontend renders "no data" instead of a misleading average.
type Metric struct {
	Value float64
	Valid bool
}

// MarshalJSON renders undefined metrics as null.
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(m.Value, 'g', -1, 64)), nil
}

// UnmarshalJSON accepts the null produced for undefined metrics.
func (m *Metric) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Metric{}
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*m = Metric{Value: v, Valid: true}
	return nil
}

// KPIs are the headline scalar summaries of the filtered relation.
// TotalOpenings is a sum, so it is well-defined (0) on empty input.
type KPIs struct {
	AvgSalary     Metric `json:"avg_salary"`
	AvgGrowthRate Metric `json:"avg_growth_rate"`
	TotalOpenings int    `json:"total_openings"`
	AvgDiversity  Metric `json:"avg_diversity"`
}

// ComputeKPIs derives the four headline figures from the filtered
// relation in one pass.
func ComputeKPIs(records []dataset.Record) KPIs {
	var kpis KPIs
	if len(records) == 0 {
		return kpis
	}

	var salary, growth, diversity float64
	for _, r := range records {
		salary += r.SalaryUSD
		growth += r.GrowthRate
		diversity += r.GenderDiversityIndex
		kpis.TotalOpenings += r.JobOpenings
	}

	n := float64(len(records))
	kpis.AvgSalary = Metric{Value: salary / n, Valid: true}
	kpis.AvgGrowthRate = Metric{Value: growth / n, Valid: true}
	kpis.AvgDiversity = Metric{Value: diversity / n, Valid: true}
	return kpis
}
