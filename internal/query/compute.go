package query

import (
	"strconv"

	"github.com/BhargavPrasadKalichetti/Scientific-Data-Visualization/internal/dataset"
)

// Snapshot is the full output of one recomputation pass: KPI scalars,
// every named aggregation table, and the filtered relation itself. All
// parts derive from the same filter state, so every chart reflects one
// internally consistent view of the data.
type Snapshot struct {
	RowCount int  `json:"row_count"`
	KPIs     KPIs `json:"kpis"`

	SalaryTrends       Table `json:"salary_trends"`
	SalaryByExperience Table `json:"salary_by_experience"`
	AIAdoption         Table `json:"ai_adoption"`
	SkillComplexity    Table `json:"skill_complexity"`
	OpeningsByLocation Table `json:"openings_by_location"`
	RemoteWork         Table `json:"remote_work"`
	GrowthByIndustry   Table `json:"growth_by_industry"`
	CompanySize        Table `json:"company_size"`

	Filtered []dataset.Record `json:"-"`
}

// Compute applies the filter state to the dataset and derives every KPI
// and aggregation table. It is a pure function: same dataset and filter
// state in, byte-identical snapshot out.
func Compute(ds *dataset.Dataset, fs FilterState) *Snapshot {
	filtered := fs.Apply(ds)

	salary := func(r dataset.Record) float64 { return r.SalaryUSD }
	growth := func(r dataset.Record) float64 { return r.GrowthRate }
	openings := func(r dataset.Record) float64 { return float64(r.JobOpenings) }

	return &Snapshot{
		RowCount: len(filtered),
		KPIs:     ComputeKPIs(filtered),

		SalaryTrends: MeanBy(filtered, func(r dataset.Record) (string, string) {
			return strconv.Itoa(r.Year), r.JobTitle
		}, salary),
		SalaryByExperience: MeanBy(filtered, func(r dataset.Record) (string, string) {
			return r.ExperienceLevel, r.JobTitle
		}, salary),
		AIAdoption: CountBy(filtered, func(r dataset.Record) (string, string) {
			return r.Industry, r.AIAdoptionLevel
		}),
		SkillComplexity: CountBy(filtered, func(r dataset.Record) (string, string) {
			return r.JobTitle, r.SkillComplexity
		}),
		OpeningsByLocation: SumBy(filtered, func(r dataset.Record) (string, string) {
			return r.Location, r.JobTitle
		}, openings),
		RemoteWork: CountBy(filtered, func(r dataset.Record) (string, string) {
			return r.JobTitle, r.RemoteWork
		}),
		GrowthByIndustry: MeanBy(filtered, func(r dataset.Record) (string, string) {
			return r.Industry, ""
		}, growth),
		CompanySize: CountBy(filtered, func(r dataset.Record) (string, string) {
			return r.CompanySize, r.JobTitle
		}),

		Filtered: filtered,
	}
}
