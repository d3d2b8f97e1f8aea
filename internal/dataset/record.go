package dataset

// Record is one observation row of the job-market dataset.
// Records are never mutated after load.
type Record struct {
	Year                 int     `json:"year"`
	JobTitle             string  `json:"job_title"`
	Industry             string  `json:"industry"`
	SalaryUSD            float64 `json:"salary_usd"`
	GrowthRate           float64 `json:"growth_rate"`
	JobOpenings          int     `json:"job_openings"`
	GenderDiversityIndex float64 `json:"gender_diversity_index"`
	ExperienceLevel      string  `json:"experience_level"`
	AIAdoptionLevel      string  `json:"ai_adoption_level"`
	SkillComplexity      string  `json:"skill_complexity"`
	Location             string  `json:"location"`
	RemoteWork           string  `json:"remote_work"`
	CompanySize          string  `json:"company_size"`
}

// Column names as they appear in the source header. Matching is
// case-insensitive, so "Job_Title" and "job_title" both resolve.
const (
	ColYear                 = "year"
	ColJobTitle             = "job_title"
	ColIndustry             = "industry"
	ColSalaryUSD            = "salary_usd"
	ColGrowthRate           = "growth_rate"
	ColJobOpenings          = "job_openings"
	ColGenderDiversityIndex = "gender_diversity_index"
	ColExperienceLevel      = "experience_level"
	ColAIAdoptionLevel      = "ai_adoption_level"
	ColSkillComplexity      = "skill_complexity"
	ColLocation             = "location"
	ColRemoteWork           = "remote_work"
	ColCompanySize          = "company_size"
)

// RequiredColumns lists every column the loader must find in the source.
var RequiredColumns = []string{
	ColYear,
	ColJobTitle,
	ColIndustry,
	ColSalaryUSD,
	ColGrowthRate,
	ColJobOpenings,
	ColGenderDiversityIndex,
	ColExperienceLevel,
	ColAIAdoptionLevel,
	ColSkillComplexity,
	ColLocation,
	ColRemoteWork,
	ColCompanySize,
}
