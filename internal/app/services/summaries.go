package services

// CategoryCount is one (category, count) pair of a distribution summary
type CategoryCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CategoryValue is one (category, numeric value) pair of an aggregate summary
type CategoryValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// HistogramBucket is one half-open [From, To) interval of a histogram
type HistogramBucket struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Count int `json:"count"`
}

// SalaryStats is the five-number summary plus mean of one department's salaries
type SalaryStats struct {
	Department string  `json:"department"`
	Count      int     `json:"count"`
	Min        float64 `json:"min"`
	Q1         float64 `json:"q1"`
	Median     float64 `json:"median"`
	Q3         float64 `json:"q3"`
	Max        float64 `json:"max"`
	Mean       float64 `json:"mean"`
}

// ScatterPoint is one (x, y) observation of a correlation summary
type ScatterPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SafetySummary aggregates the three workplace safety indicators
type SafetySummary struct {
	TotalAccidents     int `json:"totalAccidents"`
	HighEPIUsage       int `json:"highEpiUsage"`
	CertifiedEmployees int `json:"certifiedEmployees"`
}
