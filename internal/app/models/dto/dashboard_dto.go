package dto

// OverviewResponse carries the KPI values shown on the dashboard header.
// Raw numeric values come with display strings so the page does not need any
// locale logic of its own.
type OverviewResponse struct {
	TotalEmployees   int     `json:"totalEmployees" example:"160"`
	ActiveEmployees  int     `json:"activeEmployees" example:"143"`
	AverageSalary    float64 `json:"averageSalary" example:"4821.37"`
	TotalPayroll     float64 `json:"totalPayroll" example:"689456.12"`
	TurnoverRate     float64 `json:"turnoverRate" example:"10.6"`
	AverageSalaryFmt string  `json:"averageSalaryFmt" example:"R$ 4.821,37"`
	TotalPayrollFmt  string  `json:"totalPayrollFmt" example:"R$ 689.456,12"`
	TurnoverRateFmt  string  `json:"turnoverRateFmt" example:"10.6%"`
}

// DepartmentListResponse lists the distinct department names, used to fill
// the filter dropdowns on the people reports
type DepartmentListResponse struct {
	Departments []string `json:"departments"`
}
