package services

import (
	"sort"

	"github.com/rodrigoclira/hr-dashboard/internal/app/models"
	"github.com/rodrigoclira/hr-dashboard/internal/app/models/dto"
	"github.com/rodrigoclira/hr-dashboard/internal/dataset"
	"github.com/rodrigoclira/hr-dashboard/internal/pkg/helpers"
)

// epiHighUsageThreshold marks an employee as a consistent protective
// equipment user in the safety summary.
const epiHighUsageThreshold = 9.0

// ageBucketWidth is the width in years of the age histogram buckets
const ageBucketWidth = 5

// AnalyticsService computes the dashboard summaries. Every method is a pure
// function over the immutable table: the same table always produces the same
// summary, in any call order, from any number of goroutines.
type AnalyticsService struct {
	table *dataset.Table
}

// NewAnalyticsService creates a new analytics service over the loaded table
func NewAnalyticsService(table *dataset.Table) *AnalyticsService {
	return &AnalyticsService{table: table}
}

// Overview computes the KPI header values. All rate denominators of zero
// yield 0 rather than an error.
func (s *AnalyticsService) Overview() dto.OverviewResponse {
	rows := s.table.Rows()

	total := len(rows)
	active := 0
	terminated := 0
	var salarySum, payroll float64
	for i := range rows {
		salarySum += rows[i].Salary
		if rows[i].IsActive() {
			active++
			payroll += rows[i].Salary
		} else {
			terminated++
		}
	}

	var avgSalary, turnover float64
	if total > 0 {
		avgSalary = salarySum / float64(total)
		turnover = float64(terminated) / float64(total) * 100
	}

	return dto.OverviewResponse{
		TotalEmployees:   total,
		ActiveEmployees:  active,
		AverageSalary:    avgSalary,
		TotalPayroll:     payroll,
		TurnoverRate:     turnover,
		AverageSalaryFmt: helpers.FormatBRL(avgSalary),
		TotalPayrollFmt:  helpers.FormatBRL(payroll),
		TurnoverRateFmt:  helpers.FormatPercent(turnover),
	}
}

// DepartmentDistribution counts employees per department, most populated
// first. The counts always sum to the total row count.
func (s *AnalyticsService) DepartmentDistribution() []CategoryCount {
	counts := make(map[string]int)
	for _, employee := range s.table.Rows() {
		counts[employee.Department]++
	}
	return sortedCountsDesc(counts)
}

// AgeHistogram buckets employee ages into fixed 5-year intervals covering
// the observed range. An empty table yields no buckets.
func (s *AnalyticsService) AgeHistogram() []HistogramBucket {
	rows := s.table.Rows()
	if len(rows) == 0 {
		return nil
	}

	minAge, maxAge := rows[0].Age, rows[0].Age
	for i := range rows {
		if rows[i].Age < minAge {
			minAge = rows[i].Age
		}
		if rows[i].Age > maxAge {
			maxAge = rows[i].Age
		}
	}

	start := (minAge / ageBucketWidth) * ageBucketWidth
	end := (maxAge/ageBucketWidth)*ageBucketWidth + ageBucketWidth

	buckets := make([]HistogramBucket, 0, (end-start)/ageBucketWidth)
	for from := start; from < end; from += ageBucketWidth {
		buckets = append(buckets, HistogramBucket{From: from, To: from + ageBucketWidth})
	}
	for i := range rows {
		idx := (rows[i].Age - start) / ageBucketWidth
		buckets[idx].Count++
	}
	return buckets
}

// SalaryByDepartment computes a per-department five-number salary summary
// plus mean, one entry per department sorted by name. A department with no
// salaries reports zeros rather than failing.
func (s *AnalyticsService) SalaryByDepartment() []SalaryStats {
	byDept := make(map[string][]float64)
	for _, employee := range s.table.Rows() {
		byDept[employee.Department] = append(byDept[employee.Department], employee.Salary)
	}

	departments := make([]string, 0, len(byDept))
	for dept := range byDept {
		departments = append(departments, dept)
	}
	sort.Strings(departments)

	stats := make([]SalaryStats, 0, len(departments))
	for _, dept := range departments {
		salaries := byDept[dept]
		sort.Float64s(salaries)
		stats = append(stats, SalaryStats{
			Department: dept,
			Count:      len(salaries),
			Min:        salaries[0],
			Q1:         quantile(salaries, 0.25),
			Median:     quantile(salaries, 0.5),
			Q3:         quantile(salaries, 0.75),
			Max:        salaries[len(salaries)-1],
			Mean:       mean(salaries),
		})
	}
	return stats
}

// SafetyMetrics aggregates the workplace safety indicators: total recorded
// accidents, employees with EPI usage score >= 9.0 and employees holding at
// least one safety certification.
func (s *AnalyticsService) SafetyMetrics() SafetySummary {
	var summary SafetySummary
	for _, employee := range s.table.Rows() {
		summary.TotalAccidents += employee.WorkAccidents
		if employee.EPIScore >= epiHighUsageThreshold {
			summary.HighEPIUsage++
		}
		if employee.HasCertifications() {
			summary.CertifiedEmployees++
		}
	}
	return summary
}

// PerformanceTraining returns one (performance rating, annual training
// hours) point per employee, in table order.
func (s *AnalyticsService) PerformanceTraining() []ScatterPoint {
	rows := s.table.Rows()
	points := make([]ScatterPoint, 0, len(rows))
	for i := range rows {
		points = append(points, ScatterPoint{
			X: rows[i].PerformanceRating,
			Y: rows[i].TrainingHoursYear,
		})
	}
	return points
}

// EducationLevels counts employees per education level, most common first
func (s *AnalyticsService) EducationLevels() []CategoryCount {
	counts := make(map[string]int)
	for _, employee := range s.table.Rows() {
		counts[employee.Education]++
	}
	return sortedCountsDesc(counts)
}

// TrainingHoursByDepartment computes mean annual training hours per
// department, ascending by mean. An empty department is impossible by
// construction (a department only exists through its rows) but a department
// whose hours are all zero still reports a zero mean.
func (s *AnalyticsService) TrainingHoursByDepartment() []CategoryValue {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, employee := range s.table.Rows() {
		sums[employee.Department] += employee.TrainingHoursYear
		counts[employee.Department]++
	}

	values := make([]CategoryValue, 0, len(sums))
	for dept, sum := range sums {
		values = append(values, CategoryValue{Label: dept, Value: sum / float64(counts[dept])})
	}
	sort.Slice(values, func(i, j int) bool {
		if values[i].Value != values[j].Value {
			return values[i].Value < values[j].Value
		}
		return values[i].Label < values[j].Label
	})
	return values
}

// TerminationReasons counts termination reasons over the terminated subset.
// A table where everyone is active yields an empty distribution.
func (s *AnalyticsService) TerminationReasons() []CategoryCount {
	counts := make(map[string]int)
	for _, employee := range s.table.Rows() {
		if employee.Status == models.StatusTerminated {
			counts[employee.TerminationReason]++
		}
	}
	return sortedCountsDesc(counts)
}

// sortedCountsDesc orders a count map by descending count, ties broken by label
func sortedCountsDesc(counts map[string]int) []CategoryCount {
	result := make([]CategoryCount, 0, len(counts))
	for label, count := range counts {
		result = append(result, CategoryCount{Label: label, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Label < result[j].Label
	})
	return result
}

// mean returns the arithmetic mean, or 0 for an empty slice
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// quantile computes the q-th quantile of an ascending-sorted slice using
// linear interpolation between the two nearest ranks. Returns 0 for an
// empty slice.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	pos := q * float64(n-1)
	lower := int(pos)
	if lower >= n-1 {
		return sorted[n-1]
	}
	frac := pos - float64(lower)
	return sorted[lower]*(1-frac) + sorted[lower+1]*frac
}
