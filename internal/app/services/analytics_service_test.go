package services

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rodrigoclira/hr-dashboard/internal/app/models"
	"github.com/rodrigoclira/hr-dashboard/internal/dataset"
)

func employee(id int64, dept string, status models.EmployeeStatus, salary float64) models.Employee {
	e := models.Employee{
		ID:         id,
		Name:       "Employee",
		Department: dept,
		Status:     status,
		Salary:     salary,
	}
	if status == models.StatusTerminated {
		e.TerminationReason = "Pedido de demissao"
	}
	return e
}

func TestOverviewKPIs(t *testing.T) {
	table := dataset.NewTable([]models.Employee{
		employee(1, "Operacional", models.StatusActive, 1000),
		employee(2, "Operacional", models.StatusActive, 3000),
		employee(3, "Engenharia", models.StatusTerminated, 8000),
		employee(4, "Engenharia", models.StatusActive, 4000),
	})
	svc := NewAnalyticsService(table)

	overview := svc.Overview()
	require.Equal(t, 4, overview.TotalEmployees)
	require.Equal(t, 3, overview.ActiveEmployees)
	require.Equal(t, 4000.0, overview.AverageSalary)
	// Payroll covers active employees only
	require.Equal(t, 8000.0, overview.TotalPayroll)
	require.Equal(t, 25.0, overview.TurnoverRate)
	require.Equal(t, "25.0%", overview.TurnoverRateFmt)
	require.Equal(t, "R$ 4.000,00", overview.AverageSalaryFmt)
}

func TestOverviewEmptyTableUsesSentinels(t *testing.T) {
	svc := NewAnalyticsService(dataset.NewTable(nil))

	overview := svc.Overview()
	require.Equal(t, 0, overview.TotalEmployees)
	require.Equal(t, 0.0, overview.AverageSalary)
	require.Equal(t, 0.0, overview.TurnoverRate)
}

func TestDepartmentDistributionSumsToTotal(t *testing.T) {
	table := dataset.NewTable([]models.Employee{
		employee(1, "Operacional", models.StatusActive, 1000),
		employee(2, "Operacional", models.StatusActive, 2000),
		employee(3, "Operacional", models.StatusTerminated, 2500),
		employee(4, "Engenharia", models.StatusActive, 8000),
		employee(5, "Comercial", models.StatusActive, 3000),
	})
	svc := NewAnalyticsService(table)

	counts := svc.DepartmentDistribution()
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	require.Equal(t, table.Len(), total)

	// Most populated department first
	require.Equal(t, "Operacional", counts[0].Label)
	require.Equal(t, 3, counts[0].Count)
}

func TestSalaryByDepartmentMean(t *testing.T) {
	table := dataset.NewTable([]models.Employee{
		employee(1, "Operacional", models.StatusActive, 1000),
		employee(2, "Operacional", models.StatusActive, 2000),
		employee(3, "Operacional", models.StatusActive, 3000),
	})
	svc := NewAnalyticsService(table)

	stats := svc.SalaryByDepartment()
	require.Len(t, stats, 1)
	require.Equal(t, "Operacional", stats[0].Department)
	require.Equal(t, 2000.0, stats[0].Mean)
	require.Equal(t, 1000.0, stats[0].Min)
	require.Equal(t, 2000.0, stats[0].Median)
	require.Equal(t, 3000.0, stats[0].Max)
}

func TestAgeHistogram(t *testing.T) {
	rows := []models.Employee{
		employee(1, "Operacional", models.StatusActive, 1000),
		employee(2, "Operacional", models.StatusActive, 2000),
		employee(3, "Operacional", models.StatusActive, 3000),
		employee(4, "Operacional", models.StatusActive, 3000),
	}
	rows[0].Age = 22
	rows[1].Age = 24
	rows[2].Age = 31
	rows[3].Age = 45

	svc := NewAnalyticsService(dataset.NewTable(rows))
	buckets := svc.AgeHistogram()

	// 5-year buckets spanning 20..49
	require.Equal(t, 20, buckets[0].From)
	require.Equal(t, 45, buckets[len(buckets)-1].From)
	total := 0
	for _, b := range buckets {
		require.Equal(t, 5, b.To-b.From)
		total += b.Count
	}
	require.Equal(t, len(rows), total)
	require.Equal(t, 2, buckets[0].Count)
}

func TestAgeHistogramEmptyTable(t *testing.T) {
	svc := NewAnalyticsService(dataset.NewTable(nil))
	require.Empty(t, svc.AgeHistogram())
}

func TestTerminationReasonsAllActive(t *testing.T) {
	table := dataset.NewTable([]models.Employee{
		employee(1, "Operacional", models.StatusActive, 1000),
		employee(2, "Engenharia", models.StatusActive, 8000),
	})
	svc := NewAnalyticsService(table)

	require.Empty(t, svc.TerminationReasons())
}

func TestTerminationReasonsCountsTerminatedOnly(t *testing.T) {
	rows := []models.Employee{
		employee(1, "Operacional", models.StatusActive, 1000),
		employee(2, "Operacional", models.StatusTerminated, 2000),
		employee(3, "Engenharia", models.StatusTerminated, 8000),
	}
	rows[2].TerminationReason = "Fim de contrato"

	svc := NewAnalyticsService(dataset.NewTable(rows))
	counts := svc.TerminationReasons()
	require.Len(t, counts, 2)
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	require.Equal(t, 2, total)
}

func TestSafetyMetrics(t *testing.T) {
	rows := []models.Employee{
		employee(1, "Operacional", models.StatusActive, 1000),
		employee(2, "Operacional", models.StatusActive, 2000),
		employee(3, "Engenharia", models.StatusActive, 8000),
	}
	rows[0].WorkAccidents = 2
	rows[0].EPIScore = 9.5
	rows[0].SafetyCertifications = []string{"NR-35"}
	rows[1].WorkAccidents = 1
	rows[1].EPIScore = 8.9
	rows[2].EPIScore = 9.0

	svc := NewAnalyticsService(dataset.NewTable(rows))
	summary := svc.SafetyMetrics()
	require.Equal(t, 3, summary.TotalAccidents)
	// Threshold is inclusive at 9.0
	require.Equal(t, 2, summary.HighEPIUsage)
	require.Equal(t, 1, summary.CertifiedEmployees)
}

func TestTrainingHoursByDepartmentAscending(t *testing.T) {
	rows := []models.Employee{
		employee(1, "Operacional", models.StatusActive, 1000),
		employee(2, "Operacional", models.StatusActive, 2000),
		employee(3, "Engenharia", models.StatusActive, 8000),
	}
	rows[0].TrainingHoursYear = 10
	rows[1].TrainingHoursYear = 20
	rows[2].TrainingHoursYear = 40

	svc := NewAnalyticsService(dataset.NewTable(rows))
	values := svc.TrainingHoursByDepartment()
	require.Len(t, values, 2)
	require.Equal(t, "Operacional", values[0].Label)
	require.Equal(t, 15.0, values[0].Value)
	require.Equal(t, "Engenharia", values[1].Label)
	require.Equal(t, 40.0, values[1].Value)
}

func TestAggregationsAreDeterministic(t *testing.T) {
	rows := []models.Employee{
		employee(1, "Operacional", models.StatusActive, 1000),
		employee(2, "Engenharia", models.StatusTerminated, 8000),
		employee(3, "Comercial", models.StatusActive, 3000),
	}
	rows[0].Age = 30
	rows[1].Age = 41
	rows[2].Age = 55

	svc := NewAnalyticsService(dataset.NewTable(rows))

	require.True(t, reflect.DeepEqual(svc.DepartmentDistribution(), svc.DepartmentDistribution()))
	require.True(t, reflect.DeepEqual(svc.AgeHistogram(), svc.AgeHistogram()))
	require.True(t, reflect.DeepEqual(svc.SalaryByDepartment(), svc.SalaryByDepartment()))
	require.True(t, reflect.DeepEqual(svc.TerminationReasons(), svc.TerminationReasons()))
	require.Equal(t, svc.Overview(), svc.Overview())
}

func TestQuantileInterpolation(t *testing.T) {
	sorted := []float64{1000, 2000, 3000}
	require.Equal(t, 1500.0, quantile(sorted, 0.25))
	require.Equal(t, 2000.0, quantile(sorted, 0.5))
	require.Equal(t, 2500.0, quantile(sorted, 0.75))
	require.Equal(t, 3000.0, quantile(sorted, 1))
	require.Equal(t, 0.0, quantile(nil, 0.5))
	require.Equal(t, 42.0, quantile([]float64{42}, 0.75))
}
