package charts

import (
	"fmt"

	"github.com/rodrigoclira/hr-dashboard/internal/app/services"
)

// DepartmentDistribution binds the department head-count distribution to a
// pie chart.
func DepartmentDistribution(counts []services.CategoryCount) Spec {
	if len(counts) == 0 {
		return placeholder(KindPie, "Distribuição por Departamento")
	}
	labels, values := splitCounts(counts)
	return Spec{
		Kind:   KindPie,
		Title:  "Distribuição por Departamento",
		Labels: labels,
		Values: values,
		Colors: qualitativePalette,
	}
}

// AgeDistribution binds the age histogram buckets to a histogram chart.
// Bucket labels render as closed ranges, e.g. "25-29".
func AgeDistribution(buckets []services.HistogramBucket) Spec {
	if len(buckets) == 0 {
		return placeholder(KindHistogram, "Distribuição por Idade")
	}
	labels := make([]string, 0, len(buckets))
	values := make([]float64, 0, len(buckets))
	for _, bucket := range buckets {
		labels = append(labels, fmt.Sprintf("%d-%d", bucket.From, bucket.To-1))
		values = append(values, float64(bucket.Count))
	}
	return Spec{
		Kind:       KindHistogram,
		Title:      "Distribuição por Idade",
		XAxisLabel: "Idade",
		YAxisLabel: "Número de Funcionários",
		Labels:     labels,
		Values:     values,
		Colors:     []string{colorPrimary},
	}
}

// SalaryByDepartment binds the per-department salary summaries to a box plot
func SalaryByDepartment(stats []services.SalaryStats) Spec {
	if len(stats) == 0 {
		return placeholder(KindBox, "Distribuição Salarial por Departamento")
	}
	labels := make([]string, 0, len(stats))
	boxes := make([][]float64, 0, len(stats))
	for _, s := range stats {
		labels = append(labels, s.Department)
		boxes = append(boxes, []float64{s.Min, s.Q1, s.Median, s.Q3, s.Max})
	}
	return Spec{
		Kind:       KindBox,
		Title:      "Distribuição Salarial por Departamento",
		XAxisLabel: "Departamento",
		YAxisLabel: "Salário (R$)",
		Labels:     labels,
		Boxes:      boxes,
		Colors:     qualitativePalette,
	}
}

// SafetyMetrics binds the three safety indicators to a bar chart
func SafetyMetrics(summary services.SafetySummary) Spec {
	return Spec{
		Kind:   KindBar,
		Title:  "Métricas de Segurança",
		Labels: []string{"Acidentes de Trabalho", "Uso EPI >= 9.0", "Com Certificações"},
		Values: []float64{
			float64(summary.TotalAccidents),
			float64(summary.HighEPIUsage),
			float64(summary.CertifiedEmployees),
		},
		Colors: []string{colorSuccess, colorPrimary, colorAccent},
	}
}

// PerformanceTraining binds the rating/training observations to a scatter chart
func PerformanceTraining(points []services.ScatterPoint) Spec {
	if len(points) == 0 {
		return placeholder(KindScatter, "Performance vs. Treinamento")
	}
	pairs := make([][]float64, 0, len(points))
	for _, p := range points {
		pairs = append(pairs, []float64{p.X, p.Y})
	}
	return Spec{
		Kind:       KindScatter,
		Title:      "Performance vs. Treinamento",
		XAxisLabel: "Avaliação de Performance",
		YAxisLabel: "Horas de Treinamento/Ano",
		Points:     pairs,
		Colors:     []string{colorPrimary},
	}
}

// EducationLevels binds the education distribution to a bar chart
func EducationLevels(counts []services.CategoryCount) Spec {
	if len(counts) == 0 {
		return placeholder(KindBar, "Níveis de Escolaridade")
	}
	labels, values := splitCounts(counts)
	return Spec{
		Kind:       KindBar,
		Title:      "Níveis de Escolaridade",
		XAxisLabel: "Escolaridade",
		YAxisLabel: "Número de Funcionários",
		Labels:     labels,
		Values:     values,
		Colors:     []string{colorAccent},
	}
}

// TrainingHours binds the mean training hours per department to a
// horizontal bar chart, smallest mean on top.
func TrainingHours(values []services.CategoryValue) Spec {
	if len(values) == 0 {
		return placeholder(KindHorizontalBar, "Média de Horas de Treinamento por Departamento")
	}
	labels := make([]string, 0, len(values))
	means := make([]float64, 0, len(values))
	for _, v := range values {
		labels = append(labels, v.Label)
		means = append(means, v.Value)
	}
	return Spec{
		Kind:       KindHorizontalBar,
		Title:      "Média de Horas de Treinamento por Departamento",
		XAxisLabel: "Horas de Treinamento (Média)",
		YAxisLabel: "Departamento",
		Labels:     labels,
		Values:     means,
		Colors:     []string{colorSecondary},
	}
}

// TerminationReasons binds the termination-reason distribution to a pie
// chart. With nobody terminated the placeholder chart is rendered.
func TerminationReasons(counts []services.CategoryCount) Spec {
	if len(counts) == 0 {
		return placeholder(KindPie, "Motivos de Desligamento")
	}
	labels, values := splitCounts(counts)
	return Spec{
		Kind:   KindPie,
		Title:  "Motivos de Desligamento",
		Labels: labels,
		Values: values,
		Colors: qualitativePalette,
	}
}

// splitCounts separates a count summary into parallel label/value slices
func splitCounts(counts []services.CategoryCount) ([]string, []float64) {
	labels := make([]string, 0, len(counts))
	values := make([]float64, 0, len(counts))
	for _, c := range counts {
		labels = append(labels, c.Label)
		values = append(values, float64(c.Count))
	}
	return labels, values
}
