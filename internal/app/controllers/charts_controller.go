package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rodrigoclira/hr-dashboard/internal/app/charts"
	"github.com/rodrigoclira/hr-dashboard/internal/app/models/dto"
	"github.com/rodrigoclira/hr-dashboard/internal/app/services"
)

// ChartsController serves the eight precomputed chart specifications. Each
// handler runs one aggregation over the immutable table and binds the
// summary to its chart kind; requests are stateless and safe to repeat.
type ChartsController struct {
	analyticsService *services.AnalyticsService
}

// NewChartsController creates a new ChartsController
func NewChartsController(analyticsService *services.AnalyticsService) *ChartsController {
	return &ChartsController{analyticsService: analyticsService}
}

func respondChart(ctx *gin.Context, spec charts.Spec) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      spec,
		Timestamp: time.Now(),
	})
}

// GetDepartmentDistribution returns the department head-count pie chart
// @Summary Department distribution chart
// @Description Pie chart of employee counts per department
// @Tags charts
// @Produce json
// @Success 200 {object} dto.APIResponse{data=charts.Spec} "Chart specification"
// @Router /charts/department-distribution [get]
func (c *ChartsController) GetDepartmentDistribution(ctx *gin.Context) {
	respondChart(ctx, charts.DepartmentDistribution(c.analyticsService.DepartmentDistribution()))
}

// GetAgeDistribution returns the age histogram chart
// @Summary Age distribution chart
// @Description Histogram of employee ages in 5-year buckets
// @Tags charts
// @Produce json
// @Success 200 {object} dto.APIResponse{data=charts.Spec} "Chart specification"
// @Router /charts/age-distribution [get]
func (c *ChartsController) GetAgeDistribution(ctx *gin.Context) {
	respondChart(ctx, charts.AgeDistribution(c.analyticsService.AgeHistogram()))
}

// GetSalaryByDepartment returns the salary box plot chart
// @Summary Salary by department chart
// @Description Box plot of the salary distribution per department
// @Tags charts
// @Produce json
// @Success 200 {object} dto.APIResponse{data=charts.Spec} "Chart specification"
// @Router /charts/salary-by-department [get]
func (c *ChartsController) GetSalaryByDepartment(ctx *gin.Context) {
	respondChart(ctx, charts.SalaryByDepartment(c.analyticsService.SalaryByDepartment()))
}

// GetSafetyMetrics returns the safety indicators bar chart
// @Summary Safety metrics chart
// @Description Bar chart of workplace accidents, high EPI usage and certified employees
// @Tags charts
// @Produce json
// @Success 200 {object} dto.APIResponse{data=charts.Spec} "Chart specification"
// @Router /charts/safety-metrics [get]
func (c *ChartsController) GetSafetyMetrics(ctx *gin.Context) {
	respondChart(ctx, charts.SafetyMetrics(c.analyticsService.SafetyMetrics()))
}

// GetPerformanceTraining returns the performance/training scatter chart
// @Summary Performance vs training chart
// @Description Scatter plot of performance rating against annual training hours
// @Tags charts
// @Produce json
// @Success 200 {object} dto.APIResponse{data=charts.Spec} "Chart specification"
// @Router /charts/performance-training [get]
func (c *ChartsController) GetPerformanceTraining(ctx *gin.Context) {
	respondChart(ctx, charts.PerformanceTraining(c.analyticsService.PerformanceTraining()))
}

// GetEducationLevels returns the education level bar chart
// @Summary Education levels chart
// @Description Bar chart of employee counts per education level
// @Tags charts
// @Produce json
// @Success 200 {object} dto.APIResponse{data=charts.Spec} "Chart specification"
// @Router /charts/education-levels [get]
func (c *ChartsController) GetEducationLevels(ctx *gin.Context) {
	respondChart(ctx, charts.EducationLevels(c.analyticsService.EducationLevels()))
}

// GetTrainingHours returns the mean training hours horizontal bar chart
// @Summary Training hours chart
// @Description Horizontal bar chart of mean annual training hours per department
// @Tags charts
// @Produce json
// @Success 200 {object} dto.APIResponse{data=charts.Spec} "Chart specification"
// @Router /charts/training-hours [get]
func (c *ChartsController) GetTrainingHours(ctx *gin.Context) {
	respondChart(ctx, charts.TrainingHours(c.analyticsService.TrainingHoursByDepartment()))
}

// GetTerminationReasons returns the termination reasons pie chart
// @Summary Termination reasons chart
// @Description Pie chart of termination reasons over terminated employees; renders a placeholder when nobody is terminated
// @Tags charts
// @Produce json
// @Success 200 {object} dto.APIResponse{data=charts.Spec} "Chart specification"
// @Router /charts/termination-reasons [get]
func (c *ChartsController) GetTerminationReasons(ctx *gin.Context) {
	respondChart(ctx, charts.TerminationReasons(c.analyticsService.TerminationReasons()))
}
