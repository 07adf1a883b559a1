package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rodrigoclira/hr-dashboard/internal/app/models/dto"
	"github.com/rodrigoclira/hr-dashboard/internal/app/services"
	"github.com/rodrigoclira/hr-dashboard/internal/dataset"
)

// DashboardController serves the KPI header values and filter metadata
type DashboardController struct {
	analyticsService *services.AnalyticsService
	table            *dataset.Table
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(analyticsService *services.AnalyticsService, table *dataset.Table) *DashboardController {
	return &DashboardController{
		analyticsService: analyticsService,
		table:            table,
	}
}

// GetOverview returns the KPI values of the dashboard header
// @Summary Dashboard KPI overview
// @Description Returns total employees, active employees, average salary, total payroll of active employees and turnover rate
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.OverviewResponse} "KPI values"
// @Router /dashboard/overview [get]
func (c *DashboardController) GetOverview(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.analyticsService.Overview(),
		Timestamp: time.Now(),
	})
}

// GetDepartments returns the distinct department names
// @Summary List departments
// @Description Returns the distinct department names found in the dataset, used to fill the report filters
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DepartmentListResponse} "Department names"
// @Router /dashboard/departments [get]
func (c *DashboardController) GetDepartments(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.DepartmentListResponse{Departments: c.table.Departments()},
		Timestamp: time.Now(),
	})
}
