package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rodrigoclira/hr-dashboard/internal/app/controllers"
	"github.com/rodrigoclira/hr-dashboard/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	dashboardController *controllers.DashboardController,
	chartsController *controllers.ChartsController,
	peopleController *controllers.PeopleController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Dashboard header and filter metadata
	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("/overview", dashboardController.GetOverview)
		dashboard.GET("/departments", dashboardController.GetDepartments)
	}

	// One endpoint per chart of the overview grid
	charts := v1.Group("/charts")
	{
		charts.GET("/department-distribution", chartsController.GetDepartmentDistribution)
		charts.GET("/age-distribution", chartsController.GetAgeDistribution)
		charts.GET("/salary-by-department", chartsController.GetSalaryByDepartment)
		charts.GET("/safety-metrics", chartsController.GetSafetyMetrics)
		charts.GET("/performance-training", chartsController.GetPerformanceTraining)
		charts.GET("/education-levels", chartsController.GetEducationLevels)
		charts.GET("/training-hours", chartsController.GetTrainingHours)
		charts.GET("/termination-reasons", chartsController.GetTerminationReasons)
	}

	// People reports (the original tabs)
	people := v1.Group("/people")
	{
		people.GET("/birthdays", peopleController.GetBirthdays)
		people.GET("/anniversaries", peopleController.GetAnniversaries)
		people.GET("/certifications", peopleController.GetCertifications)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
