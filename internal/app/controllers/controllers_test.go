package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/rodrigoclira/hr-dashboard/internal/app/controllers"
	"github.com/rodrigoclira/hr-dashboard/internal/app/models"
	"github.com/rodrigoclira/hr-dashboard/internal/app/routes"
	"github.com/rodrigoclira/hr-dashboard/internal/app/services"
	"github.com/rodrigoclira/hr-dashboard/internal/dataset"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	table := dataset.NewTable([]models.Employee{
		{
			ID: 1, Name: "Maria Silva", Department: "Operacional",
			BirthDate: time.Date(1990, 6, 10, 0, 0, 0, 0, time.UTC),
			HireDate:  time.Date(2018, 6, 20, 0, 0, 0, 0, time.UTC),
			Salary:    2500, Age: 34, Status: models.StatusActive,
		},
		{
			ID: 2, Name: "Carlos Lima", Department: "Engenharia",
			BirthDate: time.Date(1980, 3, 5, 0, 0, 0, 0, time.UTC),
			HireDate:  time.Date(2015, 4, 15, 0, 0, 0, 0, time.UTC),
			Salary:    8000, Age: 45, Status: models.StatusActive,
		},
		{
			ID: 3, Name: "Ana Costa", Department: "Operacional",
			BirthDate: time.Date(1995, 1, 12, 0, 0, 0, 0, time.UTC),
			HireDate:  time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC),
			Salary:    2000, Age: 30, Status: models.StatusTerminated,
			TerminationReason: "Pedido de demissao",
		},
	})

	analyticsService := services.NewAnalyticsService(table)
	peopleService := services.NewPeopleService(table, nil)

	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewDashboardController(analyticsService, table),
		controllers.NewChartsController(analyticsService),
		controllers.NewPeopleController(peopleService),
	)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return resp, body
}

func TestGetOverview(t *testing.T) {
	router := testRouter(t)

	resp, body := doRequest(t, router, "/api/v1/dashboard/overview")
	require.Equal(t, http.StatusOK, resp.Code)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(3), data["totalEmployees"])
	require.Equal(t, float64(2), data["activeEmployees"])
	require.Equal(t, "R$ 10.500,00", data["totalPayrollFmt"])
}

func TestGetDepartments(t *testing.T) {
	router := testRouter(t)

	resp, body := doRequest(t, router, "/api/v1/dashboard/departments")
	require.Equal(t, http.StatusOK, resp.Code)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, []any{"Engenharia", "Operacional"}, data["departments"])
}

func TestChartEndpoints(t *testing.T) {
	router := testRouter(t)

	paths := []string{
		"/api/v1/charts/department-distribution",
		"/api/v1/charts/age-distribution",
		"/api/v1/charts/salary-by-department",
		"/api/v1/charts/safety-metrics",
		"/api/v1/charts/performance-training",
		"/api/v1/charts/education-levels",
		"/api/v1/charts/training-hours",
		"/api/v1/charts/termination-reasons",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			resp, body := doRequest(t, router, path)
			require.Equal(t, http.StatusOK, resp.Code)

			data, ok := body["data"].(map[string]any)
			require.True(t, ok)
			require.NotEmpty(t, data["kind"])
			require.NotEmpty(t, data["title"])
		})
	}
}

func TestGetBirthdaysRejectsNonNumericDays(t *testing.T) {
	router := testRouter(t)

	resp, body := doRequest(t, router, "/api/v1/people/birthdays?days=soon")
	require.Equal(t, http.StatusBadRequest, resp.Code)

	errBody, ok := body["error"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "VAL_001", errBody["code"])
}

func TestGetBirthdaysRejectsUnsupportedWindow(t *testing.T) {
	router := testRouter(t)

	resp, _ := doRequest(t, router, "/api/v1/people/birthdays?days=45")
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetCertificationsUnknownDepartment(t *testing.T) {
	router := testRouter(t)

	resp, body := doRequest(t, router, "/api/v1/people/certifications?department=Financeiro")
	require.Equal(t, http.StatusNotFound, resp.Code)

	errBody, ok := body["error"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "RES_001", errBody["code"])
}

func TestGetAnniversariesDefaultWindow(t *testing.T) {
	router := testRouter(t)

	resp, body := doRequest(t, router, "/api/v1/people/anniversaries")
	require.Equal(t, http.StatusOK, resp.Code)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, data, "total")
	require.Contains(t, data, "entries")
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t)

	resp, body := doRequest(t, router, "/api/v1/health")
	require.Equal(t, http.StatusOK, resp.Code)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "ok", data["status"])
}
