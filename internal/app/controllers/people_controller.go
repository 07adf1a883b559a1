package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rodrigoclira/hr-dashboard/internal/app/models/dto"
	"github.com/rodrigoclira/hr-dashboard/internal/app/services"
	"github.com/rodrigoclira/hr-dashboard/internal/middleware"
)

// PeopleController serves the people reports: birthdays, work
// anniversaries and safety certification status
type PeopleController struct {
	peopleService *services.PeopleService
}

// NewPeopleController creates a new PeopleController
func NewPeopleController(peopleService *services.PeopleService) *PeopleController {
	return &PeopleController{peopleService: peopleService}
}

// parseDays reads the lookahead window query parameter (default 30)
func parseDays(ctx *gin.Context) (int, bool) {
	daysStr := ctx.DefaultQuery("days", "30")
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid days parameter")
		errorDetail = errorDetail.WithField("days").WithDetails("days must be a number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return days, true
}

// GetBirthdays lists active employees with upcoming birthdays
// @Summary Upcoming birthdays
// @Description Lists active employees whose birthday falls within the given window, soonest first
// @Tags people
// @Produce json
// @Param days query int false "Lookahead window in days (30, 60, 90 or 180)" default(30)
// @Param department query string false "Restrict to one department"
// @Success 200 {object} dto.APIResponse{data=dto.PeopleReportResponse} "Birthday report"
// @Failure 400 {object} dto.ErrorResponse "Invalid days parameter"
// @Failure 404 {object} dto.ErrorResponse "Unknown department"
// @Router /people/birthdays [get]
func (c *PeopleController) GetBirthdays(ctx *gin.Context) {
	days, ok := parseDays(ctx)
	if !ok {
		return
	}

	entries, err := c.peopleService.UpcomingBirthdays(days, ctx.Query("department"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.PeopleReportResponse{Total: len(entries), Entries: entries},
		Timestamp: time.Now(),
	})
}

// GetAnniversaries lists active employees with upcoming work anniversaries
// @Summary Upcoming work anniversaries
// @Description Lists active employees whose hire-date anniversary falls within the given window, soonest first
// @Tags people
// @Produce json
// @Param days query int false "Lookahead window in days (30, 60, 90 or 180)" default(30)
// @Param department query string false "Restrict to one department"
// @Success 200 {object} dto.APIResponse{data=dto.PeopleReportResponse} "Anniversary report"
// @Failure 400 {object} dto.ErrorResponse "Invalid days parameter"
// @Failure 404 {object} dto.ErrorResponse "Unknown department"
// @Router /people/anniversaries [get]
func (c *PeopleController) GetAnniversaries(ctx *gin.Context) {
	days, ok := parseDays(ctx)
	if !ok {
		return
	}

	entries, err := c.peopleService.WorkAnniversaries(days, ctx.Query("department"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.PeopleReportResponse{Total: len(entries), Entries: entries},
		Timestamp: time.Now(),
	})
}

// GetCertifications lists certified employees by training staleness
// @Summary Safety certification status
// @Description Lists active employees holding safety certifications, the ones longest without a training refresh first
// @Tags people
// @Produce json
// @Param department query string false "Restrict to one department"
// @Success 200 {object} dto.APIResponse{data=dto.PeopleReportResponse} "Certification report"
// @Failure 404 {object} dto.ErrorResponse "Unknown department"
// @Router /people/certifications [get]
func (c *PeopleController) GetCertifications(ctx *gin.Context) {
	entries, err := c.peopleService.CertificationStatus(ctx.Query("department"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.PeopleReportResponse{Total: len(entries), Entries: entries},
		Timestamp: time.Now(),
	})
}
