package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"yugen/internal/models/request_models"
	"yugen/internal/services"
	"yugen/pkg/utils"
)

type ScheduleController struct {
	scheduleService services.ScheduleServiceInterface
}

func NewScheduleController(scheduleService services.ScheduleServiceInterface) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// PreviewSchedule godoc
// @Summary Preview an automatic schedule
// @Description Place ad-hoc candidates into day slots around fixed blocks. Nothing is persisted.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body request_models.PreviewScheduleRequest true "Candidates, fixed blocks, dates and preferences"
// @Success 200 {object} response_models.ScheduleResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /schedule/preview [post]
func (s *ScheduleController) PreviewSchedule(c *gin.Context) {
	var req request_models.PreviewScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := s.scheduleService.PreviewSchedule(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Schedule preview built successfully")
}

// AutoScheduleJourney godoc
// @Summary Auto-schedule a journey
// @Description Place the journey's unscheduled activities around the scheduled ones. With apply=true the result is saved.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Param apply query bool false "Persist the placements"
// @Param request body request_models.AutoScheduleRequest false "Optional sub-range and preferences"
// @Success 200 {object} response_models.ScheduleResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /journeys/{journeyId}/auto-schedule [post]
func (s *ScheduleController) AutoScheduleJourney(c *gin.Context) {
	journeyId := c.Param("journeyId")
	if journeyId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Journey ID is required")
		return
	}

	apply, err := strconv.ParseBool(c.DefaultQuery("apply", "false"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "apply must be true or false")
		return
	}

	var req request_models.AutoScheduleRequest
	// the body is optional
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := s.scheduleService.AutoScheduleJourney(c.Request.Context(), journeyId, req, apply)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	msg := "Journey schedule previewed successfully"
	if resp.Applied {
		msg = "Journey schedule applied successfully"
	}
	utils.RespondSuccess(c, resp, msg)
}
