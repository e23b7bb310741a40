package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"yugen/internal/services"
	"yugen/pkg/utils"
)

type JourneyController struct {
	journeyService services.JourneyServiceInterface
}

func NewJourneyController(journeyService services.JourneyServiceInterface) *JourneyController {
	return &JourneyController{
		journeyService: journeyService,
	}
}

// GetDetailsInfoOfJourneyById godoc
// @Summary Get journey details by ID
// @Description Fetch a journey with its days, scheduled activities and the activities still waiting for a slot. With date, only that day and the activities that could land on it.
// @Tags Journey
// @Accept json
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Param date query string false "Single day, YYYY-MM-DD"
// @Success 200 {object} response_models.JourneyDetailResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /journeys/{journeyId} [get]
func (j *JourneyController) GetDetailsInfoOfJourneyById(c *gin.Context) {
	journeyId := c.Param("journeyId")
	if journeyId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Journey ID is required")
		return
	}

	date := c.Query("date")
	journey, err := j.journeyService.GetDetailsInfoOfJourneyById(c.Request.Context(), journeyId, date)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if date != "" {
		utils.RespondSuccess(c, journey, "Journey day fetched successfully")
		return
	}
	utils.RespondSuccess(c, journey, "Journey details fetched successfully")
}
