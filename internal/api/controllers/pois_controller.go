package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"yugen/internal/services"
	"yugen/pkg/utils"
)

type POIsController struct {
	poiService services.POIServiceInterface
}

func NewPOIsController(poiService services.POIServiceInterface) *POIsController {
	return &POIsController{
		poiService: poiService,
	}
}

// GetPoiById godoc
// @Summary Get POI by ID
// @Description Fetch a POI with its tags and weekly opening hours
// @Tags POI
// @Produce json
// @Param id path string true "POI ID"
// @Success 200 {object} response_models.POI
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /pois/{id} [get]
func (p *POIsController) GetPoiById(c *gin.Context) {
	poiId := c.Param("id")
	if poiId == "" {
		utils.RespondError(c, http.StatusBadRequest, "POI ID is required")
		return
	}

	poi, err := p.poiService.GetPOIById(poiId, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, poi, "POI fetched successfully")
}
