package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"yugen/internal/services"
	"yugen/pkg/utils"
)

type TagController struct {
	tagService services.TagServiceInterface
}

func NewTagController(tagService services.TagServiceInterface) *TagController {
	return &TagController{
		tagService: tagService,
	}
}

// ListAllTagsHandler godoc
// @Summary List tags
// @Description Page through POI tags with usage counts
// @Tags Tag
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size (1-100)"
// @Param sort query string false "name (default) or usage"
// @Success 200 {array} response_models.TagResponse
// @Router /tags [get]
func (tc *TagController) ListAllTagsHandler(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	var byUsage bool
	switch c.DefaultQuery("sort", "name") {
	case "name":
	case "usage":
		byUsage = true
	default:
		utils.RespondError(c, http.StatusBadRequest, "Invalid sort (must be name or usage)")
		return
	}

	tags, err := tc.tagService.GetAllTags(page, pageSize, byUsage, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tags, "Fetched tags successfully")
}
