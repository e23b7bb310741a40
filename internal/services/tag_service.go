package services

import (
	"context"
	"fmt"

	"yugen/internal/models/response_models"
	"yugen/internal/repositories"
	"yugen/pkg/utils"
)

// TagServiceInterface lists the tags clients can use as a theme or interest.
type TagServiceInterface interface {
	GetAllTags(page int, pageSize int, byUsage bool, ctx context.Context) ([]response_models.TagResponse, error)
}

type TagService struct {
	tagRepo repositories.TagRepositoryInterface
}

func (t *TagService) GetAllTags(page int, pageSize int, byUsage bool, ctx context.Context) ([]response_models.TagResponse, error) {
	tags, err := t.tagRepo.GetAllTags(page, pageSize, byUsage, ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %v: %w", err, utils.ErrDatabaseError)
	}

	tagResponses := make([]response_models.TagResponse, 0, len(tags))
	for _, tag := range tags {
		tagResponses = append(tagResponses, response_models.TagResponse{
			ID:       tag.ID.String(),
			En:       tag.EnName,
			Vi:       tag.ViName,
			Icon:     tag.Icon,
			POICount: tag.POICount,
		})
	}

	return tagResponses, nil
}

func NewTagService(tagRepo repositories.TagRepositoryInterface) TagServiceInterface {
	return &TagService{
		tagRepo: tagRepo,
	}
}
