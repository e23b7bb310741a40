package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"yugen/internal/models/db_models"
)

// TagUsage is a tag with the number of POIs carrying it.
type TagUsage struct {
	ID       uuid.UUID
	EnName   string
	ViName   string
	Icon     string
	POICount int64
}

type TagRepositoryInterface interface {
	CreateTag(tag db_models.Tag, ctx context.Context) error
	GetAllTags(page int, pageSize int, byUsage bool, ctx context.Context) ([]TagUsage, error)
}

func NewTagRepository(db *gorm.DB) TagRepositoryInterface {
	return &TagRepository{db: db}
}

type TagRepository struct {
	db *gorm.DB
}

func (t TagRepository) CreateTag(tag db_models.Tag, ctx context.Context) error {

	return t.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(&tag).Error; err != nil {
			return err
		}

		return nil
	})

}

// GetAllTags pages through tags by name, or by POI count when byUsage is set.
func (t TagRepository) GetAllTags(page int, pageSize int, byUsage bool, ctx context.Context) ([]TagUsage, error) {

	order := "tags.en_name"
	if byUsage {
		order = "poi_count DESC, tags.en_name"
	}

	var tags []TagUsage
	err := t.db.WithContext(ctx).
		Model(&db_models.Tag{}).
		Select("tags.id, tags.en_name, tags.vi_name, tags.icon, COUNT(poi_tags.poi_id) AS poi_count").
		Joins("LEFT JOIN poi_tags ON poi_tags.tag_id = tags.id").
		Group("tags.id, tags.en_name, tags.vi_name, tags.icon").
		Order(order).
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Scan(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
