package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"yugen/internal/models/db_models"
)

type POIRepository interface {
	CreatePoi(ctx context.Context, poi *db_models.POI) (uuid.UUID, error)

	GetByIDWithDetails(ctx context.Context, id string) (*db_models.POI, error)
	ListPoisByIds(ctx context.Context, ids []string) ([]db_models.POI, error)
}

type poiRepository struct {
	db *gorm.DB
}

func NewPOIRepository(db *gorm.DB) POIRepository {
	return &poiRepository{db: db}
}

func (r *poiRepository) CreatePoi(ctx context.Context, poi *db_models.POI) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(poi).Error; err != nil {
		return uuid.Nil, err
	}
	return poi.ID, nil
}

// ────────────────────────────────────────────────────────────────
// Read helpers follow the same pattern: default value + nil error
// when no rows are found.
// ────────────────────────────────────────────────────────────────

func (r *poiRepository) GetByIDWithDetails(ctx context.Context, id string) (*db_models.POI, error) {
	var poi db_models.POI
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("OpeningHours", func(db *gorm.DB) *gorm.DB {
			return db.Order("day, open_hour, open_minute")
		}).
		First(&poi, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // default model
		}
		return nil, err
	}
	return &poi, nil
}

func (r *poiRepository) ListPoisByIds(ctx context.Context, ids []string) ([]db_models.POI, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var pois []db_models.POI
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("OpeningHours").
		Where("id IN ?", ids).
		Find(&pois).Error
	if err != nil {
		return nil, err
	}
	return pois, nil
}
