package equipment

import (
	"context"

	"gorm.io/gorm"

	baserepo "github.com/rahulmenon/labtrack-backend/internal/repo"
	"github.com/rahulmenon/labtrack-backend/pkg/db/models"
)

// Repo owns all equipment table access.
type Repo struct {
	baserepo.Base
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{Base: baserepo.NewBase(db)}
}

// List returns every asset, newest first.
func (r *Repo) List(ctx context.Context) ([]models.Equipment, error) {
	var records []models.Equipment
	err := r.DB(ctx).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// FindByEquipmentID looks an asset up by its business key. A miss surfaces
// as gorm.ErrRecordNotFound.
func (r *Repo) FindByEquipmentID(ctx context.Context, equipmentID string) (models.Equipment, error) {
	var record models.Equipment
	err := r.DB(ctx).
		Where("equipment_id = ?", equipmentID).
		First(&record).Error
	return record, err
}

func (r *Repo) Create(ctx context.Context, record models.Equipment) (models.Equipment, error) {
	if err := r.DB(ctx).Create(&record).Error; err != nil {
		return models.Equipment{}, err
	}
	return record, nil
}

// Update applies the given column assignments to one asset and returns the
// refreshed row. Missing rows surface as gorm.ErrRecordNotFound; an empty
// patch is a no-op read.
func (r *Repo) Update(ctx context.Context, equipmentID string, updates map[string]any) (models.Equipment, error) {
	if _, err := r.FindByEquipmentID(ctx, equipmentID); err != nil {
		return models.Equipment{}, err
	}
	if len(updates) > 0 {
		err := r.DB(ctx).
			Model(&models.Equipment{}).
			Where("equipment_id = ?", equipmentID).
			Updates(updates).Error
		if err != nil {
			return models.Equipment{}, err
		}
	}
	return r.FindByEquipmentID(ctx, equipmentID)
}

// Delete removes an asset by business key. Deleting an absent key is not an
// error.
func (r *Repo) Delete(ctx context.Context, equipmentID string) error {
	return r.DB(ctx).
		Where("equipment_id = ?", equipmentID).
		Delete(&models.Equipment{}).Error
}
