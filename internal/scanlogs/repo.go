package scanlogs

import (
	"context"

	"gorm.io/gorm"

	baserepo "github.com/rahulmenon/labtrack-backend/internal/repo"
	"github.com/rahulmenon/labtrack-backend/pkg/db/models"
)

// Repo owns all scan_logs table access. The table is append-only; there is
// deliberately no update or delete path.
type Repo struct {
	baserepo.Base
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{Base: baserepo.NewBase(db)}
}

// List returns every scan, most recent first.
func (r *Repo) List(ctx context.Context) ([]models.ScanLog, error) {
	var records []models.ScanLog
	err := r.DB(ctx).
		Order("scanned_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Repo) Create(ctx context.Context, record models.ScanLog) (models.ScanLog, error) {
	if err := r.DB(ctx).Create(&record).Error; err != nil {
		return models.ScanLog{}, err
	}
	return record, nil
}
