package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScanLog records one QR-scan event. Rows are append-only: nothing in the
// application updates or deletes them. EquipmentID references Equipment by
// business key and is deliberately not a foreign key, so scan history
// survives a hard-deleted asset.
type ScanLog struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	EquipmentID string    `gorm:"column:equipment_id;not null;index:scan_logs_equipment_id_idx"`
	UserInfo    string    `gorm:"column:user_info;not null;default:Guest"`
	Latitude    *float64  `gorm:"column:latitude"`
	Longitude   *float64  `gorm:"column:longitude"`
	ScannedAt   time.Time `gorm:"column:scanned_at;autoCreateTime"`
}

func (ScanLog) TableName() string { return "scan_logs" }

func (s *ScanLog) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
