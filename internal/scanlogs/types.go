package scanlogs

import (
	"time"

	"github.com/google/uuid"

	"github.com/rahulmenon/labtrack-backend/pkg/db/models"
)

// ScanLogDTO is the wire shape of one recorded scan.
type ScanLogDTO struct {
	ID          uuid.UUID `json:"id"`
	EquipmentID string    `json:"equipment_id"`
	UserInfo    string    `json:"user_info"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	ScannedAt   time.Time `json:"scanned_at"`
}

// CreateInput records one scan event. Coordinates are optional because
// browsers may withhold geolocation.
type CreateInput struct {
	EquipmentID string   `json:"equipment_id" validate:"required"`
	UserInfo    *string  `json:"user_info"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
}

func toDTO(record models.ScanLog) ScanLogDTO {
	return ScanLogDTO{
		ID:          record.ID,
		EquipmentID: record.EquipmentID,
		UserInfo:    record.UserInfo,
		Latitude:    record.Latitude,
		Longitude:   record.Longitude,
		ScannedAt:   record.ScannedAt,
	}
}
