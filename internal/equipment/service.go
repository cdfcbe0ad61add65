package equipment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rahulmenon/labtrack-backend/pkg/db"
	pkgerrors "github.com/rahulmenon/labtrack-backend/pkg/errors"
	"github.com/rahulmenon/labtrack-backend/pkg/qr"
)

// ServiceParams groups dependencies for the equipment service.
type ServiceParams struct {
	Repo        *Repo
	QR          qr.Generator
	FrontendURL string
}

// Service exposes business rules for the equipment inventory.
type Service interface {
	List(ctx context.Context) ([]EquipmentDTO, error)
	Get(ctx context.Context, equipmentID string) (EquipmentDTO, error)
	Create(ctx context.Context, input CreateInput) (EquipmentDTO, error)
	Update(ctx context.Context, equipmentID string, input UpdateInput) (EquipmentDTO, error)
	Delete(ctx context.Context, equipmentID string) error
}

type service struct {
	repo        *Repo
	qr          qr.Generator
	frontendURL string
}

// NewService builds an equipment service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "equipment repo is required")
	}
	if params.QR == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "qr generator is required")
	}
	if params.FrontendURL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "frontend url is required")
	}
	return &service{
		repo:        params.Repo,
		qr:          params.QR,
		frontendURL: params.FrontendURL,
	}, nil
}

// List returns the full inventory, newest first.
func (s *service) List(ctx context.Context) ([]EquipmentDTO, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list equipment")
	}
	dtos := make([]EquipmentDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, toDTO(record))
	}
	return dtos, nil
}

// Get looks one asset up by its business key.
func (s *service) Get(ctx context.Context, equipmentID string) (EquipmentDTO, error) {
	if equipmentID == "" {
		return EquipmentDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "equipment_id is required")
	}
	record, err := s.repo.FindByEquipmentID(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EquipmentDTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "equipment not found")
		}
		return EquipmentDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to load equipment")
	}
	return toDTO(record), nil
}

// Create registers a new asset and stamps it with a scannable QR image URL
// pointing at the asset's public detail page.
func (s *service) Create(ctx context.Context, input CreateInput) (EquipmentDTO, error) {
	record, err := input.toModel()
	if err != nil {
		return EquipmentDTO{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid date value")
	}
	record.QRURL = s.qr.ImageURL(qr.EquipmentTarget(s.frontendURL, input.EquipmentID))

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		if db.IsUniqueViolation(err, "equipment_equipment_id_key") {
			return EquipmentDTO{}, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "equipment_id already exists")
		}
		return EquipmentDTO{}, pkgerrors.Wrap(pkgerrors.CodeConflict, err, err.Error())
	}
	return toDTO(created), nil
}

// Update applies a partial patch to one asset. The business key cannot be
// changed; a patch for a missing asset fails the same way any other store
// rejection does.
func (s *service) Update(ctx context.Context, equipmentID string, input UpdateInput) (EquipmentDTO, error) {
	if equipmentID == "" {
		return EquipmentDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "equipment_id is required")
	}
	updates, err := input.toUpdates()
	if err != nil {
		return EquipmentDTO{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid date value")
	}
	updated, err := s.repo.Update(ctx, equipmentID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EquipmentDTO{}, pkgerrors.New(pkgerrors.CodeConflict, "equipment not found")
		}
		return EquipmentDTO{}, pkgerrors.Wrap(pkgerrors.CodeConflict, err, err.Error())
	}
	return toDTO(updated), nil
}

// Delete removes one asset by business key.
func (s *service) Delete(ctx context.Context, equipmentID string) error {
	if equipmentID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "equipment_id is required")
	}
	if err := s.repo.Delete(ctx, equipmentID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, err.Error())
	}
	return nil
}
