package scanlogs

import (
	"context"

	"github.com/rahulmenon/labtrack-backend/pkg/db/models"
	pkgerrors "github.com/rahulmenon/labtrack-backend/pkg/errors"
)

// DefaultUserInfo labels scans recorded without any identity attached.
const DefaultUserInfo = "Guest"

// ServiceParams groups dependencies for the scan log service.
type ServiceParams struct {
	Repo *Repo
}

// Service exposes business rules for the scan audit trail.
type Service interface {
	List(ctx context.Context) ([]ScanLogDTO, error)
	Create(ctx context.Context, input CreateInput) (ScanLogDTO, error)
}

type service struct {
	repo *Repo
}

// NewService builds a scan log service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "scan log repo is required")
	}
	return &service{repo: params.Repo}, nil
}

// List returns the audit trail, most recent scan first.
func (s *service) List(ctx context.Context) ([]ScanLogDTO, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list scan logs")
	}
	dtos := make([]ScanLogDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, toDTO(record))
	}
	return dtos, nil
}

// Create appends one scan event. Anonymous scans are attributed to Guest.
// The equipment reference is not checked against the inventory, so scans of
// retired assets still land in the trail.
func (s *service) Create(ctx context.Context, input CreateInput) (ScanLogDTO, error) {
	if input.EquipmentID == "" {
		return ScanLogDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "equipment_id is required")
	}
	userInfo := DefaultUserInfo
	if input.UserInfo != nil && *input.UserInfo != "" {
		userInfo = *input.UserInfo
	}
	created, err := s.repo.Create(ctx, models.ScanLog{
		EquipmentID: input.EquipmentID,
		UserInfo:    userInfo,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
	})
	if err != nil {
		return ScanLogDTO{}, pkgerrors.Wrap(pkgerrors.CodeConflict, err, err.Error())
	}
	return toDTO(created), nil
}
