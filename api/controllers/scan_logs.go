package controllers

import (
	"net/http"

	"github.com/rahulmenon/labtrack-backend/api/responses"
	"github.com/rahulmenon/labtrack-backend/api/validators"
	"github.com/rahulmenon/labtrack-backend/internal/scanlogs"
	pkgerrors "github.com/rahulmenon/labtrack-backend/pkg/errors"
	"github.com/rahulmenon/labtrack-backend/pkg/logger"
)

// ScanLogList returns the full scan audit trail, most recent first.
func ScanLogList(svc scanlogs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "scan log service unavailable"))
			return
		}

		dtos, err := svc.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// ScanLogCreate records one scan event from the public QR page.
func ScanLogCreate(svc scanlogs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "scan log service unavailable"))
			return
		}

		var input scanlogs.CreateInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		ctx = tagEquipment(ctx, logg, input.EquipmentID)

		dto, err := svc.Create(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}
