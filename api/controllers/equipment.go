package controllers

import (
	"context"
	"net/http"

	"github.com/rahulmenon/labtrack-backend/api/responses"
	"github.com/rahulmenon/labtrack-backend/api/validators"
	"github.com/rahulmenon/labtrack-backend/internal/equipment"
	pkgerrors "github.com/rahulmenon/labtrack-backend/pkg/errors"
	"github.com/rahulmenon/labtrack-backend/pkg/logger"
)

func tagEquipment(ctx context.Context, logg *logger.Logger, equipmentID string) context.Context {
	if logg == nil {
		return ctx
	}
	return logg.WithEquipmentID(ctx, equipmentID)
}

// EquipmentList returns the full inventory, or a single asset when the
// equipment_id query parameter is present.
func EquipmentList(svc equipment.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "equipment service unavailable"))
			return
		}

		if equipmentID := validators.QueryString(r, "equipment_id"); equipmentID != "" {
			ctx = tagEquipment(ctx, logg, equipmentID)
			dto, err := svc.Get(ctx, equipmentID)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, dto)
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

// EquipmentCreate registers a new asset and returns it with its QR link.
func EquipmentCreate(svc equipment.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "equipment service unavailable"))
			return
		}

		var input equipment.CreateInput
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

// EquipmentUpdate patches one asset addressed by the equipment_id query
// parameter.
func EquipmentUpdate(svc equipment.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "equipment service unavailable"))
			return
		}

		equipmentID, err := validators.RequireQueryString(r, "equipment_id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		ctx = tagEquipment(ctx, logg, equipmentID)

		var input equipment.UpdateInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.Update(ctx, equipmentID, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// EquipmentDelete removes one asset addressed by the equipment_id query
// parameter.
func EquipmentDelete(svc equipment.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "equipment service unavailable"))
			return
		}

		equipmentID, err := validators.RequireQueryString(r, "equipment_id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		ctx = tagEquipment(ctx, logg, equipmentID)

		if err := svc.Delete(ctx, equipmentID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, "Equipment deleted successfully")
	}
}
