package controllers

import (
	"net/http"

	"github.com/rahulmenon/labtrack-backend/api/responses"
	"github.com/rahulmenon/labtrack-backend/pkg/config"
	"github.com/rahulmenon/labtrack-backend/pkg/db"
	pkgerrors "github.com/rahulmenon/labtrack-backend/pkg/errors"
	"github.com/rahulmenon/labtrack-backend/pkg/logger"
	"github.com/rahulmenon/labtrack-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-LabTrack-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when both backing stores answer a ping.
func HealthReady(cfg *config.Config, dbPing db.Pinger, redisPing redis.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("X-LabTrack-Env", cfg.App.Env)

		if dbPing != nil {
			if err := dbPing.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unavailable"))
				return
			}
		}
		if redisPing != nil {
			if err := redisPing.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
