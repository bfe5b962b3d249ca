// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/foodiug/internal/logging"
)

// healthPingTimeout bounds the store ping of the health endpoint.
const healthPingTimeout = 2 * time.Second

// HealthStatus is the data payload of GET /api/health.
type HealthStatus struct {
	Store  string `json:"store"`
	Uptime string `json:"uptime"`
}

// Store states reported by Health.
const (
	storeUp   = "up"
	storeDown = "down"
)

// Test godoc
// @Summary Liveness message
// @Tags health
// @Produce json
// @Success 200 {object} Envelope
// @Router /api/test [get]
func (h *Handler) Test(w http.ResponseWriter, _ *http.Request) {
	now := h.now()
	respondJSON(w, http.StatusOK, &Envelope{
		Success:   true,
		Message:   MsgAPIRunning,
		Timestamp: &now,
	})
}

// Health godoc
// @Summary Store health
// @Description Pings the backing store. Returns 503 when it does not answer within two seconds.
// @Tags health
// @Produce json
// @Success 200 {object} Envelope{data=HealthStatus}
// @Failure 503 {object} Envelope{data=HealthStatus}
// @Router /api/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	status := HealthStatus{
		Store:  storeUp,
		Uptime: time.Since(h.startTime).Round(time.Second).String(),
	}
	code := http.StatusOK

	if err := h.store.Ping(ctx); err != nil {
		status.Store = storeDown
		code = http.StatusServiceUnavailable
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Store health check failed")
	}

	respondJSON(w, code, &Envelope{Success: code == http.StatusOK, Data: status})
}
