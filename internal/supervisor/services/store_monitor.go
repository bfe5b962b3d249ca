// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package services

import (
	"context"
	"time"

	"github.com/tomtom215/foodiug/internal/logging"
	"github.com/tomtom215/foodiug/internal/metrics"
)

// Monitor defaults.
const (
	DefaultMonitorInterval = 30 * time.Second
	monitorPingTimeout     = 2 * time.Second
)

// Pinger is the store capability the monitor needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreMonitorService pings the store on a fixed interval and publishes
// the result as the foodiug_store_up gauge.
type StoreMonitorService struct {
	store    Pinger
	interval time.Duration
	name     string

	// up is nil until the first ping; only changes are logged.
	up *bool
}

// NewStoreMonitorService creates a monitor. Non-positive intervals use
// DefaultMonitorInterval.
func NewStoreMonitorService(store Pinger, interval time.Duration) *StoreMonitorService {
	if interval <= 0 {
		interval = DefaultMonitorInterval
	}
	return &StoreMonitorService{
		store:    store,
		interval: interval,
		name:     "store-monitor",
	}
}

// Serve implements suture.Service. The first ping runs immediately.
func (m *StoreMonitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

func (m *StoreMonitorService) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, monitorPingTimeout)
	err := m.store.Ping(pingCtx)
	cancel()

	// Shutdown in progress; the failed ping says nothing about the store.
	if ctx.Err() != nil {
		return
	}

	up := err == nil
	metrics.SetStoreUp(up)

	if m.up != nil && *m.up == up {
		return
	}
	m.up = &up

	if up {
		logging.Info().Str("service", m.name).Msg("Store reachable")
		return
	}
	logging.Warn().Str("service", m.name).Err(err).Msg("Store unreachable")
}

// String names the service in supervisor events.
func (m *StoreMonitorService) String() string {
	return m.name
}
