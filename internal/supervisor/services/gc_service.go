// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package services

import (
	"context"
)

// GCRunner is the slice of the store used by the GC service.
type GCRunner interface {
	RunGC(ctx context.Context) error
}

// StoreGCService runs the store's value-log garbage collector under
// supervision. RunGC blocks until the context is canceled; a context
// error is a normal stop, anything else restarts the service.
type StoreGCService struct {
	store GCRunner
	name  string
}

// NewStoreGCService creates the wrapper.
func NewStoreGCService(store GCRunner) *StoreGCService {
	return &StoreGCService{store: store, name: "store-gc"}
}

// Serve implements suture.Service.
func (g *StoreGCService) Serve(ctx context.Context) error {
	return g.store.RunGC(ctx)
}

// String implements fmt.Stringer; suture uses it in log messages.
func (g *StoreGCService) String() string {
	return g.name
}
