// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the API client used by the mission planning
// console.
//
// The primary abstraction is [ServerAdapter], which works with records as raw
// JSON addressed by their resource segment (see [models.Kinds]). [Resource]
// layers typed access for a single entity on top of it.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/mission-planner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the mission planning API.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// requests. Register and Login call it on success.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// List returns every live record of resource.
	List(ctx context.Context, resource string) ([]json.RawMessage, error)

	// Get returns one record. Returns [ErrNotFound] (wrapped) when it does
	// not exist or was deleted.
	Get(ctx context.Context, resource string, id int64) (json.RawMessage, error)

	// Create sends body as a new record and returns the stored one.
	Create(ctx context.Context, resource string, body any) (json.RawMessage, error)

	// Update replaces record id with body and returns the stored one.
	Update(ctx context.Context, resource string, id int64, body any) (json.RawMessage, error)

	// Delete removes record id.
	Delete(ctx context.Context, resource string, id int64) error

	// Health reports the server status. A DOWN server is not an error.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Info returns the server build information.
	Info(ctx context.Context) (models.AppBuildInfo, error)
}
