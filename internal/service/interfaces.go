// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business layer between HTTP handlers and the
// repositories of package store.
package service

import (
	"context"

	"github.com/MKhiriev/mission-planner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// EntityService exposes the CRUD operations of one entity kind. A lookup or
// update that finds no live record fails with [ErrNotFound].
type EntityService[E models.Entity] interface {
	List(ctx context.Context) ([]E, error)
	Get(ctx context.Context, id int64) (E, error)
	Create(ctx context.Context, entity E) (E, error)
	Update(ctx context.Context, id int64, entity E) (E, error)
	Delete(ctx context.Context, id int64) error
}

type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Identity, error)

	// EnsureAdmin creates the administrator account unless it already
	// exists. Empty credentials disable the bootstrap.
	EnsureAdmin(ctx context.Context, username, password string) error
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

type HealthService interface {
	// Check returns nil when the database answers a ping.
	Check(ctx context.Context) error
}
