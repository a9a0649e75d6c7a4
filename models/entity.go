// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the data types shared by every layer of the
// mission planning service: persisted entities, authentication payloads and
// transport responses.
package models

import "time"

// Audit holds the identity and lifecycle columns present on every entity
// table. It is embedded into each entity so that its fields are promoted to
// the top level of the JSON representation.
type Audit struct {
	// ID is assigned by the database on insert and never changes afterwards.
	ID int64 `json:"id"`

	// CreatedAt is stamped once, when the record is first persisted.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every mutating write.
	UpdatedAt time.Time `json:"updatedAt"`

	// DeletedAt marks a soft-deleted record. Rows with a non-nil DeletedAt
	// are invisible to every read path.
	DeletedAt *time.Time `json:"-"`
}

// Base gives generic code access to the embedded audit columns.
func (a *Audit) Base() *Audit {
	return a
}

// Entity is implemented by pointers to every persisted record type.
//
// Columns, Values and Targets describe the entity-specific columns only and
// must list them in the same order. Identity and audit columns are handled
// by the repository through Base.
type Entity interface {
	// TableName returns the relational table backing the entity.
	TableName() string

	// Resource returns the URL segment under /api/v1 serving the entity.
	Resource() string

	// Columns returns the entity-specific column names.
	Columns() []string

	// Values returns the column values in Columns order, used for writes.
	Values() []any

	// Targets returns scan destinations in Columns order, used for reads.
	Targets() []any

	// Base returns the embedded identity and audit columns.
	Base() *Audit
}

// EntityPtr constrains a type parameter to a pointer to T implementing
// [Entity]. It lets generic code allocate a fresh record with new(T).
type EntityPtr[T any] interface {
	*T
	Entity
}

// NewEntity allocates a zero record of type T and returns it as P.
func NewEntity[T any, P EntityPtr[T]]() P {
	return P(new(T))
}
