// Package repository defines the achievement record store and errors.
package repository

import (
	"context"

	"github.com/swashington/snas/internal/domain/model"
)

// Filter narrows List and DeleteAll. Zero values match everything.
type Filter struct {
	Type     model.Type
	Category string
	// ActiveOnly excludes soft-retired records.
	ActiveOnly bool
}

// Store provides read/write access to achievement records. The core never
// assumes anything about the physical schema beyond the Achievement field
// set.
type Store interface {
	// List returns records matching the filter in insertion order.
	List(ctx context.Context, f Filter) ([]model.Achievement, error)

	// Get returns the record with the given id.
	// Returns ErrNotFound when the id is unknown.
	Get(ctx context.Context, id string) (model.Achievement, error)

	// Insert stores a new record and returns its assigned id.
	Insert(ctx context.Context, a model.Achievement) (string, error)

	// Update replaces the record identified by a.ID.
	Update(ctx context.Context, a model.Achievement) error

	// Upsert creates or updates keyed on (name, issuer) under a single
	// lock, closing the duplicate-insert race between concurrent writers.
	// Returns the record id and whether a new record was created.
	Upsert(ctx context.Context, a model.Achievement) (string, bool, error)

	// FindByNameIssuer returns the record matching both name and issuer.
	// Returns ErrNotFound when no such record exists.
	FindByNameIssuer(ctx context.Context, name, issuer string) (model.Achievement, error)

	// DeleteAll removes every record matching the filter and returns the
	// number removed.
	DeleteAll(ctx context.Context, f Filter) (int, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) int
}
