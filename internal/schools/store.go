// Package schools resolves free-text school names to canonical relational
// identities, recording aliases so future lookups hit fast paths.
package schools

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/prepsportshq/preps-extract/internal/entity"
)

// Named outcomes of the two-phase resolve/ensure-alias flow. ErrAliasExists
// is an expected result of a concurrent or repeated resolution, not a fault.
var (
	ErrAliasExists = errors.New("alias already exists")
	ErrKeyExists   = errors.New("school key already exists")
)

// CreateSchool carries the optional descriptive fields for a new school row.
type CreateSchool struct {
	Key            string
	Name           string
	City           string
	Classification string
	Conference     string
}

// Store is the persistence boundary the resolver works against. Lookup
// methods return (nil, nil) on a clean miss; errors are reserved for storage
// faults.
type Store interface {
	// GetByName matches the canonical name case-insensitively.
	GetByName(ctx context.Context, name string) (*entity.School, error)
	// GetByAlias matches any recorded alias case-insensitively.
	GetByAlias(ctx context.Context, alias string) (*entity.School, error)
	// ListNames returns every canonical name, for suggestion ranking.
	ListNames(ctx context.Context) ([]string, error)
	// Create inserts a new school; ErrKeyExists on a slug collision.
	Create(ctx context.Context, s CreateSchool) (*entity.School, error)
	// AddAlias records an alias; ErrAliasExists on a uniqueness conflict.
	AddAlias(ctx context.Context, schoolID uuid.UUID, alias string) error
}
