package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
)

// ComponentRepository is the persistence interface for component edges.
type ComponentRepository interface {
	// InsertMut builds the mutation inserting a new edge.
	InsertMut(component *domain.Component) (*spanner.Mutation, error)

	// UpdateMut builds the mutation updating an edge's dirty fields.
	// Returns nil when nothing changed.
	UpdateMut(component *domain.Component) (*spanner.Mutation, error)

	// DeleteMut builds the mutation removing an edge.
	DeleteMut(componentID string) *spanner.Mutation

	// GetByID loads an edge or domain.ErrComponentNotFound.
	GetByID(ctx context.Context, componentID string) (*domain.Component, error)

	// ListByParent returns the outgoing edges of a parent, ordered by
	// sequence.
	ListByParent(ctx context.Context, parentID string) ([]*domain.Component, error)

	// ListByChild returns the incoming edges of a child (where-used),
	// ordered by parent id.
	ListByChild(ctx context.Context, childID string) ([]*domain.Component, error)
}
