package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
)

// ProductRepository is the persistence interface for products. Repositories
// return mutations, they never apply them; the usecase commits a plan.
type ProductRepository interface {
	// InsertMut builds the mutation inserting a new product.
	InsertMut(product *domain.Product) (*spanner.Mutation, error)

	// UpdateMut builds the mutation updating a product's dirty fields.
	// Returns nil when nothing changed.
	UpdateMut(product *domain.Product) (*spanner.Mutation, error)

	// GetByID loads a product aggregate or domain.ErrProductNotFound.
	GetByID(ctx context.Context, productID string) (*domain.Product, error)

	// Exists reports whether a product row is present.
	Exists(ctx context.Context, productID string) (bool, error)
}
