package domain

import "errors"

// Domain errors as sentinel values
var (
	// Lookup errors
	ErrProductNotFound   = errors.New("product not found")
	ErrComponentNotFound = errors.New("component not found")

	// Composition errors
	ErrSelfReference      = errors.New("a product cannot contain itself")
	ErrCycleDetected      = errors.New("adding this component would create a cycle")
	ErrInvalidProductType = errors.New("only nomenclature products may own components")
	ErrInvalidQuantity    = errors.New("component quantity must be positive")

	// Traversal errors
	ErrMaxDepthExceeded = errors.New("hierarchy exceeds maximum traversal depth")

	// Product field errors
	ErrEmptyCode        = errors.New("product code cannot be empty")
	ErrEmptyName        = errors.New("product name cannot be empty")
	ErrUnknownType      = errors.New("unknown product type")
	ErrUnknownPriceMode = errors.New("unknown price calculation mode")
	ErrNegativeCost     = errors.New("manual cost cannot be negative")
	ErrNegativePrice    = errors.New("manual price cannot be negative")
	ErrNegativeWeight   = errors.New("unit weight cannot be negative")

	// Lifecycle errors
	ErrAlreadyArchived      = errors.New("product is already archived")
	ErrCannotModifyArchived = errors.New("cannot modify archived product")
	ErrProductInactive      = errors.New("product is not active")
)
