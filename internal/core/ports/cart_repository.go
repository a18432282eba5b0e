package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
type CartRepository interface {
	// Add persists a new cart aggregate to storage.
	// The cart must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart aggregate, replacing its
	// line set. The cart must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// Get retrieves a cart aggregate by its unique identifier.
	// Returns the complete cart with all its lines and selections.
	Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error)

	// Delete removes a cart and all its lines. Deleting a cart that does not
	// exist is not an error; the desired end state is the same.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteStale removes carts that have not been touched since the cutoff.
	// Returns the number of carts removed.
	DeleteStale(ctx context.Context, cutoff time.Time) (int64, error)
}
