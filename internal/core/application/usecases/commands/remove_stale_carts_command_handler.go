package commands

import (
	"context"
	"time"
)

// CartCleanupUoWFactory creates unit of work instances for the cleanup job.
type CartCleanupUoWFactory interface {
	Create() CartCleanupUoW
}

// CartCleanupUoW manages transactions for cart cleanup operations.
type CartCleanupUoW interface {
	TxManager
	CartRepoFactory
}

// RemoveStaleCartsCommandHandler purges carts abandoned longer than the
// command's max age. Runs from the periodic cleanup job.
type RemoveStaleCartsCommandHandler struct {
	uowFactory CartCleanupUoWFactory
}

// NewRemoveStaleCartsCommandHandler creates a handler for stale cart removal.
func NewRemoveStaleCartsCommandHandler(uowFactory CartCleanupUoWFactory) RemoveStaleCartsCommandHandler {
	return RemoveStaleCartsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes every cart untouched since now minus the command's max age
// and returns the number of carts removed.
func (h *RemoveStaleCartsCommandHandler) Handle(ctx context.Context, cmd RemoveStaleCartsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.MaxAge())
	removed, err := uow.CartRepository().DeleteStale(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
