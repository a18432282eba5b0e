package commands

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrRemoveStaleCartsCommandIsNotConstructed = errors.New(
	"RemoveStaleCartsCommand must be created via NewRemoveStaleCartsCommand constructor",
)

// RemoveStaleCartsCommand represents a request to purge carts that have not
// been touched for the given duration. Issued periodically by the cleanup job.
type RemoveStaleCartsCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewRemoveStaleCartsCommand creates a command to purge abandoned carts.
// The max age must be positive.
func NewRemoveStaleCartsCommand(maxAge time.Duration) (RemoveStaleCartsCommand, error) {
	command := RemoveStaleCartsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setMaxAge(maxAge); err != nil {
		return RemoveStaleCartsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveStaleCartsCommand) Validate() error {
	return c.guard.Validate(ErrRemoveStaleCartsCommandIsNotConstructed)
}

// MaxAge returns the duration after which an untouched cart counts as stale.
func (c RemoveStaleCartsCommand) MaxAge() time.Duration {
	return c.maxAge
}

func (c *RemoveStaleCartsCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxAge",
			fmt.Errorf("%s is not positive", maxAge),
		)
	}

	c.maxAge = maxAge
	return nil
}
