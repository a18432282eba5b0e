package commands_test

import (
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoveStaleCartsCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewRemoveStaleCartsCommand(24 * time.Hour)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 24*time.Hour, cmd.MaxAge())
	})

	t.Run("should reject non-positive max age", func(t *testing.T) {
		for _, maxAge := range []time.Duration{0, -time.Hour} {
			_, err := commands.NewRemoveStaleCartsCommand(maxAge)
			require.Error(t, err, "maxAge %s", maxAge)
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.RemoveStaleCartsCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrRemoveStaleCartsCommandIsNotConstructed)
	})
}
