package commands_test

import (
	"errors"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveStaleCartsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRemoveStaleCartsCommand(24 * time.Hour)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("DeleteStale", mock.Anything, mock.AnythingOfType("time.Time")).
			Run(func(args mock.Arguments) {
				cutoff := args.Get(1).(time.Time)
				assert.WithinDuration(t, time.Now().UTC().Add(-24*time.Hour), cutoff, time.Minute)
			}).Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartCleanupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveStaleCartsCommandHandler(factory)
	removed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveStaleCartsCommandHandler_Handle_DeleteError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRemoveStaleCartsCommand(time.Hour)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("DeleteStale", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(int64(0), errors.New("delete error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartCleanupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveStaleCartsCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
