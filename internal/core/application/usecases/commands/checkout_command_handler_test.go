package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCheckoutHandler(factory commands.UoWFactory) commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(
		factory,
		services.NewPricingEngine(),
		kernel.NewMoneyFromCents(299),
		decimal.RequireFromString("0.0825"),
	)
}

func filledCart(t *testing.T) *cart.Cart {
	t.Helper()
	aggregate, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)

	pizza, err := cart.NewCartLine(
		kernel.NewUUID(), kernel.NewUUID(), "Margherita Pizza",
		kernel.NewMoneyFromCents(1499), 3, nil, "",
	)
	require.NoError(t, err)
	bread, err := cart.NewCartLine(
		kernel.NewUUID(), kernel.NewUUID(), "Garlic Bread",
		kernel.NewMoneyFromCents(599), 2, nil, "",
	)
	require.NoError(t, err)

	require.NoError(t, aggregate.AddLine(pizza))
	require.NoError(t, aggregate.AddLine(bread))
	return aggregate
}

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := filledCart(t)
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(aggregate.ID(), orderID, "123 Main St, Apt 4B")
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				placed := args.Get(1).(*order.Order)
				assert.True(t, placed.ID().IsEqual(orderID))
				assert.Equal(t, order.Placed, placed.Status())
				assert.Equal(t, int64(5695), placed.Subtotal().Cents())
				assert.Equal(t, int64(299), placed.DeliveryFee().Cents())
				assert.Equal(t, int64(470), placed.Tax().Cents())
				assert.Equal(t, int64(6464), placed.Total().Cents())
				assert.Len(t, placed.Items(), 2)
			}).Return(nil).Once(),
		cartRepo.On("Delete", mock.Anything, aggregate.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	cartRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	empty, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	cmd, err := commands.NewCheckoutCommand(empty.ID(), kernel.NewUUID(), "123 Main St")
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, empty.ID()).Return(empty, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_CartNotFound(t *testing.T) {
	ctx := t.Context()
	cartID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(cartID, kernel.NewUUID(), "123 Main St")
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, cartID).
			Return(nil, errs.NewObjectNotFoundError("cart", cartID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCheckoutHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CheckoutCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := newCheckoutHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
