package cmd

import (
	"fmt"
	"strconv"
	"time"

	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CompositionRoot wires the application together: one unit of work factory
// over the shared database connection, one pricing engine and the pricing
// policy parsed from configuration. Handlers are created on demand.
type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	pricingEngine services.PricingEngine
	deliveryFee   kernel.Money
	taxRate       decimal.Decimal
	cartMaxAge    time.Duration
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	feeCents, err := strconv.ParseInt(config.DeliveryFeeCents, 10, 64)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid DELIVERY_FEE_CENTS %q: %w", config.DeliveryFeeCents, err)
	}

	taxRate, err := decimal.NewFromString(config.TaxRate)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid TAX_RATE %q: %w", config.TaxRate, err)
	}

	cartMaxAge, err := time.ParseDuration(config.CartMaxAge)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid CART_MAX_AGE %q: %w", config.CartMaxAge, err)
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricingEngine: services.NewPricingEngine(),
		deliveryFee:   kernel.NewMoneyFromCents(feeCents),
		taxRate:       taxRate,
		cartMaxAge:    cartMaxAge,
	}, nil
}

// CartMaxAge returns the configured retention period for abandoned carts.
func (c *CompositionRoot) CartMaxAge() time.Duration {
	return c.cartMaxAge
}

func (c *CompositionRoot) CreateAddCartLineCommandHandler() commands.AddCartLineCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCartLineCommandHandler(f, c.pricingEngine)
}

func (c *CompositionRoot) CreateChangeCartLineQuantityCommandHandler() commands.ChangeCartLineQuantityCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeCartLineQuantityCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveCartLineCommandHandler() commands.RemoveCartLineCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCartLineCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.pricingEngine, c.deliveryFee, c.taxRate)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveStaleCartsCommandHandler() commands.RemoveStaleCartsCommandHandler {
	var f commands.CartCleanupUoWFactory = FuncCartCleanupUoWFactory(func() commands.CartCleanupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveStaleCartsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetRestaurantMenuQueryHandler() queries.GetRestaurantMenuQueryHandler {
	return queries.NewGetRestaurantMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartSummaryQueryHandler() queries.GetCartSummaryQueryHandler {
	return queries.NewGetCartSummaryQueryHandler(c.gormDB, c.pricingEngine, c.deliveryFee, c.taxRate)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncCartCleanupUoWFactory func() commands.CartCleanupUoW

func (f FuncCartCleanupUoWFactory) Create() commands.CartCleanupUoW {
	return f()
}
