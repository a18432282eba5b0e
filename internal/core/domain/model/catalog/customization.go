package catalog

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrOptionIsNotConstructed is returned when an Option was not created
	// through the NewOption constructor.
	ErrOptionIsNotConstructed = errors.New("Option must be created via NewOption constructor")

	// ErrCustomizationGroupIsNotConstructed is returned when a
	// CustomizationGroup was not created through NewCustomizationGroup.
	ErrCustomizationGroupIsNotConstructed = errors.New(
		"CustomizationGroup must be created via NewCustomizationGroup constructor",
	)
)

// Option is one selectable choice inside a customization group, e.g.
// "Large" in "Size" or "Extra Cheese" in "Add-ons".
//
// The price delta may be zero, positive or negative; the sample catalog only
// carries non-negative deltas but nothing downstream relies on that.
type Option struct { //nolint:recvcheck //using for validation
	id         kernel.UUID
	name       string
	priceDelta kernel.Money

	guard guard.ConstructorGuard
}

// NewOption creates an Option with validation.
func NewOption(id kernel.UUID, name string, priceDelta kernel.Money) (Option, error) {
	option := Option{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		option.setID(id),
		option.setName(name),
		option.setPriceDelta(priceDelta),
	); err != nil {
		return Option{}, err
	}

	return option, nil
}

// Validate ensures the Option was created through the constructor.
func (o Option) Validate() error {
	return o.guard.Validate(ErrOptionIsNotConstructed)
}

// ID returns the option's unique identifier.
func (o Option) ID() kernel.UUID {
	return o.id
}

// Name returns the display name of the option.
func (o Option) Name() string {
	return o.name
}

// PriceDelta returns the amount added to the unit price when selected.
func (o Option) PriceDelta() kernel.Money {
	return o.priceDelta
}

func (o *Option) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Option) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("option name")
	}
	o.name = name
	return nil
}

func (o *Option) setPriceDelta(priceDelta kernel.Money) error {
	if err := priceDelta.Validate(); err != nil {
		return err
	}
	o.priceDelta = priceDelta
	return nil
}

// CustomizationGroup is an ordered set of options for one menu item, e.g.
// "Size" with Small/Medium/Large. A cart line may select at most one option
// per group and need not cover every group.
//
// The group references its menu item by identifier; it is not an owned part
// of the MenuItem aggregate.
type CustomizationGroup struct {
	id            kernel.UUID
	menuItemID    kernel.UUID
	name          string
	options       []Option
	isConstructed bool
}

// NewCustomizationGroup creates a CustomizationGroup with validation.
// The option list keeps its order, must not be empty and must not contain
// duplicate option identifiers.
func NewCustomizationGroup(
	id kernel.UUID,
	menuItemID kernel.UUID,
	name string,
	options []Option,
) (*CustomizationGroup, error) {
	group := &CustomizationGroup{
		isConstructed: true,
	}

	if err := errors.Join(
		group.setID(id),
		group.setMenuItemID(menuItemID),
		group.setName(name),
		group.setOptions(options),
	); err != nil {
		return nil, err
	}

	return group, nil
}

// Validate ensures the group was constructed through NewCustomizationGroup.
func (g *CustomizationGroup) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrCustomizationGroupIsNotConstructed
	}
	return nil
}

// ID returns the group's unique identifier.
func (g *CustomizationGroup) ID() kernel.UUID {
	return g.id
}

// MenuItemID returns the identifier of the menu item this group belongs to.
func (g *CustomizationGroup) MenuItemID() kernel.UUID {
	return g.menuItemID
}

// Name returns the display name of the group.
func (g *CustomizationGroup) Name() string {
	return g.name
}

// Options returns the group's options in catalog order. The returned slice
// is a copy; the group itself stays immutable.
func (g *CustomizationGroup) Options() []Option {
	options := make([]Option, len(g.options))
	copy(options, g.options)
	return options
}

// OptionByID looks up an option within the group by identifier.
// Returns an ObjectNotFoundError when the option does not belong to the group.
func (g *CustomizationGroup) OptionByID(id kernel.UUID) (Option, error) {
	if err := id.Validate(); err != nil {
		return Option{}, err
	}

	for _, option := range g.options {
		if option.ID().IsEqual(id) {
			return option, nil
		}
	}

	return Option{}, errs.NewObjectNotFoundError("option", id.String())
}

func (g *CustomizationGroup) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.id = id
	return nil
}

func (g *CustomizationGroup) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menuItemID", err)
	}
	g.menuItemID = id
	return nil
}

func (g *CustomizationGroup) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("group name")
	}
	g.name = name
	return nil
}

func (g *CustomizationGroup) setOptions(options []Option) error {
	if len(options) == 0 {
		return errs.NewValueIsRequiredError("options")
	}

	seen := make(map[kernel.UUID]struct{}, len(options))
	for _, option := range options {
		if err := option.Validate(); err != nil {
			return err
		}
		if _, ok := seen[option.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"options",
				fmt.Errorf("duplicate option %s", option.ID()),
			)
		}
		seen[option.ID()] = struct{}{}
	}

	g.options = make([]Option, len(options))
	copy(g.options, options)
	return nil
}
