package cart

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrSelectionIsNotConstructed is returned when a Selection was not created
// through the NewSelection constructor.
var ErrSelectionIsNotConstructed = errors.New("Selection must be created via NewSelection constructor")

// Selection is a value object recording the caller's choice of one option
// within one customization group. It references catalog identifiers only;
// membership of the option in the group is validated by the pricing engine
// against the catalog, not here.
type Selection struct { //nolint:recvcheck //using for validation
	groupID  kernel.UUID
	optionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSelection creates a Selection with validation.
func NewSelection(groupID kernel.UUID, optionID kernel.UUID) (Selection, error) {
	selection := Selection{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		selection.setGroupID(groupID),
		selection.setOptionID(optionID),
	); err != nil {
		return Selection{}, err
	}

	return selection, nil
}

// Validate ensures the Selection was created through the constructor.
func (s Selection) Validate() error {
	return s.guard.Validate(ErrSelectionIsNotConstructed)
}

// GroupID returns the identifier of the customization group.
func (s Selection) GroupID() kernel.UUID {
	return s.groupID
}

// OptionID returns the identifier of the chosen option.
func (s Selection) OptionID() kernel.UUID {
	return s.optionID
}

func (s *Selection) setGroupID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("groupID", err)
	}
	s.groupID = id
	return nil
}

func (s *Selection) setOptionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("optionID", err)
	}
	s.optionID = id
	return nil
}
