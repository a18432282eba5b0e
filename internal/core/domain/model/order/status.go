package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status is the fulfillment state of an order as reported by the fulfillment
// side. It is an externally owned enumeration: this domain stores and
// validates the value but never derives the next state itself, so there is no
// transition machine here.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status given to an order at checkout.
	Placed

	// Preparing indicates the restaurant is working on the order.
	Preparing

	// Ready indicates the order is ready for pickup by a driver.
	Ready

	// OnTheWay indicates the order is out for delivery.
	OnTheWay

	// Delivered indicates the order reached the customer.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Placed:    "placed",
		Preparing: "preparing",
		Ready:     "ready",
		OnTheWay:  "on-the-way",
		Delivered: "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:    "placed",
		Preparing: "preparing",
		Ready:     "ready",
		OnTheWay:  "on-the-way",
		Delivered: "delivered",
	}
}

// StatusFromString parses a status value supplied by an external system,
// e.g. "on-the-way". Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status is one of the valid values.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status, e.g. "on-the-way".
// Returns "unknown" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
