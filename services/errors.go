package services

import (
	"errors"
)

// Failure kinds surfaced by the dealership core. Controllers map these to
// HTTP statuses; nothing is swallowed below this boundary.
var (
	// Not-found
	ErrMotorcycleNotFound = errors.New("motorcycle not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrContainerNotFound  = errors.New("container not found")
	ErrSaleNotFound       = errors.New("sale not found")

	// Validation (rejected before any store interaction)
	ErrInvalidSalePrice            = errors.New("sale price must be a positive number")
	ErrInvalidRegistrationDuration = errors.New("registration duration must be 2 years or 10 years")
	ErrMissingCustomerFields       = errors.New("missing required customer fields")

	// Conflict
	ErrMotorcycleNotAvailable = errors.New("motorcycle is no longer available")
	ErrMotorcycleAlreadySold  = errors.New("motorcycle has already been sold")
	ErrNotRegistrable         = errors.New("registration number can only be set after sale")
)

// IsNotFound reports whether err is one of the not-found failures.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMotorcycleNotFound) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrContainerNotFound) ||
		errors.Is(err, ErrSaleNotFound)
}

// IsValidation reports whether err was rejected locally, before any mutation.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidSalePrice) ||
		errors.Is(err, ErrInvalidRegistrationDuration) ||
		errors.Is(err, ErrMissingCustomerFields)
}

// IsConflict reports whether err means the requested transition is illegal
// for the entity's current state, including a concurrent double-sale.
func IsConflict(err error) bool {
	return errors.Is(err, ErrMotorcycleNotAvailable) ||
		errors.Is(err, ErrMotorcycleAlreadySold) ||
		errors.Is(err, ErrNotRegistrable)
}
