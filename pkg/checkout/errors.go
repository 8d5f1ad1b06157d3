package checkout

import "errors"

// Checkout errors.
var (
	// ErrNotAuthenticated is returned when PlaceOrder is called without a
	// valid session.
	ErrNotAuthenticated = errors.New("checkout: not authenticated")

	// ErrEmptyCart is returned when PlaceOrder is called on an empty cart.
	ErrEmptyCart = errors.New("checkout: cart is empty")

	// ErrCardRequired is returned when no card number is supplied.
	ErrCardRequired = errors.New("checkout: card number required")
)
