package domain

import "errors"

var (
	// ErrNotFound indicates a referenced entity (menu item, cart line,
	// persisted key) does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart is returned when checkout is attempted with no lines.
	// No state changes when it is returned.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCatalogUnavailable means the menu catalog has not been loaded,
	// typically because the fetch failed. Recoverable via reload.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
