package types

import "errors"

// ProductID identifies a product in the store API and the local cache.
type ProductID int

// UserID identifies a store account.
type UserID int

// Token is the opaque bearer credential returned by login.
type Token string

// String returns the string form of the token.
func (t Token) String() string { return string(t) }

var (
	// ErrNotLoggedIn is returned when an operation needs a session token and none is stored.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrNotFound is returned when a record is neither available remotely nor cached.
	ErrNotFound = errors.New("not found")
	// ErrInvalidQuantity is returned for cart quantities below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrNotInCart is returned when a cart operation targets a product with no cart line.
	ErrNotInCart = errors.New("product is not in the cart")
	// ErrInvalidTheme is returned for an unknown theme name.
	ErrInvalidTheme = errors.New("theme must be one of system, light, dark")
)
