package interfaces

import (
	"context"

	domaintypes "marketplace/internal/domain/types"
)

// SessionStore keeps the session token encrypted at rest.
type SessionStore interface {
	SaveToken(token domaintypes.Token) error
	LoadToken() (domaintypes.Token, bool, error)
	ClearToken() error
}

// SettingsStore persists app preferences.
type SettingsStore interface {
	LoadSettings() (domaintypes.Settings, error)
	SaveSettings(settings domaintypes.Settings) error
}

// ProductStore is the local product cache.
type ProductStore interface {
	UpsertProducts(ctx context.Context, products []domaintypes.Product) error
	Product(ctx context.Context, id domaintypes.ProductID) (domaintypes.Product, bool, error)
	Products(ctx context.Context, filter domaintypes.ProductFilter) ([]domaintypes.Product, error)
	ProductsByIDs(ctx context.Context, ids []domaintypes.ProductID) ([]domaintypes.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

// CartStore holds one line per product id.
type CartStore interface {
	// AddItem inserts item, or adds its quantity to the existing line
	// while keeping that line's timestamp.
	AddItem(ctx context.Context, item domaintypes.CartItem) error
	Item(ctx context.Context, id domaintypes.ProductID) (domaintypes.CartItem, bool, error)
	Items(ctx context.Context) ([]domaintypes.CartItem, error)
	Count(ctx context.Context) (int, error)
	UpdateQuantity(ctx context.Context, id domaintypes.ProductID, quantity int) error
	DeleteItem(ctx context.Context, id domaintypes.ProductID) error
	DeleteAll(ctx context.Context) error

	// Changes delivers a signal after every committed cart write, including
	// writes from other processes sharing the database, until ctx is done.
	Changes(ctx context.Context) <-chan struct{}
}

// ProfileStore caches user profiles.
type ProfileStore interface {
	SaveProfile(ctx context.Context, profile domaintypes.Profile) error
	Profile(ctx context.Context, id domaintypes.UserID) (domaintypes.Profile, bool, error)
	DeleteProfile(ctx context.Context, id domaintypes.UserID) error
}
