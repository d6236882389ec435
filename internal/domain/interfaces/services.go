package interfaces

import (
	"context"

	domaintypes "marketplace/internal/domain/types"
)

// TokenProvider exposes the current session to features that call the API.
type TokenProvider interface {
	Token() (domaintypes.Token, error)
	UserID() (domaintypes.UserID, error)
}

// AuthService signs users up, in and out.
type AuthService interface {
	TokenProvider
	Register(ctx context.Context, username, email, password, confirm string) (domaintypes.UserID, error)
	Login(ctx context.Context, username, password string) (domaintypes.Token, error)
	Status() (domaintypes.SessionStatus, error)
	Logout(ctx context.Context) error
}

// CatalogService keeps the product cache fresh and queries it.
type CatalogService interface {
	FetchProducts(ctx context.Context) ([]domaintypes.Product, error)
	FetchProduct(ctx context.Context, id domaintypes.ProductID) (domaintypes.Product, error)
	Products(ctx context.Context, filter domaintypes.ProductFilter) ([]domaintypes.Product, error)
	ProductsByIDs(ctx context.Context, ids []domaintypes.ProductID) ([]domaintypes.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

// CartService edits the local shopping cart.
type CartService interface {
	Add(ctx context.Context, id domaintypes.ProductID, quantity int) error
	Items(ctx context.Context) ([]domaintypes.CartItem, error)
	Count(ctx context.Context) (int, error)
	SetQuantity(ctx context.Context, id domaintypes.ProductID, quantity int) error
	Increment(ctx context.Context, id domaintypes.ProductID) error
	Decrement(ctx context.Context, id domaintypes.ProductID) error
	Remove(ctx context.Context, id domaintypes.ProductID) error
	Clear(ctx context.Context) error
	Summary(ctx context.Context) (domaintypes.CartSummary, error)
	Watch(ctx context.Context) <-chan domaintypes.CartSummary
}

// ProfileService loads the signed-in profile and tears the session down.
type ProfileService interface {
	Get(ctx context.Context) (domaintypes.Profile, error)
	Logout(ctx context.Context) error
}

// SettingsService reads and updates preferences.
type SettingsService interface {
	Get() (domaintypes.Settings, error)
	SetTheme(theme domaintypes.Theme) (domaintypes.Settings, error)
	SetDynamicColor(enabled bool) (domaintypes.Settings, error)
}
