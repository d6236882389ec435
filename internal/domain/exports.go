package domain

import (
	interfaces "marketplace/internal/domain/interfaces"
	types "marketplace/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ProductID       = types.ProductID
	UserID          = types.UserID
	Token           = types.Token
	Product         = types.Product
	Rating          = types.Rating
	SortKey         = types.SortKey
	Sort            = types.Sort
	ProductFilter   = types.ProductFilter
	CartItem        = types.CartItem
	CartLine        = types.CartLine
	CartSummary     = types.CartSummary
	Profile         = types.Profile
	ProfileName     = types.ProfileName
	Address         = types.Address
	Geolocation     = types.Geolocation
	Theme           = types.Theme
	Settings        = types.Settings
	RegisterRequest = types.RegisterRequest
	SessionStatus   = types.SessionStatus
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SessionStore    = interfaces.SessionStore
	SettingsStore   = interfaces.SettingsStore
	ProductStore    = interfaces.ProductStore
	CartStore       = interfaces.CartStore
	ProfileStore    = interfaces.ProfileStore
	StoreClient     = interfaces.StoreClient
	TokenProvider   = interfaces.TokenProvider
	AuthService     = interfaces.AuthService
	CatalogService  = interfaces.CatalogService
	CartService     = interfaces.CartService
	ProfileService  = interfaces.ProfileService
	SettingsService = interfaces.SettingsService
)

const (
	SortByName   = types.SortByName
	SortByPrice  = types.SortByPrice
	SortByRating = types.SortByRating

	ThemeSystem = types.ThemeSystem
	ThemeLight  = types.ThemeLight
	ThemeDark   = types.ThemeDark
)

var (
	ErrNotLoggedIn     = types.ErrNotLoggedIn
	ErrNotFound        = types.ErrNotFound
	ErrInvalidQuantity = types.ErrInvalidQuantity
	ErrNotInCart       = types.ErrNotInCart
	ErrInvalidTheme    = types.ErrInvalidTheme

	ParseSortKey    = types.ParseSortKey
	ParseTheme      = types.ParseTheme
	DefaultSettings = types.DefaultSettings
)
