package interfaces

import (
	"context"

	domaintypes "marketplace/internal/domain/types"
)

// StoreClient is how we talk to the remote store API, all with context.
type StoreClient interface {
	Register(ctx context.Context, req domaintypes.RegisterRequest) (domaintypes.UserID, error)
	Login(ctx context.Context, username, password string) (domaintypes.Token, error)

	FetchProducts(ctx context.Context, token domaintypes.Token) ([]domaintypes.Product, error)
	FetchProduct(
		ctx context.Context,
		token domaintypes.Token,
		id domaintypes.ProductID,
	) (domaintypes.Product, error)

	FetchUser(
		ctx context.Context,
		token domaintypes.Token,
		id domaintypes.UserID,
	) (domaintypes.Profile, error)
}
