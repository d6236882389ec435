package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"marketplace/internal/domain"
)

// Service implements domain.CatalogService.
type Service struct {
	client   domain.StoreClient
	products domain.ProductStore
	tokens   domain.TokenProvider
	log      logrus.FieldLogger

	group singleflight.Group
}

// New constructs a catalog Service.
func New(
	client domain.StoreClient,
	products domain.ProductStore,
	tokens domain.TokenProvider,
	log logrus.FieldLogger,
) *Service {
	return &Service{client: client, products: products, tokens: tokens, log: log}
}

// refreshTimeout bounds a shared product refresh once it no longer follows
// the cancellation of the caller that started it.
const refreshTimeout = 30 * time.Second

// FetchProducts downloads the product list and upserts it into the cache.
// On failure the cache is left untouched. Concurrent callers share one
// request; each caller stops waiting when its own ctx is done.
func (s *Service) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	ch := s.group.DoChan("products", func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		products, err := s.client.FetchProducts(ctx, s.token())
		if err != nil {
			return nil, fmt.Errorf("fetch products: %w", err)
		}
		if err := s.products.UpsertProducts(ctx, products); err != nil {
			return nil, fmt.Errorf("cache products: %w", err)
		}
		s.log.WithField("count", len(products)).Info("product cache refreshed")
		return products, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.log.Debug("joined in-flight product refresh")
		}
		return res.Val.([]domain.Product), nil
	}
}

// FetchProduct downloads one product and caches it. When the request fails
// the cached copy is returned instead; without one the fetch error stands.
func (s *Service) FetchProduct(ctx context.Context, id domain.ProductID) (domain.Product, error) {
	p, fetchErr := s.client.FetchProduct(ctx, s.token(), id)
	if fetchErr == nil {
		if err := s.products.UpsertProducts(ctx, []domain.Product{p}); err != nil {
			return domain.Product{}, fmt.Errorf("cache product %d: %w", id, err)
		}
		return p, nil
	}

	cached, ok, err := s.products.Product(ctx, id)
	if err != nil {
		return domain.Product{}, errors.Join(fmt.Errorf("fetch product %d: %w", id, fetchErr), err)
	}
	if !ok {
		return domain.Product{}, fmt.Errorf("fetch product %d: %w", id, fetchErr)
	}
	s.log.WithError(fetchErr).WithField("product_id", id).Warn("serving cached product")
	return cached, nil
}

// Products queries the cache.
func (s *Service) Products(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return s.products.Products(ctx, filter)
}

// ProductsByIDs returns the cached products with the given ids.
func (s *Service) ProductsByIDs(ctx context.Context, ids []domain.ProductID) ([]domain.Product, error) {
	return s.products.ProductsByIDs(ctx, ids)
}

// Categories returns the distinct cached categories.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.products.Categories(ctx)
}

// token returns the stored token, or an empty one when it cannot be read.
func (s *Service) token() domain.Token {
	tok, err := s.tokens.Token()
	if err != nil && !errors.Is(err, domain.ErrNotLoggedIn) {
		s.log.WithError(err).Warn("session token unreadable; fetching without it")
	}
	return tok
}

// Compile-time assertion that Service implements domain.CatalogService.
var _ domain.CatalogService = (*Service)(nil)
