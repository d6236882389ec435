package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"marketplace/internal/domain"
)

// Service implements domain.ProfileService.
type Service struct {
	client   domain.StoreClient
	profiles domain.ProfileStore
	cart     domain.CartStore
	auth     domain.AuthService
	log      logrus.FieldLogger
}

// New constructs a profile Service.
func New(
	client domain.StoreClient,
	profiles domain.ProfileStore,
	cart domain.CartStore,
	auth domain.AuthService,
	log logrus.FieldLogger,
) *Service {
	return &Service{client: client, profiles: profiles, cart: cart, auth: auth, log: log}
}

// Get fetches the profile of the signed-in user and caches it.
//
// The user id comes from the session token. If the request fails the cached
// profile is returned; with nothing cached the request error is returned.
func (s *Service) Get(ctx context.Context) (domain.Profile, error) {
	tok, err := s.auth.Token()
	if err != nil {
		return domain.Profile{}, err
	}
	id, err := s.auth.UserID()
	if err != nil {
		return domain.Profile{}, fmt.Errorf("%w: %v", domain.ErrNotLoggedIn, err)
	}

	p, fetchErr := s.client.FetchUser(ctx, tok, id)
	if fetchErr == nil {
		if err := s.profiles.SaveProfile(ctx, p); err != nil {
			return domain.Profile{}, fmt.Errorf("cache profile: %w", err)
		}
		return p, nil
	}

	cached, ok, err := s.profiles.Profile(ctx, id)
	if err != nil {
		return domain.Profile{}, errors.Join(fmt.Errorf("fetch profile: %w", fetchErr), err)
	}
	if !ok {
		return domain.Profile{}, fmt.Errorf("fetch profile: %w", fetchErr)
	}
	s.log.WithError(fetchErr).WithField("user_id", id).Warn("serving cached profile")
	return cached, nil
}

// Logout deletes the cached profile, empties the cart and clears the token,
// in that order. Every step runs even if an earlier one fails.
func (s *Service) Logout(ctx context.Context) error {
	var errs []error
	if id, err := s.auth.UserID(); err == nil {
		if err := s.profiles.DeleteProfile(ctx, id); err != nil {
			errs = append(errs, fmt.Errorf("delete profile: %w", err))
		}
	}
	if err := s.cart.DeleteAll(ctx); err != nil {
		errs = append(errs, fmt.Errorf("clear cart: %w", err))
	}
	if err := s.auth.Logout(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Compile-time assertion that Service implements domain.ProfileService.
var _ domain.ProfileService = (*Service)(nil)
