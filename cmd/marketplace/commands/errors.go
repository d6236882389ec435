package commands

import (
	"context"
	"errors"

	"marketplace/internal/api"
	"marketplace/internal/domain"
	"marketplace/internal/services/auth"
	"marketplace/internal/store"
)

// Describe turns an error into the one-line message shown to the user.
func Describe(err error) string {
	var (
		ve *auth.ValidationError
		se *api.StatusError
	)
	switch {
	case errors.As(err, &ve):
		return ve.Error()
	case errors.Is(err, domain.ErrNotLoggedIn):
		return "not logged in; run `marketplace login` first"
	case errors.Is(err, store.ErrUndecryptable):
		return "stored session cannot be decrypted; check the passphrase or log in again"
	case errors.Is(err, api.ErrUnavailable):
		return "store API is unavailable right now; try again later"
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	case errors.As(err, &se):
		return se.Message
	default:
		return err.Error()
	}
}
