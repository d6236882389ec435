package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"marketplace/internal/crypto"
	"marketplace/internal/domain"
)

// Service implements domain.AuthService.
//
// It owns the session token: Login stores it, Token and UserID read it back
// for the other features, and Logout removes it.
type Service struct {
	client   domain.StoreClient
	sessions domain.SessionStore
	log      logrus.FieldLogger
}

// New constructs an auth Service.
func New(client domain.StoreClient, sessions domain.SessionStore, log logrus.FieldLogger) *Service {
	return &Service{client: client, sessions: sessions, log: log}
}

// Register validates the sign-up form and creates the account remotely.
//
// Validation runs in form order: username, email, password length, then the
// confirmation. No request is sent unless all of them pass.
func (s *Service) Register(
	ctx context.Context,
	username, email, password, confirm string,
) (domain.UserID, error) {
	if err := ValidateRegistration(username, email, password, confirm); err != nil {
		return 0, err
	}
	id, err := s.client.Register(ctx, domain.RegisterRequest{
		Username: strings.TrimSpace(username),
		Email:    email,
		Password: password,
	})
	if err != nil {
		return 0, fmt.Errorf("register: %w", err)
	}
	s.log.WithFields(logrus.Fields{"user_id": id, "username": username}).Info("registered account")
	return id, nil
}

// Login exchanges credentials for a token and stores it encrypted.
// A token that cannot be stored fails the login.
func (s *Service) Login(ctx context.Context, username, password string) (domain.Token, error) {
	if err := ValidateLogin(username, password); err != nil {
		return "", err
	}
	tok, err := s.client.Login(ctx, strings.TrimSpace(username), password)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if err := s.sessions.SaveToken(tok); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	s.log.WithField("username", username).Info("logged in")
	return tok, nil
}

// Token returns the stored token, or domain.ErrNotLoggedIn when there is none.
func (s *Service) Token() (domain.Token, error) {
	tok, ok, err := s.sessions.LoadToken()
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if !ok || tok == "" {
		return "", domain.ErrNotLoggedIn
	}
	return tok, nil
}

// UserID returns the user id carried in the token's "sub" claim.
func (s *Service) UserID() (domain.UserID, error) {
	tok, err := s.Token()
	if err != nil {
		return 0, err
	}
	claims, err := parseClaims(tok)
	if err != nil {
		return 0, err
	}
	return subject(claims)
}

// Status summarises the stored session. A missing session is not an error.
func (s *Service) Status() (domain.SessionStatus, error) {
	tok, err := s.Token()
	if errors.Is(err, domain.ErrNotLoggedIn) {
		return domain.SessionStatus{}, nil
	}
	if err != nil {
		return domain.SessionStatus{}, err
	}
	st := domain.SessionStatus{LoggedIn: true, Fingerprint: crypto.Fingerprint([]byte(tok))}
	if claims, err := parseClaims(tok); err == nil {
		st.UserID, _ = subject(claims)
		st.Username, _ = claims["user"].(string)
	}
	return st, nil
}

// Logout removes the stored token. It is safe to call when logged out.
func (s *Service) Logout(context.Context) error {
	if err := s.sessions.ClearToken(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.log.Info("logged out")
	return nil
}

// parseClaims reads the token payload. The signature cannot be checked on
// the client; the server does that on every request.
func parseClaims(tok domain.Token) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok.String(), claims); err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}
	return claims, nil
}

func subject(claims jwt.MapClaims) (domain.UserID, error) {
	switch v := claims["sub"].(type) {
	case float64:
		return domain.UserID(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("session token subject %q is not a user id", v)
		}
		return domain.UserID(n), nil
	default:
		return 0, errors.New("session token has no subject")
	}
}

// Compile-time assertion that Service implements domain.AuthService.
var _ domain.AuthService = (*Service)(nil)
