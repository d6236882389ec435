package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"

	"marketplace/internal/domain"
)

// maxBody caps how much of a response we read.
const maxBody = 8 << 20

// BreakerSettings tunes the circuit breaker in front of the transport.
type BreakerSettings struct {
	// Failures is the number of consecutive failures that opens the breaker.
	Failures uint32
	// OpenFor is how long the breaker stays open before probing again.
	OpenFor time.Duration
}

// DefaultBreakerSettings returns the settings used when none are given.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{Failures: 5, OpenFor: 30 * time.Second}
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.HTTP = h }
}

// WithBreaker replaces the default breaker settings.
func WithBreaker(s BreakerSettings) Option {
	return func(c *Client) { c.breakerSettings = s }
}

// WithLogger sets the logger used for breaker state changes.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) { c.log = log }
}

// Client talks to the store API.
type Client struct {
	Base string
	HTTP *http.Client

	log             logrus.FieldLogger
	breakerSettings BreakerSettings
	breaker         *gobreaker.CircuitBreaker[reply]
}

// reply is a fully read response.
type reply struct {
	code int
	body []byte
}

// serverError marks responses that count against the breaker.
type serverError struct{ code int }

func (e serverError) Error() string { return "server error " + strconv.Itoa(e.code) }

// New returns a client for the API rooted at base.
func New(base string, opts ...Option) *Client {
	c := &Client{
		Base:            strings.TrimRight(base, "/"),
		HTTP:            http.DefaultClient,
		log:             logrus.StandardLogger(),
		breakerSettings: DefaultBreakerSettings(),
	}
	for _, opt := range opts {
		opt(c)
	}
	failures := c.breakerSettings.Failures
	if failures == 0 {
		failures = 1
	}
	c.breaker = gobreaker.NewCircuitBreaker[reply](gobreaker.Settings{
		Name:        "store-api",
		MaxRequests: 1,
		Timeout:     c.breakerSettings.OpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			// Our own cancellation says nothing about the server.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("circuit breaker state changed")
		},
	})
	return c
}

// Register creates an account and returns its id.
func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserID, error) {
	in := struct {
		ID int `json:"id"`
		domain.RegisterRequest
	}{RegisterRequest: req}
	var out struct {
		ID domain.UserID `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/users", "", in, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (domain.Token, error) {
	in := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{username, password}
	var out struct {
		Token domain.Token `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", in, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", errors.New("login response carried no token")
	}
	return out.Token, nil
}

// FetchProducts returns the full product list.
func (c *Client) FetchProducts(ctx context.Context, token domain.Token) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchProduct returns one product. An empty or null body is domain.ErrNotFound.
func (c *Client) FetchProduct(ctx context.Context, token domain.Token, id domain.ProductID) (domain.Product, error) {
	var out *domain.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+strconv.Itoa(int(id)), token, nil, &out); err != nil {
		return domain.Product{}, err
	}
	if out == nil {
		return domain.Product{}, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	return *out, nil
}

// FetchUser returns the profile of user id.
func (c *Client) FetchUser(ctx context.Context, token domain.Token, id domain.UserID) (domain.Profile, error) {
	var out *domain.Profile
	if err := c.do(ctx, http.MethodGet, "/users/"+strconv.Itoa(int(id)), token, nil, &out); err != nil {
		return domain.Profile{}, err
	}
	if out == nil {
		return domain.Profile{}, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return *out, nil
}

// do sends one request through the breaker and decodes a 2xx body into out.
// An empty body leaves out untouched.
func (c *Client) do(ctx context.Context, method, path string, token domain.Token, in, out any) error {
	var payload []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		payload = b
	}
	u := c.Base + path

	rep, err := c.breaker.Execute(func() (reply, error) {
		return c.roundTrip(ctx, method, u, token, payload)
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%s %s: %w", method, u, ErrUnavailable)
	case err != nil && rep.code == 0:
		return fmt.Errorf("%s %s: %w", method, u, err)
	}

	if rep.code/100 != 2 {
		return &StatusError{Method: method, URL: u, Code: rep.code, Message: errorMessage(rep.code, rep.body)}
	}
	if out == nil || len(bytes.TrimSpace(rep.body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(rep.body, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, u, err)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, u string, token domain.Token, payload []byte) (reply, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return reply{}, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token.String())
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return reply{}, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return reply{}, err
	}
	rep := reply{code: resp.StatusCode, body: b}
	if resp.StatusCode >= 500 {
		return rep, serverError{code: resp.StatusCode}
	}
	return rep, nil
}

var _ domain.StoreClient = (*Client)(nil)
