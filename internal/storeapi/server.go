package storeapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"marketplace/internal/domain"
)

// Options configures a Server.
type Options struct {
	// Secret signs login tokens.
	Secret []byte
	// RatePerSecond and Burst bound requests per remote host. Zero disables limiting.
	RatePerSecond float64
	Burst         int
	Logger        logrus.FieldLogger
	// Now is the clock used for token issue times.
	Now func() time.Time
}

// Server holds the in-memory catalog and accounts.
type Server struct {
	opts Options
	log  logrus.FieldLogger

	mu       sync.RWMutex
	products []domain.Product
	accounts map[string]account
	nextID   domain.UserID
}

// New returns a server seeded with demo products and accounts.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if len(opts.Secret) == 0 {
		opts.Secret = []byte("storeapi-dev-secret")
	}
	s := &Server{
		opts:     opts,
		log:      opts.Logger,
		products: seedProducts(),
		accounts: seedAccounts(),
	}
	for _, a := range s.accounts {
		if a.profile.ID >= s.nextID {
			s.nextID = a.profile.ID + 1
		}
	}
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.accessLog)
	if s.opts.RatePerSecond > 0 {
		r.Use(newRateLimiter(s.opts.RatePerSecond, max(s.opts.Burst, 1), s.log).handler)
	}

	r.Post("/users", s.register)
	r.Get("/users/{id}", s.user)
	r.Post("/auth/login", s.login)
	r.Get("/products", s.listProducts)
	r.Get("/products/{id}", s.product)
	return r
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "username and password are required"})
		return
	}

	s.mu.Lock()
	if _, taken := s.accounts[req.Username]; taken {
		s.mu.Unlock()
		writeJSON(w, http.StatusConflict, map[string]string{"message": "username already exists"})
		return
	}
	id := s.nextID
	s.nextID++
	s.accounts[req.Username] = account{
		password: req.Password,
		profile:  domain.Profile{ID: id, Username: req.Username, Email: req.Email},
	}
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"user_id": id, "username": req.Username}).Info("registered account")
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "username and password are not provided in JSON format"})
		return
	}
	s.mu.RLock()
	acct, ok := s.accounts[req.Username]
	s.mu.RUnlock()
	if !ok || acct.password != req.Password {
		http.Error(w, "username or password is incorrect", http.StatusUnauthorized)
		return
	}

	tok, err := s.issueToken(acct.profile)
	if err != nil {
		s.log.WithError(err).Error("sign token")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "could not issue token"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"token": tok})
}

func (s *Server) issueToken(p domain.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub":  int(p.ID),
		"user": p.Username,
		"iat":  s.opts.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.opts.Secret)
}

func (s *Server) listProducts(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	out := append([]domain.Product(nil), s.products...)
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) product(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "product id should be provided"})
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if int(p.ID) == id {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	// Unknown ids answer 200 with an empty body.
	w.WriteHeader(http.StatusOK)
}

func (s *Server) user(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "user id should be provided"})
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if int(a.profile.ID) == id {
			writeJSON(w, http.StatusOK, a.profile)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "user not found"})
}

// SetProducts replaces the catalog.
func (s *Server) SetProducts(ps []domain.Product) {
	s.mu.Lock()
	s.products = append([]domain.Product(nil), ps...)
	s.mu.Unlock()
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start).String(),
			"request_id": r.Header.Get("X-Request-ID"),
		}).Info("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Debug("write response")
	}
}
