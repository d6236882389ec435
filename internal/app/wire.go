package app

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"marketplace/internal/api"
	"marketplace/internal/domain"
	authsvc "marketplace/internal/services/auth"
	cartsvc "marketplace/internal/services/cart"
	catalogsvc "marketplace/internal/services/catalog"
	profilesvc "marketplace/internal/services/profile"
	settingssvc "marketplace/internal/services/settings"
	"marketplace/internal/store"
	"marketplace/internal/store/sqlite"
)

// DatabaseFilename is the SQLite file inside the home directory.
const DatabaseFilename = "marketplace.db"

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Auth     domain.AuthService
	Catalog  domain.CatalogService
	Cart     domain.CartService
	Profile  domain.ProfileService
	Settings domain.SettingsService
	Log      logrus.FieldLogger

	db *sqlite.DB
}

// NewWire constructs the dependency graph from cfg. httpClient may be nil.
func NewWire(cfg Config, httpClient *http.Client, log logrus.FieldLogger) (*Wire, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, fmt.Errorf("create home %s: %w", cfg.Home, err)
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	// Local state
	db, err := sqlite.Open(filepath.Join(cfg.Home, DatabaseFilename))
	if err != nil {
		return nil, err
	}
	keys := store.NewKeyring(cfg.Home, cfg.Passphrase)
	sessions := store.NewSessionFileStore(cfg.Home, keys)
	prefs := store.NewSettingsFileStore(cfg.Home)

	// Store API client
	client := api.New(cfg.APIURL,
		api.WithHTTPClient(httpClient),
		api.WithLogger(log),
		api.WithBreaker(api.BreakerSettings{Failures: cfg.Breaker.Failures, OpenFor: cfg.Breaker.OpenFor}),
	)

	// Features
	auth := authsvc.New(client, sessions, log.WithField("service", "auth"))
	return &Wire{
		Auth:     auth,
		Catalog:  catalogsvc.New(client, db, auth, log.WithField("service", "catalog")),
		Cart:     cartsvc.New(db, db, log.WithField("service", "cart")),
		Profile:  profilesvc.New(client, db, db, auth, log.WithField("service", "profile")),
		Settings: settingssvc.New(prefs, log.WithField("service", "settings")),
		Log:      log,
		db:       db,
	}, nil
}

// Close releases the database.
func (w *Wire) Close() error {
	return w.db.Close()
}
