package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"marketplace/internal/app"
	"marketplace/internal/logging"
	"marketplace/internal/money"
)

var (
	home       string
	apiURL     string
	timeout    time.Duration
	logLevel   string
	output     string
	passphrase string
	envFile    string
	currency   string

	cfg    app.Config
	wire   *app.Wire
	prices money.Currency
)

// Execute runs the CLI with os.Args.
func Execute() error {
	defer closeWire()
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "marketplace",
		Short:         "Fake store client: catalog, cart and profile",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = app.LoadConfig(envFile)
			if err != nil {
				return err
			}
			applyFlags(cmd)

			if err := checkOutput(output); err != nil {
				return err
			}
			c, ok := money.Parse(cfg.Currency)
			if !ok {
				return fmt.Errorf("unsupported currency %q (use USD or IDR)", cfg.Currency)
			}
			prices = c

			log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			wire, err = app.NewWire(cfg, nil, log)
			return err
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&home, "home", "", "state dir (default ~/.marketplace)")
	flags.StringVar(&apiURL, "api", "", "store API base URL (default https://fakestoreapi.com)")
	flags.DurationVar(&timeout, "timeout", 0, "per-command deadline (default 15s)")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVarP(&output, "output", "o", "text", "output format: text, json, yaml")
	flags.StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the session token")
	flags.StringVar(&envFile, "env-file", ".env", "optional dotenv file")
	flags.StringVar(&currency, "currency", "", "price currency: USD or IDR")

	root.AddCommand(
		registerCmd(),
		loginCmd(),
		logoutCmd(),
		whoamiCmd(),
		productsCmd(),
		cartCmd(),
		profileCmd(),
		settingsCmd(),
	)
	return root
}

func closeWire() {
	if wire == nil {
		return
	}
	_ = wire.Close()
	wire = nil
}

// applyFlags lets explicitly set flags override the environment.
func applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("home") {
		cfg.Home = home
	}
	if flags.Changed("api") {
		cfg.APIURL = apiURL
	}
	if flags.Changed("timeout") {
		cfg.Timeout = timeout
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("passphrase") {
		cfg.Passphrase = passphrase
	}
	if flags.Changed("currency") {
		cfg.Currency = currency
	}
}

// commandContext bounds a command by the configured timeout.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, cfg.Timeout)
}
