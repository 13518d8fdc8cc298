package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"laptek/internal/infrastructure/catalog"
	"laptek/internal/infrastructure/firebase"
	"laptek/pkg/config"
	"laptek/pkg/logger"
)

var (
	catalogPath string
	timeout     time.Duration
)

// rootCmd is the back-office maintenance CLI.
var rootCmd = &cobra.Command{
	Use:   "laptekctl",
	Short: "Laptek store maintenance",
	Long: `Maintenance commands for the Laptek store backend.

Available commands:
  seed-products - Write the demo product catalog to Firestore
  init-db       - Store the default categories and marketplace settings
  make-admin    - Grant or revoke admin access for a user`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Store catalog YAML (default: built-in)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Operation timeout")

	rootCmd.AddCommand(seedProductsCmd)
	rootCmd.AddCommand(initDBCmd)
	rootCmd.AddCommand(makeAdminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// env is what every command needs: configuration, Firebase and the store catalog.
type env struct {
	cfg     *config.Config
	clients *firebase.Clients
	store   *catalog.Store
}

func setup(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	path := catalogPath
	if path == "" {
		path = cfg.StoreCatalogPath
	}
	store, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load store catalog: %w", err)
	}

	clients, err := firebase.NewClients(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, clients: clients, store: store}, nil
}

func (e *env) Close() {
	e.clients.Close()
	logger.Sync()
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}
