package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/baht-pos/internal/assets"
	"github.com/nikolayk812/baht-pos/internal/cli"
	"github.com/nikolayk812/baht-pos/internal/config"
	"github.com/nikolayk812/baht-pos/internal/domain"
	"github.com/nikolayk812/baht-pos/internal/port"
	"github.com/nikolayk812/baht-pos/internal/repository"
	"github.com/nikolayk812/baht-pos/internal/storefront"
	"go.uber.org/zap"
)

func main() {
	seed := flag.Bool("seed", false, "insert the bundled product listing into CATALOG_DATABASE_URL and exit")
	flag.Parse()

	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "newLogger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *seed {
		if err := seedCatalog(ctx, cfg, logger); err != nil {
			logger.Fatal("failed to seed catalog", zap.Error(err))
		}
		return
	}

	items, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}

	session := storefront.New(items,
		storefront.WithLogger(logger),
		storefront.WithSearchDebounce(cfg.SearchDebounce),
		storefront.WithViewportWidth(cfg.ViewportWidth),
	)
	defer session.Close()

	logger.Info("storefront session started",
		zap.Stringer("session_id", session.ID()),
		zap.Int("products", len(items)),
		zap.Int("categories", len(session.Categories())))

	if err := cli.New(session, os.Stdout, logger).Run(os.Stdin); err != nil {
		logger.Error("shell stopped", zap.Error(err))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.LogFormat == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	// stdout belongs to the shell
	zc.OutputPaths = []string{"stderr"}

	return zc.Build()
}

// loadCatalog reads the catalog once at startup.
func loadCatalog(ctx context.Context, cfg config.Config, logger *zap.Logger) ([]domain.CatalogItem, error) {
	var repo port.CatalogRepository

	switch {
	case cfg.CatalogDatabaseURL != "":
		pool, err := pgxpool.New(ctx, cfg.CatalogDatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		defer pool.Close()

		repo = repository.NewCatalog(pool)
		logger.Info("using postgres catalog")

	case cfg.CatalogFile != "":
		data, err := os.ReadFile(cfg.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("os.ReadFile: %w", err)
		}

		repo, err = repository.NewJSONCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("repository.NewJSONCatalog: %w", err)
		}
		logger.Info("using catalog file", zap.String("path", cfg.CatalogFile))

	default:
		var err error
		repo, err = repository.NewJSONCatalog(assets.Products)
		if err != nil {
			return nil, fmt.Errorf("repository.NewJSONCatalog: %w", err)
		}
	}

	items, err := repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.ListItems: %w", err)
	}

	return items, nil
}

func seedCatalog(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	if cfg.CatalogDatabaseURL == "" {
		return fmt.Errorf("CATALOG_DATABASE_URL is empty")
	}

	listing, err := repository.NewJSONCatalog(assets.Products)
	if err != nil {
		return fmt.Errorf("repository.NewJSONCatalog: %w", err)
	}

	items, err := listing.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("listing.ListItems: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.CatalogDatabaseURL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	if err := repository.NewCatalog(pool).AddItems(ctx, items); err != nil {
		return fmt.Errorf("repo.AddItems: %w", err)
	}

	logger.Info("catalog seeded", zap.Int("products", len(items)))
	return nil
}
