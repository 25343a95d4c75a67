package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/gophmedia/internal/models"
	"github.com/iudanet/gophmedia/internal/server"
	"github.com/iudanet/gophmedia/internal/server/config"
	"github.com/iudanet/gophmedia/internal/server/site"
	"github.com/iudanet/gophmedia/internal/server/storage"
	"github.com/iudanet/gophmedia/internal/server/storage/sqlite"
	"github.com/iudanet/gophmedia/internal/server/token"
	"github.com/iudanet/gophmedia/internal/server/track"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Show version and exit if requested
	if cfg.ShowVersion {
		printVersion()
		os.Exit(0)
	}

	level, _ := cfg.SlogLevel() // уже проверен в Validate
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.InfoContext(ctx, "starting gophmedia server",
		slog.String("version", Version),
		slog.Any("config", cfg))

	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer store.Close()

	current, err := loadSite(ctx, store)
	if err != nil {
		return err
	}
	if current == nil {
		logger.WarnContext(ctx, "site is not configured, waiting for POST /api/setup")
	} else {
		logger.InfoContext(ctx, "site loaded", slog.String("storage", current.StorageRoot))
	}

	srv := server.New(server.Options{
		Logger:  logger,
		Config:  cfg,
		Storage: store,
		State:   site.NewState(current),
		Codec:   token.NewCodec(cfg.AccessTTL, cfg.RefreshTTL),
		Tracks:  track.NewExtractor(cfg.FFmpegPath, cfg.TrackTimeout),
	})

	return srv.Run(ctx)
}

// loadSite returns nil on the first run
func loadSite(ctx context.Context, store storage.SiteStorage) (*models.Site, error) {
	current, err := store.GetSite(ctx)
	if errors.Is(err, storage.ErrSiteNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load site: %w", err)
	}
	return current, nil
}

func printVersion() {
	fmt.Printf("GophMedia Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
