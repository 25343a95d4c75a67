package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/iudanet/gophmedia/internal/client/api"
	"github.com/iudanet/gophmedia/internal/client/auth"
	"github.com/iudanet/gophmedia/internal/client/cli"
	"github.com/iudanet/gophmedia/internal/client/iocli"
	"github.com/iudanet/gophmedia/internal/client/media"
	"github.com/iudanet/gophmedia/internal/client/storage/boltdb"
	"github.com/iudanet/gophmedia/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", defaultDBPath(), "Path to local database")
	passwordFile := flag.String("password-file", "", "Path to file containing the password")
	logLevel := flag.String("log-level", "warn", "debug, info, warn or error")

	flag.Usage = func() { cli.PrintUsage(os.Stderr) }
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		return 0
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(os.Stderr)
		return 1
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q\n", *logLevel)
		return 1
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Ctrl+C прерывает загрузку, частичный файл остается для докачки
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	// Создаем API клиент
	apiClient, err := api.NewClient(*serverURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	authService := auth.NewService(apiClient, boltStorage, apiClient.BaseURL(), logger)
	apiClient.OnRefresh(authService.SaveRefreshed)
	mediaService := media.NewService(apiClient, boltStorage, logger)
	syncService := sync.NewService(mediaService, logger)

	app := cli.New(iocli.NewStdio(), authService, mediaService, syncService, cli.Passwords{FromFile: *passwordFile})

	// Выполняем команду
	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUnknownCommand) {
			cli.PrintUsage(os.Stderr)
		}
		return 1
	}
	return 0
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "gophmedia-client.db"
	}
	return filepath.Join(home, ".gophmedia", "client.db")
}

func printVersion() {
	fmt.Printf("GophMedia Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
