// Package config loads server settings from flags, environment and an
// optional .env file. Precedence: flag > environment > .env > default.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "GOPHMEDIA_"

// Config holds server runtime settings
type Config struct {
	Addr            string
	DBPath          string
	LogLevel        string
	FFmpegPath      string
	EnvFile         string
	AccessTTL       time.Duration
	RefreshTTL      time.Duration
	TrackTimeout    time.Duration
	LoginWindow     time.Duration
	ShutdownTimeout time.Duration
	TextMaxBytes    int64
	ChunkSize       int
	LoginRate       int
	BcryptCost      int
	TrustProxy      bool
	ShowVersion     bool
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Addr:            ":8080",
		DBPath:          "gophmedia.db",
		LogLevel:        "info",
		FFmpegPath:      "ffmpeg",
		EnvFile:         ".env",
		AccessTTL:       30 * time.Minute,
		RefreshTTL:      7 * 24 * time.Hour,
		TrackTimeout:    30 * time.Second,
		LoginWindow:     time.Minute,
		ShutdownTimeout: 10 * time.Second,
		TextMaxBytes:    10 << 20,
		ChunkSize:       64 * 1024,
		LoginRate:       10,
		BcryptCost:      10,
	}
}

// Load parses args (without the program name). Environment variables named
// GOPHMEDIA_<FLAG> override defaults, the .env file fills variables that are
// not already set.
func Load(args []string) (*Config, error) {
	envFile := lookupEnvFile(args)
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := Default()
	cfg.EnvFile = envFile

	fs := flag.NewFlagSet("gophmedia-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to SQLite database")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.StringVar(&cfg.FFmpegPath, "ffmpeg", cfg.FFmpegPath, "ffmpeg binary used for track extraction")
	fs.StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "dotenv file with GOPHMEDIA_* variables")
	fs.DurationVar(&cfg.AccessTTL, "access-ttl", cfg.AccessTTL, "access token lifetime")
	fs.DurationVar(&cfg.RefreshTTL, "refresh-ttl", cfg.RefreshTTL, "refresh token lifetime")
	fs.DurationVar(&cfg.TrackTimeout, "track-timeout", cfg.TrackTimeout, "ffmpeg run limit")
	fs.DurationVar(&cfg.LoginWindow, "login-window", cfg.LoginWindow, "login rate limit window")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown limit")
	fs.Int64Var(&cfg.TextMaxBytes, "text-max-bytes", cfg.TextMaxBytes, "largest file served by the text endpoint")
	fs.IntVar(&cfg.ChunkSize, "chunk-size", cfg.ChunkSize, "stream copy buffer in bytes")
	fs.IntVar(&cfg.LoginRate, "login-rate", cfg.LoginRate, "login attempts per window and IP")
	fs.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "bcrypt cost for new password hashes")
	fs.BoolVar(&cfg.TrustProxy, "trust-proxy", cfg.TrustProxy, "take client IP from X-Forwarded-For")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "show version information")

	// переменные окружения становятся значениями по умолчанию для флагов
	var envErr error
	fs.VisitAll(func(f *flag.Flag) {
		if envErr != nil {
			return
		}
		if v, ok := os.LookupEnv(EnvName(f.Name)); ok {
			if err := f.Value.Set(v); err != nil {
				envErr = fmt.Errorf("invalid %s=%q: %w", EnvName(f.Name), v, err)
			}
		}
	})
	if envErr != nil {
		return nil, envErr
	}

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// EnvName maps a flag name to its environment variable
func EnvName(flagName string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// Validate checks value ranges
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return errors.New("addr must not be empty")
	case c.DBPath == "":
		return errors.New("db path must not be empty")
	case c.AccessTTL <= 0 || c.RefreshTTL <= 0:
		return errors.New("token lifetimes must be positive")
	case c.AccessTTL > c.RefreshTTL:
		return errors.New("access ttl must not exceed refresh ttl")
	case c.ChunkSize < 512:
		return fmt.Errorf("chunk size %d is too small", c.ChunkSize)
	case c.TextMaxBytes <= 0:
		return errors.New("text max bytes must be positive")
	case c.LoginRate <= 0 || c.LoginWindow <= 0:
		return errors.New("login rate limit must be positive")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts LogLevel for slog handlers
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}

// lookupEnvFile finds -env-file in args before flags are parsed, because the
// file must be loaded before environment defaults are applied.
func lookupEnvFile(args []string) string {
	name := os.Getenv(EnvName("env-file"))
	if name == "" {
		name = Default().EnvFile
	}
	for i, a := range args {
		a = strings.TrimLeft(a, "-")
		if v, ok := strings.CutPrefix(a, "env-file="); ok {
			return v
		}
		if a == "env-file" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return name
}

// LogValue implements slog.LogValuer; Config carries no secrets
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", c.Addr),
		slog.String("db", c.DBPath),
		slog.String("log_level", c.LogLevel),
		slog.Duration("access_ttl", c.AccessTTL),
		slog.Duration("refresh_ttl", c.RefreshTTL),
		slog.Int("chunk_size", c.ChunkSize),
		slog.Bool("trust_proxy", c.TrustProxy),
	)
}
