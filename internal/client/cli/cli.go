package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iudanet/gophmedia/internal/client/auth"
	"github.com/iudanet/gophmedia/internal/client/iocli"
	"github.com/iudanet/gophmedia/internal/client/media"
	"github.com/iudanet/gophmedia/internal/client/sync"
)

// PasswordEnv is read before any other password source
const PasswordEnv = "GOPHMEDIA_PASSWORD"

// ErrUnknownCommand is returned by Run for an unsupported command
var ErrUnknownCommand = errors.New("unknown command")

// Passwords describes non-interactive password sources
type Passwords struct {
	FromFile string
}

type Cli struct {
	io          iocli.IO
	authService auth.Service
	media       media.Service
	syncService sync.Service
	getenv      func(string) string
	passwords   Passwords
}

func New(terminal iocli.IO, authService auth.Service, mediaService media.Service, syncService sync.Service, passwords Passwords) *Cli {
	return &Cli{
		io:          terminal,
		authService: authService,
		media:       mediaService,
		syncService: syncService,
		passwords:   passwords,
		getenv:      os.Getenv,
	}
}

// getPassword retrieves the password from various sources with priority:
// 1. Environment variable GOPHMEDIA_PASSWORD
// 2. File given by --password-file
// 3. Interactive prompt (fallback)
func (c *Cli) getPassword(prompt string) (string, error) {
	// Priority 1: Environment variable
	if c.getenv != nil {
		if envPassword := c.getenv(PasswordEnv); envPassword != "" {
			return envPassword, nil
		}
	}

	// Priority 2: File
	if c.passwords.FromFile != "" {
		content, err := os.ReadFile(c.passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	// Priority 3: Interactive prompt
	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}

// hasPasswordSource reports whether the password comes from env or file
func (c *Cli) hasPasswordSource() bool {
	if c.getenv != nil && c.getenv(PasswordEnv) != "" {
		return true
	}
	return c.passwords.FromFile != ""
}

// readNewPassword asks twice so that a typo does not lock the user out
func (c *Cli) readNewPassword(prompt string) (string, error) {
	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	confirm, err := c.io.ReadPassword("Repeat password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password != confirm {
		return "", fmt.Errorf("passwords do not match")
	}
	return password, nil
}

// inputOrArg returns args[i] or asks for it
func (c *Cli) inputOrArg(args []string, i int, prompt string) (string, error) {
	if i < len(args) && args[i] != "" {
		return args[i], nil
	}
	value, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if value == "" {
		return "", fmt.Errorf("%s cannot be empty", strings.TrimSuffix(strings.TrimSpace(prompt), ":"))
	}
	return value, nil
}

func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, "GophMedia Client")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  gophmedia-client [OPTIONS] COMMAND [ARGS]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --version              Show version information")
	fmt.Fprintln(w, "  --server URL           Server URL (default: http://localhost:8080)")
	fmt.Fprintln(w, "  --db PATH              Path to local database (default: ~/.gophmedia/client.db)")
	fmt.Fprintln(w, "  --password-file PATH   Path to file containing the password")
	fmt.Fprintln(w, "  --log-level LEVEL      debug, info, warn or error (default: warn)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Password Priority (highest to lowest):")
	fmt.Fprintln(w, "  1. GOPHMEDIA_PASSWORD environment variable")
	fmt.Fprintln(w, "  2. --password-file (file path)")
	fmt.Fprintln(w, "  3. Interactive prompt (fallback)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  setup [username] [storage]      Configure a fresh server")
	fmt.Fprintln(w, "  login [username]                Login to server")
	fmt.Fprintln(w, "  logout                          Logout from server")
	fmt.Fprintln(w, "  status                          Show session and server status")
	fmt.Fprintln(w, "  passwd                          Change password")
	fmt.Fprintln(w, "  ls [path]                       List a directory")
	fmt.Fprintln(w, "  cat <path>                      Print a text file")
	fmt.Fprintln(w, "  track [--index N] <path>        Print a subtitle track as WebVTT")
	fmt.Fprintln(w, "  get [--restart] <path> [dest]   Download a file, resuming a partial one")
	fmt.Fprintln(w, "  downloads                       Show known downloads")
	fmt.Fprintln(w, "  sync [--jobs N] <path> <dir>    Mirror a remote directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  gophmedia-client --server https://media.example.com login alice")
	fmt.Fprintln(w, "  gophmedia-client ls alice/movies")
	fmt.Fprintln(w, "  gophmedia-client get 'alice/movies/clip one.mp4' ~/Videos")
	fmt.Fprintln(w, "  gophmedia-client sync --jobs 4 alice/music ~/Music")
}
