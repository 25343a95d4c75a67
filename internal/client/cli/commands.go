package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/iudanet/gophmedia/internal/client/storage"
)

// Run выполняет команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "setup":
		return c.runSetup(ctx, args)
	case "login":
		return c.runLogin(ctx, args)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "passwd":
		return c.runPasswd(ctx)
	case "ls":
		return c.runList(ctx, args)
	case "cat":
		return c.runCat(ctx, args)
	case "track":
		return c.runTrack(ctx, args)
	case "get":
		return c.runGet(ctx, args)
	case "downloads":
		return c.runDownloads(ctx)
	case "sync":
		return c.runSync(ctx, args)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// restore загружает сохраненную сессию перед командами, которым нужен вход
func (c *Cli) restore(ctx context.Context) (*storage.SessionData, error) {
	return c.authService.Restore(ctx)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
