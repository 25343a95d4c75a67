package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/iudanet/gophmedia/internal/client/api"
	"github.com/iudanet/gophmedia/internal/client/media"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	fs := newFlagSet("get")
	restart := fs.Bool("restart", false, "discard the local copy and download again")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		return fmt.Errorf("usage: gophmedia-client get [--restart] <path> [dest]")
	}
	if _, err := c.restore(ctx); err != nil {
		return err
	}

	res, err := c.media.Get(ctx, fs.Arg(0), fs.Arg(1), *restart)
	if err != nil {
		if errors.Is(err, media.ErrForeignFile) || api.StatusCode(err) != 0 {
			return err
		}
		return fmt.Errorf("%w\nRun the same command again to resume", err)
	}

	switch {
	case res.AlreadyComplete:
		c.io.Printf("Already complete: %s (%s)\n", res.LocalPath, humanize.IBytes(uint64(res.Size())))
	case res.Offset > 0:
		c.io.Printf("✓ Resumed at %s, received %s\n", humanize.IBytes(uint64(res.Offset)), humanize.IBytes(uint64(res.Written)))
		c.io.Printf("Saved to: %s\n", res.LocalPath)
	default:
		if res.Restarted {
			c.io.Println("Server ignored the range request, the file was downloaded again.")
		}
		c.io.Printf("✓ Downloaded %s\n", humanize.IBytes(uint64(res.Written)))
		c.io.Printf("Saved to: %s\n", res.LocalPath)
	}
	return nil
}

func (c *Cli) runDownloads(ctx context.Context) error {
	records, err := c.media.Downloads(ctx)
	if err != nil {
		return fmt.Errorf("failed to read downloads: %w", err)
	}

	if len(records) == 0 {
		c.io.Println("No downloads yet.")
		return nil
	}

	c.io.Printf("Found %d download(s):\n", len(records))
	c.io.Println()
	for i, rec := range records {
		state := "partial"
		if rec.Complete {
			state = "complete"
		}
		total := "?"
		if rec.Total >= 0 {
			total = humanize.IBytes(uint64(rec.Total))
		}
		c.io.Printf("%d. %s\n", i+1, rec.RemotePath)
		c.io.Printf("   File:    %s\n", rec.LocalPath)
		c.io.Printf("   State:   %s, %s of %s\n", state, humanize.IBytes(uint64(rec.Size)), total)
		c.io.Printf("   Updated: %s\n", humanize.Time(time.Unix(rec.UpdatedAt, 0)))
	}
	return nil
}
