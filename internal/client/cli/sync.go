package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/iudanet/gophmedia/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context, args []string) error {
	fs := newFlagSet("sync")
	jobs := fs.Int("jobs", 2, "parallel downloads")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: gophmedia-client sync [--jobs N] <path> <dir>")
	}
	if *jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1")
	}
	if _, err := c.restore(ctx); err != nil {
		return err
	}

	c.io.Println("=== Synchronization ===")
	c.io.Println()

	result, err := c.syncService.Mirror(ctx, fs.Arg(0), fs.Arg(1), *jobs)
	if result != nil {
		c.io.Printf("Downloaded:  %d\n", result.Downloaded)
		c.io.Printf("Resumed:     %d\n", result.Resumed)
		c.io.Printf("Up to date:  %d\n", result.UpToDate)
		c.io.Printf("Received:    %s\n", humanize.IBytes(uint64(result.Bytes)))
		if result.Skipped > 0 {
			c.io.Printf("Skipped:     %d (unsafe names)\n", result.Skipped)
		}
		for _, p := range result.Failed {
			c.io.Printf("Failed:      %s\n", p)
		}
	}

	if err != nil {
		if errors.Is(err, sync.ErrPartial) {
			return fmt.Errorf("%w, run sync again to retry", err)
		}
		return fmt.Errorf("sync failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Synchronization completed")
	return nil
}
