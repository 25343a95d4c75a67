package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	if _, err := c.restore(ctx); err != nil {
		return err
	}

	dir := ""
	if len(args) > 0 {
		dir = args[0]
	}

	entries, err := c.media.List(ctx, dir)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		c.io.Println("Directory is empty.")
		return nil
	}

	for _, e := range entries {
		size := "-"
		name := e.Name
		if e.IsDir {
			name += "/"
		} else {
			size = humanize.IBytes(uint64(e.Size))
		}
		c.io.Printf("%-5s %10s  %s  %s\n", e.Type, size, time.Unix(e.Modified, 0).Format("2006-01-02 15:04"), name)
	}
	return nil
}

func (c *Cli) runCat(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: gophmedia-client cat <path>")
	}
	if _, err := c.restore(ctx); err != nil {
		return err
	}

	text, err := c.media.Cat(ctx, args[0])
	if err != nil {
		return err
	}
	return c.writeText(text)
}

func (c *Cli) runTrack(ctx context.Context, args []string) error {
	fs := newFlagSet("track")
	index := fs.Int("index", 0, "subtitle stream index")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: gophmedia-client track [--index N] <path>")
	}
	if _, err := c.restore(ctx); err != nil {
		return err
	}

	vtt, err := c.media.Track(ctx, fs.Arg(0), *index)
	if err != nil {
		return err
	}
	return c.writeText(vtt)
}

func (c *Cli) writeText(text string) error {
	if _, err := c.io.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if text != "" && !strings.HasSuffix(text, "\n") {
		c.io.Println()
	}
	return nil
}
