package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSetup(ctx context.Context, args []string) error {
	c.io.Println("=== Server Setup ===")
	c.io.Println()

	username, err := c.inputOrArg(args, 0, "Admin username: ")
	if err != nil {
		return err
	}
	storageRoot, err := c.inputOrArg(args, 1, "Storage path on server: ")
	if err != nil {
		return err
	}

	var password string
	if c.hasPasswordSource() {
		password, err = c.getPassword("")
	} else {
		password, err = c.readNewPassword("Admin password: ")
	}
	if err != nil {
		return err
	}

	if err := c.authService.Setup(ctx, username, password, storageRoot); err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}

	c.io.Println("✓ Server configured!")
	c.io.Printf("Admin: %s\n", username)
	c.io.Printf("Storage: %s\n", storageRoot)
	c.io.Println()
	c.io.Println("Run 'gophmedia-client login' to start a session.")
	return nil
}
