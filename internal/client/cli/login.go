package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/gophmedia/internal/models"
)

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.inputOrArg(args, 0, "Username: ")
	if err != nil {
		return err
	}

	password, err := c.getPassword("Password: ")
	if err != nil {
		return err
	}

	c.io.Println("Authenticating...")

	session, err := c.authService.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s (%s)\n", session.Username, models.Permission(session.Permission))
	if session.RefreshExpiresAt > 0 {
		c.io.Printf("Session valid until: %s\n", time.Unix(session.RefreshExpiresAt, 0).Format(time.RFC3339))
	}
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	if err := c.authService.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session has been deleted.")
	return nil
}

func (c *Cli) runPasswd(ctx context.Context) error {
	c.io.Println("=== Change Password ===")
	c.io.Println()

	oldPassword, err := c.io.ReadPassword("Current password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	newPassword, err := c.readNewPassword("New password: ")
	if err != nil {
		return err
	}

	if err := c.authService.ChangePassword(ctx, oldPassword, newPassword); err != nil {
		return err
	}

	c.io.Println("✓ Password changed!")
	c.io.Println("All sessions have ended, run 'gophmedia-client login' again.")
	return nil
}
