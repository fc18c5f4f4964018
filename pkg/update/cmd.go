package update

import (
	"context"
	"errors"
	"fmt"

	Z "github.com/rwxrob/bonzai/z"
	"github.com/rwxrob/help"

	"github.com/arjungandhi/datepick/pkg/version"
)

// Cmd is the update command
var Cmd = &Z.Cmd{
	Name:     "update",
	Summary:  "check for a new datepick release and install it",
	Usage:    "update [--check]",
	Commands: []*Z.Cmd{help.Cmd},
	Call: func(cmd *Z.Cmd, args ...string) error {
		checkOnly := false
		for _, arg := range args {
			if arg == "--check" || arg == "-c" {
				checkOnly = true
			}
		}

		ctx := context.Background()
		fmt.Printf("Current version: %s\n", version.Version)

		available, latest, err := CheckForUpdate(ctx)
		if errors.Is(err, ErrDevBuild) {
			fmt.Println("Development version detected. Cannot check for updates.")
			fmt.Printf("Please use a release build or manually check: https://github.com/%s/%s/releases\n", owner, repo)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to check for updates: %w", err)
		}

		if !available {
			fmt.Printf("✅ You are running the latest version (%s)\n", version.Version)
			return nil
		}

		fmt.Printf("🆕 New version available: %s (current: %s)\n", latest.Version, version.Version)
		fmt.Printf("📝 Release notes: %s\n", latest.URL)
		if latest.Notes != "" {
			fmt.Printf("\nWhat's new:\n%s\n\n", latest.Notes)
		}
		if checkOnly {
			return nil
		}

		fmt.Println("Downloading and installing update...")
		if err := UpdateBinary(ctx); err != nil {
			return fmt.Errorf("failed to update binary: %w", err)
		}

		fmt.Printf("Successfully updated to version %s!\n", latest.Version)
		fmt.Println("Run 'datepick version' to verify the update.")
		return nil
	},
}
