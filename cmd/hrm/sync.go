// ABOUTME: CLI commands for Charm-based sync.
// ABOUTME: Supports link, unlink, status, push, and pull operations.
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vinprj/hrmconnect/internal/charm"
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync HRV data across devices",
	Long: `Sync HRV data across devices using Charm Cloud.

Your data is E2E encrypted with your SSH key before upload.
The server never sees your unencrypted HRV data.

GETTING STARTED:

  1. Link your device (creates/uses SSH key automatically):
     hrm sync link

  2. On other devices, link with the same Charm account:
     hrm sync link

  3. Push local sessions, pull on the other device:
     hrm sync push
     hrm sync pull

COMMANDS:

  link        Link this device to your Charm account
  unlink      Disconnect this device from Charm
  status      Show sync status and account info
  push        Mirror local sessions and tests into the cloud
  pull        Copy cloud records missing locally`,
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to Charm",
	Long: `Link this device to your Charm account.

If you don't have a Charm account, one will be created using your SSH key.
If you already have an account, you'll be prompted to link via charm.sh.

Example:
  hrm sync link`,
	RunE: func(cmd *cobra.Command, args []string) error {
		charmCmd := exec.Command("charm", "link")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}

		color.Green("\n✓ Device linked to Charm")
		fmt.Println("Run 'hrm sync push' to upload your sessions.")
		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Disconnect from Charm",
	Long: `Disconnect this device from Charm.

This does not delete your local HRV data.
You can link again later with 'hrm sync link'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		charmCmd := exec.Command("charm", "unlink")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to unlink: %w", err)
		}

		color.Green("✓ Device unlinked from Charm")
		fmt.Println("Your local HRV data is preserved.")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	Long: `Show current sync status including:
- Charm account info
- Cloud data counts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.GetClient()
		if err != nil {
			color.Yellow("Not linked to Charm: %v", err)
			fmt.Println("\nRun 'hrm sync link' to connect.")
			return nil
		}
		defer client.Close()

		id, err := client.ID()
		if err != nil {
			color.Yellow("Not linked to Charm")
			fmt.Println("\nRun 'hrm sync link' to connect.")
			return nil
		}

		fmt.Println("Charm ID:", id)
		fmt.Println()

		sessions, _ := client.ListSessions(0)
		tests, _ := client.ListMorningTests(0)

		color.Green("✓ Connected to Charm")
		fmt.Printf("  Cloud sessions:      %d\n", len(sessions))
		fmt.Printf("  Cloud morning tests: %d\n", len(tests))
		return nil
	},
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push local data to the cloud",
	Long: `Mirror all local sessions and morning tests into Charm KV.

Records are keyed by ID, so pushing is idempotent: existing cloud
records are overwritten with the local copy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.GetClient()
		if err != nil {
			return fmt.Errorf("failed to connect to Charm: %w", err)
		}
		defer client.Close()

		// One sync at the end instead of one per record.
		client.SetAutoSync(false)

		pushed, err := client.PushAll(repo)
		if err != nil {
			return fmt.Errorf("push failed after %d records: %w", pushed, err)
		}

		if err := client.Sync(); err != nil {
			return fmt.Errorf("cloud sync failed: %w", err)
		}

		color.Green("✓ Pushed %d records", pushed)
		return nil
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull cloud data missing locally",
	Long: `Copy cloud sessions and morning tests missing from the local
database. Existing local records are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.GetClient()
		if err != nil {
			return fmt.Errorf("failed to connect to Charm: %w", err)
		}
		defer client.Close()

		if err := client.Sync(); err != nil {
			return fmt.Errorf("cloud sync failed: %w", err)
		}

		pulled, err := client.PullAll(repo)
		if err != nil {
			return fmt.Errorf("pull failed after %d records: %w", pulled, err)
		}

		color.Green("✓ Pulled %d new records", pulled)
		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncUnlinkCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncPullCmd)
	rootCmd.AddCommand(syncCmd)
}
