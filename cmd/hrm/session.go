// ABOUTME: CLI commands for listing, showing, and deleting sessions.
// ABOUTME: Session IDs can be given as 8-character prefixes.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var sessionListLimit int

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"sessions"},
	Short:   "Manage recorded sessions",
}

var sessionListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List recorded sessions",
	Long: `List recorded monitoring sessions, most recent first.

Each line shows: ID  START  DURATION  AVG HR  SDNN  RMSSD  STRESS  (NOTES)

The ID is an 8-character prefix you can use with show and delete.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := repo.ListSessions(sessionListLimit)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range sessions {
			notes := ""
			if s.Notes != nil && *s.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*s.Notes, 30))
			}
			fmt.Printf("%s %s %s %3d bpm  sdnn %3d  rmssd %3d  stress %3d%s\n",
				faint.Sprint(s.ID.String()[:8]),
				faint.Sprint(s.StartTime.Format("2006-01-02 15:04")),
				padRight(formatDuration(s.Stats.DurationSeconds), 8),
				s.Stats.AvgHR,
				s.Stats.SDNN,
				s.Stats.RMSSD,
				s.Advanced.StressIndex,
				notes)
		}

		return nil
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a session's full statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := repo.GetSession(args[0])
		if err != nil {
			return fmt.Errorf("failed to get session: %w", err)
		}

		printSessionSummary(s.Stats, s.Advanced, len(s.HRData), 0)
		if s.Notes != nil && *s.Notes != "" {
			fmt.Printf("  Notes: %s\n", *s.Notes)
		}
		return nil
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm", "del"},
	Short:   "Delete a session",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteSession(args[0]); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		color.Green("✓ Deleted session: %s", args[0])
		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	sessionListCmd.Flags().IntVarP(&sessionListLimit, "limit", "n", 20, "max number of results")
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)
	rootCmd.AddCommand(sessionCmd)
}
