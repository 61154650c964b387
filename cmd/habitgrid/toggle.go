package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jgoulah/habitgrid/pkg/models"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <habit> [date]",
	Short: "Mark or unmark a day as done",
	Long: `Flips the completion of a day for a habit, identified by id or name.
The date defaults to today and may be YYYY-MM-DD, "today", "yesterday"
or relative like 3d (three days ago).`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(cmd *cobra.Command, args []string) error {
	day := today()
	if len(args) == 2 {
		var err error
		day, err = parseDay(args[1], day)
		if err != nil {
			return err
		}
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	out := cmd.OutOrStdout()

	habit, ok := sess.store.Find(args[0])
	if !ok {
		fmt.Fprintf(out, "No habit matching %q\n", args[0])
		return nil
	}

	if err := sess.store.Toggle(habit.ID, day.String()); err != nil {
		return fmt.Errorf("toggling %s: %w", day, err)
	}

	updated, _ := sess.store.Get(habit.ID)
	if updated.Completed(day.String()) {
		fmt.Fprintf(out, "✓ %s done on %s\n", updated.Name, day)
	} else {
		fmt.Fprintf(out, "✗ %s not done on %s\n", updated.Name, day)
	}
	return nil
}

// parseDay parses YYYY-MM-DD, "today", "yesterday" or a relative "Nd"
func parseDay(s string, today models.Day) (models.Day, error) {
	switch strings.ToLower(s) {
	case "today":
		return today, nil
	case "yesterday":
		return today.AddDays(-1), nil
	}

	// Try absolute date format first
	if d, err := models.ParseDay(s); err == nil {
		return d, nil
	}

	// Try relative format (e.g., "7d" for 7 days ago)
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s[:len(s)-1], "%d", &days); err == nil && days >= 0 {
			return today.AddDays(-days), nil
		}
	}

	return models.Day{}, fmt.Errorf("invalid date format: %s (use YYYY-MM-DD, today, yesterday or Nd for N days ago)", s)
}
