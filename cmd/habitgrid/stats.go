package main

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/spf13/cobra"

	"github.com/jgoulah/habitgrid/internal/stats"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats [habit]",
	Short: "Print streaks and completion rate",
	Long:  `Prints current streak, longest streak and 30-day completion rate. With no habit selected all figures are zero.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	ref := ""
	if len(args) == 1 {
		ref = args[0]
	}

	habit, ok := sess.resolve(ref)
	if !ok && ref != "" {
		return fmt.Errorf("no habit matching %q", ref)
	}

	s := stats.Empty()
	if ok {
		s = stats.Compute(habit.Completions, today())
	}

	out := cmd.OutOrStdout()
	if statsJSON {
		data, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("encoding stats: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Current streak:  %d\n", s.CurrentStreak)
	fmt.Fprintf(out, "Longest streak:  %d\n", s.LongestStreak)
	fmt.Fprintf(out, "Completion rate: %d%%\n", s.CompletionRate)
	return nil
}
