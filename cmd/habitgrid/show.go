package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgoulah/habitgrid/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [habit]",
	Short: "Show the calendar heat-map and stats",
	Long: `Draws the last year of a habit as a heat-map, followed by its current streak,
longest streak and 30-day completion rate. Defaults to the selected habit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
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

	r := render.New(render.DefaultTheme())
	fmt.Fprintln(cmd.OutOrStdout(), r.Habit(habit, ok, today()))
	return nil
}
