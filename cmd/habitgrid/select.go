package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var selectCmd = &cobra.Command{
	Use:   "select <habit>",
	Short: "Select the habit shown by default",
	Long:  `Selects a habit by id or name. The selection is remembered in the config file.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSelect,
}

func init() {
	rootCmd.AddCommand(selectCmd)
}

func runSelect(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	habit, ok := sess.store.Find(args[0])
	if !ok || !sess.store.Select(habit.ID) {
		return fmt.Errorf("no habit matching %q", args[0])
	}

	if err := sess.rememberSelection(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Selected %s\n", habit.Name)
	return nil
}
