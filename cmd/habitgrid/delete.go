package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <habit>",
	Aliases: []string{"rm"},
	Short:   "Delete a habit",
	Long:    `Deletes the habit with the given id or name. Deleting an unknown habit does nothing.`,
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := sess.store.Delete(habit.ID); err != nil {
		return fmt.Errorf("deleting habit: %w", err)
	}
	if err := sess.rememberSelection(); err != nil {
		return err
	}

	fmt.Fprintf(out, "✓ Deleted %s\n", habit.Name)
	if sel, ok := sess.store.Selected(); ok {
		fmt.Fprintf(out, "Selected %s\n", sel.Name)
	}
	return nil
}
