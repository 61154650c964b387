package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgoulah/habitgrid/internal/render"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits",
	Long:  `Displays all habits in creation order. The selected habit is marked with >.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	selectedID := ""
	if h, ok := sess.store.Selected(); ok {
		selectedID = h.ID
	}

	r := render.New(render.DefaultTheme())
	fmt.Fprintln(cmd.OutOrStdout(), r.HabitList(sess.store.List(), selectedID, now()))
	return nil
}
