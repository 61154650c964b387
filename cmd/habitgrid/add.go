package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jgoulah/habitgrid/internal/store"
)

var addColor string

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a habit",
	Long:  `Creates a habit with the given name and selects it.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addColor, "color", "", "Cell colour, e.g. #40c463 (default from config)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	color := addColor
	if color == "" {
		color = sess.cfg.GetDefaultColor()
	}

	habit, err := sess.store.Create(strings.Join(args, " "), color)
	if errors.Is(err, store.ErrEmptyName) {
		return fmt.Errorf("habit name cannot be blank")
	}
	if err != nil {
		return fmt.Errorf("adding habit: %w", err)
	}

	if err := sess.rememberSelection(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Added %s (%s)\n", habit.Name, habit.ID)
	return nil
}
