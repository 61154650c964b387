package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jgoulah/habitgrid/internal/publisher"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish habit stats to MQTT",
	Long:  `Publishes every habit's streaks and completion rate as retained MQTT messages, e.g. for Home Assistant sensors.`,
	Args:  cobra.NoArgs,
	RunE:  runPublish,
}

func init() {
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	// Create publisher
	pub, err := publisher.New(sess.cfg.MQTT, logger)
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}
	defer pub.Close()

	return publishAll(cmd, sess, pub)
}

func publishAll(cmd *cobra.Command, sess *session, pub *publisher.Publisher) error {
	out := cmd.OutOrStdout()
	habits := sess.store.List()
	if len(habits) == 0 {
		fmt.Fprintln(out, "No habits to publish")
		return nil
	}

	day := today()
	published := 0
	for i, h := range habits {
		fmt.Fprintf(out, "[%d/%d] Publishing %s... ", i+1, len(habits), h.Name)
		if err := pub.Publish(h, day); err != nil {
			fmt.Fprintf(out, "FAILED: %v\n", err)
			logger.Warn("publish failed", zap.String("id", h.ID), zap.Error(err))
			continue
		}
		fmt.Fprintf(out, "✓\n")
		published++
	}

	fmt.Fprintf(out, "Published %d/%d habits\n", published, len(habits))
	if published < len(habits) {
		return fmt.Errorf("%d habits failed to publish", len(habits)-published)
	}
	return nil
}
