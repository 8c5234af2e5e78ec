package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/arifzakri/belajar/internal/planner"
)

func newSlotCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slot <start> <minutes>",
		Short: "Generate a time range from a start time and duration.",
		Long:  "slot turns a 24-hour start time and a duration in minutes into the time range format used by entries, e.g. \"09:00 AM ║ 10:30 AM\".",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("minutes must be an integer: %w", err)
			}

			slot, err := planner.FormatSlot(args[0], minutes, time.Now())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), slot)
			return nil
		},
	}

	return cmd
}
