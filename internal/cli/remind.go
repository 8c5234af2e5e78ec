package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arifzakri/belajar/internal/files"
	"github.com/arifzakri/belajar/internal/planner"
	"github.com/arifzakri/belajar/internal/reminder"
)

func newRemindCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var (
		subjectFlag string
		timeFlag    string
		goalFlag    string
		dayFlag     string
		dateFlag    string
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Schedule reminders for one entry and wait for them to fire.",
		Long: "remind resolves the entry against the next occurrence of its weekday " +
			"(or its explicit date), prints the reminder plan, and keeps the process " +
			"alive until every reminder has fired.",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := buildEntry(subjectFlag, timeFlag, goalFlag, dayFlag, dateFlag)
			if err != nil {
				return err
			}

			now := time.Now()
			window := planner.Resolve(entry, now)
			plan := reminder.BuildPlan(entry, window, now)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", formatEntry(entry))
			fmt.Fprintf(out, "Starts %s (%s)\n",
				window.Start.Format("Mon 02 Jan 15:04"), planner.RelativeLabel(window.Start, now))
			fmt.Fprintf(out, "Ends   %s (%s)\n",
				window.End.Format("Mon 02 Jan 15:04"), planner.RelativeLabel(window.End, now))

			for _, notice := range plan.Immediate {
				fmt.Fprintf(out, "now: %s\n", notice.Title)
			}
			for _, arm := range plan.Deferred {
				fmt.Fprintf(out, "in %s: %s\n", arm.Delay.Round(time.Second), arm.Title)
			}

			if dryRun {
				return nil
			}

			notifier := reminder.NewNotifier(manager.SoundPath())
			scheduler := reminder.NewScheduler(notifier)
			scheduler.Schedule(entry)

			if scheduler.Pending() > 0 {
				fmt.Fprintln(out, "Waiting for reminders (Ctrl+C to abort)...")
			}
			scheduler.Wait()
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectFlag, "subject", "", "Subject to study (required)")
	cmd.Flags().StringVar(&timeFlag, "time", "", "Time range, e.g. \"9:00 AM ║ 10:30 AM\" (required)")
	cmd.Flags().StringVar(&goalFlag, "goal", "", "Goal for the session (required)")
	cmd.Flags().StringVar(&dayFlag, "day", "", "Weekday name (default: Monday)")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Pin to a calendar date in YYYY-MM-DD (overrides --day)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the reminder plan without scheduling")

	return cmd
}
