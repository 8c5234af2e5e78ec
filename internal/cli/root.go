package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arifzakri/belajar/internal/files"
	"github.com/arifzakri/belajar/internal/planner"
	"github.com/arifzakri/belajar/internal/reminder"
	"github.com/arifzakri/belajar/internal/ui"
	"github.com/arifzakri/belajar/internal/version"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and
// the TUI planner session.
func NewRootCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "belajar",
		Short:   "Plan your study week and get reminded from your terminal.",
		Version: version.Info(),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := planner.NewStore()
			notifier := reminder.NewNotifier(manager.SoundPath())
			scheduler := reminder.NewScheduler(notifier)
			defer scheduler.CancelAll()

			m := ui.NewModel(ctx, store, scheduler, manager)
			program := tea.NewProgram(m)
			notifier.SetSink(ui.NewProgramSink(program))

			if _, err := program.Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newSlotCommand(ctx),
		newRemindCommand(ctx, manager),
		newExportCommand(ctx, manager),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	manager, err := files.NewManager("")
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, manager)
	return cmd.Execute()
}

// Main is a helper used by cmd/belajar/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
