package cli

import (
	"log/slog"

	"github.com/alexanderramin/ladder/internal/app"
	"github.com/spf13/cobra"
)

// App holds everything the commands and the TUI work against.
type App struct {
	Tracker *app.Tracker
	Logger  *slog.Logger

	// ServeAddr is the default listen address for the serve command.
	ServeAddr string

	// IsInteractive reports whether stdin is a terminal. When it is, the
	// bare root command opens the TUI instead of printing help.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "ladder" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "ladder",
		Short:         "Career development tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	t := app.Tracker
	root.AddCommand(
		newRecordCmd(courseKind(t.Courses)),
		newRecordCmd(coachingKind(t.Coaching)),
		newRecordCmd(applicationKind(t.Applications)),
		newRecordCmd(certificationKind(t.Certifications)),
		newRecordCmd(educationKind(t.Education)),
		newRecordCmd(experienceKind(t.Experience)),
		newSkillCmd(t.Skills),
		newProfileCmd(t.Profile),
		newTShapeCmd(),
		newImportCmd(t),
		newExportCmd(t),
		newServeCmd(app),
		newTUICmd(app),
	)

	return root
}
