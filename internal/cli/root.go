package cli

import (
	"github.com/mbenedek/focal/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sessions service.SessionService
	Tags     service.TagService
	Stats    service.StatsService

	// IsInteractive reports whether stdin is a terminal; gates the
	// huh log form and the timer program.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "focal" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "focal",
		Short: "Focused-work session tracker and analytics",
	}

	root.AddCommand(
		newSessionCmd(app),
		newTagCmd(app),
		newStatsCmd(app),
		newTimerCmd(app),
	)

	return root
}
