package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/mbenedek/focal/internal/cli/formatter"
	"github.com/mbenedek/focal/internal/domain"
	"github.com/mbenedek/focal/internal/timer"
	"github.com/spf13/cobra"
)

func newTimerCmd(app *App) *cobra.Command {
	var focusMin, breakMin int
	var tagNames []string

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run a focus countdown and log the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("timer requires an interactive terminal")
			}
			if focusMin < 1 {
				return fmt.Errorf("focus length must be at least one minute")
			}

			ctx := context.Background()
			tagIDs, err := resolveTagNames(ctx, app, tagNames)
			if err != nil {
				return err
			}

			model := timer.New(
				time.Duration(focusMin)*time.Minute,
				time.Duration(breakMin)*time.Minute,
				nil,
			)
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return fmt.Errorf("running timer: %w", err)
			}

			result, ok := final.(timer.Model)
			if !ok {
				return fmt.Errorf("unexpected timer model type %T", final)
			}
			start, end, logged := result.FocusedInterval()
			if !logged {
				fmt.Println(formatter.Dim("No session logged (under a minute of focus)."))
				return nil
			}

			s := sessionFromInterval(start, end, tagIDs)
			if err := app.Sessions.Log(ctx, s); err != nil {
				return err
			}
			fmt.Printf("Logged focus session %s–%s (%s)\n", s.StartClock(), s.EndClock(), s.ID)
			return nil
		},
	}

	cmd.Flags().IntVar(&focusMin, "minutes", 25, "Focus length in minutes")
	cmd.Flags().IntVar(&breakMin, "break", 5, "Break length in minutes (0 to skip)")
	cmd.Flags().StringSliceVar(&tagNames, "tag", nil, "Tag name (repeatable)")

	return cmd
}

// sessionFromInterval converts a wall-clock interval into a session
// on the start's calendar day. An interval running past midnight is
// clamped to end-of-day; sessions never wrap.
func sessionFromInterval(start, end time.Time, tagIDs []string) *domain.Session {
	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()
	if !domain.SameDay(start, end) || endMin <= startMin {
		endMin = domain.MinutesPerDay
	}
	return &domain.Session{
		ID:          uuid.New().String(),
		Date:        domain.Day(start),
		StartMinute: startMin,
		EndMinute:   endMin,
		Type:        domain.SessionFocus,
		TagIDs:      tagIDs,
		CreatedAt:   time.Now().UTC(),
	}
}
