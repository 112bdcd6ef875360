package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mbenedek/focal/internal/cli/formatter"
	"github.com/mbenedek/focal/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage focus sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(app),
		newSessionListCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var dateFlag, startFlag, endFlag, typeFlag string
	var tagNames []string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a focus session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// With no clock flags on a terminal, collect the session
			// through the interactive form instead.
			if startFlag == "" && endFlag == "" && app.interactive() {
				return runSessionLogForm(ctx, app, dateFlag)
			}

			day, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			startMin, err := domain.ParseClock(startFlag)
			if err != nil {
				return err
			}
			endMin, err := domain.ParseClock(endFlag)
			if err != nil {
				return err
			}
			tagIDs, err := resolveTagNames(ctx, app, tagNames)
			if err != nil {
				return err
			}

			s := &domain.Session{
				ID:          uuid.New().String(),
				Date:        day,
				StartMinute: startMin,
				EndMinute:   endMin,
				Type:        domain.SessionType(typeFlag),
				TagIDs:      tagIDs,
				CreatedAt:   time.Now().UTC(),
			}
			if err := app.Sessions.Log(ctx, s); err != nil {
				return err
			}

			fmt.Printf("Logged %s session %s–%s on %s (%s)\n",
				s.Type, s.StartClock(), s.EndClock(), s.Date.Format("2006-01-02"), s.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Session date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&startFlag, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&endFlag, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&typeFlag, "type", "focus", "Session type (focus|custom|break|longBreak)")
	cmd.Flags().StringSliceVar(&tagNames, "tag", nil, "Tag name (repeatable)")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var fromFlag, toFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions in a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			start, end, err := resolveRange(fromFlag, toFlag)
			if err != nil {
				return err
			}

			sessions, err := app.Sessions.ListRange(ctx, start, end)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println(formatter.Dim("No sessions in range."))
				return nil
			}

			tags, err := app.Tags.List(ctx)
			if err != nil {
				return err
			}
			fmt.Print(formatSessionTable(sessions, tags))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "Range start (YYYY-MM-DD, default 7 days ago)")
	cmd.Flags().StringVar(&toFlag, "to", "", "Range end (YYYY-MM-DD, default today)")

	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <session-id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed session %s\n", args[0])
			return nil
		},
	}
	return cmd
}

func formatSessionTable(sessions []domain.Session, tags []domain.Tag) string {
	names := make(map[string]string, len(tags))
	for _, tag := range tags {
		names[tag.ID] = tag.Name
	}

	headers := []string{"DATE", "TIME", "DURATION", "TYPE", "TAGS", "ID"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		tagList := ""
		for i, id := range s.TagIDs {
			if i > 0 {
				tagList += ", "
			}
			if name, ok := names[id]; ok {
				tagList += name
			} else {
				tagList += id
			}
		}
		rows = append(rows, []string{
			s.Date.Format("2006-01-02"),
			fmt.Sprintf("%s–%s", s.StartClock(), s.EndClock()),
			formatter.FormatMinutes(s.DurationMinutes),
			formatter.TypeColor(s.Type).Render(string(s.Type)),
			tagList,
			formatter.Dim(s.ID),
		})
	}
	return formatter.RenderTable(headers, rows)
}
