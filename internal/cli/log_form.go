package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/mbenedek/focal/internal/domain"
)

func validateClock(value string) error {
	_, err := domain.ParseClock(value)
	return err
}

// runSessionLogForm collects a session interactively and persists it.
func runSessionLogForm(ctx context.Context, app *App, dateFlag string) error {
	day, err := resolveDate(dateFlag)
	if err != nil {
		return err
	}

	tags, err := app.Tags.List(ctx)
	if err != nil {
		return err
	}
	tagOptions := make([]huh.Option[string], 0, len(tags))
	for _, tag := range tags {
		tagOptions = append(tagOptions, huh.NewOption(tag.Name, tag.ID))
	}

	var start, end string
	sessionType := string(domain.SessionFocus)
	var tagIDs []string

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title("Start (HH:MM)").
				Placeholder("09:00").
				Value(&start).
				Validate(validateClock),
			huh.NewInput().
				Title("End (HH:MM)").
				Placeholder("09:45").
				Value(&end).
				Validate(validateClock),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Focus", string(domain.SessionFocus)),
					huh.NewOption("Custom", string(domain.SessionCustom)),
					huh.NewOption("Break", string(domain.SessionBreak)),
					huh.NewOption("Long break", string(domain.SessionLongBreak)),
				).
				Value(&sessionType),
		),
	}
	if len(tagOptions) > 0 {
		groups = append(groups, huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Tags").
				Options(tagOptions...).
				Value(&tagIDs),
		))
	}

	if err := huh.NewForm(groups...).WithShowHelp(false).Run(); err != nil {
		return err
	}

	startMin, err := domain.ParseClock(start)
	if err != nil {
		return err
	}
	endMin, err := domain.ParseClock(end)
	if err != nil {
		return err
	}

	s := &domain.Session{
		ID:          uuid.New().String(),
		Date:        day,
		StartMinute: startMin,
		EndMinute:   endMin,
		Type:        domain.SessionType(sessionType),
		TagIDs:      tagIDs,
		CreatedAt:   time.Now().UTC(),
	}
	if err := app.Sessions.Log(ctx, s); err != nil {
		return err
	}

	fmt.Printf("Logged %s session %s–%s on %s (%s)\n",
		s.Type, s.StartClock(), s.EndClock(), s.Date.Format("2006-01-02"), s.ID)
	return nil
}
