package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mbenedek/focal/internal/domain"
)

// resolveDate parses a YYYY-MM-DD flag, defaulting to today.
func resolveDate(flag string) (time.Time, error) {
	if flag == "" {
		return domain.Day(time.Now()), nil
	}
	day, err := time.Parse("2006-01-02", flag)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", flag, err)
	}
	return day, nil
}

// resolveRange parses from/to flags into an inclusive date range,
// defaulting to the trailing week ending today.
func resolveRange(fromFlag, toFlag string) (time.Time, time.Time, error) {
	end := domain.Day(time.Now())
	if toFlag != "" {
		var err error
		end, err = resolveDate(toFlag)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	start := end.AddDate(0, 0, -6)
	if fromFlag != "" {
		var err error
		start, err = resolveDate(fromFlag)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("range end %s is before start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return start, end, nil
}

// resolveTagNames maps tag name flags to catalog ids, matching
// case-insensitively and accepting raw ids.
func resolveTagNames(ctx context.Context, app *App, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	tags, err := app.Tags.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(names))
	for _, name := range names {
		found := ""
		for _, tag := range tags {
			if strings.EqualFold(tag.Name, name) || tag.ID == name {
				found = tag.ID
				break
			}
		}
		if found == "" {
			return nil, fmt.Errorf("unknown tag %q (create it with: focal tag add %q)", name, name)
		}
		ids = append(ids, found)
	}
	return ids, nil
}

// resolveMonth parses a YYYY-MM flag, defaulting to the current month.
func resolveMonth(flag string) (int, time.Month, error) {
	if flag == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	parsed, err := time.Parse("2006-01", flag)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing month %q: %w", flag, err)
	}
	return parsed.Year(), parsed.Month(), nil
}
