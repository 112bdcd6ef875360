package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/mbenedek/focal/internal/analytics"
	"github.com/mbenedek/focal/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Analyze your focus time",
	}

	cmd.AddCommand(
		newStatsHoursCmd(app),
		newStatsDaysCmd(app),
		newStatsTrendCmd(app),
		newStatsTagsCmd(app),
	)

	return cmd
}

func newStatsHoursCmd(app *App) *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Hour-of-day distribution and peak hour",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var result analytics.HourlyAverages
			var err error
			var title string
			if monthFlag == "" {
				result, err = app.Stats.WeeklyByHour(ctx, time.Now())
				title = "Last 7 days by hour"
			} else {
				year, month, merr := resolveMonth(monthFlag)
				if merr != nil {
					return merr
				}
				result, err = app.Stats.MonthlyByHour(ctx, year, month)
				title = fmt.Sprintf("%s %d by hour", month, year)
			}
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header(title))
			fmt.Print(formatter.RenderHourChart(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "Calendar month (YYYY-MM) instead of the trailing week")

	return cmd
}

func newStatsDaysCmd(app *App) *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "days",
		Short: "Day-of-month distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := resolveMonth(monthFlag)
			if err != nil {
				return err
			}
			totals, err := app.Stats.MonthTotals(context.Background(), year, month)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header(fmt.Sprintf("%s %d by day", month, year)))
			fmt.Print(formatter.RenderDayChart(totals))
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "Calendar month (YYYY-MM, default current)")

	return cmd
}

func newStatsTrendCmd(app *App) *cobra.Command {
	var unitFlag string
	var periodsFlag int

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Compare the current period against its predecessors",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !analytics.ValidPeriodUnits[unitFlag] {
				return fmt.Errorf("invalid unit %q (day|week|month|year)", unitFlag)
			}

			periods, err := app.Stats.Trends(context.Background(),
				analytics.PeriodUnit(unitFlag), periodsFlag, time.Now())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTrends(periods))
			return nil
		},
	}

	cmd.Flags().StringVar(&unitFlag, "unit", "week", "Period unit (day|week|month|year)")
	cmd.Flags().IntVar(&periodsFlag, "periods", 3, "Number of periods including the current one")

	return cmd
}

func newStatsTagsCmd(app *App) *cobra.Command {
	var fromFlag, toFlag string

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Time split across tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := resolveRange(fromFlag, toFlag)
			if err != nil {
				return err
			}
			breakdown, err := app.Stats.TagBreakdown(context.Background(), start, end)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header(fmt.Sprintf("Tags %s – %s",
				start.Format("2006-01-02"), end.Format("2006-01-02"))))
			fmt.Print(formatter.FormatTagBreakdown(breakdown))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "Range start (YYYY-MM-DD, default 7 days ago)")
	cmd.Flags().StringVar(&toFlag, "to", "", "Range end (YYYY-MM-DD, default today)")

	return cmd
}
