package formatter

import (
	"fmt"
	"strings"

	"github.com/mbenedek/focal/internal/analytics"
)

const trendBarWidth = 30

// FormatTrends renders a trend comparison as one bar row per period.
// Bar widths scale against the comparison's largest total. Past
// periods get a second dim bar showing their up-to-now partial, and
// the current period shows its change against the previous period's
// partial so an in-progress day or week is compared fairly.
func FormatTrends(periods []analytics.TrendPeriod) string {
	if len(periods) == 0 {
		return Dim("Nothing to compare.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header("Trend") + "\n")

	for i, p := range periods {
		total := fmt.Sprintf("%s %s", Bold(p.Label), StyleFg.Render(FormatMinutes(p.TotalMinutes)))
		if i == 0 && len(periods) > 1 {
			total += "  " + changeVsPrevious(periods)
		}
		b.WriteString(total + "\n")

		fmt.Fprintf(&b, "  %s\n", StyleBlue.Render(bar(p.PercentageOfMax/100, trendBarWidth)))
		if p.PartialMinutes != nil && p.PartialPercentage != nil {
			fmt.Fprintf(&b, "  %s %s\n",
				StyleDim.Render(bar(*p.PartialPercentage/100, trendBarWidth)),
				Dim(fmt.Sprintf("by now: %s", FormatMinutes(*p.PartialMinutes))))
		}
	}
	return b.String()
}

// changeVsPrevious computes the current period's delta against the
// previous period restricted to the same elapsed time.
func changeVsPrevious(periods []analytics.TrendPeriod) string {
	previous := periods[1].TotalMinutes
	if periods[1].PartialMinutes != nil {
		previous = *periods[1].PartialMinutes
	}
	return SignedPercent(analytics.PercentChange(previous, periods[0].TotalMinutes))
}
