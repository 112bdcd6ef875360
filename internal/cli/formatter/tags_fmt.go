package formatter

import (
	"fmt"

	"github.com/mbenedek/focal/internal/analytics"
)

const tagBarWidth = 16

// FormatTagBreakdown renders the tag legend: ranked shares with a
// percentage bar per tag, truncated to the top five plus an "others"
// row, and a totals footer.
func FormatTagBreakdown(breakdown analytics.TagBreakdown) string {
	if len(breakdown.Shares) == 0 {
		return Dim("No focus time in this range.") + "\n"
	}

	headers := []string{"TAG", "TIME", "SESSIONS", "SHARE"}
	rows := make([][]string, 0, 6)
	for _, share := range analytics.TruncateShares(breakdown.Shares, 5) {
		style := TagStyle(share.Tag)
		rows = append(rows, []string{
			style.Render(share.Tag.Icon + " " + share.Tag.Name),
			StyleFg.Render(FormatSeconds(share.DurationSeconds)),
			fmt.Sprintf("%d", share.SessionCount),
			fmt.Sprintf("%s %4.1f%%", style.Render(bar(share.PercentageOfTotal/100, tagBarWidth)), share.PercentageOfTotal),
		})
	}

	out := RenderTable(headers, rows)
	out += fmt.Sprintf("\n%s %s across %d sessions\n",
		Dim("Total:"),
		Bold(FormatSeconds(breakdown.TotalDurationSeconds)),
		breakdown.TotalSessions)
	return out
}
