package formatter

import (
	"fmt"
	"strings"

	"github.com/mbenedek/focal/internal/analytics"
)

const chartBarWidth = 40

// RenderHourChart renders a 24-row hour-of-day distribution using the
// fixed 60-minute scaling policy (no hour can exceed 60 averaged
// minutes). The peak hour's bar is highlighted.
func RenderHourChart(result analytics.HourlyAverages) string {
	maxVal := 0.0
	for _, v := range result.Averages {
		if v > maxVal {
			maxVal = v
		}
	}
	scale := analytics.FixedScale(int(maxVal) + 1)

	var b strings.Builder
	for hour, avg := range result.Averages {
		label := StyleDim.Render(fmt.Sprintf("%02d", hour))
		row := bar(avg/float64(scale.AxisMax), chartBarWidth)
		style := StyleBlue
		if hour == result.PeakHour && result.PeakValue > 0 {
			style = StyleGreen
		}
		value := ""
		if avg > 0 {
			value = " " + StyleFg.Render(fmt.Sprintf("%.1fm", avg))
		}
		fmt.Fprintf(&b, "%s %s%s\n", label, style.Render(row), value)
	}

	if result.PeakValue > 0 {
		fmt.Fprintf(&b, "\n%s %s (%.1f min/day)\n",
			Dim("Peak hour:"),
			Bold(fmt.Sprintf("%02d:00–%02d:00", result.PeakHour, (result.PeakHour+1)%24)),
			result.PeakValue)
	} else {
		b.WriteString("\n" + Dim("No focus time in this window.") + "\n")
	}
	return b.String()
}

// RenderDayChart renders per-day totals for a month as a bar per day,
// scaled with the bar-distribution headroom policy.
func RenderDayChart(totals []float64) string {
	scale := analytics.BarScale(totals)

	var b strings.Builder
	for i, total := range totals {
		label := StyleDim.Render(fmt.Sprintf("%2d", i+1))
		value := ""
		if total > 0 {
			value = " " + StyleFg.Render(FormatMinutes(int(total)))
		}
		fmt.Fprintf(&b, "%s %s%s\n", label, StyleBlue.Render(bar(total/float64(scale.AxisMax), chartBarWidth)), value)
	}
	fmt.Fprintf(&b, "%s scale 0–%s\n", Dim("   "), Dim(FormatMinutes(scale.AxisMax)))
	return b.String()
}
