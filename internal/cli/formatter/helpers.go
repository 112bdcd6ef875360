package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// FormatMinutes renders a minute count as "2h 05m" / "45m".
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

// FormatSeconds renders a second count with minute precision.
func FormatSeconds(seconds int) string {
	return FormatMinutes((seconds + 30) / 60)
}

// bar renders a filled/empty block bar of the given width at the
// given fill ratio.
func bar(ratio float64, width int) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	if width < 1 {
		width = 1
	}
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

// SignedPercent renders a percentage delta with an explicit sign and
// a direction color: green up, red down, dim flat.
func SignedPercent(change int) string {
	switch {
	case change > 0:
		return StyleGreen.Render(fmt.Sprintf("+%d%%", change))
	case change < 0:
		return StyleRed.Render(fmt.Sprintf("%d%%", change))
	default:
		return StyleDim.Render("0%")
	}
}
