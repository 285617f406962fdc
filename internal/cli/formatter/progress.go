package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
	filledDot   = "●"
	emptyDot    = "○"
)

func clampRatio(r float64) float64 {
	return min(max(r, 0), 1)
}

// RenderProgress renders a progress bar like [████░░░░]  45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(ratio float64, width int) string {
	ratio = clampRatio(ratio)
	width = max(width, 2)

	filled := min(int(ratio*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if ratio < 0.33 {
		style = StyleRed
	} else if ratio < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), ratio*100)
}

// RenderLevel renders a level as filled and empty dots, e.g. ●●●○○. The dots
// turn yellow when current falls short of required.
func RenderLevel(current, required, maxLevel int) string {
	current = min(max(current, 0), maxLevel)
	dots := strings.Repeat(filledDot, current) + strings.Repeat(emptyDot, maxLevel-current)
	if current < required {
		return StyleYellow.Render(dots)
	}
	return StyleGreen.Render(dots)
}
