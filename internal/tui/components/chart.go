package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/costbook/internal/tui/theme"
)

// BarPair is one component in a CompareChart: what it has covered against
// what it has spent, with preformatted amounts for the value column.
type BarPair struct {
	Label       string
	Covered     float64
	Spent       float64
	CoveredText string
	SpentText   string
}

const (
	maxChartLabelW = 18
	seriesW        = 8 // "covered " / "spent   "
)

var eighths = []rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'}

// CompareChart renders horizontal covered vs spent bars per component on a
// shared scale, with a tick axis underneath. Negative values draw as empty
// bars; their text still shows the real amount.
func CompareChart(pairs []BarPair, width int) string {
	if len(pairs) == 0 {
		return ""
	}
	t := theme.Active

	labelW, valueW := 4, 0
	maxVal := 0.0
	for _, p := range pairs {
		labelW = max(labelW, lipgloss.Width(p.Label))
		valueW = max(valueW, lipgloss.Width(p.CoveredText), lipgloss.Width(p.SpentText))
		maxVal = max(maxVal, p.Covered, p.Spent)
	}
	labelW = min(labelW, maxChartLabelW)

	barW := width - labelW - 1 - seriesW - 1 - valueW
	if barW < 10 {
		barW = 10
	}

	step := chartTickStep(maxVal)
	maxTicks := max(2, barW/8)
	for math.Ceil(maxVal/step) > float64(maxTicks) {
		step *= 2
	}
	ceiling := math.Ceil(maxVal/step) * step
	if ceiling <= 0 {
		ceiling = step
	}

	bg := lipgloss.NewStyle().Background(t.Surface)
	labelStyle := bg.Foreground(t.TextPrimary)
	seriesStyle := bg.Foreground(t.TextDim)
	coveredStyle := bg.Foreground(t.Blue)
	valueStyle := bg.Foreground(t.TextMuted)

	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteString("\n")
		}
		spentStyle := bg.Foreground(t.Green)
		if p.Spent > p.Covered {
			spentStyle = bg.Foreground(t.Red)
		}

		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s ", labelW, truncLabel(p.Label, labelW))))
		b.WriteString(seriesStyle.Render(fmt.Sprintf("%-*s", seriesW, "covered")))
		b.WriteString(coveredStyle.Render(hbar(p.Covered, ceiling, barW)))
		b.WriteString(valueStyle.Render(" " + p.CoveredText))
		b.WriteString("\n")

		b.WriteString(bg.Render(strings.Repeat(" ", labelW+1)))
		b.WriteString(seriesStyle.Render(fmt.Sprintf("%-*s", seriesW, "spent")))
		b.WriteString(spentStyle.Render(hbar(p.Spent, ceiling, barW)))
		b.WriteString(valueStyle.Render(" " + p.SpentText))
	}

	axisStyle := bg.Foreground(t.TextDim)
	indent := bg.Render(strings.Repeat(" ", labelW+1+seriesW))
	axis, ticks := chartAxis(step, ceiling, barW)
	b.WriteString("\n")
	b.WriteString(indent + axisStyle.Render(axis))
	b.WriteString("\n")
	b.WriteString(indent + axisStyle.Render(ticks))

	return b.String()
}

// hbar draws v on a scale of [0, ceiling] across width cells, using eighth
// blocks for the partial cell.
func hbar(v, ceiling float64, width int) string {
	if v <= 0 || ceiling <= 0 {
		return strings.Repeat(" ", width)
	}
	cells := v / ceiling * float64(width)
	full := int(cells)
	if full >= width {
		return strings.Repeat("█", width)
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("█", full))
	used := full
	if frac := int((cells - float64(full)) * 8); frac > 0 {
		b.WriteRune(eighths[frac])
		used++
	}
	b.WriteString(strings.Repeat(" ", width-used))
	return b.String()
}

// chartAxis returns the axis line and the tick label line for a bar area of
// width cells.
func chartAxis(step, ceiling float64, width int) (string, string) {
	line := []rune(strings.Repeat("─", width))
	labels := []byte(strings.Repeat(" ", width+6))

	n := int(math.Round(ceiling / step))
	lastEnd := -1
	for i := 0; i <= n; i++ {
		pos := int(math.Round(float64(i) * step / ceiling * float64(width-1)))
		line[pos] = '┴'

		lbl := "0"
		if i > 0 {
			lbl = formatChartLabel(step * float64(i))
		}
		start := max(0, pos-len(lbl)/2)
		if start <= lastEnd {
			continue
		}
		end := min(start+len(lbl), len(labels))
		copy(labels[start:end], lbl)
		lastEnd = end
	}
	line[0] = '└'

	return string(line), strings.TrimRight(string(labels), " ")
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func truncLabel(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
