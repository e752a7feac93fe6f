package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/costbook/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, tc := range []struct{ total, n int }{{100, 3}, {81, 2}, {7, 7}, {10, 4}} {
		widths := LayoutRow(tc.total, tc.n)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
		if widths[0] < widths[len(widths)-1] {
			t.Errorf("LayoutRow(%d, %d) = %v, remainder should go first", tc.total, tc.n, widths)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}

func TestCardRowPadsShortCards(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := lipgloss.Height(shortCard)
	tallLines := lipgloss.Height(tallCard)
	if shortLines >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	lines := strings.Split(CardRow([]string{tallCard, shortCard}), "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d", len(lines), tallLines)
	}
	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Errorf("line %d has no ANSI codes, padding would render unstyled", i)
		}
		if w := lipgloss.Width(lines[i]); w != 44 {
			t.Errorf("line %d width = %d, want 44", i, w)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	cases := map[rune]int{'s': TabSummary, 'c': TabCharts, 'm': TabManage, 'z': -1}
	for key, want := range cases {
		if got := TabIdxByKey(key); got != want {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", key, got, want)
		}
	}
}

func TestTabBarWidthMatchesTabVisualWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")
	want := 0
	for i, tab := range Tabs {
		want += TabVisualWidth(tab)
		if i < len(Tabs)-1 {
			want++
		}
	}
	bar := RenderTabBar(0, want)
	if got := lipgloss.Width(bar); got != want {
		t.Errorf("tab bar width = %d, want %d", got, want)
	}
}

func TestHbar(t *testing.T) {
	if got := hbar(100, 100, 10); got != strings.Repeat("█", 10) {
		t.Errorf("full bar = %q", got)
	}
	if got := hbar(50, 100, 10); got != strings.Repeat("█", 5)+strings.Repeat(" ", 5) {
		t.Errorf("half bar = %q", got)
	}
	if got := hbar(-20, 100, 4); got != "    " {
		t.Errorf("negative bar = %q, want empty", got)
	}
	if got := hbar(250, 100, 4); got != "████" {
		t.Errorf("overflow bar = %q, want clamped", got)
	}
}

func TestChartTickStep(t *testing.T) {
	cases := []struct {
		max, want float64
	}{
		{0, 1},
		{10, 2},
		{1500, 200},
		{4000, 500},
		{9000, 2000},
	}
	for _, tc := range cases {
		if got := chartTickStep(tc.max); got != tc.want {
			t.Errorf("chartTickStep(%v) = %v, want %v", tc.max, got, tc.want)
		}
	}
}

func TestFormatChartLabel(t *testing.T) {
	cases := map[float64]string{
		500:     "500",
		1000:    "1k",
		1500:    "1.5k",
		2000000: "2M",
		0.5:     "0.50",
	}
	for v, want := range cases {
		if got := formatChartLabel(v); got != want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestCompareChartRendersEveryComponent(t *testing.T) {
	theme.SetActive("terminal")
	out := CompareChart([]BarPair{
		{Label: "Marketing", Covered: 1500, Spent: 800, CoveredText: "€1,500.00", SpentText: "€800.00"},
		{Label: "Dev", Covered: 0, Spent: 300, CoveredText: "€0.00", SpentText: "€300.00"},
	}, 80)

	for _, want := range []string{"Marketing", "Dev", "covered", "spent", "€1,500.00", "€300.00", "└"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart missing %q", want)
		}
	}
	// two lines per component plus axis and tick labels
	if got := lipgloss.Height(out); got != 6 {
		t.Errorf("chart height = %d, want 6", got)
	}
	if CompareChart(nil, 80) != "" {
		t.Error("empty chart should render nothing")
	}
}

func TestColorForPct(t *testing.T) {
	theme.SetActive("flexoki-dark")
	th := theme.Active
	if ColorForPct(0.2) != th.Green || ColorForPct(0.9) != th.Orange || ColorForPct(1.3) != th.Red {
		t.Error("ColorForPct thresholds changed")
	}
}
