package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/costbook/internal/tui/theme"
)

// RenderNotice renders a blocking message box, e.g. for a rejected form.
func RenderNotice(title, message string, width int) string {
	t := theme.Active

	boxW := min(max(width/2, 36), width-4)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(boxW).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)
	msgStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Width(boxW - 4)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	return boxStyle.Render(
		titleStyle.Render(title) + "\n\n" +
			msgStyle.Render(message) + "\n\n" +
			hintStyle.Render("Press any key to continue"))
}
