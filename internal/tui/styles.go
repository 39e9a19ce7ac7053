package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/smartshop/shopdeck/pkg/domain"
)

// renderLogo renders "SHOPDECK" with letter spacing in the brand accent.
func renderLogo() string {
	const text = "SHOPDECK"
	var out strings.Builder
	for i := 0; i < len(text); i++ {
		out.WriteString(logoStyle.Render(string(text[i])))
		if i < len(text)-1 {
			out.WriteString("  ")
		}
	}
	return out.String()
}

var (
	logoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#38bdf8"))

	// Base palette
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#38bdf8")).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4ade80"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fbbf24"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171"))

	ratingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fbbf24"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Forms
	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#38bdf8"))

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#505868"))

	fieldErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171"))
)

// roleStyle colors a role chip.
func roleStyle(r domain.Role) lipgloss.Style {
	switch r {
	case domain.RoleAdmin:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#c084e0"))
	case domain.RoleShopOwner:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#38bdf8"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80"))
	}
}

// statusStyle colors a booking status.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case domain.BookingConfirmed:
		return okStyle
	case domain.BookingCancelled:
		return errorStyle
	case domain.BookingCompleted:
		return dimStyle
	default: // pending
		return warnStyle
	}
}

// helpEntry renders one "key label" pair for the help line.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}
