package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func printHelp() {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#38bdf8")).
		Bold(true).
		Render("S H O P D E C K")

	tagline := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render("Your shops, bookings and reviews, from the terminal.")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	commands := []struct{ cmd, desc string }{
		{"shopdeck", "Open the dashboard (interactive TUI)"},
		{"shopdeck whoami", "Show the signed-in account"},
		{"shopdeck logout", "Clear your session"},
		{"shopdeck --version", "Show version"},
		{"shopdeck help", "You are here"},
	}

	fmt.Printf("\n  %s\n\n  %s\n\n  Commands:\n", title, tagline)
	for _, c := range commands {
		fmt.Printf("    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", c.cmd)), descStyle.Render(c.desc))
	}
	env := descStyle.Render("SHOPDECK_API_URL sets the API base URL; SHOPDECK_TOKEN overrides the stored token.")
	fmt.Printf("\n  %s\n\n", env)
}
