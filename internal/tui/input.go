package tui

import "strings"

// renderField renders one labeled form line with a focus cursor.
// Secret values are masked. The block cursor is shown on the focused field.
func renderField(label, value string, focused, secret bool) string {
	display := value
	if secret {
		display = strings.Repeat("•", len([]rune(value)))
	}

	cursor := " "
	style := metaStyle
	if focused {
		cursor = inputPromptStyle.Render(">")
		style = selectedStyle
		display += accentStyle.Render("█")
	}
	return cursor + " " + style.Render(label) + ": " + display
}

// renderFieldErrors renders backend or local per-field errors beneath a field.
func renderFieldErrors(msgs []string) string {
	if len(msgs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, msg := range msgs {
		b.WriteString("    " + fieldErrStyle.Render(msg) + "\n")
	}
	return b.String()
}
