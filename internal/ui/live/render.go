package live

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the run header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	elapsed := ""
	if !state.StartedAt.IsZero() {
		elapsed = now.Sub(state.StartedAt).Round(100 * time.Millisecond).String()
	}
	line := "Run " + state.RunID
	if state.QuizLength > 0 {
		line += " | Quiz length: " + strconv.Itoa(state.QuizLength)
	}
	if state.AttemptCount > 0 {
		line += " | Attempts: " + strconv.Itoa(state.AttemptCount)
	}
	if elapsed != "" {
		line += " | Elapsed: " + elapsed
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the seed and candidate count line.
func renderSummary(state State, noColor bool) string {
	if state.Seed == "" {
		return stylize("Generating candidates...", noColor, lipgloss.Color("242"))
	}
	line := "Seed " + state.Seed +
		" (score " + strconv.Itoa(state.SeedScore) + ")" +
		" | Generated: " + strconv.Itoa(state.Generated) +
		" | Remaining: " + strconv.Itoa(state.Remaining())
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderFooter renders the completion line.
func renderFooter(state State, noColor bool) string {
	if !state.Done {
		return ""
	}
	return stylize("Found "+strconv.Itoa(state.Surviving)+" possible answer keys", noColor, lipgloss.Color("35"))
}

// stepColumns defines the reduction table layout.
func stepColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Attempt", Width: 24},
		{Title: "Score", Width: 6},
		{Title: "Before", Width: 8},
		{Title: "After", Width: 8},
	}
}

// rowsForState converts reduction steps into table rows.
func rowsForState(state State) []table.Row {
	rows := make([]table.Row, 0, len(state.Steps))
	for _, step := range state.Steps {
		rows = append(rows, table.Row{
			strconv.Itoa(step.Index),
			step.Attempt,
			strconv.Itoa(step.Score),
			strconv.Itoa(step.Before),
			strconv.Itoa(step.After),
		})
	}
	return rows
}

// tableStyles returns the table styling for the live UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	styles.Selected = styles.Cell
	if noColor {
		styles.Header = lipgloss.NewStyle().Bold(false)
		return styles
	}
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("33"))
	return styles
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
