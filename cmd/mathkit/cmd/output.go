package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// row is one labelled result line
type row struct {
	key   string
	value string
}

// render writes rows under a title. Plain output of a single row is just the
// value so it can be consumed by scripts.
func render(w io.Writer, title string, rows []row, plainOutput bool) {
	if plainOutput {
		renderPlain(w, rows)
		return
	}

	width := keyWidth(rows)
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			keyStyle.Width(width+2).Render(r.key),
			valueStyle.Render(r.value),
		))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		strings.Join(lines, "\n"),
	)
	fmt.Fprintln(w, boxStyle.Render(body))
}

func renderPlain(w io.Writer, rows []row) {
	if len(rows) == 1 {
		fmt.Fprintln(w, rows[0].value)
		return
	}
	width := keyWidth(rows)
	for _, r := range rows {
		fmt.Fprintf(w, "%-*s  %s\n", width, r.key+":", r.value)
	}
}

func keyWidth(rows []row) int {
	width := 0
	for _, r := range rows {
		if n := len(r.key) + 1; n > width {
			width = n
		}
	}
	return width
}

// formatFloat renders v with prec fraction digits, or the shortest exact
// form when prec is negative
func formatFloat(v float64, prec int) string {
	if prec < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func formatBool(v bool) string {
	return strconv.FormatBool(v)
}
