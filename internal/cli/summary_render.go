package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/paybatch/internal/engine"
)

// Summary box layout.
const (
	summaryBoxWidth    = 56
	summaryTitlePad    = 4
	unavailableDisplay = "n/a"
)

// printer is the locale-aware message printer for console amounts.
// The CSV report never uses it.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// boxBorderColor returns the Lip Gloss color used for summary box borders.
func boxBorderColor() lipgloss.Color { return lipgloss.Color("240") }

// boxTitleColor returns the Lip Gloss color used for summary box titles.
func boxTitleColor() lipgloss.Color { return lipgloss.Color("39") }

// colorWarning returns the color used for skipped-file warnings.
func colorWarning() lipgloss.Color { return lipgloss.Color("214") }

// isWriterTerminal reports whether w is a terminal-backed *os.File.
func isWriterTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isTerminal(f)
	}
	return false
}

// summaryLine is a label/value pair shown in the run summary.
type summaryLine struct {
	label string
	value string
}

// summaryLines collects the figures shown after a successful run.
func summaryLines(result *engine.Result) []summaryLine {
	rows := 0
	if result.Report != nil {
		rows = result.Report.Len()
	}
	return []summaryLine{
		{"Files read", fmt.Sprintf("%d of %d", len(result.Files)-len(result.Skipped), len(result.Files))},
		{"Rows written", fmt.Sprintf("%d of %d distinct", rows, result.DistinctRows)},
		{"Salaries summarized", fmt.Sprintf("%d", result.Summary.Count)},
		{"Second highest salary", formatStat(result.Summary.SecondHighest)},
		{"Average salary", formatStat(result.Summary.Average)},
	}
}

// RenderRunSummary writes a short summary of a completed run: a styled box
// when w is a terminal, aligned plain text otherwise.
func RenderRunSummary(w io.Writer, result *engine.Result) error {
	if result == nil {
		return nil
	}
	if isWriterTerminal(w) {
		return renderStyledSummary(w, result)
	}
	return renderPlainSummary(w, result)
}

func renderPlainSummary(w io.Writer, result *engine.Result) error {
	lines := summaryLines(result)
	width := 0
	for _, l := range lines {
		width = max(width, len(l.label))
	}

	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, "%-*s  %s\n", width+1, l.label+":", l.value)
	}
	for _, s := range result.Skipped {
		fmt.Fprintf(&b, "Skipped: %s\n", s.Path)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderStyledSummary(w io.Writer, result *engine.Result) error {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(boxTitleColor())
	labelStyle := lipgloss.NewStyle().Bold(true)
	warnStyle := lipgloss.NewStyle().Foreground(colorWarning())
	boxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(boxBorderColor()).
		Padding(0, 1).
		Width(summaryBoxWidth)

	var content strings.Builder
	content.WriteString(titleStyle.Render("PAYROLL REPORT"))
	content.WriteString("\n")
	content.WriteString(strings.Repeat("─", summaryBoxWidth-summaryTitlePad))
	content.WriteString("\n")

	for _, l := range summaryLines(result) {
		content.WriteString(labelStyle.Render(l.label + ":"))
		content.WriteString(" ")
		content.WriteString(l.value)
		content.WriteString("\n")
	}
	for _, s := range result.Skipped {
		content.WriteString(warnStyle.Render("⚠ skipped " + s.Path))
		content.WriteString("\n")
	}

	_, err := fmt.Fprintln(w, boxStyle.Render(strings.TrimRight(content.String(), "\n")))
	return err
}

// formatStat renders a statistic for the console.
func formatStat(s engine.Stat) string {
	if !s.Available {
		return unavailableDisplay
	}
	return formatMoney(s.Value)
}

// formatMoney rounds f to two decimals with thousand separators.
// Example: formatMoney(1616.6666) returns "1,616.67".
func formatMoney(f float64) string {
	const cents = 100
	rounded := math.Round(f*cents) / cents
	if rounded == 0 {
		rounded = 0 // drop the sign of negative zero
	}
	return printer.Sprintf("%.2f", rounded)
}
