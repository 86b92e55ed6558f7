package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/paybatch/internal/dataset"
	"github.com/rshade/paybatch/internal/engine"
	"github.com/rshade/paybatch/internal/logging"
)

// Layout constants.
const (
	defaultTableHeight = 12
	minColumnWidth     = 6
	maxColumnWidth     = 28
	// chromeHeight is the room taken by the title, footer and help lines.
	chromeHeight = 7
)

// ReportModel is the Bubble Tea model for previewing a written report.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type ReportModel struct {
	ctx      context.Context
	table    table.Model
	path     string
	summary  engine.Summary
	rows     int
	quitting bool
}

// NewReportModel builds a preview of result. The table shows the report
// columns in file order; the footer repeats the summary lines.
func NewReportModel(ctx context.Context, result *engine.Result) ReportModel {
	m := ReportModel{ctx: ctx}
	if result == nil {
		m.table = NewReportTable(nil, nil, defaultTableHeight)
		return m
	}

	m.path = result.OutputPath
	m.summary = result.Summary

	var header []string
	var rows [][]string
	if result.Report != nil {
		selected, err := result.Report.Select(engine.ReportColumns)
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("preview falls back to raw report columns")
			header = result.Report.Columns()
			for i := range result.Report.Len() {
				rows = append(rows, rowStrings(result.Report.Row(i)))
			}
		} else {
			header = engine.ReportColumns
			rows = selected
		}
	}

	m.rows = len(rows)
	m.table = NewReportTable(header, rows, defaultTableHeight)
	return m
}

func rowStrings(row dataset.Row) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = c.String()
	}
	return out
}

// NewReportTable creates a focused table sized to its content.
func NewReportTable(header []string, rows [][]string, height int) table.Model {
	columns := make([]table.Column, len(header))
	for i, h := range header {
		width := max(len(h), minColumnWidth)
		for _, r := range rows {
			if i < len(r) {
				width = max(width, len(r[i]))
			}
		}
		columns[i] = table.Column{Title: h, Width: min(width, maxColumnWidth)}
	}

	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row(r)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

// Init initializes the model (Bubble Tea interface).
func (m ReportModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-chromeHeight, 1))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the model (Bubble Tea interface).
func (m ReportModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("PAYROLL REPORT PREVIEW"))
	if m.path != "" {
		b.WriteString("  ")
		b.WriteString(LabelStyle.Render(m.path))
	}
	b.WriteString("\n\n")

	if m.rows == 0 {
		b.WriteString(WarnStyle.Render("Report has no rows."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(LabelStyle.Render(engine.SecondHighestLabel + ": "))
	b.WriteString(ValueStyle.Render(m.summary.SecondHighest.String()))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render(engine.AverageLabel + ": "))
	b.WriteString(ValueStyle.Render(m.summary.Average.String()))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("↑/↓ scroll • q quit"))

	return b.String()
}
