package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/paybatch/internal/engine"
	"github.com/rshade/paybatch/internal/tui"
)

// runPreview opens the interactive report preview and blocks until the user
// quits it.
func runPreview(ctx context.Context, result *engine.Result) error {
	p := tea.NewProgram(tui.NewReportModel(ctx, result), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running preview: %w", err)
	}
	return nil
}
