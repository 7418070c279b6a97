package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chinmayanaik123/lifeOS/internal/engine"
)

// RunBoard opens the interactive today view.
func RunBoard(ctx context.Context, svc *engine.Service, date time.Time, location string, out io.Writer) error {
	m := newBoardModel(ctx, svc, date, location)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
