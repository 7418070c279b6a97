package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chinmayanaik123/lifeOS/internal/engine"
	"github.com/chinmayanaik123/lifeOS/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	date     time.Time
	location string

	width  int
	height int

	views    []engine.ResolvedTask
	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	views []engine.ResolvedTask
	err   error
}

type mutatedMsg struct {
	action string
	title  string
	err    error
}

func newBoardModel(ctx context.Context, svc *engine.Service, date time.Time, location string) boardModel {
	return boardModel{
		ctx:      ctx,
		svc:      svc,
		date:     engine.DateOf(date),
		location: location,
		loading:  true,
		lastLog:  "Loading…",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		views, err := m.svc.ResolveForDate(m.ctx, m.date, m.location)
		return loadedMsg{views: views, err: err}
	}
}

func (m boardModel) mutateCmd(action string, v engine.ResolvedTask) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch action {
		case "complete":
			err = m.svc.CompleteTask(m.ctx, v.Task.ID, m.date, nil)
		case "skip":
			err = m.svc.SkipTask(m.ctx, v.Task.ID, m.date)
		case "reset":
			err = m.svc.ResetTask(m.ctx, v.Task.ID, m.date)
		}
		return mutatedMsg{action: action, title: v.Task.Title, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.views = msg.views
		if m.selected >= len(m.views) {
			m.selected = len(m.views) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case mutatedMsg:
		if msg.err != nil {
			m.lastLog = titleCase(msg.action) + " failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("%s: %s", titleCase(msg.action), msg.title)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.views)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if v, ok := m.current(); ok {
				return m, m.mutateCmd("complete", v)
			}
			return m, nil
		case "s":
			if v, ok := m.current(); ok {
				return m, m.mutateCmd("skip", v)
			}
			return m, nil
		case "u":
			if v, ok := m.current(); ok {
				return m, m.mutateCmd("reset", v)
			}
			return m, nil
		}
	}
	return m, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (m boardModel) current() (engine.ResolvedTask, bool) {
	if m.selected < 0 || m.selected >= len(m.views) {
		return engine.ResolvedTask{}, false
	}
	return m.views[m.selected], true
}

func (m boardModel) View() string {
	var b strings.Builder

	header := ui.Heading(ui.IconCalendar, "Today — "+m.date.Format("Mon, 02 Jan 2006"))
	if m.location != "" {
		header += " " + ui.Muted.Render("("+ui.IconPin+" "+m.location+")")
	}
	b.WriteString(header + "\n\n")

	switch {
	case m.loading:
		b.WriteString(ui.Muted.Render("Loading…") + "\n")
	case m.err != nil:
		b.WriteString(ui.Bad.Render("Error: "+m.err.Error()) + "\n")
	case len(m.views) == 0:
		b.WriteString(ui.Muted.Render("Nothing scheduled today.") + "\n")
	default:
		done := 0
		for _, v := range m.views {
			if engine.Status(v.Record.Status) == engine.StatusCompleted {
				done++
			}
		}
		b.WriteString(ui.Muted.Render(fmt.Sprintf("%d/%d completed", done, len(m.views))) + "\n\n")

		for i, v := range m.views {
			line := fmt.Sprintf("%s %s", ui.StatusIcon(v.Record.Status), v.Task.Title)
			if v.Task.StreakEnabled && v.Streak > 0 {
				line += " " + ui.Muted.Render(fmt.Sprintf("%s %d", ui.IconStreak, v.Streak))
			}
			if v.Record.Value != nil {
				line += " " + ui.Muted.Render("["+*v.Record.Value+"]")
			}
			if i == m.selected {
				line = ui.SelectedRow.Render("› " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n" + ui.Muted.Render(m.lastLog) + "\n")
	b.WriteString(ui.Muted.Render("↑/↓ move · c complete · s skip · u reset · r refresh · q quit") + "\n")
	return b.String()
}
