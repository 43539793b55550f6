package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/notice"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/shell"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.form != nil {
		return m.form.View()
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.deps.Greeting))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.rows) == 0:
		b.WriteString(m.styles.Muted.Render("Loading books..."))
	case m.deps.Books.View().Err() != "" && len(m.rows) == 0:
		b.WriteString(m.styles.Error.Render(m.deps.Books.View().Err()))
		b.WriteString(m.styles.Muted.Render("  (R to retry)"))
	case len(m.rows) == 0:
		b.WriteString(m.styles.Muted.Render("No books found"))
	default:
		b.WriteString(m.table.View())
	}
	b.WriteString("\n")

	if m.confirm != nil {
		b.WriteString(m.styles.Error.Render("Delete " + m.confirm.Title + "? (y/N)"))
		b.WriteString("\n")
	}
	for _, n := range m.status {
		b.WriteString(m.noticeStyle(n).Render(n.Text))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render(m.help()))
	return b.String()
}

func (m Model) noticeStyle(n notice.Notice) lipgloss.Style {
	switch n.Level {
	case notice.LevelSuccess:
		return m.styles.Success
	case notice.LevelError:
		return m.styles.Error
	default:
		return m.styles.Info
	}
}

func (m Model) help() string {
	keys := []string{"/ search", "R reload"}
	for _, a := range shell.BookActions(m.deps.Role) {
		switch a {
		case shell.ActionBorrow:
			keys = append(keys, "b borrow")
		case shell.ActionReturn:
			keys = append(keys, "r return")
		case shell.ActionEdit:
			keys = append(keys, "e edit")
		case shell.ActionDelete:
			keys = append(keys, "d delete")
		}
	}
	return strings.Join(append(keys, "q quit"), " • ")
}

// Run shows the browse screen until the user quits.
func Run(ctx context.Context, d Deps) error {
	p := tea.NewProgram(NewModel(ctx, d), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
