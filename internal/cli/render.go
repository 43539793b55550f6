package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/notice"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/shell"
)

type Styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
}

var styles = Styles{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
	Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
	Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
	Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	Header:  lipgloss.NewStyle().Bold(true).Padding(0, 1),
	Cell:    lipgloss.NewStyle().Padding(0, 1),
}

func noticeStyle(l notice.Level) lipgloss.Style {
	switch l {
	case notice.LevelSuccess:
		return styles.Success
	case notice.LevelError:
		return styles.Error
	default:
		return styles.Info
	}
}

// renderNotices reports whether anything was written.
func renderNotices(w io.Writer, ns []notice.Notice) bool {
	for _, n := range ns {
		fmt.Fprintln(w, noticeStyle(n.Level).Render(n.Text))
	}
	return len(ns) > 0
}

func renderFrame(w io.Writer, f shell.Frame) {
	fmt.Fprintln(w, styles.Title.Render(f.Greeting))
	fmt.Fprintln(w, styles.Muted.Render("role: "+f.Role.String()))
	for _, item := range f.Navigation {
		fmt.Fprintf(w, "  %s %s\n", item.Label, styles.Muted.Render(item.Path))
	}
}

func cellStyle(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return styles.Header
	}
	return styles.Cell
}

func renderBooks(w io.Writer, books []model.Book) {
	if len(books) == 0 {
		fmt.Fprintln(w, styles.Muted.Render("No books found"))
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(cellStyle).
		Headers("ID", "ISBN", "TITLE", "AUTHOR", "AVAILABLE")
	for _, b := range books {
		t.Row(b.ID, b.ISBN, b.Title, b.Author,
			strconv.Itoa(b.AvailableBooks)+"/"+strconv.Itoa(b.Quantity))
	}
	fmt.Fprintln(w, t.Render())
}

func renderBook(w io.Writer, b model.Book) {
	fmt.Fprintf(w, "%s %s\n", styles.Title.Render(b.Title), styles.Muted.Render("by "+b.Author))
	fmt.Fprintf(w, "  isbn %s  available %d/%d\n", b.ISBN, b.AvailableBooks, b.Quantity)
}

func loanBook(l model.Loan) string {
	if l.Book.ISBN != "" {
		return l.Book.ISBN
	}
	return l.Book.ID
}

func formatDate(l model.Loan, returned bool) string {
	t := l.BorrowDate
	if returned {
		t = l.ReturnDate
	}
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

func renderHistory(w io.Writer, loans []model.Loan) {
	if len(loans) == 0 {
		fmt.Fprintln(w, styles.Muted.Render("No borrow history"))
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(cellStyle).
		Headers("LOAN", "BOOK", "BORROWED", "RETURNED")
	for _, l := range loans {
		returned := "-"
		if l.Returned {
			returned = formatDate(l, true)
		}
		t.Row(l.ID, loanBook(l), formatDate(l, false), returned)
	}
	fmt.Fprintln(w, t.Render())
}
