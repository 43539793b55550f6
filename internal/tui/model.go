package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/catalog"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/debounce"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/loan"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/notice"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/role"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/shell"
)

// Deps are the clients one browse session works with. Books and Loans must
// share a projection and report to Notices.
type Deps struct {
	Books    *catalog.Client
	Loans    *loan.Client
	Notices  *notice.Recorder
	Role     role.Role
	Greeting string
	Debounce time.Duration
}

// ListResultMsg carries a settled search.
type ListResultMsg struct {
	Query string
	Err   error
}

// ActionDoneMsg follows a borrow, return, edit or delete.
type ActionDoneMsg struct {
	Action shell.Action
	Err    error
}

type editState struct {
	isbn   string
	title  string
	author string
	qty    string
	avail  string
}

// Model is the browse screen: a debounced search box over the catalog
// with the per-book actions of the current role.
type Model struct {
	ctx      context.Context
	deps     Deps
	search   *debounce.Debouncer
	results  chan ListResultMsg
	input    textinput.Model
	table    table.Model
	rows     []model.Book
	status   []notice.Notice
	loading  bool
	confirm  *model.Book
	form     *huh.Form
	edit     *editState
	width    int
	quitting bool
	styles   Styles
}

type Styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginBottom(1),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

func NewModel(ctx context.Context, d Deps) Model {
	in := textinput.New()
	in.Placeholder = "search title, author or ISBN"
	in.Prompt = "/ "

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ISBN", Width: 16},
			{Title: "Title", Width: 32},
			{Title: "Author", Width: 22},
			{Title: "Available", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return Model{
		ctx:     ctx,
		deps:    d,
		search:  debounce.New(d.Debounce),
		results: make(chan ListResultMsg, 1),
		input:   in,
		table:   t,
		loading: true,
		styles:  DefaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(""), m.waitForResult())
}

// fetch lists immediately, bypassing the debouncer. Like schedule it
// delivers through the results channel.
func (m Model) fetch(query string) tea.Cmd {
	books, results, ctx := m.deps.Books, m.results, m.ctx
	return func() tea.Msg {
		deliver(ctx, books, results, query)
		return nil
	}
}

func deliver(ctx context.Context, books *catalog.Client, results chan<- ListResultMsg, query string) {
	_, err := books.List(ctx, query)
	if errors.Is(err, catalog.ErrStale) {
		return
	}
	select {
	case results <- ListResultMsg{Query: query, Err: err}:
	case <-ctx.Done():
	}
}

// schedule lists query once typing pauses. The result arrives through
// waitForResult; superseded lists are dropped.
func (m Model) schedule(query string) {
	books, results, ctx := m.deps.Books, m.results, m.ctx
	m.search.Trigger(func() {
		deliver(ctx, books, results, query)
	})
}

func (m Model) waitForResult() tea.Cmd {
	results, ctx := m.results, m.ctx
	return func() tea.Msg {
		select {
		case msg := <-results:
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}

func (m Model) selected() (model.Book, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return model.Book{}, false
	}
	return m.rows[i], true
}

func (m *Model) refresh() {
	m.rows = m.deps.Books.View().Books()
	rows := make([]table.Row, 0, len(m.rows))
	for _, b := range m.rows {
		rows = append(rows, table.Row{
			b.ISBN, b.Title, b.Author,
			strconv.Itoa(b.AvailableBooks) + "/" + strconv.Itoa(b.Quantity),
		})
	}
	m.table.SetRows(rows)
	if n := m.deps.Notices.Drain(); len(n) > 0 {
		m.status = n
	}
}

func (m Model) allowed(a shell.Action) bool {
	return shell.Allowed(m.deps.Role, a)
}

func (m Model) run(a shell.Action, f func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return ActionDoneMsg{Action: a, Err: f(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case ListResultMsg:
		m.loading = false
		m.refresh()
		return m, m.waitForResult()
	case ActionDoneMsg:
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.confirm != nil {
		return m.updateConfirm(key)
	}
	if m.input.Focused() {
		return m.updateSearch(key)
	}
	return m.updateTable(key)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.search.Cancel()
	m.deps.Books.Close()
	return m, tea.Quit
}

func (m Model) updateSearch(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.input.Blur()
		m.table.Focus()
		return m, nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	if q := m.input.Value(); q != before {
		m.loading = true
		m.schedule(strings.TrimSpace(q))
	}
	return m, cmd
}

func (m Model) updateTable(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		return m.quit()
	case "/":
		m.table.Blur()
		return m, m.input.Focus()
	case "R":
		m.loading = true
		return m, m.fetch(strings.TrimSpace(m.input.Value()))
	case "b":
		if b, ok := m.selected(); ok && m.allowed(shell.ActionBorrow) {
			loans := m.deps.Loans
			return m, m.run(shell.ActionBorrow, func(ctx context.Context) error { return loans.Borrow(ctx, b) })
		}
		return m, nil
	case "r":
		if b, ok := m.selected(); ok && m.allowed(shell.ActionReturn) {
			loans := m.deps.Loans
			return m, m.run(shell.ActionReturn, func(ctx context.Context) error {
				_, err := loans.Return(ctx, b)
				return err
			})
		}
		return m, nil
	case "d":
		if b, ok := m.selected(); ok && m.allowed(shell.ActionDelete) {
			m.confirm = &b
		}
		return m, nil
	case "e":
		if b, ok := m.selected(); ok && m.allowed(shell.ActionEdit) {
			return m.openEdit(b)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(key)
	return m, cmd
}

func (m Model) updateConfirm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := *m.confirm
	m.confirm = nil
	if key.String() != "y" {
		return m, nil
	}
	books := m.deps.Books
	return m, m.run(shell.ActionDelete, func(ctx context.Context) error { return books.Delete(ctx, b.ISBN) })
}

func (m Model) openEdit(b model.Book) (tea.Model, tea.Cmd) {
	p := catalog.EditForm(b)
	m.edit = &editState{
		isbn:   b.ISBN,
		title:  p.Title,
		author: p.Author,
		qty:    strconv.Itoa(p.Quantity),
		avail:  strconv.Itoa(p.AvailableBooks),
	}
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Title").Value(&m.edit.title),
		huh.NewInput().Title("Author").Value(&m.edit.author),
		huh.NewInput().Title("Quantity").Value(&m.edit.qty).Validate(number),
		huh.NewInput().Title("Available").Value(&m.edit.avail).Validate(number),
	).Title("Edit " + b.Title))
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		m.form, m.edit = nil, nil
		return m, nil
	}
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		edit := m.edit
		m.form, m.edit = nil, nil
		return m, m.submitEdit(edit)
	case huh.StateAborted:
		m.form, m.edit = nil, nil
		return m, nil
	}
	return m, cmd
}

func (m Model) submitEdit(e *editState) tea.Cmd {
	qty, _ := strconv.Atoi(e.qty)
	avail, _ := strconv.Atoi(e.avail)
	patch := model.BookPatch{
		Title:          strings.TrimSpace(e.title),
		Author:         strings.TrimSpace(e.author),
		Quantity:       qty,
		AvailableBooks: avail,
	}
	books := m.deps.Books
	return m.run(shell.ActionEdit, func(ctx context.Context) error {
		_, err := books.Update(ctx, e.isbn, patch)
		return err
	})
}

func number(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return errors.New("must be a number")
	}
	return nil
}
