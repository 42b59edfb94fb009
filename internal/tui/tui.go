package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/idilsaglam/expenses/internal/model"
	"github.com/idilsaglam/expenses/internal/tracker"
	"github.com/rs/zerolog"
)

// Options configure the interactive screen.
type Options struct {
	Currency string
	Logger   zerolog.Logger
	In       io.Reader
	Out      io.Writer
}

// expenseRow adapts model.Expense to bubbles/list.Item
type expenseRow struct {
	expense  model.Expense
	currency string
}

func (r expenseRow) FilterValue() string {
	return r.expense.Name + " " + string(r.expense.Category)
}

type keyMap struct {
	add    key.Binding
	delete key.Binding
	undo   key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		delete: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		undo:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) short() []key.Binding { return []key.Binding{k.add, k.delete, k.undo} }

type undoState struct {
	index   int
	expense model.Expense
}

type screen struct {
	tracker  *tracker.Tracker
	currency string
	log      zerolog.Logger

	list   list.Model
	keys   keyMap
	width  int
	height int

	// Inline add
	adding bool
	form   addForm

	// Undo support (single-level)
	undo   *undoState
	status string
}

// Custom delegate: one line per expense, alternating row shading.
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(expenseRow)
	if !ok {
		return
	}
	e := r.expense
	line := fmt.Sprintf("%s, %s, %s",
		e.Name,
		amountStyle.Render(model.FormatAmount(e.Amount, r.currency)),
		categoryStyle(e.Category).Render(string(e.Category)),
	)

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}

	row := oddRowStyle
	if index%2 == 0 {
		row = evenRowStyle
	}
	if width := m.Width() - 2; width > 0 {
		row = row.Width(width)
	}
	fmt.Fprint(w, prefix+row.Render(line))
}

func newScreen(t *tracker.Tracker, opt Options) screen {
	l := list.New(nil, rowDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("expense", "expenses")

	keys := newKeyMap()
	l.AdditionalShortHelpKeys = keys.short
	l.AdditionalFullHelpKeys = keys.short

	m := screen{
		tracker:  t,
		currency: opt.Currency,
		log:      opt.Logger,
		list:     l,
		keys:     keys,
		width:    80,
		height:   24,
		form:     newAddForm(),
	}
	m.refresh()
	m.layout()
	return m
}

// Run starts the Bubble Tea screen over t and blocks until the user quits.
func Run(t *tracker.Tracker, opt Options) error {
	popts := []tea.ProgramOption{tea.WithAltScreen()}
	if opt.In != nil && opt.In != io.Reader(os.Stdin) {
		popts = append(popts, tea.WithInput(opt.In))
	}
	if opt.Out != nil && opt.Out != io.Writer(os.Stdout) {
		popts = append(popts, tea.WithOutput(opt.Out))
	}

	p := tea.NewProgram(newScreen(t, opt), popts...)
	_, err := p.Run()
	return err
}

// refresh re-reads the tracker after every mutation.
func (m *screen) refresh() tea.Cmd {
	rows := make([]list.Item, 0, m.tracker.Len())
	for _, e := range m.tracker.Expenses() {
		rows = append(rows, expenseRow{expense: e, currency: m.currency})
	}
	cmd := m.list.SetItems(rows)
	m.list.Title = fmt.Sprintf("%s   %s %s",
		titleStyle.Render("Expenses"),
		accentStyle.Render("Total"),
		amountStyle.Render(model.FormatAmount(m.tracker.Total(), m.currency)),
	)
	return cmd
}

func (m *screen) layout() {
	h := m.height - 6
	if m.adding {
		h -= lipgloss.Height(m.form.view())
	}
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
}

func (m screen) Init() tea.Cmd { return nil }

func (m screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	if m.adding {
		return m.updateForm(msg)
	}

	// While the filter prompt is open every key belongs to it.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.keys.quit):
			return m, tea.Quit
		case key.Matches(km, m.keys.add):
			m.adding = true
			m.status = ""
			cmd := m.form.reset()
			m.layout()
			return m, cmd
		case key.Matches(km, m.keys.delete):
			return m.deleteSelected()
		case key.Matches(km, m.keys.undo):
			return m.undoDelete()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m screen) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			m.adding = false
			m.form.name.Blur()
			m.form.amount.Blur()
			m.layout()
			return m, nil
		case "enter":
			return m.submit()
		}
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// submit hands the raw form values to the tracker. A rejected expense leaves
// the list as it was and keeps the form filled in.
func (m screen) submit() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.form.name.Value())
	err := m.tracker.Add(m.form.name.Value(), m.form.amount.Value(), m.form.categoryValue())
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			m.log.Debug().Str("field", string(verr.Field)).Err(verr.Err).Msg("expense rejected")
			m.form.err = verr.Error()
			return m, m.form.focusField(verr.Field)
		}
		m.form.err = err.Error()
		return m, nil
	}

	m.status = successStyle.Render("✔ added " + name)
	m.clearFilter()
	cmds := []tea.Cmd{m.refresh(), m.form.reset()}
	m.list.Select(m.tracker.Len() - 1)
	return m, tea.Batch(cmds...)
}

func (m screen) deleteSelected() (tea.Model, tea.Cmd) {
	r, ok := m.list.SelectedItem().(expenseRow)
	if !ok {
		return m, nil
	}
	idx := m.tracker.IndexOf(r.expense)
	if !m.tracker.Remove(r.expense) {
		return m, nil
	}
	m.undo = &undoState{index: idx, expense: r.expense}
	m.status = mutedStyle.Render("removed " + r.expense.Name + " • u to undo")
	return m, m.refresh()
}

func (m screen) undoDelete() (tea.Model, tea.Cmd) {
	if m.undo == nil {
		return m, nil
	}
	u := *m.undo
	m.undo = nil
	m.tracker.Restore(u.index, u.expense)
	m.status = mutedStyle.Render("restored " + u.expense.Name)
	m.clearFilter()
	cmd := m.refresh()
	m.list.Select(u.index)
	return m, cmd
}

// clearFilter drops an applied filter. List indexes only match tracker
// indexes while the list is unfiltered.
func (m *screen) clearFilter() {
	if m.list.FilterState() != list.Unfiltered {
		m.list.ResetFilter()
	}
}

func (m screen) View() string {
	var b strings.Builder
	if m.tracker.Empty() {
		b.WriteString(m.list.Title + "\n")
		b.WriteString(emptyStyle.Render("Empty list") + "\n")
		b.WriteString(helpStyle.Render("a add • q quit"))
	} else {
		b.WriteString(m.list.View())
	}
	if m.adding {
		b.WriteString("\n" + m.form.view())
	}
	b.WriteString("\n" + m.breakdown())
	if m.status != "" {
		b.WriteString("\n" + m.status)
	}
	return panelString(b.String())
}

// breakdown renders per-category sums under the list.
func (m screen) breakdown() string {
	var parts []string
	for _, ct := range m.tracker.TotalsByCategory() {
		parts = append(parts, categoryStyle(ct.Category).Render(string(ct.Category))+" "+
			model.FormatAmount(ct.Total, m.currency))
	}
	return strings.Join(parts, mutedStyle.Render(" • "))
}
