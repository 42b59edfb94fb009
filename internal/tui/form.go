package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/idilsaglam/expenses/internal/model"
)

const (
	focusName = iota
	focusAmount
	focusCategory
	focusCount
)

// addForm is the inline "new expense" form: two text inputs and a category
// picker over the fixed category set.
type addForm struct {
	name     textinput.Model
	amount   textinput.Model
	category int // index into model.Categories(), -1 while unset
	focus    int
	err      string
}

func newAddForm() addForm {
	name := textinput.New()
	name.Prompt = "> "
	name.Placeholder = "What did you pay for?"
	name.CharLimit = 120

	amount := textinput.New()
	amount.Prompt = "> "
	amount.Placeholder = "12.50"
	amount.CharLimit = 20

	return addForm{name: name, amount: amount, category: -1}
}

// reset clears every field and focuses the name input.
func (f *addForm) reset() tea.Cmd {
	f.name.SetValue("")
	f.amount.SetValue("")
	f.category = -1
	f.err = ""
	return f.setFocus(focusName)
}

func (f *addForm) setFocus(i int) tea.Cmd {
	f.focus = (i + focusCount) % focusCount
	f.name.Blur()
	f.amount.Blur()
	switch f.focus {
	case focusName:
		return f.name.Focus()
	case focusAmount:
		return f.amount.Focus()
	}
	return nil
}

// focusField moves focus to the input a validation error points at.
func (f *addForm) focusField(field model.Field) tea.Cmd {
	switch field {
	case model.FieldAmount:
		return f.setFocus(focusAmount)
	case model.FieldCategory:
		return f.setFocus(focusCategory)
	}
	return f.setFocus(focusName)
}

func (f addForm) categoryValue() string {
	cats := model.Categories()
	if f.category < 0 || f.category >= len(cats) {
		return ""
	}
	return string(cats[f.category])
}

func (f *addForm) cycleCategory(delta int) {
	n := len(model.Categories())
	if f.category < 0 {
		if delta > 0 {
			f.category = 0
		} else {
			f.category = n - 1
		}
		return
	}
	f.category = (f.category + delta + n) % n
}

// update handles keys that stay inside the form. Submit and cancel are
// handled by the screen.
func (f addForm) update(msg tea.Msg) (addForm, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "tab", "down":
			return f, f.setFocus(f.focus + 1)
		case "shift+tab", "up":
			return f, f.setFocus(f.focus - 1)
		}
		if f.focus == focusCategory {
			switch km.String() {
			case "right", "l", " ":
				f.cycleCategory(1)
			case "left", "h":
				f.cycleCategory(-1)
			case "1", "2", "3":
				f.category = int(km.String()[0] - '1')
			}
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case focusName:
		f.name, cmd = f.name.Update(msg)
	case focusAmount:
		f.amount, cmd = f.amount.Update(msg)
	}
	return f, cmd
}

func (f addForm) view() string {
	label := func(i int, s string) string {
		if f.focus == i {
			return focusLabelStyle.Render(s)
		}
		return labelStyle.Render(s)
	}

	var chips []string
	for i, c := range model.Categories() {
		st := chipStyle
		if i == f.category {
			st = chipActiveStyle
		}
		chips = append(chips, st.Inherit(categoryStyle(c)).Render(string(c)))
	}
	picker := strings.Join(chips, " ")
	if f.category < 0 {
		picker += mutedStyle.Render("  (←/→ to pick)")
	}

	title := titleStyle.Render("Add expense")
	if f.err != "" {
		title += "  " + errorStyle.Render(f.err)
	}

	lines := []string{
		title,
		label(focusName, "Name") + f.name.View(),
		label(focusAmount, "Amount") + f.amount.View(),
		label(focusCategory, "Category") + picker,
		helpStyle.Render("tab next field • enter add • esc close"),
	}
	return boxStyle().Render(strings.Join(lines, "\n"))
}
