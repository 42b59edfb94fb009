// Package tracker holds the in-memory list of expenses for one session.
//
// The Tracker is not safe for concurrent use. Callers drive it from a single
// event loop (the Bubble Tea Update function or the batch reader).
package tracker

import (
	"github.com/idilsaglam/expenses/internal/model"
	"github.com/shopspring/decimal"
)

// ChangeKind tells observers which mutation happened.
type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
	Restored
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Restored:
		return "restored"
	}
	return "unknown"
}

// Change describes one successful mutation.
type Change struct {
	Kind    ChangeKind
	Expense model.Expense
	Index   int // position the expense was added at or removed from
	Len     int // length after the change
}

// CategoryTotal is the sum of one category's amounts.
type CategoryTotal struct {
	Category model.Category
	Total    decimal.Decimal
	Count    int
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithObserver registers fn as a change observer at construction time.
func WithObserver(fn func(Change)) Option {
	return func(t *Tracker) { t.OnChange(fn) }
}

// Tracker owns the ordered expense sequence. Insertion order is display order.
type Tracker struct {
	items     []model.Expense
	observers []func(Change)
}

func New(opts ...Option) *Tracker {
	t := &Tracker{items: []model.Expense{}}
	for _, o := range opts {
		o(t)
	}
	return t
}

// OnChange registers fn. Observers run synchronously, in registration order,
// after every successful mutation.
func (t *Tracker) OnChange(fn func(Change)) {
	if fn != nil {
		t.observers = append(t.observers, fn)
	}
}

func (t *Tracker) notify(c Change) {
	for _, fn := range t.observers {
		fn(c)
	}
}

// Add validates the raw input and appends the expense. On failure the list is
// left untouched and the *model.ValidationError is returned.
func (t *Tracker) Add(name, amount, category string) error {
	e, err := model.NewExpense(name, amount, category)
	if err != nil {
		return err
	}
	t.items = append(t.items, e)
	t.notify(Change{Kind: Added, Expense: e, Index: len(t.items) - 1, Len: len(t.items)})
	return nil
}

// Remove deletes the first expense structurally equal to e. It reports
// whether anything was removed.
func (t *Tracker) Remove(e model.Expense) bool {
	idx := t.IndexOf(e)
	if idx < 0 {
		return false
	}
	removed := t.items[idx]
	t.items = append(t.items[:idx], t.items[idx+1:]...)
	t.notify(Change{Kind: Removed, Expense: removed, Index: idx, Len: len(t.items)})
	return true
}

// Restore puts e back at index, clamped to the current bounds. It backs the
// single-level undo of a delete.
func (t *Tracker) Restore(index int, e model.Expense) {
	if index < 0 {
		index = 0
	}
	if index > len(t.items) {
		index = len(t.items)
	}
	t.items = append(t.items, model.Expense{})
	copy(t.items[index+1:], t.items[index:])
	t.items[index] = e
	t.notify(Change{Kind: Restored, Expense: e, Index: index, Len: len(t.items)})
}

// IndexOf returns the position of the first expense equal to e, or -1.
func (t *Tracker) IndexOf(e model.Expense) int {
	for i, it := range t.items {
		if it.Equal(e) {
			return i
		}
	}
	return -1
}

// Total sums every current amount. It is recomputed on each call.
func (t *Tracker) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range t.items {
		sum = sum.Add(it.Amount)
	}
	return sum
}

// TotalsByCategory returns one entry per category, in category order,
// including categories with no expenses.
func (t *Tracker) TotalsByCategory() []CategoryTotal {
	cats := model.Categories()
	out := make([]CategoryTotal, len(cats))
	pos := make(map[model.Category]int, len(cats))
	for i, c := range cats {
		out[i] = CategoryTotal{Category: c, Total: decimal.Zero}
		pos[c] = i
	}
	for _, it := range t.items {
		i, ok := pos[it.Category]
		if !ok {
			continue
		}
		out[i].Total = out[i].Total.Add(it.Amount)
		out[i].Count++
	}
	return out
}

// Expenses returns a copy of the current sequence.
func (t *Tracker) Expenses() []model.Expense {
	out := make([]model.Expense, len(t.items))
	copy(out, t.items)
	return out
}

// At returns the expense at index i.
func (t *Tracker) At(i int) (model.Expense, bool) {
	if i < 0 || i >= len(t.items) {
		return model.Expense{}, false
	}
	return t.items[i], true
}

func (t *Tracker) Len() int    { return len(t.items) }
func (t *Tracker) Empty() bool { return len(t.items) == 0 }
