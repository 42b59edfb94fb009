package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/idilsaglam/expenses/internal/model"
	"github.com/idilsaglam/expenses/internal/tracker"
	"github.com/idilsaglam/expenses/internal/tui"
	"github.com/idilsaglam/expenses/internal/ui"
	"github.com/rs/zerolog"
)

// Options carry settings from root flags and config into subcommands.
type Options struct {
	Currency string
	Logger   zerolog.Logger

	In       io.Reader
	Out, Err io.Writer
}

func (o *Options) defaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		return doInteractive(opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0

	case "tui":
		return doInteractive(opt)

	case "batch":
		if len(a) > 1 {
			ui.Fail(opt.Err, "usage: expenses batch [file]")
			return 2
		}
		src := "-"
		if len(a) == 1 {
			src = a[0]
		}
		return doBatch(src, opt)
	}

	ui.Fail(opt.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `expenses - track what you spend in one sitting

Usage:
  expenses [flags] [subcommand]

Subcommands:
  tui                Interactive screen (default)
  batch [file]       Read commands from file or stdin ("-")
  help               Show this help

Batch commands:
  add <name...> <amount> <category>   Append an expense (Food, Transport, Other)
  rm <index>                          Remove the expense at 1-based index
  ls                                  Print the list with totals
  total                               Print the running total

Flags:
  --color / --no-color   Force or disable colour in batch output

Examples:
  expenses
  printf 'add Coffee 12.5 Food\nadd Bus 3 Transport\nls\n' | expenses batch
`)
}

// newTracker wires the session logger to every list mutation.
func newTracker(log zerolog.Logger) *tracker.Tracker {
	return tracker.New(tracker.WithObserver(func(c tracker.Change) {
		log.Info().
			Str("change", c.Kind.String()).
			Str("name", c.Expense.Name).
			Str("amount", c.Expense.Amount.String()).
			Str("category", string(c.Expense.Category)).
			Int("index", c.Index).
			Int("len", c.Len).
			Msg("expense list changed")
	}))
}

// -------------- subcommand impls ----------------

func doInteractive(opt Options) int {
	t := newTracker(opt.Logger)
	opt.Logger.Debug().Msg("starting interactive session")
	if err := tui.Run(t, tui.Options{
		Currency: opt.Currency,
		Logger:   opt.Logger,
		In:       opt.In,
		Out:      opt.Out,
	}); err != nil {
		opt.Logger.Error().Err(err).Msg("interactive session failed")
		ui.Fail(opt.Err, "tui: "+err.Error())
		return 1
	}
	opt.Logger.Debug().Int("len", t.Len()).Str("total", t.Total().String()).Msg("interactive session ended")
	return 0
}

func doBatch(src string, opt Options) int {
	in := opt.In
	if src != "-" {
		f, err := os.Open(src)
		if err != nil {
			ui.Fail(opt.Err, "open: "+err.Error())
			return 1
		}
		defer f.Close()
		in = f
	}

	s := &session{t: newTracker(opt.Logger), opt: opt}
	sc := bufio.NewScanner(in)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := s.exec(line); err != nil {
			s.failed++
			opt.Logger.Debug().Err(err).Int("line", lineNo).Msg("batch command rejected")
			ui.Fail(opt.Err, fmt.Sprintf("line %d: %s", lineNo, err))
		}
	}
	if err := sc.Err(); err != nil {
		ui.Fail(opt.Err, "read: "+err.Error())
		return 1
	}
	if s.failed > 0 {
		return 2
	}
	return 0
}

// -------------- batch session --------------

var errUsage = errors.New("usage")

type session struct {
	t      *tracker.Tracker
	opt    Options
	failed int
}

func (s *session) exec(line string) error {
	fields := strings.Fields(line)
	cmd, a := fields[0], fields[1:]

	switch cmd {
	case "add":
		if len(a) < 3 {
			return fmt.Errorf("%w: add <name...> <amount> <category>", errUsage)
		}
		name := strings.Join(a[:len(a)-2], " ")
		if err := s.t.Add(name, a[len(a)-2], a[len(a)-1]); err != nil {
			return fmt.Errorf("add: %w", err)
		}
		ui.OK(s.opt.Out, "added "+name)
		return nil

	case "rm":
		if len(a) != 1 {
			return fmt.Errorf("%w: rm <index>", errUsage)
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			return fmt.Errorf("rm: not a number: %s", a[0])
		}
		e, ok := s.t.At(n - 1)
		if !ok {
			return fmt.Errorf("rm: index out of range: have %d, got %d", s.t.Len(), n)
		}
		s.t.Remove(e)
		ui.OK(s.opt.Out, "removed "+e.Name)
		return nil

	case "ls":
		if len(a) != 0 {
			return fmt.Errorf("%w: ls", errUsage)
		}
		ui.Panel(s.opt.Out, listLines(s.t, s.opt.Currency))
		return nil

	case "total":
		if len(a) != 0 {
			return fmt.Errorf("%w: total", errUsage)
		}
		fmt.Fprintln(s.opt.Out, "Total: "+model.FormatAmount(s.t.Total(), s.opt.Currency))
		return nil
	}

	return fmt.Errorf("unknown command: %s", cmd)
}

// -------------- rendering helpers --------------

func listLines(t *tracker.Tracker, currency string) []string {
	p := ui.Current()
	total := t.Total()
	header := fmt.Sprintf("%s  %s %s  %s %d",
		ui.C(p.Title, "Expenses"),
		ui.C(p.Accent, "Total"), ui.C(p.Amount, model.FormatAmount(total, currency)),
		ui.C(p.Accent, "Items"), t.Len(),
	)

	lines := []string{header, ""}
	if t.Empty() {
		lines = append(lines, ui.C(p.Muted, "Empty list"))
		return lines
	}

	for i, e := range t.Expenses() {
		name := e.Name
		if r := []rune(name); len(r) > 60 {
			name = string(r[:57]) + "..."
		}
		lines = append(lines, fmt.Sprintf("%s %s, %s, %s",
			ui.C(p.Muted, fmt.Sprintf("%2d.", i+1)),
			name,
			model.FormatAmount(e.Amount, currency),
			ui.C(ui.CategoryColor(e.Category), string(e.Category)),
		))
	}

	lines = append(lines, "")
	for _, ct := range t.TotalsByCategory() {
		lines = append(lines, fmt.Sprintf("%s %s  %s",
			ui.C(ui.CategoryColor(ct.Category), fmt.Sprintf("%-9s", ct.Category)),
			ui.C(p.Muted, ui.ShareBar(ct.Total, total, 20)),
			model.FormatAmount(ct.Total, currency),
		))
	}
	return lines
}
