package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/expenses/internal/logging"
	"github.com/idilsaglam/expenses/internal/ui"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runBatch(t *testing.T, script string, args ...string) (int, string, string) {
	t.Helper()
	ui.SetColorForcing(false, true)
	t.Cleanup(func() { ui.SetColorForcing(false, false) })

	var out, errOut bytes.Buffer
	code := Run(append([]string{"batch"}, args...), Options{
		Currency: "PLN",
		Logger:   zerolog.Nop(),
		In:       strings.NewReader(script),
		Out:      &out,
		Err:      &errOut,
	})
	return code, out.String(), errOut.String()
}

func TestBatchAddRemoveTotal(t *testing.T) {
	code, out, errOut := runBatch(t, `
# running total example
add Coffee 12.5 Food
add Bus 3 Transport
total
rm 1
total
`)
	assert.Equal(t, 0, code)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "✔ added Coffee")
	assert.Contains(t, out, "Total: 15.50 PLN")
	assert.Contains(t, out, "✔ removed Coffee")
	assert.Contains(t, out, "Total: 3.00 PLN")
}

func TestBatchMultiWordName(t *testing.T) {
	code, out, _ := runBatch(t, "add Train to Krakow 49,90 transport\nls\n")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Train to Krakow, 49.90 PLN, Transport")
}

func TestBatchInvalidLinesLeaveListUnchanged(t *testing.T) {
	code, out, errOut := runBatch(t, strings.Join([]string{
		"add Coffee 12.5 Food",
		"add Tea abc Food",
		"add Tea 0 Food",
		"add Tea 2 Rent",
		"add Tea 2",
		"rm 7",
		"rm one",
		"bogus",
		"total",
	}, "\n"))

	assert.Equal(t, 2, code)
	assert.Contains(t, out, "Total: 12.50 PLN")
	assert.Contains(t, errOut, "line 2: add: amount: amount is not a number")
	assert.Contains(t, errOut, "line 3: add: amount: amount must be larger than zero")
	assert.Contains(t, errOut, `line 4: add: category: unknown category: "Rent"`)
	assert.Contains(t, errOut, "line 5: usage: add <name...> <amount> <category>")
	assert.Contains(t, errOut, "line 6: rm: index out of range: have 1, got 7")
	assert.Contains(t, errOut, "line 7: rm: not a number: one")
	assert.Contains(t, errOut, "line 8: unknown command: bogus")
}

func TestBatchListEmpty(t *testing.T) {
	code, out, _ := runBatch(t, "ls\n")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Empty list")
	assert.Contains(t, out, "Total 0.00 PLN")
}

func TestBatchListShowsOrderAndBreakdown(t *testing.T) {
	code, out, _ := runBatch(t, "add Coffee 12.5 Food\nadd Bus 3 Transport\nls\n")
	require.Equal(t, 0, code)

	coffee := strings.Index(out, " 1. Coffee, 12.50 PLN, Food")
	bus := strings.Index(out, " 2. Bus, 3.00 PLN, Transport")
	require.NotEqual(t, -1, coffee)
	require.NotEqual(t, -1, bus)
	assert.Less(t, coffee, bus)

	assert.Contains(t, out, "Food      ████████████████░░░░  81%  12.50 PLN")
	assert.Contains(t, out, "Other     ░░░░░░░░░░░░░░░░░░░░   0%  0.00 PLN")
}

func TestBatchFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.txt")
	require.NoError(t, os.WriteFile(path, []byte("add Coffee 12.5 Food\ntotal\n"), 0o644))

	code, out, _ := runBatch(t, "", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Total: 12.50 PLN")
}

func TestBatchMissingFile(t *testing.T) {
	code, _, errOut := runBatch(t, "", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "open:")
}

func TestBatchLogsChanges(t *testing.T) {
	var logs bytes.Buffer
	var out bytes.Buffer
	code := Run([]string{"batch"}, Options{
		Currency: "PLN",
		Logger:   logging.NewWriter(&logs, logging.Options{Level: "info"}),
		In:       strings.NewReader("add Coffee 12.5 Food\nrm 1\n"),
		Out:      &out,
		Err:      &out,
	})
	require.Equal(t, 0, code)
	assert.Contains(t, logs.String(), `"change":"added"`)
	assert.Contains(t, logs.String(), `"change":"removed"`)
	assert.Contains(t, logs.String(), `"len":0`)
}

func TestUnknownSubcommand(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"sync"}, Options{Out: &out, Err: &errOut})
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut.String(), "unknown subcommand: sync")
	assert.Contains(t, errOut.String(), "Usage:")
}

func TestHelp(t *testing.T) {
	var out bytes.Buffer
	code := Run([]string{"help"}, Options{Out: &out})
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "batch [file]")
}
