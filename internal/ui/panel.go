package ui

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

func visibleWidth(s string) int { return utf8.RuneCountInString(stripANSI(s)) }

// ShareBar renders part's share of whole as a bar with a percentage.
func ShareBar(part, whole decimal.Decimal, width int) string {
	if width < 5 {
		width = 5
	}
	ratio := decimal.Zero
	if whole.IsPositive() {
		ratio = part.Div(whole)
	}
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		ratio = decimal.NewFromInt(1)
	}
	filled := int(ratio.Mul(decimal.NewFromInt(int64(width))).IntPart())
	pct := ratio.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	p := Current()
	bar := strings.Repeat(p.BarFull, filled) + strings.Repeat(p.BarEmpty, width-filled)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel draws a framed box around lines.
func Panel(w io.Writer, lines []string) {
	p := Current()
	maxw := 0
	for _, ln := range lines {
		if vw := visibleWidth(ln); vw > maxw {
			maxw = vw
		}
	}
	pad := func(s string) string {
		if vis := visibleWidth(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(w, p.CornerTL+strings.Repeat(p.H, maxw+2)+p.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(w, p.V+" "+pad(ln)+" "+p.V)
	}
	fmt.Fprintln(w, p.CornerBL+strings.Repeat(p.H, maxw+2)+p.CornerBR)
}
