package ui

import "github.com/idilsaglam/expenses/internal/model"

// Palette is the single fixed set of colours and frame runes for plain output.
type Palette struct {
	Title, Muted, Accent, Success, Error, Amount string
	CornerTL, CornerTR, CornerBL, CornerBR      string
	H, V                                        string
	BarFull, BarEmpty                           string
}

var palette = Palette{
	Title: bold, Muted: fgGray, Accent: fgBlue,
	Success: fgGreen, Error: fgRed, Amount: fgYellow,
	CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
	H: "─", V: "│",
	BarFull: "█", BarEmpty: "░",
}

func Current() Palette { return palette }

// CategoryColor gives each category a stable colour.
func CategoryColor(c model.Category) string {
	switch c {
	case model.Food:
		return fgGreen
	case model.Transport:
		return fgCyan
	default:
		return dim
	}
}
