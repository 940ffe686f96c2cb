package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const glyphHeight = 3

var glyphs = map[rune][]string{
	'0': {"█▀█", "█ █", "▀▀▀"},
	'1': {"▄█ ", " █ ", "▀▀▀"},
	'2': {"▀▀█", "█▀▀", "▀▀▀"},
	'3': {"▀▀█", "▀▀█", "▀▀▀"},
	'4': {"█ █", "▀▀█", "  ▀"},
	'5': {"█▀▀", "▀▀█", "▀▀▀"},
	'6': {"█▀▀", "█▀█", "▀▀▀"},
	'7': {"▀▀█", "  █", "  ▀"},
	'8': {"█▀█", "█▀█", "▀▀▀"},
	'9': {"█▀█", "▀▀█", "  ▀"},
	'X': {"█ █", "▄▀▄", "▀ ▀"},
	'E': {"█▀▀", "█▀▀", "▀▀▀"},
	':': {" ", "▀", "▀"},
	'/': {"  █", " █ ", "▀  "},
}

// renderBig draws s with the block glyphs, one space between symbols.
// Symbols without a glyph are drawn on the middle row.
func renderBig(s string) string {
	rows := make([]strings.Builder, glyphHeight)
	for i, r := range s {
		glyph, ok := glyphs[r]
		if !ok {
			glyph = fallbackGlyph(r)
		}
		width := glyphWidth(glyph)
		for row := range rows {
			if i > 0 {
				rows[row].WriteByte(' ')
			}
			rows[row].WriteString(runewidth.FillRight(glyph[row], width))
		}
	}
	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}

func fallbackGlyph(r rune) []string {
	blank := strings.Repeat(" ", runewidth.RuneWidth(r))
	glyph := make([]string, glyphHeight)
	for i := range glyph {
		glyph[i] = blank
	}
	glyph[glyphHeight/2] = string(r)
	return glyph
}

func glyphWidth(glyph []string) int {
	width := 0
	for _, row := range glyph {
		if w := runewidth.StringWidth(row); w > width {
			width = w
		}
	}
	return width
}
