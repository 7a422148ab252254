package components

import "strings"

// bigGlyphs are 3x5 block glyphs for the characters used in questions.
var bigGlyphs = map[rune][5]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" █ ", "██ ", " █ ", " █ ", "███"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	'+': {"   ", " █ ", "███", " █ ", "   "},
	'-': {"   ", "   ", "███", "   ", "   "},
	'=': {"   ", "███", "   ", "███", "   "},
	'?': {"███", "  █", " ██", "   ", " █ "},
	' ': {" ", " ", " ", " ", " "},
}

// BigText renders s in block glyphs. Characters without a glyph are
// dropped.
func BigText(s string) string {
	var rows [5][]string
	for _, r := range s {
		g, ok := bigGlyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i] = append(rows[i], g[i])
		}
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, " ")
	}
	return strings.Join(lines, "\n")
}
