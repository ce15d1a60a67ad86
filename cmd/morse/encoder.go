package morse

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"
)

// Symbol is one element of an encoded line.
type Symbol byte

const (
	Dot Symbol = iota
	Dash
	// LetterGap follows every encoded character, including the space.
	LetterGap
	// WordGap is what the space character encodes to.
	WordGap
)

func (s Symbol) String() string {
	switch s {
	case Dot:
		return "."
	case Dash:
		return "-"
	case LetterGap:
		return "|"
	case WordGap:
		return "/"
	default:
		return "?"
	}
}

// Encoded is the symbol sequence for one line of text.
type Encoded []Symbol

type entry struct {
	char rune
	code Code
}

// entries is the single traversal behind both the played and the displayed
// encoding. Unsupported characters are dropped here.
func entries(line string) []entry {
	return lo.FilterMap([]rune(line), func(r rune, _ int) (entry, bool) {
		code, ok := Lookup(r)
		return entry{char: r, code: code}, ok
	})
}

// EncodeSymbols turns a line into the sequence the renderer plays.
func EncodeSymbols(line string) Encoded {
	var seq Encoded
	for _, e := range entries(line) {
		if e.code.IsWordGap() {
			seq = append(seq, WordGap)
		} else {
			for _, c := range e.code {
				if c == '-' {
					seq = append(seq, Dash)
				} else {
					seq = append(seq, Dot)
				}
			}
		}
		seq = append(seq, LetterGap)
	}
	return seq
}

// EncodeDisplay renders a line as dots and dashes with one space between
// characters. A space in the input shows up as three spaces between codes.
func EncodeDisplay(line string) string {
	codes := lo.Map(entries(line), func(e entry, _ int) string {
		return string(e.code)
	})
	return strings.Join(codes, " ")
}

// Align returns the row printed above EncodeDisplay: each recognised
// character padded to the width of its code so it lines up with it.
func Align(line string) string {
	cells := lo.Map(entries(line), func(e entry, _ int) string {
		return runewidth.FillRight(string(e.char), len(e.code))
	})
	return strings.TrimRight(strings.Join(cells, " "), " ")
}
