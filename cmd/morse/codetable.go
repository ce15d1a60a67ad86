package morse

import (
	"slices"
	"unicode"

	"github.com/samber/lo"
)

// Code is the dot/dash representation of one character, e.g. ".-" for A.
// The space character maps to wordCode.
type Code string

const wordCode Code = " "

// IsWordGap reports whether c is the word separator code.
func (c Code) IsWordGap() bool {
	return c == wordCode
}

var codeTable = map[rune]Code{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'.': ".-.-.-", ',': "--..--", '?': "..--..", '\'': ".----.",
	'!': "-.-.--", '/': "-..-.", '(': "-.--.", ')': "-.--.-",
	'&': ".-...", ':': "---...", ';': "-.-.-.", '=': "-...-",
	'+': ".-.-.", '-': "-....-", '_': "..--.-", '"': ".-..-.",
	'$': "...-..-", '@': ".--.-.",
	' ': wordCode,
}

// Lookup returns the code for r. Letters are matched case-insensitively.
// The second return value is false for characters without a code; callers
// skip those.
func Lookup(r rune) (Code, bool) {
	code, ok := codeTable[unicode.ToUpper(r)]
	return code, ok
}

// Supported returns every character in the table: letters, digits,
// punctuation, then the space.
func Supported() []rune {
	runes := lo.Keys(codeTable)
	order := func(r rune) int {
		switch {
		case r == ' ':
			return 3
		case unicode.IsLetter(r):
			return 0
		case unicode.IsDigit(r):
			return 1
		default:
			return 2
		}
	}
	slices.SortFunc(runes, func(a, b rune) int {
		if oa, ob := order(a), order(b); oa != ob {
			return oa - ob
		}
		return int(a) - int(b)
	})
	return runes
}
