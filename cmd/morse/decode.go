package morse

import (
	"regexp"
	"strings"
)

var fromMorse map[Code]rune

func init() {
	fromMorse = make(map[Code]rune, len(codeTable))
	for k, v := range codeTable {
		if !v.IsWordGap() {
			fromMorse[v] = k
		}
	}
}

// wordBreak matches what EncodeDisplay puts between words, plus the
// slash separated form many other tools print.
var wordBreak = regexp.MustCompile(`\s*/\s*|\s{3,}`)

// Decode reverses EncodeDisplay. Codes that are not in the table are
// dropped, and a run of word gaps comes back as a single space, so "A  B"
// decodes to "A B".
func Decode(morse string) string {
	var result strings.Builder
	words := wordBreak.Split(strings.TrimSpace(morse), -1)
	for i, word := range words {
		if i > 0 {
			result.WriteRune(' ')
		}
		for _, code := range strings.Fields(word) {
			if r, ok := fromMorse[Code(code)]; ok {
				result.WriteRune(r)
			}
		}
	}
	return result.String()
}
