package radseek

import (
	"strings"
	"unicode"
)

// Token is a normalized atomic unit of text: a maximal run of letters and
// digits, lowercased. Tokens have no identity beyond their string value.
type Token struct {
	// Text is the lowercased token.
	Text string `json:"text"`

	// Offset is the byte offset of the run start in the original text.
	Offset int `json:"offset"`
}

// Tokenize splits text on non-alphanumeric boundaries and folds case.
// It is total: any string, including empty, yields a (possibly empty)
// token sequence. The same function normalizes corpus text and queries.
func Tokenize(text string) []Token {
	var tokens []Token
	start := -1

	for i, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, Token{
				Text:   strings.ToLower(text[start:i]),
				Offset: start,
			})
			start = -1
		}
	}

	if start >= 0 {
		tokens = append(tokens, Token{
			Text:   strings.ToLower(text[start:]),
			Offset: start,
		})
	}

	return tokens
}
