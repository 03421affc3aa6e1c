package tokens

import (
	"strings"
	"unicode"
)

// Token is one whitespace-delimited word of an address blob with its
// surrounding punctuation stripped.
type Token struct {
	// Text is the word as written, without surrounding punctuation.
	Text string
	// Norm is Text lowercased, for lexicon lookups.
	Norm string
	// Seg is the ordinal of the comma-separated segment the word
	// belongs to.
	Seg int
	// EndsSegment reports whether the word closed its segment, i.e. the
	// source carried a comma or semicolon right after it.
	EndsSegment bool
}

// IsDigits reports whether the token consists only of decimal digits.
func (t Token) IsDigits() bool {
	if t.Text == "" {
		return false
	}
	for _, r := range t.Text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// HasLetter reports whether the token contains at least one letter.
func (t Token) HasLetter() bool {
	return strings.IndexFunc(t.Text, unicode.IsLetter) >= 0
}

// Tokenize splits an address blob into annotated tokens. Surrounding
// punctuation is trimmed from each word; words that are nothing but
// punctuation vanish, carrying any segment break they held over to the
// previous token. Inner punctuation (hyphens, slashes, dots) survives so
// that forms like "62701-1234" and "1/2" stay single tokens.
func Tokenize(input string) []Token {
	var toks []Token
	seg := 0
	for _, word := range strings.Fields(input) {
		cleaned, endsSeg := trim(word)
		if cleaned == "" {
			if endsSeg && len(toks) > 0 && !toks[len(toks)-1].EndsSegment {
				toks[len(toks)-1].EndsSegment = true
				seg++
			}
			continue
		}
		toks = append(toks, Token{
			Text:        cleaned,
			Norm:        strings.ToLower(cleaned),
			Seg:         seg,
			EndsSegment: endsSeg,
		})
		if endsSeg {
			seg++
		}
	}
	return toks
}

// trim strips surrounding punctuation and reports whether the word closed
// its segment.
func trim(word string) (string, bool) {
	endsSeg := false
	trimmed := strings.TrimRightFunc(word, func(r rune) bool {
		if !isTrimmable(r) {
			return false
		}
		if r == ',' || r == ';' {
			endsSeg = true
		}
		return true
	})
	trimmed = strings.TrimLeftFunc(trimmed, isTrimmable)
	return trimmed, endsSeg
}

// isTrimmable reports punctuation that never belongs to an address word.
// Hyphens and slashes are kept because they join compound tokens.
func isTrimmable(r rune) bool {
	if r == '-' || r == '/' {
		return false
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
