package recognize

import (
	"strings"

	"addressvalidator/pkg/api/address"
	"addressvalidator/pkg/lexicon"
	"addressvalidator/pkg/tokens"
)

// Field is one component recognized at a token position.
type Field struct {
	Component address.Component
	Text      string
	// Pos is the index of the first token the field was matched at.
	Pos int
}

// State is the parser's read-only view of the components filled so far.
// Recognizers use it for positional decisions: a directional ahead of the
// street name is a pre directional, behind it a post directional.
type State interface {
	Has(c address.Component) bool
	// PosOf returns the token position a component was matched at.
	PosOf(c address.Component) (int, bool)
}

// Recognizer attempts to consume a prefix of the remaining token stream as
// one address component. Match returns the recognized fields and advances
// the cursor only on success; a failed attempt leaves the cursor where it
// was. Some recognizers yield secondary fields next to their primary one,
// e.g. the address number recognizer also splits off prefix and suffix.
type Recognizer interface {
	Primary() address.Component
	Match(cur *tokens.Cursor, st State) []Field
}

// All returns the recognizer chain in standardized field order, which is
// also the tie-break order: a token that could satisfy two recognizers goes
// to the one whose field is expected earliest among the not-yet-filled.
func All(lex *lexicon.Lexicon) []Recognizer {
	return []Recognizer{
		&addressNumber{lex: lex},
		&preDirectional{lex: lex},
		&preModifier{lex: lex},
		&preType{lex: lex},
		&streetName{lex: lex},
		&postType{lex: lex},
		&postDirectional{lex: lex},
		&postModifier{lex: lex},
		&incorporatedMunicipality{lex: lex},
		&unincorporatedCommunity{lex: lex},
		&postalCommunity{lex: lex},
		&stateName{lex: lex},
		&postalCode{},
		&countyName{lex: lex},
		&countryName{lex: lex},
	}
}

// matchPhrase tries the longest phrase starting at the cursor that the set
// contains, up to the set's longest entry. Phrases never cross a segment
// boundary. Returns the phrase as written and its token count.
func matchPhrase(cur *tokens.Cursor, set *lexicon.Set) (string, int, bool) {
	return matchPhraseAt(cur, set, 0)
}

// matchPhraseAt is matchPhrase starting at the given offset ahead of the
// cursor position.
func matchPhraseAt(cur *tokens.Cursor, set *lexicon.Set, off int) (string, int, bool) {
	max := set.MaxWords()
	if r := cur.Remaining() - off; max > r {
		max = r
	}
	for n := max; n >= 1; n-- {
		norms := make([]string, 0, n)
		texts := make([]string, 0, n)
		crossed := false
		for i := 0; i < n; i++ {
			t, _ := cur.PeekAt(off + i)
			norms = append(norms, t.Norm)
			texts = append(texts, t.Text)
			if t.EndsSegment && i != n-1 {
				crossed = true
				break
			}
		}
		if crossed {
			continue
		}
		if set.Contains(strings.Join(norms, " ")) {
			return strings.Join(texts, " "), n, true
		}
	}
	return "", 0, false
}

// sameSegmentAs reports whether the cursor's next token shares a segment
// with the token a component was matched at.
func sameSegmentAs(cur *tokens.Cursor, st State, c address.Component) bool {
	pos, ok := st.PosOf(c)
	if !ok {
		return false
	}
	anchor, ok := cur.At(pos)
	if !ok {
		return false
	}
	return cur.Peek().Seg == anchor.Seg
}

// nextIsCountyMarker reports whether the token n positions ahead is the
// word "county", which claims the word before it for the county name.
func nextIsCountyMarker(cur *tokens.Cursor, n int) bool {
	t, ok := cur.PeekAt(n)
	return ok && t.Norm == "county"
}
