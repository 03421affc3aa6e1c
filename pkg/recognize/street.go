package recognize

import (
	"strings"

	"addressvalidator/pkg/api/address"
	"addressvalidator/pkg/lexicon"
	"addressvalidator/pkg/tokens"
)

// preDirectional recognizes a compass word ahead of the street name.
type preDirectional struct {
	lex *lexicon.Lexicon
}

var _ Recognizer = (*preDirectional)(nil)

func (r *preDirectional) Primary() address.Component {
	return address.StreetNamePreDirectional
}

func (r *preDirectional) Match(cur *tokens.Cursor, st State) []Field {
	if st.Has(address.StreetName) {
		return nil
	}
	t := cur.Peek()
	if !r.lex.Directionals.Contains(t.Norm) || t.EndsSegment {
		return nil
	}
	next, ok := cur.PeekAt(1)
	if !ok || !next.HasLetter() {
		return nil
	}
	pos := cur.Pos()
	cur.Advance(1)
	return []Field{{Component: address.StreetNamePreDirectional, Text: t.Text, Pos: pos}}
}

// preModifier recognizes a qualifying word ahead of the street name.
type preModifier struct {
	lex *lexicon.Lexicon
}

var _ Recognizer = (*preModifier)(nil)

func (r *preModifier) Primary() address.Component {
	return address.StreetNamePreModifier
}

func (r *preModifier) Match(cur *tokens.Cursor, st State) []Field {
	if st.Has(address.StreetName) {
		return nil
	}
	t := cur.Peek()
	if !r.lex.PreModifiers.Contains(t.Norm) || t.EndsSegment {
		return nil
	}
	next, ok := cur.PeekAt(1)
	if !ok || !next.HasLetter() {
		return nil
	}
	pos := cur.Pos()
	cur.Advance(1)
	return []Field{{Component: address.StreetNamePreModifier, Text: t.Text, Pos: pos}}
}

// preType recognizes a street type written ahead of the name, optionally
// with a connective separator span: "Avenue of the Americas", "Highway 99".
type preType struct {
	lex *lexicon.Lexicon
}

var _ Recognizer = (*preType)(nil)

func (r *preType) Primary() address.Component {
	return address.StreetNamePreType
}

func (r *preType) Match(cur *tokens.Cursor, st State) []Field {
	if st.Has(address.StreetName) {
		return nil
	}
	t := cur.Peek()
	if !r.lex.PreTypes.Contains(t.Norm) || t.EndsSegment {
		return nil
	}
	next, ok := cur.PeekAt(1)
	if !ok {
		return nil
	}
	pos := cur.Pos()

	if r.lex.Separators.Contains(next.Norm) {
		n := 1
		var seps []string
		for {
			tok, ok := cur.PeekAt(n)
			if !ok || !r.lex.Separators.Contains(tok.Norm) {
				break
			}
			if tok.EndsSegment {
				return nil
			}
			seps = append(seps, tok.Text)
			n++
		}
		after, ok := cur.PeekAt(n)
		if !ok || !after.HasLetter() {
			return nil
		}
		cur.Advance(n)
		return []Field{
			{Component: address.StreetNamePreType, Text: t.Text, Pos: pos},
			{Component: address.StreetNamePreTypeSeparator, Text: strings.Join(seps, " "), Pos: pos + 1},
		}
	}

	if !next.HasLetter() && !next.IsDigits() {
		return nil
	}
	cur.Advance(1)
	return []Field{{Component: address.StreetNamePreType, Text: t.Text, Pos: pos}}
}

// streetName recognizes the name itself: a span of word tokens ending at a
// street suffix, a segment boundary, or a word claimed by another field.
type streetName struct {
	lex *lexicon.Lexicon
}

var _ Recognizer = (*streetName)(nil)

func (r *streetName) Primary() address.Component {
	return address.StreetName
}

func (r *streetName) Match(cur *tokens.Cursor, st State) []Field {
	var texts, norms []string
	n := 0
	for {
		tok, ok := cur.PeekAt(n)
		if !ok || !r.nameToken(tok, st, n) {
			break
		}
		if nextIsCountyMarker(cur, n+1) {
			// the word belongs to the county name
			break
		}
		texts = append(texts, tok.Text)
		norms = append(norms, tok.Norm)
		n++
		if tok.EndsSegment {
			break
		}
	}
	if n == 0 {
		return nil
	}

	// A span that reads as an unclaimed state or country is only a street
	// name when a street suffix follows it ("New York Ave").
	phrase := strings.Join(norms, " ")
	if (r.lex.States.Contains(phrase) && !st.Has(address.StateName)) ||
		(r.lex.Countries.Contains(phrase) && !st.Has(address.CountryName)) {
		if !r.followedByStreetSuffix(cur, n) {
			return nil
		}
	}

	pos := cur.Pos()
	cur.Advance(n)
	return []Field{{Component: address.StreetName, Text: strings.Join(texts, " "), Pos: pos}}
}

func (r *streetName) nameToken(tok tokens.Token, st State, i int) bool {
	if tok.IsDigits() {
		// digits name the street only right after a pre type ("Highway 99")
		return i == 0 && st.Has(address.StreetNamePreType)
	}
	if !tok.HasLetter() {
		return false
	}
	norm := tok.Norm
	if r.lex.PostTypes.Contains(norm) || r.lex.Directionals.Contains(norm) ||
		r.lex.PostModifiers.Contains(norm) || r.lex.Markers.Contains(norm) {
		return false
	}
	return true
}

func (r *streetName) followedByStreetSuffix(cur *tokens.Cursor, n int) bool {
	tok, ok := cur.PeekAt(n)
	if !ok {
		return false
	}
	return r.lex.PostTypes.Contains(tok.Norm) || r.lex.Directionals.Contains(tok.Norm)
}

// postType recognizes the street type suffix within the street segment.
type postType struct {
	lex *lexicon.Lexicon
}

var _ Recognizer = (*postType)(nil)

func (r *postType) Primary() address.Component {
	return address.StreetNamePostType
}

func (r *postType) Match(cur *tokens.Cursor, st State) []Field {
	if !st.Has(address.StreetName) || !sameSegmentAs(cur, st, address.StreetName) {
		return nil
	}
	t := cur.Peek()
	if !r.lex.PostTypes.Contains(t.Norm) {
		return nil
	}
	pos := cur.Pos()
	cur.Advance(1)
	return []Field{{Component: address.StreetNamePostType, Text: t.Text, Pos: pos}}
}

// postDirectional recognizes a compass word behind the street name, still
// within the street segment.
type postDirectional struct {
	lex *lexicon.Lexicon
}

var _ Recognizer = (*postDirectional)(nil)

func (r *postDirectional) Primary() address.Component {
	return address.StreetNamePostDirectional
}

func (r *postDirectional) Match(cur *tokens.Cursor, st State) []Field {
	if !st.Has(address.StreetName) || !sameSegmentAs(cur, st, address.StreetName) {
		return nil
	}
	t := cur.Peek()
	if !r.lex.Directionals.Contains(t.Norm) {
		return nil
	}
	pos := cur.Pos()
	cur.Advance(1)
	return []Field{{Component: address.StreetNamePostDirectional, Text: t.Text, Pos: pos}}
}

// postModifier recognizes a qualifying word behind the street type.
type postModifier struct {
	lex *lexicon.Lexicon
}

var _ Recognizer = (*postModifier)(nil)

func (r *postModifier) Primary() address.Component {
	return address.StreetNamePostModifier
}

func (r *postModifier) Match(cur *tokens.Cursor, st State) []Field {
	if !st.Has(address.StreetName) || !sameSegmentAs(cur, st, address.StreetName) {
		return nil
	}
	t := cur.Peek()
	if !r.lex.PostModifiers.Contains(t.Norm) {
		return nil
	}
	pos := cur.Pos()
	cur.Advance(1)
	return []Field{{Component: address.StreetNamePostModifier, Text: t.Text, Pos: pos}}
}
