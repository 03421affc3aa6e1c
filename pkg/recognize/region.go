package recognize

import (
	"addressvalidator/pkg/api/address"
	"addressvalidator/pkg/lexicon"
	"addressvalidator/pkg/tokens"
)

// stateName recognizes a USPS state code or a full state name.
type stateName struct {
	lex *lexicon.Lexicon
}

var _ Recognizer = (*stateName)(nil)

func (r *stateName) Primary() address.Component {
	return address.StateName
}

func (r *stateName) Match(cur *tokens.Cursor, st State) []Field {
	text, n, ok := matchPhrase(cur, r.lex.States)
	if !ok {
		return nil
	}
	pos := cur.Pos()
	cur.Advance(n)
	return []Field{{Component: address.StateName, Text: text, Pos: pos}}
}

// postalCode recognizes a five-digit code with an optional four-digit
// extension ("62701", "62701-1234").
type postalCode struct{}

var _ Recognizer = (*postalCode)(nil)

func (r *postalCode) Primary() address.Component {
	return address.PostalCode
}

func (r *postalCode) Match(cur *tokens.Cursor, st State) []Field {
	t := cur.Peek()
	if !zipPattern.MatchString(t.Text) {
		return nil
	}
	pos := cur.Pos()
	cur.Advance(1)
	return []Field{{Component: address.PostalCode, Text: t.Text, Pos: pos}}
}
