package recognize

import (
	"regexp"

	"addressvalidator/pkg/api/address"
	"addressvalidator/pkg/lexicon"
	"addressvalidator/pkg/tokens"
)

var (
	numberPattern   = regexp.MustCompile(`^([A-Za-z]{1,2})?([0-9]{1,6})([A-Za-z]{1,2})?$`)
	zipPattern      = regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`)
	fractionPattern = regexp.MustCompile(`^[0-9]+/[0-9]+$`)
)

// addressNumber recognizes the address number along with an attached
// alphabetic prefix ("N123"), an attached alphabetic suffix ("123B"), or a
// following fractional suffix ("123 1/2").
type addressNumber struct {
	lex *lexicon.Lexicon
}

var _ Recognizer = (*addressNumber)(nil)

func (r *addressNumber) Primary() address.Component {
	return address.AddressNumber
}

func (r *addressNumber) Match(cur *tokens.Cursor, st State) []Field {
	// Numbers behind the street name are not address numbers, and once a
	// pre type is open the digits belong to the name ("Highway 99").
	if st.Has(address.StreetName) || st.Has(address.StreetNamePreType) {
		return nil
	}

	t := cur.Peek()
	m := numberPattern.FindStringSubmatch(t.Text)
	if m == nil {
		return nil
	}
	prefix, digits, suffix := m[1], m[2], m[3]

	if prefix == "" && suffix == "" && zipPattern.MatchString(t.Text) {
		// A bare five-digit token reads as a postal code when nothing
		// address-like follows it.
		next, hasNext := cur.PeekAt(1)
		if !hasNext || r.lex.States.Contains(next.Norm) {
			return nil
		}
	}

	pos := cur.Pos()
	cur.Advance(1)
	fields := []Field{{Component: address.AddressNumber, Text: digits, Pos: pos}}
	if prefix != "" {
		fields = append(fields, Field{Component: address.AddressNumberPrefix, Text: prefix, Pos: pos})
	}
	if suffix != "" {
		fields = append(fields, Field{Component: address.AddressNumberSuffix, Text: suffix, Pos: pos})
	}
	if suffix == "" && !t.EndsSegment && !cur.Done() && fractionPattern.MatchString(cur.Peek().Text) {
		frac := cur.Next()
		fields = append(fields, Field{Component: address.AddressNumberSuffix, Text: frac.Text, Pos: pos + 1})
	}
	return fields
}
