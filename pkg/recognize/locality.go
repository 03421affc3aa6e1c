package recognize

import (
	"strings"

	"addressvalidator/pkg/api/address"
	"addressvalidator/pkg/lexicon"
	"addressvalidator/pkg/tokens"
)

// localitySpan collects an open-class place-name span starting at offset
// off, stopping at segment ends, state and country phrases, municipality
// markers, non-word tokens, and words claimed by a following "county".
// Returns the span as written and its token count.
func localitySpan(cur *tokens.Cursor, lex *lexicon.Lexicon, off int) (string, int) {
	var texts []string
	n := off
	for {
		tok, ok := cur.PeekAt(n)
		if !ok || !tok.HasLetter() {
			break
		}
		if _, _, ok := matchPhraseAt(cur, lex.States, n); ok {
			break
		}
		if _, _, ok := matchPhraseAt(cur, lex.Countries, n); ok {
			break
		}
		if lex.Markers.Contains(tok.Norm) || nextIsCountyMarker(cur, n+1) {
			break
		}
		texts = append(texts, tok.Text)
		n++
		if tok.EndsSegment {
			break
		}
	}
	return strings.Join(texts, " "), n - off
}

// stateLater reports whether any state name or code appears at or after the
// given offset.
func stateLater(cur *tokens.Cursor, lex *lexicon.Lexicon, off int) bool {
	for ; off < cur.Remaining(); off++ {
		if _, _, ok := matchPhraseAt(cur, lex.States, off); ok {
			return true
		}
	}
	return false
}

// incorporatedMunicipality recognizes the "City of X" / "Town of X" /
// "Village of X" phrasing. The stored value is the bare name.
type incorporatedMunicipality struct {
	lex *lexicon.Lexicon
}

var _ Recognizer = (*incorporatedMunicipality)(nil)

func (r *incorporatedMunicipality) Primary() address.Component {
	return address.IncorporatedMunicipality
}

func (r *incorporatedMunicipality) Match(cur *tokens.Cursor, st State) []Field {
	t := cur.Peek()
	switch t.Norm {
	case "city", "town", "village":
	default:
		return nil
	}
	return matchMarkedLocality(cur, r.lex, address.IncorporatedMunicipality)
}

// unincorporatedCommunity recognizes the "Community of X" phrasing.
type unincorporatedCommunity struct {
	lex *lexicon.Lexicon
}

var _ Recognizer = (*unincorporatedCommunity)(nil)

func (r *unincorporatedCommunity) Primary() address.Component {
	return address.UnincorporatedCommunity
}

func (r *unincorporatedCommunity) Match(cur *tokens.Cursor, st State) []Field {
	if cur.Peek().Norm != "community" {
		return nil
	}
	return matchMarkedLocality(cur, r.lex, address.UnincorporatedCommunity)
}

// matchMarkedLocality consumes "<marker> of <name span>" at the cursor.
func matchMarkedLocality(cur *tokens.Cursor, lex *lexicon.Lexicon, c address.Component) []Field {
	marker := cur.Peek()
	if marker.EndsSegment {
		return nil
	}
	of, ok := cur.PeekAt(1)
	if !ok || of.Norm != "of" || of.EndsSegment {
		return nil
	}
	name, n := localitySpan(cur, lex, 2)
	if n == 0 {
		return nil
	}
	pos := cur.Pos()
	cur.Advance(2 + n)
	return []Field{{Component: c, Text: name, Pos: pos}}
}

// postalCommunity recognizes a bare community name: a known entry from the
// communities lexicon, or an open-class word span in community position.
type postalCommunity struct {
	lex *lexicon.Lexicon
}

var _ Recognizer = (*postalCommunity)(nil)

func (r *postalCommunity) Primary() address.Component {
	return address.PostalCommunity
}

func (r *postalCommunity) Match(cur *tokens.Cursor, st State) []Field {
	if text, n, ok := matchPhrase(cur, r.lex.Communities); ok {
		pos := cur.Pos()
		cur.Advance(n)
		return []Field{{Component: address.PostalCommunity, Text: text, Pos: pos}}
	}

	t := cur.Peek()
	if !t.HasLetter() || r.lex.Markers.Contains(t.Norm) ||
		r.lex.PostTypes.Contains(t.Norm) || nextIsCountyMarker(cur, 1) {
		return nil
	}

	// A phrase that reads as a state is only a community name when the
	// state field is already settled or another state follows ("New York,
	// NY"). Country phrases never name a community.
	if text, n, ok := matchPhraseAt(cur, r.lex.States, 0); ok {
		if st.Has(address.StateName) || stateLater(cur, r.lex, n) {
			pos := cur.Pos()
			cur.Advance(n)
			return []Field{{Component: address.PostalCommunity, Text: text, Pos: pos}}
		}
		return nil
	}
	if _, _, ok := matchPhraseAt(cur, r.lex.Countries, 0); ok {
		return nil
	}

	name, n := localitySpan(cur, r.lex, 0)
	if n == 0 {
		return nil
	}
	pos := cur.Pos()
	cur.Advance(n)
	return []Field{{Component: address.PostalCommunity, Text: name, Pos: pos}}
}

// countyName recognizes a known county entry or a word span followed by
// "County" in the same segment. The stored value is the bare name.
type countyName struct {
	lex *lexicon.Lexicon
}

var _ Recognizer = (*countyName)(nil)

func (r *countyName) Primary() address.Component {
	return address.CountyName
}

func (r *countyName) Match(cur *tokens.Cursor, st State) []Field {
	if text, n, ok := matchPhrase(cur, r.lex.Counties); ok {
		pos := cur.Pos()
		last, _ := cur.PeekAt(n - 1)
		cur.Advance(n)
		if !last.EndsSegment && !cur.Done() && cur.Peek().Norm == "county" {
			cur.Advance(1)
		}
		return []Field{{Component: address.CountyName, Text: text, Pos: pos}}
	}

	var texts []string
	n := 0
	for {
		tok, ok := cur.PeekAt(n)
		if !ok {
			return nil
		}
		if tok.Norm == "county" {
			break
		}
		if !tok.HasLetter() || r.lex.Markers.Contains(tok.Norm) {
			return nil
		}
		if _, _, ok := matchPhraseAt(cur, r.lex.States, n); ok {
			return nil
		}
		texts = append(texts, tok.Text)
		n++
		if n > 3 || tok.EndsSegment {
			// "county" has to follow closely, in the same segment
			return nil
		}
	}
	if n == 0 {
		return nil
	}
	pos := cur.Pos()
	cur.Advance(n + 1)
	return []Field{{Component: address.CountyName, Text: strings.Join(texts, " "), Pos: pos}}
}

// countryName recognizes an entry of the countries lexicon.
type countryName struct {
	lex *lexicon.Lexicon
}

var _ Recognizer = (*countryName)(nil)

func (r *countryName) Primary() address.Component {
	return address.CountryName
}

func (r *countryName) Match(cur *tokens.Cursor, st State) []Field {
	text, n, ok := matchPhrase(cur, r.lex.Countries)
	if !ok {
		return nil
	}
	pos := cur.Pos()
	cur.Advance(n)
	return []Field{{Component: address.CountryName, Text: text, Pos: pos}}
}
