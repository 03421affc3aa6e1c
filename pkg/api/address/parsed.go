package address

import (
	"fmt"
	"strings"
)

// Parsed is an immutable mapping from Component to the text recognized for
// it. A component that was never recognized carries no entry at all, never
// an empty string, so "not found" stays distinguishable from "found but
// empty".
type Parsed struct {
	fields map[Component]string
}

var _ fmt.Stringer = (*Parsed)(nil)

// NewParsed builds a Parsed from the given component texts. The map is
// copied and entries with empty text are dropped, so the result cannot be
// mutated through the argument and never stores an empty value.
func NewParsed(fields map[Component]string) Parsed {
	copied := make(map[Component]string, len(fields))
	for c, text := range fields {
		if c <= ComponentNone || c >= componentCount {
			continue
		}
		if text == "" {
			continue
		}
		copied[c] = text
	}
	return Parsed{fields: copied}
}

// Get returns the recognized text for a component and whether the component
// is present.
func (p Parsed) Get(c Component) (string, bool) {
	text, ok := p.fields[c]
	return text, ok
}

// Has reports whether the component was recognized.
func (p Parsed) Has(c Component) bool {
	_, ok := p.fields[c]
	return ok
}

// Len returns the number of recognized components.
func (p Parsed) Len() int {
	return len(p.fields)
}

// Components returns the recognized components in standardized field order.
func (p Parsed) Components() []Component {
	var present []Component
	for _, c := range AllComponents() {
		if p.Has(c) {
			present = append(present, c)
		}
	}
	return present
}

// MissingRequired returns the structurally required components that are
// absent. A complete address carries at least a street name, a community
// (postal community or incorporated municipality), and a postal code; when
// neither community form is present the postal community stands in for the
// pair in the returned list.
func (p Parsed) MissingRequired() []Component {
	var missing []Component
	if !p.Has(StreetName) {
		missing = append(missing, StreetName)
	}
	if !p.Has(PostalCommunity) && !p.Has(IncorporatedMunicipality) {
		missing = append(missing, PostalCommunity)
	}
	if !p.Has(PostalCode) {
		missing = append(missing, PostalCode)
	}
	return missing
}

// Equal reports whether both addresses carry the same components with the
// same texts.
func (p Parsed) Equal(other Parsed) bool {
	if len(p.fields) != len(other.fields) {
		return false
	}
	for c, text := range p.fields {
		if otherText, ok := other.fields[c]; !ok || otherText != text {
			return false
		}
	}
	return true
}

// ColumnNames returns the display names of all components, in standardized
// field order, for tabular rendering.
func ColumnNames() []string {
	names := make([]string, 0, componentCount-1)
	for _, c := range AllComponents() {
		names = append(names, c.String())
	}
	return names
}

// Columns returns one cell per component in standardized field order.
// Absent components render as empty cells.
func (p Parsed) Columns() []string {
	cells := make([]string, 0, componentCount-1)
	for _, c := range AllComponents() {
		text, _ := p.Get(c)
		cells = append(cells, text)
	}
	return cells
}

// String renders the address canonically: the address number and street
// segments first, then community, county, state with postal code, and
// country segments, joined by commas. Parsing the rendering of a Parsed
// reproduces the same Parsed.
func (p Parsed) String() string {
	var segments []string
	if seg := p.streetSegment(); seg != "" {
		segments = append(segments, seg)
	}
	if name, ok := p.Get(IncorporatedMunicipality); ok {
		segments = append(segments, "City of "+name)
	}
	if name, ok := p.Get(UnincorporatedCommunity); ok {
		segments = append(segments, "Community of "+name)
	}
	if name, ok := p.Get(PostalCommunity); ok {
		segments = append(segments, name)
	}
	if name, ok := p.Get(CountyName); ok {
		segments = append(segments, name+" County")
	}
	if seg := p.regionSegment(); seg != "" {
		segments = append(segments, seg)
	}
	if name, ok := p.Get(CountryName); ok {
		segments = append(segments, name)
	}
	return strings.Join(segments, ", ")
}

// streetSegment renders the address number block and the street name block
// as a single space-joined segment.
func (p Parsed) streetSegment() string {
	var words []string
	if number := p.numberBlock(); number != "" {
		words = append(words, number)
	}
	for _, c := range []Component{
		StreetNamePreDirectional,
		StreetNamePreModifier,
		StreetNamePreType,
		StreetNamePreTypeSeparator,
		StreetName,
		StreetNamePostType,
		StreetNamePostDirectional,
		StreetNamePostModifier,
	} {
		if text, ok := p.Get(c); ok {
			words = append(words, text)
		}
	}
	return strings.Join(words, " ")
}

// numberBlock joins the address number with its prefix and suffix. The
// prefix always attaches directly to the number; an alphabetic suffix
// attaches directly while a fractional one keeps its own token.
func (p Parsed) numberBlock() string {
	number, ok := p.Get(AddressNumber)
	if !ok {
		return ""
	}
	if prefix, ok := p.Get(AddressNumberPrefix); ok {
		number = prefix + number
	}
	if suffix, ok := p.Get(AddressNumberSuffix); ok {
		if suffix[0] >= '0' && suffix[0] <= '9' {
			number = number + " " + suffix
		} else {
			number = number + suffix
		}
	}
	return number
}

func (p Parsed) regionSegment() string {
	var words []string
	if state, ok := p.Get(StateName); ok {
		words = append(words, state)
	}
	if code, ok := p.Get(PostalCode); ok {
		words = append(words, code)
	}
	return strings.Join(words, " ")
}
