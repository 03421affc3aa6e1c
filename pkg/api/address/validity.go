package address

import "fmt"

// Validity is the three-way outcome of parsing an address blob. Values are
// ordered by strength so that classifications can be compared directly.
type Validity int

const (
	// Unparseable means no recognizable address structure was found.
	Unparseable Validity = iota
	// PartiallyValid means some components were recognized but required
	// ones are missing, or recognized fields appeared out of the
	// conventional order.
	PartiallyValid
	// Valid means all structurally required components are present and
	// internally consistent.
	Valid
)

var _ fmt.Stringer = (*Validity)(nil)

// String implements fmt.Stringer.
func (v Validity) String() string {
	switch v {
	case Valid:
		return "Valid"
	case PartiallyValid:
		return "PartiallyValid"
	case Unparseable:
		return "Unparseable"
	default:
		return ""
	}
}

// AllValidities returns every classification from weakest to strongest.
func AllValidities() []Validity {
	return []Validity{Unparseable, PartiallyValid, Valid}
}
