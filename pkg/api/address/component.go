package address

import "strings"

// Component identifies one of the standardized sub-parts of a structured
// postal address. The set is closed: every parse considers exactly these
// eighteen fields and no others.
type Component int

const (
	ComponentNone Component = iota
	AddressNumberPrefix
	AddressNumber
	AddressNumberSuffix
	StreetNamePreDirectional
	StreetNamePreModifier
	StreetNamePreType
	StreetNamePreTypeSeparator
	StreetName
	StreetNamePostType
	StreetNamePostDirectional
	StreetNamePostModifier
	IncorporatedMunicipality
	UnincorporatedCommunity
	PostalCommunity
	StateName
	PostalCode
	CountyName
	CountryName
	componentCount
)

// String returns the display name of the component.
func (c Component) String() string {
	switch c {
	case AddressNumberPrefix:
		return "Address Number Prefix"
	case AddressNumber:
		return "Address Number"
	case AddressNumberSuffix:
		return "Address Number Suffix"
	case StreetNamePreDirectional:
		return "Street Name Pre Directional"
	case StreetNamePreModifier:
		return "Street Name Pre Modifier"
	case StreetNamePreType:
		return "Street Name Pre Type"
	case StreetNamePreTypeSeparator:
		return "Street Name Pre Type Separator"
	case StreetName:
		return "Street Name"
	case StreetNamePostType:
		return "Street Name Post Type"
	case StreetNamePostDirectional:
		return "Street Name Post Directional"
	case StreetNamePostModifier:
		return "Street Name Post Modifier"
	case IncorporatedMunicipality:
		return "Incorporated Municipality"
	case UnincorporatedCommunity:
		return "Unincorporated Community"
	case PostalCommunity:
		return "Postal Community"
	case StateName:
		return "State Name"
	case PostalCode:
		return "Postal Code"
	case CountyName:
		return "County Name"
	case CountryName:
		return "Country Name"
	default:
		return ""
	}
}

// ParseComponent maps a display name back to its component. Unknown names
// map to ComponentNone.
func ParseComponent(s string) Component {
	for _, c := range AllComponents() {
		if strings.EqualFold(s, c.String()) {
			return c
		}
	}
	return ComponentNone
}

// AllComponents returns every component in standardized field order.
func AllComponents() []Component {
	components := make([]Component, 0, componentCount-1)
	for c := ComponentNone + 1; c < componentCount; c++ {
		components = append(components, c)
	}
	return components
}
