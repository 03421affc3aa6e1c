package lexicon

// Lexicon bundles the word lists the component recognizers match against.
// The default instance is built once per process and never mutated; parsers
// that need extra entries work on a Clone.
type Lexicon struct {
	// Directionals are the compass words accepted as street name pre and
	// post directionals.
	Directionals *Set
	// PreModifiers qualify a street name ahead of it ("Old Mill Rd").
	PreModifiers *Set
	// PreTypes are street types written before the name
	// ("Avenue of the Americas", "Highway 99").
	PreTypes *Set
	// Separators are the connective words between a pre type and the
	// street name.
	Separators *Set
	// PostTypes are the usual street type suffixes.
	PostTypes *Set
	// PostModifiers qualify a street after its type ("Main St Ext").
	PostModifiers *Set
	// Markers are the municipality phrasing words ("City of ...",
	// "... County"); they never start an open-class name.
	Markers *Set
	// States holds USPS state codes and full state names.
	States *Set
	// Countries holds the recognized country names.
	Countries *Set
	// Communities holds known community names. Empty by default;
	// community recognition then relies on position alone.
	Communities *Set
	// Counties holds known county names. Empty by default.
	Counties *Set
}

var defaultLexicon = build()

// Default returns the shared read-only lexicon.
func Default() *Lexicon {
	return defaultLexicon
}

// Clone returns a lexicon whose extensible sets (Communities, Counties) are
// private copies. The closed grammar sets are shared since they are never
// written after build.
func (l *Lexicon) Clone() *Lexicon {
	copied := *l
	copied.Communities = l.Communities.clone()
	copied.Counties = l.Counties.clone()
	return &copied
}

func build() *Lexicon {
	directionals := newSet()
	directionals.add("N", "North")
	directionals.add("S", "South")
	directionals.add("E", "East")
	directionals.add("W", "West")
	directionals.add("NE", "Northeast")
	directionals.add("NW", "Northwest")
	directionals.add("SE", "Southeast")
	directionals.add("SW", "Southwest")

	preModifiers := newSet()
	preModifiers.add("Old")
	preModifiers.add("Upper")
	preModifiers.add("Lower")

	preTypes := newSet()
	preTypes.add("Ave", "Avenue")
	preTypes.add("Hwy", "Highway")
	preTypes.add("Rte", "Route")
	preTypes.add("Interstate")

	separators := newSet()
	separators.add("of")
	separators.add("the")
	separators.add("de")
	separators.add("la")

	postTypes := newSet()
	postTypes.add("Aly", "Alley")
	postTypes.add("Ave", "Avenue", "Av")
	postTypes.add("Blvd", "Boulevard")
	postTypes.add("Cir", "Circle")
	postTypes.add("Ct", "Court")
	postTypes.add("Dr", "Drive")
	postTypes.add("Expy", "Expressway")
	postTypes.add("Fwy", "Freeway")
	postTypes.add("Hwy", "Highway")
	postTypes.add("Ln", "Lane")
	postTypes.add("Loop")
	postTypes.add("Pkwy", "Parkway")
	postTypes.add("Pl", "Place")
	postTypes.add("Plz", "Plaza")
	postTypes.add("Rd", "Road")
	postTypes.add("Rte", "Route")
	postTypes.add("Sq", "Square")
	postTypes.add("St", "Street")
	postTypes.add("Ter", "Terrace")
	postTypes.add("Trl", "Trail")
	postTypes.add("Way")

	postModifiers := newSet()
	postModifiers.add("Ext", "Extended", "Extension")
	postModifiers.add("Byp", "Bypass")
	postModifiers.add("Business")

	markers := newSet()
	markers.add("City")
	markers.add("Town")
	markers.add("Village")
	markers.add("Community")
	markers.add("County")

	states := newSet()
	states.add("AL", "Alabama")
	states.add("AK", "Alaska")
	states.add("AZ", "Arizona")
	states.add("AR", "Arkansas")
	states.add("CA", "California")
	states.add("CO", "Colorado")
	states.add("CT", "Connecticut")
	states.add("DE", "Delaware")
	states.add("FL", "Florida")
	states.add("GA", "Georgia")
	states.add("HI", "Hawaii")
	states.add("ID", "Idaho")
	states.add("IL", "Illinois")
	states.add("IN", "Indiana")
	states.add("IA", "Iowa")
	states.add("KS", "Kansas")
	states.add("KY", "Kentucky")
	states.add("LA", "Louisiana")
	states.add("ME", "Maine")
	states.add("MD", "Maryland")
	states.add("MA", "Massachusetts")
	states.add("MI", "Michigan")
	states.add("MN", "Minnesota")
	states.add("MS", "Mississippi")
	states.add("MO", "Missouri")
	states.add("MT", "Montana")
	states.add("NE", "Nebraska")
	states.add("NV", "Nevada")
	states.add("NH", "New Hampshire")
	states.add("NJ", "New Jersey")
	states.add("NM", "New Mexico")
	states.add("NY", "New York")
	states.add("NC", "North Carolina")
	states.add("ND", "North Dakota")
	states.add("OH", "Ohio")
	states.add("OK", "Oklahoma")
	states.add("OR", "Oregon")
	states.add("PA", "Pennsylvania")
	states.add("RI", "Rhode Island")
	states.add("SC", "South Carolina")
	states.add("SD", "South Dakota")
	states.add("TN", "Tennessee")
	states.add("TX", "Texas")
	states.add("UT", "Utah")
	states.add("VT", "Vermont")
	states.add("VA", "Virginia")
	states.add("WA", "Washington")
	states.add("WV", "West Virginia")
	states.add("WI", "Wisconsin")
	states.add("WY", "Wyoming")
	states.add("DC", "District of Columbia")

	countries := newSet()
	countries.add("USA", "US", "U.S", "U.S.A", "United States", "United States of America", "America")
	countries.add("Canada")
	countries.add("Mexico")

	return &Lexicon{
		Directionals:  directionals,
		PreModifiers:  preModifiers,
		PreTypes:      preTypes,
		Separators:    separators,
		PostTypes:     postTypes,
		PostModifiers: postModifiers,
		Markers:       markers,
		States:        states,
		Countries:     countries,
		Communities:   newSet(),
		Counties:      newSet(),
	}
}
