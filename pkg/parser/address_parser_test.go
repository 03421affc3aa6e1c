package parser

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/xyproto/randomstring"

	"addressvalidator/pkg/api/address"
	"addressvalidator/pkg/lexicon"
)

type fieldMap map[address.Component]string

func mustNew(t *testing.T, opts ...Option) *addressParser {
	t.Helper()
	p, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return p.(*addressParser)
}

func assertFields(t *testing.T, parsed address.Parsed, want fieldMap) {
	t.Helper()
	for c, text := range want {
		got, ok := parsed.Get(c)
		if !ok {
			t.Errorf("component %s absent, want %q", c, text)
			continue
		}
		if got != text {
			t.Errorf("component %s = %q, want %q", c, got, text)
		}
	}
	if parsed.Len() != len(want) {
		t.Errorf("parsed %d components %v, want %d", parsed.Len(), parsed.Components(), len(want))
	}
}

func TestParse(t *testing.T) {
	p := mustNew(t)

	tests := []struct {
		name     string
		input    string
		want     fieldMap
		validity address.Validity
	}{
		{
			name:  "complete conventional address",
			input: "123 N Main St, Springfield, IL 62701",
			want: fieldMap{
				address.AddressNumber:            "123",
				address.StreetNamePreDirectional: "N",
				address.StreetName:               "Main",
				address.StreetNamePostType:       "St",
				address.PostalCommunity:          "Springfield",
				address.StateName:                "IL",
				address.PostalCode:               "62701",
			},
			validity: address.Valid,
		},
		{
			name:  "complete without directional",
			input: "123 Main St, Springfield, IL 62701",
			want: fieldMap{
				address.AddressNumber:      "123",
				address.StreetName:         "Main",
				address.StreetNamePostType: "St",
				address.PostalCommunity:    "Springfield",
				address.StateName:          "IL",
				address.PostalCode:         "62701",
			},
			validity: address.Valid,
		},
		{
			name:     "empty input",
			input:    "",
			want:     fieldMap{},
			validity: address.Unparseable,
		},
		{
			name:     "whitespace only",
			input:    "   \t  ",
			want:     fieldMap{},
			validity: address.Unparseable,
		},
		{
			name:     "punctuation only",
			input:    "!!! ??? ...",
			want:     fieldMap{},
			validity: address.Unparseable,
		},
		{
			name:  "street fragment",
			input: "Main Street",
			want: fieldMap{
				address.StreetName:         "Main",
				address.StreetNamePostType: "Street",
			},
			validity: address.PartiallyValid,
		},
		{
			name:  "postal code ahead of state",
			input: "62701 IL",
			want: fieldMap{
				address.PostalCode: "62701",
				address.StateName:  "IL",
			},
			validity: address.PartiallyValid,
		},
		{
			name:  "incorporated municipality",
			input: "450 Hungerford Dr, City of Rockville, MD 20850",
			want: fieldMap{
				address.AddressNumber:            "450",
				address.StreetName:               "Hungerford",
				address.StreetNamePostType:       "Dr",
				address.IncorporatedMunicipality: "Rockville",
				address.StateName:                "MD",
				address.PostalCode:               "20850",
			},
			validity: address.Valid,
		},
		{
			name:  "county between community and state",
			input: "123 Main St, Springfield, Sangamon County, IL 62701",
			want: fieldMap{
				address.AddressNumber:      "123",
				address.StreetName:         "Main",
				address.StreetNamePostType: "St",
				address.PostalCommunity:    "Springfield",
				address.CountyName:         "Sangamon",
				address.StateName:          "IL",
				address.PostalCode:         "62701",
			},
			validity: address.Valid,
		},
		{
			name:  "pre type with separator",
			input: "1 Avenue of the Americas, New York, NY 10013",
			want: fieldMap{
				address.AddressNumber:              "1",
				address.StreetNamePreType:          "Avenue",
				address.StreetNamePreTypeSeparator: "of the",
				address.StreetName:                 "Americas",
				address.PostalCommunity:            "New York",
				address.StateName:                  "NY",
				address.PostalCode:                 "10013",
			},
			validity: address.Valid,
		},
		{
			name:  "fractional suffix and extended code",
			input: "123 1/2 E Oak Ave, Dover, DE 19901-1234",
			want: fieldMap{
				address.AddressNumber:            "123",
				address.AddressNumberSuffix:      "1/2",
				address.StreetNamePreDirectional: "E",
				address.StreetName:               "Oak",
				address.StreetNamePostType:       "Ave",
				address.PostalCommunity:          "Dover",
				address.StateName:                "DE",
				address.PostalCode:               "19901-1234",
			},
			validity: address.Valid,
		},
		{
			name:  "country at the end",
			input: "123 Main St, Springfield, IL 62701, USA",
			want: fieldMap{
				address.AddressNumber:      "123",
				address.StreetName:         "Main",
				address.StreetNamePostType: "St",
				address.PostalCommunity:    "Springfield",
				address.StateName:          "IL",
				address.PostalCode:         "62701",
				address.CountryName:        "USA",
			},
			validity: address.Valid,
		},
		{
			name:  "state-named street",
			input: "1600 New York Ave NW, Washington, DC 20006",
			want: fieldMap{
				address.AddressNumber:             "1600",
				address.StreetName:                "New York",
				address.StreetNamePostType:        "Ave",
				address.StreetNamePostDirectional: "NW",
				address.PostalCommunity:           "Washington",
				address.StateName:                 "DC",
				address.PostalCode:                "20006",
			},
			validity: address.Valid,
		},
		{
			name:  "missing postal code",
			input: "123 Main St, Springfield, IL",
			want: fieldMap{
				address.AddressNumber:      "123",
				address.StreetName:         "Main",
				address.StreetNamePostType: "St",
				address.PostalCommunity:    "Springfield",
				address.StateName:          "IL",
			},
			validity: address.PartiallyValid,
		},
		{
			name:  "noise between fields is dropped",
			input: "123 Main St  %%  Springfield, IL 62701",
			want: fieldMap{
				address.AddressNumber:      "123",
				address.StreetName:         "Main",
				address.StreetNamePostType: "St",
				address.PostalCommunity:    "Springfield",
				address.StateName:          "IL",
				address.PostalCode:         "62701",
			},
			validity: address.Valid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, validity := p.Parse(tt.input)
			if validity != tt.validity {
				t.Errorf("Parse(%q) validity = %s, want %s", tt.input, validity, tt.validity)
			}
			assertFields(t, parsed, tt.want)
		})
	}
}

func TestParseMonotonicity(t *testing.T) {
	p := mustNew(t)

	// adding information never weakens the classification
	pairs := []struct {
		weaker, stronger string
	}{
		{"Main St", "123 Main St, Springfield, IL"},
		{"123 Main St, Springfield, IL", "123 Main St, Springfield, IL 62701"},
		{"", "62701 IL"},
	}
	for _, pair := range pairs {
		_, weak := p.Parse(pair.weaker)
		_, strong := p.Parse(pair.stronger)
		if strong < weak {
			t.Errorf("Parse(%q) = %s is weaker than Parse(%q) = %s",
				pair.stronger, strong, pair.weaker, weak)
		}
	}
}

func TestParseCanonicalRoundTrip(t *testing.T) {
	p := mustNew(t)

	inputs := []string{
		"123 N Main St, Springfield, IL 62701",
		"N123B Elm Ave SE Ext, Community of Pleasant Hill, OR 97455",
		"1 Avenue of the Americas, New York, NY 10013",
		"450 Hungerford Dr, City of Rockville, MD 20850, USA",
		"123 1/2 Old Main St, Springfield, Sangamon County, IL 62701",
	}
	for _, input := range inputs {
		first, validity := p.Parse(input)
		second, again := p.Parse(first.String())
		if !first.Equal(second) {
			t.Errorf("reparsing %q (from %q) gave %v, want %v",
				first.String(), input, second.Components(), first.Components())
		}
		if again != validity {
			t.Errorf("reparsing %q changed validity from %s to %s", first.String(), validity, again)
		}
	}
}

func TestParseIsTotal(t *testing.T) {
	p := mustNew(t)

	inputs := []string{
		strings.Repeat("123 Main St, ", 200),
		"\x00\x01\x02",
		"日本 東京都 123",
		"ünïcödé Straße 42, Köln",
		"-- ;; ,, // \\",
	}
	for i := 0; i < 50; i++ {
		inputs = append(inputs, randomstring.HumanFriendlyEnglishString(60))
	}
	for _, input := range inputs {
		parsed, validity := p.Parse(input)
		if validity < address.Unparseable || validity > address.Valid {
			t.Errorf("Parse(%q) validity out of range: %d", input, validity)
		}
		if parsed.Len() == 0 && validity != address.Unparseable {
			t.Errorf("Parse(%q) recognized nothing but classified %s", input, validity)
		}
	}
}

func TestParseAbsenceVersusEmpty(t *testing.T) {
	p := mustNew(t)

	parsed, _ := p.Parse("123 Main St, Springfield, IL 62701")
	if text, ok := parsed.Get(address.CountryName); ok || text != "" {
		t.Errorf("Get(CountryName) = (%q, %t), want absent", text, ok)
	}
	for _, c := range parsed.Components() {
		if text, _ := parsed.Get(c); text == "" {
			t.Errorf("component %s present with empty text", c)
		}
	}
}

func TestParseConcurrent(t *testing.T) {
	p := mustNew(t)

	const goroutines = 16
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				parsed, validity := p.Parse("123 N Main St, Springfield, IL 62701")
				if validity != address.Valid || parsed.Len() != 7 {
					t.Errorf("concurrent Parse gave %s with %d components", validity, parsed.Len())
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestOptions(t *testing.T) {
	t.Run("communities extend the lexicon", func(t *testing.T) {
		input := "123 Main St, King City, OR 97224"

		parsed, _ := mustNew(t).Parse(input)
		if got, _ := parsed.Get(address.PostalCommunity); got != "King" {
			t.Errorf("default community = %q, want %q", got, "King")
		}

		parsed, _ = mustNew(t, WithCommunities("King City")).Parse(input)
		if got, _ := parsed.Get(address.PostalCommunity); got != "King City" {
			t.Errorf("extended community = %q, want %q", got, "King City")
		}
	})

	t.Run("counties extend the lexicon", func(t *testing.T) {
		input := "123 Main St, Springfield, Sangamon, IL 62701"

		parsed, _ := mustNew(t).Parse(input)
		if parsed.Has(address.CountyName) {
			t.Error("default parse should not recognize an unmarked county")
		}

		parsed, validity := mustNew(t, WithCounties("Sangamon")).Parse(input)
		if got, _ := parsed.Get(address.CountyName); got != "Sangamon" {
			t.Errorf("county = %q, want %q", got, "Sangamon")
		}
		if validity != address.Valid {
			t.Errorf("validity = %s, want %s", validity, address.Valid)
		}
	})

	t.Run("custom lexicon", func(t *testing.T) {
		lex := lexicon.Default().Clone()
		lex.Communities.Add("Happy Valley")
		parsed, _ := mustNew(t, WithLexicon(lex)).Parse("123 Main St, Happy Valley, OR 97086")
		if got, _ := parsed.Get(address.PostalCommunity); got != "Happy Valley" {
			t.Errorf("community = %q, want %q", got, "Happy Valley")
		}
	})

	t.Run("argument errors", func(t *testing.T) {
		cases := []struct {
			name string
			opt  Option
			want error
		}{
			{"nil lexicon", WithLexicon(nil), errNilLexicon},
			{"no communities", WithCommunities(), errNoNames},
			{"no counties", WithCounties(), errNoNames},
		}
		for _, tc := range cases {
			if _, err := New(tc.opt); !errors.Is(err, tc.want) {
				t.Errorf("%s: New() error = %v, want %v", tc.name, err, tc.want)
			}
		}
	})
}
