package address

import "testing"

func TestAllComponents(t *testing.T) {
	all := AllComponents()
	if len(all) != 18 {
		t.Fatalf("AllComponents() has %d entries, want 18", len(all))
	}
	if all[0] != AddressNumberPrefix || all[len(all)-1] != CountryName {
		t.Errorf("AllComponents() = %v, want prefix first and country last", all)
	}
	for i := 1; i < len(all); i++ {
		if all[i] <= all[i-1] {
			t.Errorf("components out of order at %d: %v then %v", i, all[i-1], all[i])
		}
	}
	for _, c := range all {
		if c.String() == "" {
			t.Errorf("component %d has no display name", c)
		}
	}
	if ComponentNone.String() != "" {
		t.Errorf("ComponentNone.String() = %q, want empty", ComponentNone.String())
	}
}

func TestParseComponent(t *testing.T) {
	tests := []struct {
		input string
		want  Component
	}{
		{"Postal Code", PostalCode},
		{"postal code", PostalCode},
		{"STREET NAME", StreetName},
		{"Subaddress", ComponentNone},
		{"", ComponentNone},
	}
	for _, tt := range tests {
		if got := ParseComponent(tt.input); got != tt.want {
			t.Errorf("ParseComponent(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestValidityOrder(t *testing.T) {
	all := AllValidities()
	if len(all) != 3 {
		t.Fatalf("AllValidities() has %d entries, want 3", len(all))
	}
	if !(Unparseable < PartiallyValid && PartiallyValid < Valid) {
		t.Error("validities must order from weakest to strongest")
	}

	names := map[Validity]string{
		Unparseable:    "Unparseable",
		PartiallyValid: "PartiallyValid",
		Valid:          "Valid",
	}
	for v, want := range names {
		if v.String() != want {
			t.Errorf("Validity(%d).String() = %q, want %q", v, v.String(), want)
		}
	}
}
