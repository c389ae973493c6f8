// aviation/filter_test.go
// Copyright(c) 2024-2025 airports contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"slices"
	"testing"
)

func TestFilterByCityCountry(t *testing.T) {
	airports := SampleAirports()

	for _, test := range []struct {
		city, country string
		expected      []string
	}{
		{city: "New York", country: "US", expected: []string{"NYNY"}},
		{city: "New York", country: "USA"},
		{city: "new york", country: "US"},
		{city: "Camp Ethan", country: "KR", expected: []string{"RK6M"}},
		{city: "Glasgow", country: "GB"},
	} {
		sel, ok := FilterByCityCountry(airports, test.city, test.country)
		if ok != (len(test.expected) > 0) || sel.Found() != ok || sel.Len() != len(test.expected) {
			t.Errorf("%s, %s: got ok %v, %d airports; expected %d", test.city, test.country, ok, sel.Len(),
				len(test.expected))
		}
		if got := ids(sel.Airports); !slices.Equal(got, test.expected) {
			t.Errorf("%s, %s: got %v, expected %v", test.city, test.country, got, test.expected)
		}
	}

	// Airports in a same-named city of another country are not selected.
	newYorks := []Airport{
		{Id: "NYGB", Type: "small_airport", Name: "New York Field", City: "New York", Country: "GB"},
		airports[3],
		{Id: "NYG2", Type: "heliport", Name: "New York Heliport", City: "New York", Country: "GB"},
	}
	sel, ok := FilterByCityCountry(newYorks, "New York", "US")
	if !ok || sel.Len() != 1 || len(sel.Airports) != 1 || sel.Airports[0].Id != "NYNY" {
		t.Errorf("New York, US: got %v (len %d), expected [NYNY]", ids(sel.Airports), sel.Len())
	}
	if sel, _ := FilterByCityCountry(newYorks, "New York", "GB"); !slices.Equal(ids(sel.Airports), []string{"NYGB", "NYG2"}) {
		t.Errorf("New York, GB: got %v, expected [NYGB NYG2]", ids(sel.Airports))
	}

	if sel, ok := FilterByCityCountry(nil, "New York", "US"); ok || sel.Found() {
		t.Errorf("found airports in an empty list")
	}
}

func TestFilterByType(t *testing.T) {
	airports := SampleAirports()
	airports = append(airports, Airport{Id: "KJFK", Type: "intl", Name: "Kennedy", City: "New York", Country: "US"})

	sel, ok := FilterByType(airports, "intl")
	if !ok || !slices.Equal(ids(sel.Airports), []string{"NYNY", "KJFK"}) {
		t.Errorf("intl: got %v", ids(sel.Airports))
	}

	if sel, ok := FilterByType(airports, "large_airport"); ok || sel.Len() != 0 {
		t.Errorf("large_airport: got %v, expected nothing", ids(sel.Airports))
	}
	if _, ok := FilterByType(airports, "Intl"); ok {
		t.Errorf("type match should be case-sensitive")
	}
}

func TestFilterAirports(t *testing.T) {
	airports := SampleAirports()
	sel, ok := FilterAirports(airports, func(ap Airport) bool { return ap.Elevation == 0 })
	if !ok || !slices.Equal(ids(sel.Airports), []string{"UHK1", "NGAB", "KR-0515"}) {
		t.Errorf("got %v, expected [UHK1 NGAB KR-0515]", ids(sel.Airports))
	}
	if !slices.Equal(airports, SampleAirports()) {
		t.Errorf("filter modified its input")
	}
}
