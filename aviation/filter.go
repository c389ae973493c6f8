// aviation/filter.go
// Copyright(c) 2024-2025 airports contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import "github.com/airportgeo/airports/util"

// Selection holds the airports matched by a filter, in their original
// order. A Selection that matched nothing has no airports.
type Selection struct {
	Airports []Airport
}

func (s Selection) Found() bool { return len(s.Airports) > 0 }
func (s Selection) Len() int    { return len(s.Airports) }

// FilterAirports returns the airports for which pred returns true. The
// returned bool is false if there were none.
func FilterAirports(airports []Airport, pred func(Airport) bool) (Selection, bool) {
	sel := Selection{Airports: util.FilterSlice(airports, pred)}
	return sel, sel.Found()
}

// FilterByCityCountry returns the airports in the given city of the given
// country; both must match exactly.
func FilterByCityCountry(airports []Airport, city, country string) (Selection, bool) {
	return FilterAirports(airports, func(ap Airport) bool {
		return ap.City == city && ap.Country == country
	})
}

// FilterByType returns the airports whose type exactly matches typ.
func FilterByType(airports []Airport, typ string) (Selection, bool) {
	return FilterAirports(airports, func(ap Airport) bool { return ap.Type == typ })
}
