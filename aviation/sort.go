// aviation/sort.go
// Copyright(c) 2024-2025 airports contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/airportgeo/airports/math"
	"github.com/airportgeo/airports/util"
)

// Ordering is a three-way comparison of two airports, following the
// convention of cmp.Compare. All orderings are used with a stable sort, so
// records that compare equal keep their relative order.
//
// String comparisons are byte-wise and case-sensitive.
type Ordering func(a, b Airport) int

func ById(a, b Airport) int   { return cmp.Compare(a.Id, b.Id) }
func ByType(a, b Airport) int { return cmp.Compare(a.Type, b.Type) }
func ByName(a, b Airport) int { return cmp.Compare(a.Name, b.Name) }

func ByNameDescending(a, b Airport) int { return cmp.Compare(b.Name, a.Name) }

// ByCountryCity orders by country and then by city within a country.
func ByCountryCity(a, b Airport) int {
	return cmp.Or(cmp.Compare(a.Country, b.Country), cmp.Compare(a.City, b.City))
}

// ByLatitude orders from north to south.
func ByLatitude(a, b Airport) int { return math.Compare(b.Latitude(), a.Latitude()) }

// ByLongitude orders from west to east.
func ByLongitude(a, b Airport) int { return math.Compare(a.Longitude(), b.Longitude()) }

// ByDistance returns an Ordering from nearest to furthest according to
// the given distance function. Airports for which it returns an error sort
// after all of the others.
func ByDistance(distance func(Airport) (float64, error)) Ordering {
	return func(a, b Airport) int {
		da, erra := distance(a)
		db, errb := distance(b)
		switch {
		case erra != nil && errb != nil:
			return 0
		case erra != nil:
			return 1
		case errb != nil:
			return -1
		default:
			return cmp.Compare(da, db)
		}
	}
}

// ByDistanceFrom returns an Ordering from nearest to furthest from ref.
func ByDistanceFrom(ref Airport) Ordering {
	return ByDistance(func(ap Airport) (float64, error) { return AirDistance(&ref, &ap) })
}

// Orderings maps the names accepted by LookupOrdering to the corresponding
// orderings.
var Orderings = map[string]Ordering{
	"id":               ById,
	"type":             ByType,
	"name":             ByName,
	"name-desc":        ByNameDescending,
	"country-city":     ByCountryCity,
	"latitude":         ByLatitude,
	"longitude":        ByLongitude,
	"lincoln-distance": ByDistanceFrom(LincolnMunicipal),
}

func LookupOrdering(name string) (Ordering, error) {
	if o, ok := Orderings[name]; ok {
		return o, nil
	}
	return nil, fmt.Errorf("%q: %w (expected one of %v)", name, ErrUnknownOrdering, util.SortedMapKeys(Orderings))
}

// SortAirports sorts airports in place.
func SortAirports(airports []Airport, o Ordering) {
	slices.SortStableFunc(airports, o)
}

// SortedAirports returns a sorted copy of airports, leaving the original
// unchanged.
func SortedAirports(airports []Airport, o Ordering) []Airport {
	s := util.DuplicateSlice(airports)
	SortAirports(s, o)
	return s
}
