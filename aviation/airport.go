// aviation/airport.go
// Copyright(c) 2024-2025 airports contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"fmt"

	"github.com/airportgeo/airports/math"
	"github.com/airportgeo/airports/util"
)

// Airport is a single airport record. Records are values; nothing in this
// package modifies the fields of an Airport it is given.
type Airport struct {
	Id        string        `json:"id" msgpack:"id"` // GPS code
	Type      string        `json:"type" msgpack:"type"`
	Name      string        `json:"name" msgpack:"name"`
	Location  math.Point2LL `json:"location" msgpack:"location"`
	Elevation int           `json:"elevation_ft" msgpack:"elevation_ft"`
	City      string        `json:"city" msgpack:"city"`
	Country   string        `json:"country" msgpack:"country"`
}

// LincolnMunicipal is the reference point used by the distance-from-Lincoln
// reports.
var LincolnMunicipal = Airport{
	Id:        "0R2",
	Type:      "small_airport",
	Name:      "Lincoln Municipal Airport",
	Location:  math.Point2LL{-96.75471, 40.846176},
	Elevation: 4603,
	City:      "Lincoln",
	Country:   "USA",
}

func (ap Airport) Latitude() float64  { return ap.Location.Latitude() }
func (ap Airport) Longitude() float64 { return ap.Location.Longitude() }

func (ap Airport) String() string {
	return fmt.Sprintf("%-8s %-15s %-20s %.2f %.2f %d %-10s %-2s", ap.Id, ap.Type, ap.Name,
		ap.Latitude(), ap.Longitude(), ap.Elevation, ap.City, ap.Country)
}

// NewAirport returns an Airport with the given attributes after checking
// that all of the text fields are present and that the position is valid.
func NewAirport(id, typ, name string, latitude, longitude float64, elevation int,
	city, country string) (Airport, error) {
	for _, f := range [][2]string{{"id", id}, {"type", typ}, {"name", name}, {"city", city}, {"country", country}} {
		if f[1] == "" {
			return Airport{}, fmt.Errorf("%s: missing %s: %w", util.Select(id != "", id, "airport"), f[0], ErrInvalidInput)
		}
	}

	ap := Airport{
		Id:        id,
		Type:      typ,
		Name:      name,
		Location:  math.Point2LL{longitude, latitude},
		Elevation: elevation,
		City:      city,
		Country:   country,
	}
	if err := checkLocation("", ap); err != nil {
		return Airport{}, fmt.Errorf("%s: %w", id, err)
	}
	return ap, nil
}

// checkLocation returns an ErrOutOfRange error if the airport's latitude or
// longitude is outside the valid range; which is used to say which side of
// a pair of airports was bad.
func checkLocation(which string, ap Airport) error {
	prefix := util.Select(which == "", "", which+" ")
	if !math.ValidLatitude(ap.Latitude()) {
		return fmt.Errorf("%slatitude %g must be between -90 and 90 degrees: %w", prefix, ap.Latitude(), ErrOutOfRange)
	}
	if !math.ValidLongitude(ap.Longitude()) {
		return fmt.Errorf("%slongitude %g must be between -180 and 180 degrees: %w", prefix, ap.Longitude(), ErrOutOfRange)
	}
	return nil
}

// ValidateAirports reports every problem found in the given records to e:
// missing fields, out-of-range positions, and repeated ids.
func ValidateAirports(airports []Airport, e *util.ErrorLogger) {
	seen := make(map[string]int)
	for i, ap := range airports {
		e.Push(util.Select(ap.Id != "", ap.Id, fmt.Sprintf("#%d", i)))

		if ap.Id == "" {
			e.ErrorString("missing id")
		} else if j, ok := seen[ap.Id]; ok {
			e.ErrorString("id repeats record #%d", j)
		} else {
			seen[ap.Id] = i
		}
		for _, f := range [][2]string{{"type", ap.Type}, {"name", ap.Name}, {"city", ap.City}, {"country", ap.Country}} {
			if f[1] == "" {
				e.ErrorString("missing %s", f[0])
			}
		}
		if err := checkLocation("", ap); err != nil {
			e.Error(err)
		}

		e.Pop()
	}
}

// SampleAirports returns the built-in set of records that is reported on
// when no airport database is given.
func SampleAirports() []Airport {
	mk := func(id, typ, name string, lat, lon float64, elev int, city, country string) Airport {
		return Airport{Id: id, Type: typ, Name: name, Location: math.Point2LL{lon, lat},
			Elevation: elev, City: city, Country: country}
	}
	return []Airport{
		mk("SLIY", "small_airport", "Intiraymi Airport", -17.81, -67.44, 1246, "La Joya", "BO"),
		mk("CYOH", "medium", "Oxford House Airport", 54.93, -95.28, 663, "Oxford House", "CA"),
		mk("UHK1", "smallest", "Blagodatnoye Base", 48.41, 135.41, 0, "Blagodatnoye", "RU"),
		mk("NYNY", "intl", "JFK", 40.78, -73.87, 50, "New York", "US"),
		mk("RK6M", "heliport", "H 173 Heliport", 37.91, 126.88, 1552, "Camp Ethan", "KR"),
		mk("LGSR", "smaller", "Santorini Airport", 36.40, 25.48, 127, "Santorini", "GR"),
		mk("KGGW", "mediumish", "Wokal Field", 48.21, -106.61, 2296, "Glasgow", "US"),
		mk("FR-0045", "helipad", "Le Port Heliport", 47.98, 3.39, 254, "Joigny", "FR"),
		mk("NGAB", "tiny", "Abaiang Airport", 1.80, 173.04, 0, "Abaiang", "KI"),
		mk("KR-0515", "heli", "Cheonmi-ri South", 38.25, 127.87, 0, "Cheonmi-ri", "KR"),
	}
}
