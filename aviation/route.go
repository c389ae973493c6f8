// aviation/route.go
// Copyright(c) 2024-2025 airports contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"fmt"

	"github.com/airportgeo/airports/math"
)

// Itinerary is an ordered sequence of stops flown at a constant ground
// speed, with a fixed layover at each intermediate stop.
type Itinerary struct {
	Stops        []Airport
	KMPerHour    float64
	LayoverHours float64
}

// Leg is a single flight between consecutive stops of an Itinerary.
// LayoverHours is the time spent on the ground at To before the next leg;
// it is zero for the final leg.
type Leg struct {
	From, To     Airport
	DistanceKM   float64
	FlightHours  float64
	LayoverHours float64
}

func (l Leg) DistanceNM() float64 {
	return math.NMDistance2LL(l.From.Location, l.To.Location)
}

func (it Itinerary) validate() error {
	if len(it.Stops) == 0 {
		return fmt.Errorf("itinerary has no stops: %w", ErrInvalidParameter)
	}
	// Written so that NaN fails both checks.
	if !(it.KMPerHour > 0) {
		return fmt.Errorf("speed %g km/h must be positive: %w", it.KMPerHour, ErrInvalidParameter)
	}
	if !(it.LayoverHours >= 0) {
		return fmt.Errorf("layover %g hours must not be negative: %w", it.LayoverHours, ErrInvalidParameter)
	}
	return nil
}

// Legs returns the legs flown by the itinerary. A single-stop itinerary
// has no legs.
func (it Itinerary) Legs() ([]Leg, error) {
	if err := it.validate(); err != nil {
		return nil, err
	}

	var legs []Leg
	for i := 0; i+1 < len(it.Stops); i++ {
		d, err := AirDistance(&it.Stops[i], &it.Stops[i+1])
		if err != nil {
			return nil, fmt.Errorf("leg %d (%s-%s): %w", i, it.Stops[i].Id, it.Stops[i+1].Id, err)
		}

		leg := Leg{
			From:        it.Stops[i],
			To:          it.Stops[i+1],
			DistanceKM:  d,
			FlightHours: d / it.KMPerHour,
		}
		if i < len(it.Stops)-2 {
			leg.LayoverHours = it.LayoverHours
		}
		legs = append(legs, leg)
	}
	return legs, nil
}

// TotalHours returns the flying time plus the layovers at each of the
// intermediate stops.
func (it Itinerary) TotalHours() (float64, error) {
	legs, err := it.Legs()
	if err != nil {
		return Invalid, err
	}

	var total float64
	for _, l := range legs {
		total += l.FlightHours + l.LayoverHours
	}
	return total, nil
}

// EstimatedTravelTime returns the hours needed to fly the given stops in
// order at kmPerHour, spending layoverHours on the ground at every stop
// other than the first and last.
func EstimatedTravelTime(stops []Airport, kmPerHour, layoverHours float64) (float64, error) {
	return Itinerary{Stops: stops, KMPerHour: kmPerHour, LayoverHours: layoverHours}.TotalHours()
}

// EstimatedTravelTimeHours is like EstimatedTravelTime but returns Invalid
// rather than an error.
func EstimatedTravelTimeHours(stops []Airport, kmPerHour, layoverHours float64) float64 {
	t, err := EstimatedTravelTime(stops, kmPerHour, layoverHours)
	if err != nil {
		return Invalid
	}
	return t
}

// LookupStops returns the airports with the given ids, in the order given.
// The first record with a matching id is used.
func LookupStops(airports []Airport, ids []string) ([]Airport, error) {
	idx := make(map[string]int)
	for i, ap := range airports {
		if _, ok := idx[ap.Id]; !ok {
			idx[ap.Id] = i
		}
	}

	stops := make([]Airport, 0, len(ids))
	for _, id := range ids {
		i, ok := idx[id]
		if !ok {
			return nil, fmt.Errorf("%s: %w", id, ErrUnknownAirport)
		}
		stops = append(stops, airports[i])
	}
	return stops, nil
}
