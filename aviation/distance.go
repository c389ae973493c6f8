// aviation/distance.go
// Copyright(c) 2024-2025 airports contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"fmt"

	"github.com/airportgeo/airports/math"
)

// AirDistance returns the great-circle distance in kilometers between the
// two airports. Both positions are checked before any computation.
func AirDistance(origin, destination *Airport) (float64, error) {
	if origin == nil || destination == nil {
		return Invalid, fmt.Errorf("airport not provided: %w", ErrInvalidInput)
	}
	if err := checkLocation("origin", *origin); err != nil {
		return Invalid, err
	}
	if err := checkLocation("destination", *destination); err != nil {
		return Invalid, err
	}

	return math.KMDistance2LL(origin.Location, destination.Location), nil
}

// AirDistanceKM is like AirDistance but returns Invalid rather than an
// error, for callers that want a plain number.
func AirDistanceKM(origin, destination *Airport) float64 {
	d, err := AirDistance(origin, destination)
	if err != nil {
		return Invalid
	}
	return d
}
