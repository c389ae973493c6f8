// aviation/errors.go
// Copyright(c) 2024-2025 airports contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import "errors"

var (
	ErrInvalidInput     = errors.New("Invalid input")
	ErrInvalidParameter = errors.New("Invalid parameter")
	ErrOutOfRange       = errors.New("Coordinate out of range")
	ErrUnknownAirport   = errors.New("Unknown airport")
	ErrUnknownOrdering  = errors.New("Unknown ordering")
)

// Invalid is returned by the numeric compatibility functions
// (AirDistanceKM, EstimatedTravelTimeHours) in place of an error; valid
// distances and times are never negative.
const Invalid = -1
