// math/latlong.go
// Copyright(c) 2024-2025 airports contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"encoding/json"
	"fmt"
	gomath "math"
	"regexp"
	"strconv"
)

// EarthRadiusKM is the mean radius of the Earth; distances treat the Earth
// as a sphere of this radius.
const EarthRadiusKM = 6371

const KMToNauticalMiles = 0.539957

///////////////////////////////////////////////////////////////////////////
// Point2LL

// Point2LL represents a 2D point on the Earth in latitude-longitude.
// Important: 0 (x) is longitude, 1 (y) is latitude
type Point2LL [2]float64

func (p Point2LL) Longitude() float64 {
	return p[0]
}

func (p Point2LL) Latitude() float64 {
	return p[1]
}

// ValidLatitude reports whether lat is in [-90,90]. NaN is not valid.
func ValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// ValidLongitude reports whether lon is in [-180,180]. NaN is not valid.
func ValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}

func (p Point2LL) Valid() bool {
	return ValidLatitude(p.Latitude()) && ValidLongitude(p.Longitude())
}

// DDString returns the position in decimal degrees, e.g.:
// (39.860901, -75.274864)
func (p Point2LL) DDString() string {
	return fmt.Sprintf("(%f, %f)", p[1], p[0]) // latitude, longitude
}

// DMSString returns the position in degrees minutes, seconds, e.g.
// N039.51.39.243,W075.16.29.511
func (p Point2LL) DMSString() string {
	format := func(v float64) string {
		// Work in integer milliseconds of arc so that the fields can't
		// round up to 60.
		ms := int64(gomath.Round(v * 3600000))
		deg := ms / 3600000
		ms -= deg * 3600000
		min := ms / 60000
		ms -= min * 60000
		sec := ms / 1000
		ms -= sec * 1000
		return fmt.Sprintf("%03d.%02d.%02d.%03d", deg, min, sec, ms)
	}

	var s string
	if p[1] >= 0 {
		s = "N"
	} else {
		s = "S"
	}
	s += format(Abs(p[1]))

	if p[0] >= 0 {
		s += ",E"
	} else {
		s += ",W"
	}
	s += format(Abs(p[0]))

	return s
}

// KMDistance2LL returns the great-circle distance in kilometers between
// two lat-long coordinates using the spherical law of cosines. The acos
// argument is clamped, so identical points give 0 rather than NaN.
func KMDistance2LL(a Point2LL, b Point2LL) float64 {
	lat1, lon1 := Radians(a.Latitude()), Radians(a.Longitude())
	lat2, lon2 := Radians(b.Latitude()), Radians(b.Longitude())

	c := gomath.Sin(lat1)*gomath.Sin(lat2) + gomath.Cos(lat1)*gomath.Cos(lat2)*gomath.Cos(lon1-lon2)
	return SafeACos(c) * EarthRadiusKM
}

// NMDistance2LL returns the distance in nautical miles between two
// provided lat-long coordinates.
func NMDistance2LL(a Point2LL, b Point2LL) float64 {
	return KMDistance2LL(a, b) * KMToNauticalMiles
}

var (
	// pair of floats (no exponents)
	reWaypointFloat = regexp.MustCompile(`^(\-?[0-9]+(?:\.[0-9]+)?), *(\-?[0-9]+(?:\.[0-9]+)?)$`)
)

// Parse waypoints of the form "N40.37.58.400, W073.46.17.000".
func tryParseWaypointDotted(b []byte) (Point2LL, bool) {
	if len(b) == 0 || (b[0] != 'N' && b[0] != 'S') {
		return Point2LL{}, false
	}
	negateLatitude := b[0] == 'S'

	// Skip over the N/S and parse the four dotted numbers following it
	b = b[1:]
	latitude, n, ok := tryParseWaypointNumbers(b)
	if !ok {
		return Point2LL{}, false
	}
	if negateLatitude {
		latitude = -latitude
	}
	b = b[n:]

	if len(b) == 0 || b[0] != ',' {
		return Point2LL{}, false
	}
	b = b[1:]

	// Skip optional space
	if len(b) > 0 && b[0] == ' ' {
		b = b[1:]
	}

	if len(b) == 0 || (b[0] != 'E' && b[0] != 'W') {
		return Point2LL{}, false
	}
	negateLongitude := b[0] == 'W'

	b = b[1:]
	longitude, n, ok := tryParseWaypointNumbers(b)
	if !ok || n != len(b) {
		return Point2LL{}, false
	}
	if negateLongitude {
		longitude = -longitude
	}

	return Point2LL{longitude, latitude}, true
}

// Parse a latlong of the form aaa.bbb.ccc.ddd and return the
// corresponding value. Returns the latlong, the number of bytes of b
// consumed, and a bool indicating success or failure.
func tryParseWaypointNumbers(b []byte) (float64, int, bool) {
	n := 0
	var ll float64

	// Scan to the end of the current number group; return
	// the number of bytes it uses.
	scan := func(b []byte) int {
		for i, v := range b {
			if v == '.' || v == ',' {
				return i
			}
		}
		return len(b)
	}

	for i := 0; i < 4; i++ {
		end := scan(b)
		if end == 0 {
			return 0, 0, false
		}

		value := 0
		for _, ch := range b[:end] {
			if ch < '0' || ch > '9' {
				return 0, 0, false
			}
			value *= 10
			value += int(ch - '0')
		}
		if i == 3 {
			// Treat the last set of digits as a decimal, so that
			// Nxx.yy.zz.1 is handled like Nxx.yy.zz.100.
			for j := end; j < 3; j++ {
				value *= 10
			}
		}

		scales := [4]float64{1, 60, 3600, 3600000}
		ll += float64(value) / scales[i]
		n += end
		b = b[end:]

		if i < 3 {
			if len(b) == 0 || b[0] != '.' {
				return 0, 0, false
			}
			b = b[1:]
			n++
		}
	}

	return ll, n, true
}

// ParseLatLong parses either a dotted degrees/minutes/seconds position
// ("N40.50.46.234,W096.45.16.956") or a decimal "latitude, longitude"
// pair ("40.846176, -96.75471").
func ParseLatLong(llstr []byte) (Point2LL, error) {
	if p, ok := tryParseWaypointDotted(llstr); ok {
		return p, nil
	} else if strs := reWaypointFloat.FindStringSubmatch(string(llstr)); len(strs) == 3 {
		var p Point2LL
		if l, err := strconv.ParseFloat(strs[1], 64); err != nil {
			return Point2LL{}, err
		} else {
			p[1] = l
		}
		if l, err := strconv.ParseFloat(strs[2], 64); err != nil {
			return Point2LL{}, err
		} else {
			p[0] = l
		}
		return p, nil
	}
	return Point2LL{}, fmt.Errorf("%s: invalid latlong string", llstr)
}

// Store Point2LLs as strings in JSON, for compactness/friendliness...
func (p Point2LL) MarshalJSON() ([]byte, error) {
	return []byte("\"" + p.DMSString() + "\""), nil
}

func (p *Point2LL) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '[' {
		// Also accept arrays of two floats, [longitude, latitude].
		var pt [2]float64
		err := json.Unmarshal(b, &pt)
		if err == nil {
			*p = pt
		}
		return err
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	pt, err := ParseLatLong([]byte(s))
	if err == nil {
		*p = pt
	}
	return err
}

// CheckJSON lets util.CheckJSON accept both the string and array
// encodings of a Point2LL.
func (p Point2LL) CheckJSON(json interface{}) bool {
	switch v := json.(type) {
	case string:
		_, err := ParseLatLong([]byte(v))
		return err == nil
	case []interface{}:
		if len(v) != 2 {
			return false
		}
		for _, f := range v {
			if _, ok := f.(float64); !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}
