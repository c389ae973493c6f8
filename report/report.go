// report/report.go
// Copyright(c) 2024-2025 airports contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package report generates the airport report: the input records in each
// of the standard orderings, the records nearest to and furthest from a
// reference airport, the results of the standard filters, and optionally
// the timing of an itinerary.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/airportgeo/airports/aviation"
	"github.com/airportgeo/airports/log"
	"github.com/airportgeo/airports/math"

	"github.com/brunoga/deep"
	"github.com/goforj/godump"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/iancoleman/orderedmap"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

const sectionRule = "=============================="

type Options struct {
	// Reference is the airport distances are measured from. The zero value
	// selects aviation.LincolnMunicipal.
	Reference aviation.Airport
	// Sort, if set, names a single ordering from aviation.Orderings; only
	// that ordering is reported.
	Sort string
	// Itinerary lists the ids of the stops of an itinerary to time. It is
	// only reported if non-empty.
	Itinerary    []string
	KMPerHour    float64
	LayoverHours float64
	Format       string
	// Dump prints the input records before the report.
	Dump bool
}

// Section is a titled part of the report. Missing is the text reported in
// place of the airports when there are none; it is empty for sections that
// list all of the input.
type Section struct {
	Title    string
	Airports []aviation.Airport
	Missing  string

	Legs       []aviation.Leg
	TotalHours float64
}

func (s Section) IsItinerary() bool { return s.Legs != nil }

// distanceMemo caches distances from the reference airport by location;
// the distance orderings compare each airport many times.
type distanceMemo struct {
	ref   aviation.Airport
	cache *expirable.LRU[math.Point2LL, float64]
}

func makeDistanceMemo(ref aviation.Airport, n int) distanceMemo {
	return distanceMemo{
		ref:   ref,
		cache: expirable.NewLRU[math.Point2LL, float64](max(n, 16), nil, 0),
	}
}

func (m distanceMemo) distance(ap aviation.Airport) (float64, error) {
	if d, ok := m.cache.Get(ap.Location); ok {
		return d, nil
	}
	d, err := aviation.AirDistance(&m.ref, &ap)
	if err == nil {
		m.cache.Add(ap.Location, d)
	}
	return d, err
}

func (o Options) reference() aviation.Airport {
	if o.Reference == (aviation.Airport{}) {
		return aviation.LincolnMunicipal
	}
	return o.Reference
}

// Sections returns the sections of the report for the given airports, in
// the order they are reported. The airports are not modified.
func Sections(airports []aviation.Airport, opts Options, lg *log.Logger) ([]Section, error) {
	ref := opts.reference()
	memo := makeDistanceMemo(ref, len(airports))
	byDistance := aviation.ByDistance(memo.distance)

	var sections []Section
	if opts.Sort != "" {
		o, err := aviation.LookupOrdering(opts.Sort)
		if err != nil {
			return nil, err
		}
		title := "Airports By " + opts.Sort
		if opts.Sort == "lincoln-distance" {
			// Distances are from the report's reference airport.
			o = byDistance
			title = "Airports By Distance from " + ref.City
		}
		sections = []Section{{Title: title, Airports: aviation.SortedAirports(airports, o)}}
	} else {
		sections = standardSections(airports, ref, byDistance)
	}

	if len(opts.Itinerary) > 0 {
		sec, err := itinerarySection(airports, opts)
		if err != nil {
			return nil, err
		}
		sections = append(sections, sec)
	}

	lg.Debugf("report: %d sections, %d distances memoized", len(sections), memo.cache.Len())
	return sections, nil
}

func standardSections(airports []aviation.Airport, ref aviation.Airport, byDistance aviation.Ordering) []Section {
	sorted := func(title string, o aviation.Ordering) Section {
		return Section{Title: "Airports " + title, Airports: aviation.SortedAirports(airports, o)}
	}
	sections := []Section{
		{Title: "Airports (original)", Airports: airports},
		sorted("By GPS ID", aviation.ById),
		sorted("By Type", aviation.ByType),
		sorted("By Name", aviation.ByName),
		sorted("By Name - Reversed", aviation.ByNameDescending),
		sorted("By Country/City", aviation.ByCountryCity),
		sorted("By Latitude", aviation.ByLatitude),
		sorted("By Longitude", aviation.ByLongitude),
		sorted("By Distance from "+ref.City, byDistance),
	}

	single := func(title string, s []aviation.Airport, i int) Section {
		sec := Section{Title: title, Missing: "No airports found!"}
		if i >= 0 && i < len(s) {
			sec.Airports = []aviation.Airport{s[i]}
		}
		return sec
	}
	nearest := sections[len(sections)-1].Airports
	byLongitude := sections[7].Airports
	sections = append(sections,
		single("Closest Airport to "+ref.City, nearest, 0),
		single("Furthest Airport from "+ref.City, nearest, len(nearest)-1),
		single("East-West Geographic Center", byLongitude, len(byLongitude)/2))

	ny, _ := aviation.FilterByCityCountry(airports, "New York", "US")
	sections = append(sections, Section{Title: "New York, NY airport", Airports: ny.Airports,
		Missing: "No New York airport found!"})
	large, _ := aviation.FilterByType(airports, "large_airport")
	return append(sections, Section{Title: "Large airport", Airports: large.Airports,
		Missing: "No large airport found!"})
}

func itinerarySection(airports []aviation.Airport, opts Options) (Section, error) {
	stops, err := aviation.LookupStops(airports, opts.Itinerary)
	if err != nil {
		return Section{}, fmt.Errorf("itinerary: %w", err)
	}

	it := aviation.Itinerary{Stops: stops, KMPerHour: opts.KMPerHour, LayoverHours: opts.LayoverHours}
	legs, err := it.Legs()
	if err != nil {
		return Section{}, fmt.Errorf("itinerary: %w", err)
	}
	total, err := it.TotalHours()
	if err != nil {
		return Section{}, fmt.Errorf("itinerary: %w", err)
	}

	if legs == nil {
		legs = []aviation.Leg{}
	}
	return Section{Title: "Itinerary", Airports: stops, Legs: legs, TotalHours: total}, nil
}

// Generate writes the report for the given airports to w in the format
// given by opts.Format. The airports are copied first and are never
// modified.
func Generate(w io.Writer, airports []aviation.Airport, opts Options, lg *log.Logger) error {
	airports, err := deep.Copy(airports)
	if err != nil {
		return err
	}

	if opts.Dump {
		// Keep JSON output parseable.
		if opts.Format == FormatJSON {
			godump.Fdump(os.Stderr, airports)
		} else {
			godump.Fdump(w, airports)
		}
	}

	sections, err := Sections(airports, opts, lg)
	if err != nil {
		return err
	}

	switch opts.Format {
	case "", FormatText:
		return writeText(w, sections)
	case FormatJSON:
		return writeJSON(w, sections)
	default:
		return fmt.Errorf("%s: unknown report format", opts.Format)
	}
}

// errWriter remembers the first error from the underlying writer and
// discards all writes after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}

func writeText(out io.Writer, sections []Section) error {
	w := &errWriter{w: out}

	for i, sec := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s: \n%s\n", sec.Title, sectionRule)

		if sec.IsItinerary() {
			for _, leg := range sec.Legs {
				fmt.Fprintf(w, "%-8s -> %-8s %9.1f km %7.1f nm %6.2f h", leg.From.Id, leg.To.Id,
					leg.DistanceKM, leg.DistanceNM(), leg.FlightHours)
				if leg.LayoverHours > 0 {
					fmt.Fprintf(w, " + %.2f h layover", leg.LayoverHours)
				}
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "Total: %.2f hours\n", sec.TotalHours)
			continue
		}

		if len(sec.Airports) == 0 && sec.Missing != "" {
			fmt.Fprintln(w, sec.Missing)
		}
		for _, ap := range sec.Airports {
			fmt.Fprintln(w, ap.String())
		}
	}

	fmt.Fprintln(w)
	return w.err
}

func writeJSON(w io.Writer, sections []Section) error {
	report := orderedmap.New()
	report.SetEscapeHTML(false)

	for _, sec := range sections {
		switch {
		case sec.IsItinerary():
			legs := make([]*orderedmap.OrderedMap, 0, len(sec.Legs))
			for _, leg := range sec.Legs {
				l := orderedmap.New()
				l.Set("from", leg.From.Id)
				l.Set("to", leg.To.Id)
				l.Set("distance_km", leg.DistanceKM)
				l.Set("distance_nm", leg.DistanceNM())
				l.Set("flight_hours", leg.FlightHours)
				l.Set("layover_hours", leg.LayoverHours)
				legs = append(legs, l)
			}
			it := orderedmap.New()
			it.Set("legs", legs)
			it.Set("total_hours", sec.TotalHours)
			report.Set(sec.Title, it)
		case len(sec.Airports) == 0 && sec.Missing != "":
			report.Set(sec.Title, sec.Missing)
		case sec.Airports == nil:
			report.Set(sec.Title, []aviation.Airport{})
		default:
			report.Set(sec.Title, sec.Airports)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
