// report/report_test.go
// Copyright(c) 2024-2025 airports contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	gomath "math"
	"slices"
	"strings"
	"testing"

	"github.com/airportgeo/airports/aviation"

	"github.com/iancoleman/orderedmap"
)

var expectedTitles = []string{
	"Airports (original)",
	"Airports By GPS ID",
	"Airports By Type",
	"Airports By Name",
	"Airports By Name - Reversed",
	"Airports By Country/City",
	"Airports By Latitude",
	"Airports By Longitude",
	"Airports By Distance from Lincoln",
	"Closest Airport to Lincoln",
	"Furthest Airport from Lincoln",
	"East-West Geographic Center",
	"New York, NY airport",
	"Large airport",
}

// sectionText returns the lines reported under the given section title.
func sectionText(t *testing.T, report, title string) []string {
	t.Helper()
	_, rest, ok := strings.Cut(report, title+": \n==============================\n")
	if !ok {
		t.Fatalf("%s: section not found in report:\n%s", title, report)
	}
	body, _, _ := strings.Cut(rest, "\n\n")
	return strings.Split(strings.TrimSuffix(body, "\n"), "\n")
}

func TestGenerateText(t *testing.T) {
	airports := aviation.SampleAirports()

	var buf bytes.Buffer
	if err := Generate(&buf, airports, Options{}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "Airports (original): \n==============================\n") {
		t.Errorf("unexpected report start: %q", out[:min(len(out), 80)])
	}
	last := -1
	for _, title := range expectedTitles {
		i := strings.Index(out, title+": \n")
		if i == -1 {
			t.Errorf("%s: missing section", title)
		} else if i < last {
			t.Errorf("%s: section out of order", title)
		}
		last = i
	}

	if lines := sectionText(t, out, "Airports (original)"); len(lines) != 10 || !strings.HasPrefix(lines[0], "SLIY ") {
		t.Errorf("original: got %q", lines)
	}
	if lines := sectionText(t, out, "Airports By GPS ID"); len(lines) != 10 || !strings.HasPrefix(lines[0], "CYOH ") {
		t.Errorf("by GPS id: got %q", lines)
	}

	for _, test := range []struct {
		title, id string
	}{
		{"Closest Airport to Lincoln", "KGGW"},
		{"Furthest Airport from Lincoln", "RK6M"},
		{"East-West Geographic Center", "LGSR"},
		{"New York, NY airport", "NYNY"},
	} {
		lines := sectionText(t, out, test.title)
		if len(lines) != 1 || !strings.HasPrefix(lines[0], test.id+" ") {
			t.Errorf("%s: got %q, expected %s", test.title, lines, test.id)
		}
	}
	if lines := sectionText(t, out, "Large airport"); !slices.Equal(lines, []string{"No large airport found!"}) {
		t.Errorf("large airport: got %q", lines)
	}

	if !slices.Equal(airports, aviation.SampleAirports()) {
		t.Errorf("Generate modified its input")
	}
}

func TestGenerateEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, nil, Options{}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	if n := strings.Count(out, "No airports found!"); n != 3 {
		t.Errorf("got %d \"No airports found!\", expected 3:\n%s", n, out)
	}
	for _, s := range []string{"No New York airport found!", "No large airport found!"} {
		if !strings.Contains(out, s) {
			t.Errorf("report missing %q:\n%s", s, out)
		}
	}
	if strings.Contains(out, "Itinerary") {
		t.Errorf("unexpected itinerary section:\n%s", out)
	}
}

func TestGenerateReference(t *testing.T) {
	opts := Options{Reference: aviation.SampleAirports()[3]} // New York
	sections, err := Sections(aviation.SampleAirports(), opts, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, sec := range sections {
		if sec.Title == "Closest Airport to New York" {
			if len(sec.Airports) != 1 || sec.Airports[0].Id != "NYNY" {
				t.Errorf("closest: got %v, expected NYNY", sec.Airports)
			}
			return
		}
	}
	t.Errorf("no section for the closest airport to New York")
}

func TestGenerateItinerary(t *testing.T) {
	airports := aviation.SampleAirports()
	opts := Options{Itinerary: []string{"KGGW", "NYNY", "LGSR"}, KMPerHour: 800, LayoverHours: 1}

	sections, err := Sections(airports, opts, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sec := sections[len(sections)-1]
	if sec.Title != "Itinerary" || len(sec.Legs) != 2 {
		t.Fatalf("unexpected itinerary section %+v", sec)
	}

	stops, _ := aviation.LookupStops(airports, opts.Itinerary)
	expected, _ := aviation.EstimatedTravelTime(stops, 800, 1)
	if gomath.Abs(sec.TotalHours-expected) > 1e-9 {
		t.Errorf("got total %f hours, expected %f", sec.TotalHours, expected)
	}

	var buf bytes.Buffer
	if err := Generate(&buf, airports, opts, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := sectionText(t, buf.String(), "Itinerary")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "KGGW     -> NYNY") ||
		!strings.Contains(lines[0], "+ 1.00 h layover") || strings.Contains(lines[1], "layover") ||
		!strings.HasPrefix(lines[2], "Total: ") {
		t.Errorf("unexpected itinerary text %q", lines)
	}

	for _, test := range []struct {
		name string
		opts Options
		err  error
	}{
		{name: "unknown stop", opts: Options{Itinerary: []string{"KGGW", "XXXX"}, KMPerHour: 800}, err: aviation.ErrUnknownAirport},
		{name: "zero speed", opts: Options{Itinerary: []string{"KGGW", "NYNY"}}, err: aviation.ErrInvalidParameter},
	} {
		if err := Generate(&bytes.Buffer{}, airports, test.opts, nil); !errors.Is(err, test.err) {
			t.Errorf("%s: got error %v, expected %v", test.name, err, test.err)
		}
	}
}

func TestGenerateSort(t *testing.T) {
	sections, err := Sections(aviation.SampleAirports(), Options{Sort: "lincoln-distance"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sections) != 1 {
		t.Fatalf("got %d sections, expected 1", len(sections))
	}
	ids := make([]string, 0, len(sections[0].Airports))
	for _, ap := range sections[0].Airports {
		ids = append(ids, ap.Id)
	}
	expected := []string{"KGGW", "CYOH", "NYNY", "SLIY", "FR-0045", "UHK1", "LGSR", "NGAB", "KR-0515", "RK6M"}
	if !slices.Equal(ids, expected) {
		t.Errorf("got %v, expected %v", ids, expected)
	}

	// The distance ordering and its title follow the report's reference
	// airport, and an itinerary is still reported.
	opts := Options{Sort: "lincoln-distance", Reference: aviation.SampleAirports()[3], // New York
		Itinerary: []string{"NYNY", "LGSR"}, KMPerHour: 800}
	sections, err = Sections(aviation.SampleAirports(), opts, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sections) != 2 || sections[0].Title != "Airports By Distance from New York" ||
		sections[1].Title != "Itinerary" {
		t.Fatalf("unexpected sections %+v", sections)
	}
	if sections[0].Airports[0].Id != "NYNY" {
		t.Errorf("got %s nearest New York, expected NYNY", sections[0].Airports[0].Id)
	}

	if _, err := Sections(nil, Options{Sort: "elevation"}, nil); !errors.Is(err, aviation.ErrUnknownOrdering) {
		t.Errorf("got error %v, expected %v", err, aviation.ErrUnknownOrdering)
	}
}

type failingWriter struct {
	n      int
	writes int
}

func (fw *failingWriter) Write(b []byte) (int, error) {
	fw.writes++
	if fw.writes > fw.n {
		return 0, errors.New("disk full")
	}
	return len(b), nil
}

func TestGenerateWriteError(t *testing.T) {
	// Fail partway through rather than on the final write.
	fw := &failingWriter{n: 3}
	err := Generate(fw, aviation.SampleAirports(), Options{}, nil)
	if err == nil || err.Error() != "disk full" {
		t.Errorf("got error %v, expected the write error", err)
	}
	if fw.writes != 4 {
		t.Errorf("got %d writes, expected writing to stop after the first failure", fw.writes)
	}
}

func TestGenerateJSON(t *testing.T) {
	opts := Options{Format: FormatJSON, Itinerary: []string{"NYNY", "KGGW"}, KMPerHour: 500}

	var buf bytes.Buffer
	if err := Generate(&buf, aviation.SampleAirports(), opts, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report := orderedmap.New()
	if err := json.Unmarshal(buf.Bytes(), report); err != nil {
		t.Fatalf("report is not valid JSON: %v\n%s", err, buf.String())
	}
	if keys := report.Keys(); !slices.Equal(keys, append(slices.Clone(expectedTitles), "Itinerary")) {
		t.Errorf("got sections %v", keys)
	}

	if v, _ := report.Get("Large airport"); v != "No large airport found!" {
		t.Errorf("large airport: got %v", v)
	}

	var parsed struct {
		Closest []aviation.Airport `json:"Closest Airport to Lincoln"`
	}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parsed.Closest) != 1 || parsed.Closest[0].Id != "KGGW" ||
		gomath.Abs(parsed.Closest[0].Latitude()-48.21) > 1e-6 {
		t.Errorf("closest: got %+v", parsed.Closest)
	}

	if err := Generate(&buf, nil, Options{Format: "xml"}, nil); err == nil {
		t.Errorf("expected an error for an unknown format")
	}
}
