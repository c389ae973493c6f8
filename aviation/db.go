// aviation/db.go
// Copyright(c) 2024-2025 airports contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"slices"
	"strings"
	"time"

	"github.com/airportgeo/airports/log"
	"github.com/airportgeo/airports/util"

	"golang.org/x/sync/errgroup"
)

// Header names in https://ourairports.com/data/airports.csv. Fields with
// a trailing "?" may be absent from the file.
var airportFields = []string{"ident", "gps_code?", "type", "name", "latitude_deg", "longitude_deg",
	"elevation_ft", "municipality", "iso_country"}

// mungeCSV reads the CSV file's header to find the columns of the
// requested fields and then calls callback with the values of those fields,
// in the order requested, for each record. Optional fields that aren't in
// the header are passed as empty strings.
func mungeCSV(filename string, r io.Reader, fields []string, callback func(line int, s []string)) error {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("%s: error parsing CSV file: %w", filename, err)
	}

	fieldIndices := make([]int, len(fields))
	for fi, f := range fields {
		name, optional := strings.CutSuffix(f, "?")
		fieldIndices[fi] = slices.IndexFunc(header, func(h string) bool { return name == strings.TrimSpace(h) })
		if fieldIndices[fi] == -1 && !optional {
			return fmt.Errorf("%s: did not find requested field header %q", filename, name)
		}
	}

	strs := make([]string, len(fields))
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("%s: error parsing CSV file: %w", filename, err)
		}

		line, _ := cr.FieldPos(0)
		for fi, i := range fieldIndices {
			if i >= 0 && i < len(record) {
				strs[fi] = strings.TrimSpace(record[i])
			} else {
				strs[fi] = ""
			}
		}
		callback(line, strs)
	}
}

// parseAirportRecord converts the airportFields values of a single CSV
// record to an Airport. The GPS code is used as the id when present.
func parseAirportRecord(s []string) (Airport, error) {
	id := util.Select(s[1] != "", s[1], s[0])

	lat, err := util.Atof(s[4])
	if err != nil {
		return Airport{}, fmt.Errorf("%s: latitude %q: %w", id, s[4], ErrInvalidInput)
	}
	lon, err := util.Atof(s[5])
	if err != nil {
		return Airport{}, fmt.Errorf("%s: longitude %q: %w", id, s[5], ErrInvalidInput)
	}

	elevation := 0
	if s[6] != "" && s[6] != "NA" {
		if elevation, err = util.Atoi(s[6]); err != nil {
			return Airport{}, fmt.Errorf("%s: elevation %q: %w", id, s[6], ErrInvalidInput)
		}
	}

	return NewAirport(id, s[2], s[3], lat, lon, elevation, s[7], s[8])
}

// ReadAirports parses airport records in the OurAirports CSV format from
// r. Closed airports are skipped, as are records that don't describe a
// valid airport; the latter are logged.
func ReadAirports(filename string, r io.Reader, lg *log.Logger) ([]Airport, error) {
	var airports []Airport
	nbad := 0
	err := mungeCSV(filename, r, airportFields, func(line int, s []string) {
		if s[2] == "closed" {
			return
		}
		ap, err := parseAirportRecord(s)
		if err != nil {
			nbad++
			lg.Warnf("%s:%d: skipping record: %v", filename, line, err)
			return
		}
		airports = append(airports, ap)
	})
	if err != nil {
		return nil, err
	}

	lg.Info("read airports", "file", filename, "count", len(airports), "skipped", nbad)
	return airports, nil
}

// LoadAirports reads the airports in the given CSV file, which may be
// zstd-compressed if its name ends in ".zst". When useCache is set, parsed
// airports are kept in the user's cache directory and reused until the
// file changes.
func LoadAirports(path string, useCache bool, lg *log.Logger) ([]Airport, error) {
	var key string
	if useCache {
		var err error
		if key, err = util.CacheKey("airports", path); err != nil {
			return nil, err
		}

		var airports []Airport
		if t, err := util.CacheRetrieveObject(key, &airports); err == nil {
			lg.Debugf("%s: using cached airports from %s", path, t.Format(time.RFC3339))
			return airports, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			lg.Warnf("%s: %v", key, err)
		}
	}

	r, err := util.OpenResource(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	airports, err := ReadAirports(path, r, lg)
	if err != nil {
		return nil, err
	}

	if useCache {
		if err := util.CacheStoreObject(key, airports); err != nil {
			lg.Warnf("%s: unable to cache airports: %v", key, err)
		}
	}
	return airports, nil
}

// LoadAirportFiles loads the given files concurrently and returns the
// airports from all of them, in the order the files were given.
func LoadAirportFiles(ctx context.Context, paths []string, useCache bool, lg *log.Logger) ([]Airport, error) {
	loaded := make([][]Airport, len(paths))

	eg, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var err error
			loaded[i], err = LoadAirports(path, useCache, lg.With("file", path))
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return slices.Concat(loaded...), nil
}
