// cmd/airportreport/config.go
// Copyright(c) 2024-2025 airports contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/airportgeo/airports/aviation"
	"github.com/airportgeo/airports/log"
	"github.com/airportgeo/airports/math"
	"github.com/airportgeo/airports/report"
	"github.com/airportgeo/airports/util"
)

// Config holds the report settings that may be given in a JSON config
// file. Command-line flags that are explicitly set take precedence.
type Config struct {
	Airports     []string         `json:"airports"`
	Format       string           `json:"format"`
	Sort         string           `json:"sort"`
	Itinerary    []string         `json:"itinerary"`
	KMPerHour    float64          `json:"speed"`
	LayoverHours float64          `json:"layover"`
	NoCache      bool             `json:"nocache"`
	Reference    *ReferenceConfig `json:"reference,omitempty"`
}

// ReferenceConfig describes the airport that distances are reported from.
type ReferenceConfig struct {
	Id        string        `json:"id"`
	Type      string        `json:"type"`
	Name      string        `json:"name"`
	Location  math.Point2LL `json:"location"`
	Elevation int           `json:"elevation"`
	City      string        `json:"city"`
	Country   string        `json:"country"`
}

func getDefaultConfig() *Config {
	return &Config{
		Format:       report.FormatText,
		KMPerHour:    800,
		LayoverHours: 1,
	}
}

// LoadConfig reads the config file at path. Settings that it doesn't
// specify keep their default values.
func LoadConfig(path string, lg *log.Logger) (*Config, error) {
	lg.Infof("Loading config from: %s", path)

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var e util.ErrorLogger
	e.Push(path)
	util.CheckJSON[Config](contents, &e)
	if e.HaveErrors() {
		return nil, errors.New(e.String())
	}

	config := getDefaultConfig()
	if err := util.UnmarshalJSONBytes(contents, config); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Merge updates the config with the values of the flags in fs that were
// set on the command line.
func (c *Config) Merge(fs *flag.FlagSet) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.String()
		switch f.Name {
		case "airports":
			c.Airports = util.SplitList(v)
		case "format":
			c.Format = v
		case "sort":
			c.Sort = v
		case "itinerary":
			c.Itinerary = util.SplitList(v)
		case "speed", "layover":
			x, perr := util.Atof(v)
			if perr != nil {
				err = errors.Join(err, fmt.Errorf("-%s: %w", f.Name, perr))
			} else if f.Name == "speed" {
				c.KMPerHour = x
			} else {
				c.LayoverHours = x
			}
		case "nocache":
			c.NoCache = v == "true"
		}
	})
	return err
}

// ReportOptions returns the report.Options for the config.
func (c *Config) ReportOptions() (report.Options, error) {
	opts := report.Options{
		Sort:         c.Sort,
		Itinerary:    c.Itinerary,
		KMPerHour:    c.KMPerHour,
		LayoverHours: c.LayoverHours,
		Format:       c.Format,
	}

	if r := c.Reference; r != nil {
		ref, err := aviation.NewAirport(r.Id, r.Type, r.Name, r.Location.Latitude(), r.Location.Longitude(),
			r.Elevation, r.City, r.Country)
		if err != nil {
			return report.Options{}, fmt.Errorf("reference: %w", err)
		}
		opts.Reference = ref
	}

	return opts, nil
}
