// cmd/airportreport/main.go
// Copyright(c) 2024-2025 airports contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

// airportreport prints the airport report for one or more OurAirports CSV
// files, or for a small built-in set of airports if none are given.

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/airportgeo/airports/aviation"
	"github.com/airportgeo/airports/log"
	"github.com/airportgeo/airports/report"
	"github.com/airportgeo/airports/util"
)

var (
	logLevel     = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir       = flag.String("logdir", "", "log file directory")
	configFile   = flag.String("config", "", "JSON file with report settings")
	airportFiles = flag.String("airports", "", "comma-separated airport CSV files (may be .zst compressed)")
	format       = flag.String("format", report.FormatText, "report format: text, json")
	sortBy       = flag.String("sort", "", "only report airports in the given order (id, type, name, name-desc, country-city, latitude, longitude, lincoln-distance)")
	itinerary    = flag.String("itinerary", "", "comma-separated airport ids of an itinerary to time")
	speed        = flag.Float64("speed", 800, "itinerary ground speed in km/h")
	layover      = flag.Float64("layover", 1, "itinerary layover at each intermediate stop, in hours")
	lint         = flag.Bool("lint", false, "check the validity of the airports and exit")
	noCache      = flag.Bool("nocache", false, "don't use or update the parsed airport cache")
	dump         = flag.Bool("dump", false, "print the airports before the report")
)

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)

	config := getDefaultConfig()
	if *configFile != "" {
		var err error
		if config, err = LoadConfig(*configFile, lg); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			lg.Errorf("%s: %v", *configFile, err)
			os.Exit(1)
		}
	}
	if err := config.Merge(flag.CommandLine); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	airports := aviation.SampleAirports()
	if len(config.Airports) > 0 {
		var err error
		airports, err = aviation.LoadAirportFiles(context.Background(), config.Airports, !config.NoCache, lg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			lg.Errorf("%v", err)
			os.Exit(1)
		}
	}

	if *lint {
		var e util.ErrorLogger
		e.Push("airports")
		aviation.ValidateAirports(airports, &e)
		e.Pop()

		if e.HaveErrors() {
			e.PrintErrors(os.Stderr, lg)
			os.Exit(1)
		}
		fmt.Printf("%d airports ok\n", len(airports))
		return
	}

	opts, err := config.ReportOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	opts.Dump = *dump

	if err := report.Generate(os.Stdout, airports, opts, lg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		lg.Errorf("report: %v", err)
		os.Exit(1)
	}
}
