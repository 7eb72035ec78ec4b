// Copyright 2025, Jeremy Bingham, under the MIT License.
// See the LICENSE file in this repository, or
// http://www.opensource.org/licenses/MIT

/*
sunpath prints a sun-path table for a location: azimuth, elevation and
zenith angle at a fixed interval over a time span, with the day's
sunrise and sunset for orientation. The positioning algorithm and the
atmospheric refraction model are both selectable.

	Usage of ./sunpath:
	  -algorithm string
	        Positioning algorithm: psa, noaa, walraven, usno, or spa (default "psa")
	  -alt float
	        Observer altitude in metres above sea level
	  -duration duration
	        Duration (in golang ParseDuration format) from the start time to tabulate (default 24h0m0s)
	  -interval int
	        Interval in minutes between table rows (default 30)
	  -json
	        Emit JSON instead of the text table
	  -lat float
	        Observer latitude in degrees, north positive
	  -lon float
	        Observer longitude in degrees, east positive
	  -refraction string
	        Refraction model: none, hughes, archer, bennett, michalsky, sg2, or spa (default "none")
	  -start-time string
	        Start time (in RFC 3339 format) for the table (defaults to now)
	  -version
	        Print version number and exit.

The spa algorithm carries its own refraction correction and ignores the
-refraction flag with a warning.

License

Copyright 2025, Jeremy Bingham, under the terms of the MIT License.
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ctdk/sunpos"
	sunrise "github.com/nathan-osman/go-sunrise"
)

const version string = "0.1.0"

type sunInterval struct {
	Instant time.Time
	Result  sunpos.Result
}

type sunData struct {
	StartTime  time.Time
	EndTime    time.Time
	Latitude   float64
	Longitude  float64
	Altitude   float64
	Algorithm  string
	Refraction string
	Kind       string
	Sunrise    time.Time
	Sunset     time.Time
	Intervals  []sunInterval
}

func main() {
	startTime := flag.String("start-time", "", "Start time (in RFC 3339 format) for the table (defaults to now)")
	dur := flag.Duration("duration", 24*time.Hour, "Duration (in golang ParseDuration format) from the start time to tabulate")
	interval := flag.Int("interval", 30, "Interval in minutes between table rows")
	lat := flag.Float64("lat", 0, "Observer latitude in degrees, north positive")
	lon := flag.Float64("lon", 0, "Observer longitude in degrees, east positive")
	alt := flag.Float64("alt", 0, "Observer altitude in metres above sea level")
	algName := flag.String("algorithm", "psa", "Positioning algorithm: psa, noaa, walraven, usno, or spa")
	refrName := flag.String("refraction", "none", "Refraction model: none, hughes, archer, bennett, michalsky, sg2, or spa")
	jsonOut := flag.Bool("json", false, "Emit JSON instead of the text table")
	ver := flag.Bool("version", false, "Print version number and exit.")

	var t time.Time
	flag.Parse()

	if *ver {
		fmt.Printf("sunpath version %s\n", version)
		os.Exit(0)
	}

	if *startTime == "" {
		t = time.Now().UTC()
	} else {
		var err error
		t, err = time.Parse(time.RFC3339, *startTime)
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}
		t = t.UTC()
	}

	alg, err := algorithm(*algName)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
	refr, err := refraction(*refrName)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}

	obs := sunpos.NewObserver(*lat, *lon, *alt)
	endTime := t.Add(*dur)

	rise, set := sunrise.SunriseSunset(*lat, *lon, t.Year(), t.Month(), t.Day())

	data := &sunData{
		StartTime:  t,
		EndTime:    endTime,
		Latitude:   *lat,
		Longitude:  *lon,
		Altitude:   *alt,
		Algorithm:  strings.ToLower(*algName),
		Refraction: strings.ToLower(*refrName),
		Kind:       sunpos.Shape(alg, refr).String(),
		Sunrise:    rise,
		Sunset:     set,
	}

	for ; t.Before(endTime); t = t.Add(time.Duration(*interval) * time.Minute) {
		r := sunpos.SolarPosition(obs, t, alg, refr)
		data.Intervals = append(data.Intervals, sunInterval{Instant: t, Result: r})
	}

	if *jsonOut {
		err = outputJSON(data)
	} else {
		err = outputText(data)
	}
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func algorithm(name string) (sunpos.Positioner, error) {
	switch strings.ToLower(name) {
	case "psa":
		return sunpos.DefaultPSA(), nil
	case "noaa":
		return sunpos.NewNOAA(), nil
	case "walraven":
		return sunpos.Walraven{}, nil
	case "usno":
		return sunpos.NewUSNO(1)
	case "spa":
		return sunpos.NewSPA(), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q (have psa, noaa, walraven, usno, spa)", name)
	}
}

func refraction(name string) (sunpos.Refractor, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return nil, nil
	case "hughes":
		return sunpos.NewHughes(), nil
	case "archer":
		return sunpos.Archer{}, nil
	case "bennett":
		return sunpos.NewBennett(), nil
	case "michalsky":
		return sunpos.Michalsky{}, nil
	case "sg2":
		return sunpos.NewSG2(), nil
	case "spa":
		return sunpos.NewSPARefraction(), nil
	default:
		return nil, fmt.Errorf("unknown refraction model %q (have none, hughes, archer, bennett, michalsky, sg2, spa)", name)
	}
}
