package sunpos

import (
	"fmt"
	"log"
	"time"
)

// Series computes the solar position for each instant with a shared
// observer, algorithm and refraction model. Element i is exactly the
// value SolarPosition returns for instants[i]; batching introduces no
// numerical drift.
func Series(o *Observer, instants []time.Time, alg Positioner, refr Refractor) []Result {
	out := make([]Result, len(instants))
	SeriesInto(out, o, instants, alg, refr)
	return out
}

// SeriesInto is Series writing into caller-supplied storage, for
// repeated calls without incremental allocation. dst must already have
// the length of instants.
func SeriesInto(dst []Result, o *Observer, instants []time.Time, alg Positioner, refr Refractor) error {
	if len(dst) != len(instants) {
		return fmt.Errorf("sunpos: destination length %d does not match %d instants", len(dst), len(instants))
	}
	if alg == nil {
		alg = DefaultPSA()
	}
	// settle the SPA-vs-external-refraction conflict once per batch, so
	// the warning is not repeated for every element
	if _, ok := alg.(*SPA); ok && refr != nil {
		log.Printf("sunpos: SPA applies its own refraction correction; external %T ignored", refr)
		refr = nil
	}
	for i, t := range instants {
		dst[i] = SolarPosition(o, t, alg, refr)
	}
	return nil
}

// Table is a minimal columnar table: named float64 columns plus one
// timestamp column, all of equal length. It exists so position columns
// can be appended alongside whatever measurement columns the caller
// already has.
type Table struct {
	names   []string
	columns map[string][]float64
	times   map[string][]time.Time
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		columns: make(map[string][]float64),
		times:   make(map[string][]time.Time),
	}
}

// AddTimeColumn stores a timestamp column under name, replacing any
// column previously stored under it.
func (tb *Table) AddTimeColumn(name string, values []time.Time) {
	if _, ok := tb.columns[name]; !ok {
		if _, ok := tb.times[name]; !ok {
			tb.names = append(tb.names, name)
		}
	}
	delete(tb.columns, name)
	tb.times[name] = values
}

// AddColumn stores a float64 column under name, replacing any column
// previously stored under it.
func (tb *Table) AddColumn(name string, values []float64) {
	if _, ok := tb.times[name]; !ok {
		if _, ok := tb.columns[name]; !ok {
			tb.names = append(tb.names, name)
		}
	}
	delete(tb.times, name)
	tb.columns[name] = values
}

// Column returns the float64 column stored under name, or nil.
func (tb *Table) Column(name string) []float64 {
	return tb.columns[name]
}

// TimeColumn returns the timestamp column stored under name, or nil.
func (tb *Table) TimeColumn(name string) []time.Time {
	return tb.times[name]
}

// Names returns the column names in insertion order.
func (tb *Table) Names() []string {
	return append([]string(nil), tb.names...)
}

// AppendPositions computes positions for the timestamp column named
// timeColumn and appends the results as new columns, leaving existing
// columns untouched. Every result shape contributes "azimuth",
// "elevation" and "zenith"; a refraction model (or SPA) adds
// "apparent_elevation" and "apparent_zenith"; SPA adds
// "equation_of_time". A missing timestamp column is an error.
func (tb *Table) AppendPositions(timeColumn string, o *Observer, alg Positioner, refr Refractor) error {
	instants, ok := tb.times[timeColumn]
	if !ok {
		return fmt.Errorf("sunpos: table has no timestamp column %q", timeColumn)
	}

	kind := Shape(alg, refr)
	n := len(instants)
	azimuth := make([]float64, n)
	elevation := make([]float64, n)
	zenith := make([]float64, n)
	var appElevation, appZenith, eqTime []float64
	if kind >= KindApparent {
		appElevation = make([]float64, n)
		appZenith = make([]float64, n)
	}
	if kind == KindSPA {
		eqTime = make([]float64, n)
	}

	for i, t := range instants {
		r := SolarPosition(o, t, alg, refr)
		azimuth[i] = r.Azimuth
		elevation[i] = r.Elevation
		zenith[i] = r.Zenith
		if kind >= KindApparent {
			appElevation[i] = r.ApparentElevation
			appZenith[i] = r.ApparentZenith
		}
		if kind == KindSPA {
			eqTime[i] = r.EquationOfTime
		}
	}

	tb.AddColumn("azimuth", azimuth)
	tb.AddColumn("elevation", elevation)
	tb.AddColumn("zenith", zenith)
	if kind >= KindApparent {
		tb.AddColumn("apparent_elevation", appElevation)
		tb.AddColumn("apparent_zenith", appZenith)
	}
	if kind == KindSPA {
		tb.AddColumn("equation_of_time", eqTime)
	}
	return nil
}
