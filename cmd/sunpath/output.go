package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"text/template"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

type textOutput struct {
	Start      string
	End        string
	Lat        float64
	Lon        float64
	Alt        float64
	Algorithm  string
	Refraction string
	Sunrise    string
	Sunset     string
	Data       string
}

func outputJSON(sData *sunData) error {
	if j, err := json.MarshalIndent(sData, "", "\t"); err != nil {
		return err
	} else {
		os.Stdout.Write(j)
	}
	return nil
}

func outputText(sData *sunData) error {
	// Set the template up first in case anything somehow goes horribly
	// wrong.
	tmpl, err := template.New("textOut").Parse(strings.TrimSpace(textOutputTemplate))
	if err != nil {
		return err
	}

	outData := new(textOutput)
	outData.Start = sData.StartTime.Format(timeFormat)
	outData.End = sData.EndTime.Format(timeFormat)
	outData.Lat = sData.Latitude
	outData.Lon = sData.Longitude
	outData.Alt = sData.Altitude
	outData.Algorithm = sData.Algorithm
	outData.Refraction = sData.Refraction
	if !sData.Sunrise.IsZero() {
		outData.Sunrise = sData.Sunrise.UTC().Format(timeFormat)
		outData.Sunset = sData.Sunset.UTC().Format(timeFormat)
	}

	// the actual data
	var b bytes.Buffer
	bio := bufio.NewWriter(&b)
	w := tabwriter.NewWriter(bio, 1, 8, 1, ' ', 0)

	var extraHeading, extraDash string
	switch sData.Kind {
	case "apparent":
		extraHeading = "App.El.\t"
		extraDash = "-------\t"
	case "spa":
		extraHeading = "App.El.\tEoT(min)\t"
		extraDash = "-------\t--------\t"
	}

	fmt.Fprintf(w, "DY\tDate\tUTC\tAz.\tElev.\tZenith\t%s\n", extraHeading)
	fmt.Fprintf(w, "--\t----\t---\t---\t-----\t------\t%s\n", extraDash)
	for _, si := range sData.Intervals {
		r := si.Result
		var extra string
		switch sData.Kind {
		case "apparent":
			extra = fmt.Sprintf("%0.2j\t", sexa.FmtAngle(unit.AngleFromDeg(r.ApparentElevation)))
		case "spa":
			extra = fmt.Sprintf("%0.2j\t%+0.2f\t", sexa.FmtAngle(unit.AngleFromDeg(r.ApparentElevation)), r.EquationOfTime)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%0.2j\t%0.2j\t%0.2j\t%s\n",
			si.Instant.YearDay(), si.Instant.Format("Jan 02"), si.Instant.Format("15:04"),
			sexa.FmtAngle(unit.AngleFromDeg(r.Azimuth)),
			sexa.FmtAngle(unit.AngleFromDeg(r.Elevation)),
			sexa.FmtAngle(unit.AngleFromDeg(r.Zenith)),
			extra)
	}

	w.Flush()
	bio.Flush()
	outData.Data = strings.TrimSpace(b.String())

	if err = tmpl.Execute(os.Stdout, outData); err != nil {
		return err
	}

	return nil
}
