package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/Agere98/orbits"
)

// printer writes results in the selected output format.
type printer struct {
	format string
	w      io.Writer
}

func newPrinter(format string, w io.Writer) (*printer, error) {
	switch f := strings.ToLower(format); f {
	case "text", "json", "yaml":
		return &printer{format: f, w: w}, nil
	default:
		return nil, fmt.Errorf("unknown output format `%s`", format)
	}
}

// print writes v with the structured formats, or calls text otherwise.
func (p *printer) print(v interface{}, text func(w io.Writer)) error {
	switch p.format {
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
		text(tw)
		return tw.Flush()
	}
}

func (p *printer) result(r orbits.Result) error {
	return p.print(r, func(w io.Writer) { writeResult(w, r) })
}

func (p *printer) details(d orbits.Details) error {
	return p.print(d, func(w io.Writer) { writeDetails(w, d) })
}

func writeResult(w io.Writer, r orbits.Result) {
	fmt.Fprintf(w, "transfer time\t%s\t(%.3f days)\n", time.Duration(r.TransferTime*float64(time.Second)).Round(time.Second), r.TransferTime/86400)
	fmt.Fprintf(w, "insertion Δv\t%.3f m/s\n", r.InsertionDeltaV)
	fmt.Fprintf(w, "arrival Δv\t%.3f m/s\n", r.ArrivalDeltaV)
	fmt.Fprintf(w, "total Δv\t%.3f m/s\n", r.TotalDeltaV)
}

func writeDetails(w io.Writer, d orbits.Details) {
	fmt.Fprintf(w, "primary\t%s\n", d.Primary)
	fmt.Fprintf(w, "semi-major axis\t%.0f m\n", d.SemiMajorAxis)
	writeResult(w, d.Result)
	fmt.Fprintf(w, "phase angle\t%.3f deg\n", d.PhaseAngle)
	if d.SynodicPeriod > 0 {
		fmt.Fprintf(w, "synodic period\t%.3f days\n", d.SynodicPeriod/86400)
	} else {
		fmt.Fprintf(w, "synodic period\tnone\n")
	}
	if d.CurrentPhase != nil {
		fmt.Fprintf(w, "current phase\t%.3f deg\n", *d.CurrentPhase)
	}
	if d.LaunchDelay != nil {
		fmt.Fprintf(w, "next window in\t%.3f days\n", *d.LaunchDelay/86400)
	}
}
