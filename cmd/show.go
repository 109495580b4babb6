package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/health"
	"github.com/etnz/health/chart"
	"github.com/etnz/health/renderer"
	"github.com/google/subcommands"
)

// viewFlags are the options to render a patient history.
type viewFlags struct {
	tail   int
	charts string
	html   string
	noPlot bool
}

func (v *viewFlags) SetFlags(f *flag.FlagSet) {
	f.IntVar(&v.tail, "tail", health.DefaultTail, "Number of recent readings shown in the table.")
	f.StringVar(&v.charts, "charts", "", "Path of the charts image. Defaults to <data-dir>/<patient>_charts.png.")
	f.StringVar(&v.html, "html", "", "Also write the history as an HTML page at this path.")
	f.BoolVar(&v.noPlot, "no-charts", false, "Do not render the charts.")
}

// render prints the history of patient and writes its charts, with the
// staged values as reference lines. Everything is derived from readings.
func (v *viewFlags) render(s *health.Store, patient string, readings []health.Reading, staged health.Values) subcommands.ExitStatus {
	chartsPath := ""
	if !v.noPlot && len(readings) > 0 {
		chartsPath = v.charts
		if chartsPath == "" {
			chartsPath = filepath.Join(s.Dir(), patient+"_charts.png")
		}
		if err := writeCharts(chartsPath, patient, readings, staged); err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering charts: %v\n", err)
			return subcommands.ExitFailure
		}
		vlogf("charts written to %q", chartsPath)
	}

	md := renderer.HistoryMarkdown(patient, readings, v.tail, chartsPath)
	printMarkdown(md)
	if chartsPath != "" {
		fmt.Printf("Charts: %s\n", chartsPath)
	}

	if v.html != "" {
		// the page links the image relatively to its own folder.
		link := chartsPath
		if rel, err := filepath.Rel(filepath.Dir(v.html), chartsPath); err == nil && chartsPath != "" {
			link = filepath.ToSlash(rel)
		}
		page, err := renderer.HTML("Health Tracker - "+patient, renderer.HistoryMarkdown(patient, readings, v.tail, link))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(v.html, page, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write file %s: %v\n", v.html, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("History page: %s\n", v.html)
	}
	return subcommands.ExitSuccess
}

func writeCharts(path, patient string, readings []health.Reading, staged health.Values) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := chart.Render(f, "Health Tracker - "+patient, readings, staged); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type showCmd struct {
	patient patientFlags
	form    formFlags
	view    viewFlags
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display a patient history and charts" }
func (*showCmd) Usage() string {
	return `hlog show -p <patient> [-tail <n>] [-charts <png>] [-html <file>] [-systolic <v> ...]

  Displays the most recent readings of a patient and renders the charts of
  the whole history. Metric flags stage values drawn as reference lines on the
  charts, to compare a new entry against the history before saving it.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	c.patient.SetFlags(f)
	c.form.SetFlags(f)
	c.view.SetFlags(f)
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	patient, status, ok := c.patient.resolve(s)
	if !ok {
		return status
	}
	form, err := c.form.form()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	readings, ok := readAll(s, patient)
	if !ok {
		return subcommands.ExitFailure
	}
	return c.view.render(s, patient, readings, form.Staged())
}
