package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/health"
	"github.com/etnz/health/export"
	"github.com/etnz/health/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	patient patientFlags
	limit   int
	output  string
	text    bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "generate a PDF report of recent readings" }
func (*reportCmd) Usage() string {
	return `hlog report -p <patient> [-limit 10] [-o <file>] [-text]

  Generates the report of the most recent readings of a patient at
  <data-dir>/<patient>_report.pdf, replacing the previous one. With -o the
  report is also copied to the given file. With -text the report is printed
  as plain text instead.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.patient.SetFlags(f)
	f.IntVar(&c.limit, "limit", health.DefaultTail, "Number of recent readings in the report.")
	f.StringVar(&c.output, "o", "", "Copy the report to this file, e.g. <patient>_report.pdf.")
	f.BoolVar(&c.text, "text", false, "Print the report as plain text.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	patient, status, ok := c.patient.resolve(s)
	if !ok {
		return status
	}
	readings, ok := readAll(s, patient)
	if !ok {
		return subcommands.ExitFailure
	}

	if c.text {
		fmt.Print(renderer.ReportText(patient, readings, c.limit))
		return subcommands.ExitSuccess
	}

	path, err := export.WriteDocument(s, patient, readings, c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Report generated at %s\n", path)

	if c.output != "" {
		if err := copyFile(c.output, path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Report copied to %s\n", c.output)
	}
	return subcommands.ExitSuccess
}

func copyFile(dst, src string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("error opening %q for writing: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("error writing %q: %w", dst, err)
	}
	return out.Close()
}
