package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/health/export"
	"github.com/google/subcommands"
)

type exportCmd struct {
	patient patientFlags
	output  string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a patient history as a spreadsheet file" }
func (*exportCmd) Usage() string {
	return `hlog export -p <patient> [-o <file> | -o -]

  Writes the full history of a patient, header included, as CSV.
  The default file is <patient>_data.csv in the current folder; use "-o -"
  to write to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.patient.SetFlags(f)
	f.StringVar(&c.output, "o", "", "Output file, or - for stdout. Defaults to <patient>_data.csv.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.output == "-" {
		if err := export.Delimited(os.Stdout, readings); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	output := c.output
	if output == "" {
		output = export.DelimitedName(patient)
	}
	if err := export.WriteDelimited(output, readings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d readings to %s\n", len(readings), output)
	return subcommands.ExitSuccess
}
