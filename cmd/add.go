package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/health"
	"github.com/google/subcommands"
)

type addCmd struct {
	patient patientFlags
	form    formFlags
	view    viewFlags
	quiet   bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "save a new reading for a patient" }
func (*addCmd) Usage() string {
	return `hlog add -p <patient> | -n <new patient> [-systolic 120] [-diastolic 80] [-temperature 36.6] [-glucose 100] [-vitamin-d 20] [-quiet]

  Saves a reading timestamped now in the patient table, creating the table for
  a new patient. Unset metrics take their default value. The refreshed history
  and charts are displayed unless -quiet is set.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	c.patient.SetFlags(f)
	c.form.SetFlags(f)
	c.view.SetFlags(f)
	f.BoolVar(&c.quiet, "quiet", false, "Do not display the history after saving.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	saved, err := health.Submit(s, patient, form, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving reading for %q: %v\n", patient, err)
		return subcommands.ExitFailure
	}
	vlogf("appended %s to %q", health.FormatTimestamp(saved.Timestamp), s.Path(patient))
	fmt.Println("Data saved!")

	if c.quiet {
		return subcommands.ExitSuccess
	}
	// views are always derived from the table as stored.
	readings, ok := readAll(s, patient)
	if !ok {
		return subcommands.ExitFailure
	}
	return c.view.render(s, patient, readings, form.Staged())
}
