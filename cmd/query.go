package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/health"
	"github.com/google/subcommands"
)

type queryCmd struct {
	patient patientFlags
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query a patient history with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `hlog query -p <patient> <jsonpath>

  Evaluates a JSONPath expression against the history of a patient, seen as a
  JSON array of readings with the keys timestamp, systolic, diastolic,
  temperature, glucose and vitaminD. The result is printed as JSON.

Usage Examples:
# All systolic pressures.
$ hlog query -p Alice '$[*].systolic'

# Timestamps of the readings with a fever.
$ hlog query -p Alice '$[?(@.temperature >= 38)].timestamp'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	c.patient.SetFlags(f)
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one JSONPath expression is required")
		return subcommands.ExitUsageError
	}
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

	result, err := Query(readings, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}

// queryLanguage is JSONPath with the gval operators, so that filters can
// compare values.
var queryLanguage = gval.NewLanguage(gval.Full(), jsonpath.Language())

// Query evaluates a JSONPath expression against the JSON form of readings.
func Query(readings []health.Reading, path string) (any, error) {
	if readings == nil {
		readings = []health.Reading{}
	}
	raw, err := json.Marshal(readings)
	if err != nil {
		return nil, err
	}
	// jsonpath works on generic values, not on structs.
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, err
	}
	result, err := queryLanguage.Evaluate(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return result, nil
}
