package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/health/renderer"
	"github.com/google/subcommands"
)

type patientsCmd struct {
	plain bool
}

func (*patientsCmd) Name() string     { return "patients" }
func (*patientsCmd) Synopsis() string { return "list known patients" }
func (*patientsCmd) Usage() string {
	return `hlog patients [-plain]

  Lists the patients having a table in the data folder.
`
}

func (c *patientsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "print one name per line, for scripts")
}

func (c *patientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	patients, err := s.Patients()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing patients: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.plain {
		for _, p := range patients {
			fmt.Println(p)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.PatientsMarkdown(patients))
	return subcommands.ExitSuccess
}
