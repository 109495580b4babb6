// Package cmd implements the CLI application to log health metrics.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/health"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", "data", "Path to the folder holding one CSV table per patient")

// Verbose enables diagnostic logs on stderr.
var Verbose = flag.Bool("v", false, "Verbose logging")

// commands lists the subcommands and their group, in help order.
var commands = []struct {
	cmd   subcommands.Command
	group string
}{
	{&patientsCmd{}, "patients"},
	{&addCmd{}, "readings"},
	{&showCmd{}, "readings"},
	{&exportCmd{}, "export"},
	{&reportCmd{}, "export"},
	{&queryCmd{}, "export"},
	{&topicCmd{}, "help"},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
	for _, x := range commands {
		c.Register(x.cmd, x.group)
	}
}

// IsRegistered reports whether name is a subcommand of c.
func IsRegistered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}

// vlogf logs only in verbose mode.
func vlogf(format string, args ...any) {
	if *Verbose {
		log.Printf(format, args...)
	}
}

// OpenStore opens the store in the app data folder, creating it if needed.
func OpenStore() (*health.Store, error) {
	s, err := health.Open(*dataDir)
	if err != nil {
		return nil, err
	}
	vlogf("using data folder %q", s.Dir())
	return s, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw text.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		vlogf("cannot render markdown: %v", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// patientFlags selects a patient, either an existing one or a new one.
type patientFlags struct {
	selected string
	typed    string
}

func (p *patientFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.selected, "p", "", "Existing patient name")
	f.StringVar(&p.typed, "n", "", "New patient name, takes precedence over -p")
}

// resolve returns the selected patient. When none is selected it prints a
// warning and returns false: the command must stop there.
func (p *patientFlags) resolve(s *health.Store) (string, subcommands.ExitStatus, bool) {
	name, err := health.SelectPatient(p.selected, p.typed)
	switch {
	case errors.Is(err, health.ErrNoPatient):
		fmt.Fprintln(os.Stderr, "Please select or enter a patient name")
		if patients, err := s.Patients(); err == nil && len(patients) > 0 {
			fmt.Fprintf(os.Stderr, "Known patients: %v\n", patients)
		}
		return "", subcommands.ExitUsageError, false
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return "", subcommands.ExitUsageError, false
	}
	if strings.TrimSpace(p.typed) == "" && !s.Has(name) {
		fmt.Fprintf(os.Stderr, "Error: unknown patient %q, use -n to add a new patient\n", name)
		return "", subcommands.ExitUsageError, false
	}
	return name, subcommands.ExitSuccess, true
}

// readAll reads the patient table, reporting errors on stderr.
func readAll(s *health.Store, patient string) ([]health.Reading, bool) {
	readings, err := s.ReadAll(patient)
	if err != nil {
		var perr *health.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintf(os.Stderr, "Error: the table of %q is malformed and was not modified: %v\n", patient, err)
		} else {
			fmt.Fprintf(os.Stderr, "Error reading the table of %q: %v\n", patient, err)
		}
		return nil, false
	}
	vlogf("read %d readings for %q", len(readings), patient)
	return readings, true
}
