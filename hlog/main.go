// Command hlog logs health metrics of patients and renders their history.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/health/cmd"
	"github.com/google/subcommands"
)

func main() {
	// in a shell completion request, this is the only thing that runs.
	cmd.Completion().Complete("hlog")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	flag.Parse()

	if flag.NArg() > 0 && !cmd.IsRegistered(commander, flag.Arg(0)) {
		if found, code := cmd.RunExtension(flag.Arg(0), flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
