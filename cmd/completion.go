package cmd

import (
	"flag"
	"os"
	"strings"

	"github.com/etnz/health"
	"github.com/etnz/health/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// isBoolFlag mirrors the flag package way to detect boolean flags.
type isBoolFlag interface{ IsBoolFlag() bool }

// predictPatients completes known patient names from the data folder of the
// command line being completed. It never creates the folder.
var predictPatients = complete.PredictFunc(func(prefix string) []string {
	dir := completionDataDir(os.Getenv("COMP_LINE"), *dataDir)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil
	}
	s, err := health.Open(dir)
	if err != nil {
		return nil
	}
	patients, err := s.Patients()
	if err != nil {
		return nil
	}
	var names []string
	for _, p := range patients {
		if strings.HasPrefix(p, prefix) {
			names = append(names, p)
		}
	}
	return names
})

// completionDataDir returns the -data-dir value set on a command line, or def.
func completionDataDir(line, def string) string {
	args := strings.Fields(line)
	for i, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "data-dir" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return def
}

// flagPredictor returns how to complete the value of flag f.
func flagPredictor(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(isBoolFlag); ok && b.IsBoolFlag() {
		return nil
	}
	switch f.Name {
	case "p":
		return predictPatients
	case "o", "charts", "html":
		return predict.Files("*")
	case "data-dir":
		return predict.Dirs("*")
	}
	return predict.Something
}

// Completion returns the shell completion tree of the CLI.
//
// It is built from the registered subcommands and their flags, so a new flag
// gets completed without further work.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{},
	}
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		root.Flags[f.Name] = flagPredictor(f)
	})

	for _, x := range commands {
		fs := flag.NewFlagSet(x.cmd.Name(), flag.ContinueOnError)
		x.cmd.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = flagPredictor(f)
		})
		if x.cmd.Name() == "topic" {
			if topics, err := docs.GetAllTopics(); err == nil {
				sub.Args = predict.Set(append(topics, "readme"))
			}
		}
		root.Sub[x.cmd.Name()] = sub
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{}
	}
	return root
}
