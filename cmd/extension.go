package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables passed to extensions, one per global flag.
const (
	EnvDataDir = "HLOG_DATA_DIR"
	EnvVerbose = "HLOG_VERBOSE"
)

// ExtensionEnv returns the environment of an extension: the current one plus
// the global flags.
func ExtensionEnv() []string {
	env := os.Environ()
	env = append(env, EnvDataDir+"="+*dataDir)
	env = append(env, EnvVerbose+"="+strconv.FormatBool(*Verbose))
	return env
}

// RunExtension runs the external hlog-<subcommand> binary found in PATH.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) otherwise.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "hlog-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		vlogf("external command %q not found in PATH: %v", name, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = ExtensionEnv()

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
