package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestExtensionEnv(t *testing.T) {
	oldDir, oldVerbose := *dataDir, *Verbose
	defer func() { *dataDir, *Verbose = oldDir, oldVerbose }()
	*dataDir = "/tmp/health"
	*Verbose = true

	env := strings.Join(ExtensionEnv(), "\n")
	for _, want := range []string{EnvDataDir + "=/tmp/health", EnvVerbose + "=true"} {
		if !strings.Contains(env, want) {
			t.Errorf("ExtensionEnv() does not contain %q", want)
		}
	}
}

func TestRunExtensionNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, code := RunExtension("nothing", nil); found || code != 0 {
		t.Errorf("RunExtension(nothing) = %v, %d, want false, 0", found, code)
	}
}

func TestExtensionMechanism(t *testing.T) {
	if testing.Short() {
		t.Skip("builds binaries")
	}
	tempDir := t.TempDir()

	helloSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("args=%%v\n", os.Args[1:])
}
`, EnvDataDir, EnvDataDir, EnvVerbose, EnvVerbose)

	helloPath := filepath.Join(tempDir, "hlog-hello")
	srcFile := helloPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloSource), 0644); err != nil {
		t.Fatalf("Failed to write hlog-hello source: %v", err)
	}
	build := exec.Command("go", "build", "-o", helloPath, srcFile)
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile hlog-hello: %v", err)
	}

	hlogPath := filepath.Join(tempDir, "hlog")
	build = exec.Command("go", "build", "-o", hlogPath, "../hlog")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile hlog binary: %v", err)
	}

	expectedDataDir := filepath.Join(tempDir, "records")
	run := exec.Command(hlogPath, "-data-dir", expectedDataDir, "-v", "hello", "world")
	run.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}
	var stdout, stderr bytes.Buffer
	run.Stdout = &stdout
	run.Stderr = &stderr
	if err := run.Run(); err != nil {
		t.Fatalf("hlog command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, want := range []string{
		EnvDataDir + "=" + expectedDataDir,
		EnvVerbose + "=" + strconv.FormatBool(true),
		"args=[world]",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
		}
	}
}
