// Package envboot re-launches the current invocation with required
// environment variables injected. A process cannot retroactively apply
// environment changes to itself, so when any of the wanted variables are
// missing the same command line is run again as a child process that inherits
// them, and this process exits with the child's code unchanged. This happens,
// if at all, before the test session is constructed.
package envboot

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/alessio/shellescape"
)

// markerVar marks the child run so the bootstrap happens at most once.
const markerVar = "ENVBOOT_RERUN"

// NeedsBootstrap reports whether a re-run is required: the process is the
// original invocation (not the marked child) and at least one of the wanted
// variables is unset. getenv is os.Getenv in production.
func NeedsBootstrap(getenv func(string) string, vars map[string]string) bool {
	if getenv(markerVar) != "" {
		return false
	}
	for name := range vars {
		if getenv(name) == "" {
			return true
		}
	}
	return false
}

// BuildCommand constructs the child invocation of executable with args,
// inheriting env plus the wanted variables and the rerun marker. The second
// return value is the shell-quoted command line for echoing to the user.
func BuildCommand(executable string, args []string, env []string, vars map[string]string) (*exec.Cmd, string) {
	cmd := exec.Command(executable, args...)
	cmd.Env = append(append([]string(nil), env...), markerVar+"=1")
	for name, value := range vars {
		cmd.Env = append(cmd.Env, name+"="+value)
	}

	var b commandBuilder
	b.add(executable)
	b.add(args...)
	return cmd, b.String()
}

// Bootstrap ensures the given environment variables are set for the rest of
// this invocation, re-running it as a child process if necessary. When a
// re-run happens this function does not return: the child's stdout and stderr
// pass through untouched and its exit code is propagated as ours.
func Bootstrap(vars map[string]string, out io.Writer) {
	if !NeedsBootstrap(os.Getenv, vars) {
		return
	}
	executable, err := os.Executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not locate own executable: %s\n", err)
		os.Exit(1)
	}

	cmd, quoted := BuildCommand(executable, os.Args[1:], os.Environ(), vars)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	fmt.Fprintf(out, "Re-running with required environment: %s\n", quoted)

	err = cmd.Run()
	if err == nil {
		os.Exit(0)
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		os.Exit(exitErr.ExitCode())
	}
	fmt.Fprintf(os.Stderr, "Could not re-run: %s\n", err)
	os.Exit(1)
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
