// Package dispatch maps short shortcut tokens to external git invocations.
package dispatch

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"gl/log"
)

// Exit codes reserved by the dispatcher. A dispatched child's own exit
// code is propagated unchanged, so these only cover the dispatcher's own
// failure modes.
const (
	ExitOK    = 0
	ExitUsage = 2
	ExitSpawn = 127
)

// ArgsPlaceholder marks the position in a command template where the
// user's trailing arguments are substituted. Templates without it have
// the arguments appended.
const ArgsPlaceholder = "{args}"

// Spec is the external command template associated with a shortcut token
type Spec struct {
	Argv []string
}

// Defaults returns the built-in token table. Users override or extend it
// through the `shortcuts` section of the configuration file.
func Defaults() map[string][]string {
	return map[string][]string{
		"st": {"git", "status", "--short", "--branch"},
		"aa": {"git", "add", "--all"},
		"cm": {"git", "commit", "-m", ArgsPlaceholder},
		"ca": {"git", "commit", "--amend", "--no-edit"},
		"ps": {"git", "push"},
		"pf": {"git", "push", "--force-with-lease"},
		"pl": {"git", "pull", "--rebase", "--autostash"},
		"df": {"git", "diff"},
		"dc": {"git", "diff", "--cached"},
		"sw": {"git", "switch"},
		"lg": {"git", "log", "--oneline", "--graph", "--decorate"},
	}
}

// Table is the immutable token → Spec mapping, built once at startup
type Table struct {
	specs map[string]Spec
}

// NewTable merges user-configured shortcuts over the built-in defaults.
// Reserved names (the binary's own subcommands) cannot be shadowed, and
// every template must name an executable.
func NewTable(overrides map[string][]string, reserved []string) (*Table, error) {
	specs := make(map[string]Spec)
	for token, argv := range Defaults() {
		specs[token] = Spec{Argv: argv}
	}

	for token, argv := range overrides {
		if token == "" {
			return nil, fmt.Errorf("shortcut token must not be empty")
		}
		for _, name := range reserved {
			if token == name {
				return nil, fmt.Errorf("shortcut %q shadows a built-in command", token)
			}
		}
		if len(argv) == 0 {
			return nil, fmt.Errorf("shortcut %q has an empty command template", token)
		}
		specs[token] = Spec{Argv: append([]string(nil), argv...)}
	}

	return &Table{specs: specs}, nil
}

// Lookup returns the Spec for a token, if configured
func (t *Table) Lookup(token string) (Spec, bool) {
	spec, ok := t.specs[token]
	return spec, ok
}

// Tokens returns all configured tokens in sorted order
func (t *Table) Tokens() []string {
	tokens := make([]string, 0, len(t.specs))
	for token := range t.specs {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// Expand substitutes the user's trailing arguments into the token's
// command template
func (s Spec) Expand(args []string) []string {
	var argv []string
	substituted := false
	for _, part := range s.Argv {
		if part == ArgsPlaceholder {
			argv = append(argv, args...)
			substituted = true
			continue
		}
		argv = append(argv, part)
	}
	if !substituted {
		argv = append(argv, args...)
	}
	return argv
}

// Dispatcher spawns the external command a token expands to, forwarding
// the standard streams untouched
type Dispatcher struct {
	Table *Table

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewDispatcher returns a Dispatcher wired to the process's own streams
func NewDispatcher(table *Table) *Dispatcher {
	return &Dispatcher{
		Table:  table,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run handles a full invocation: args is the argument vector after the
// program name. It returns the process exit code.
//
// No arguments or a help flag prints the token table and returns 0. An
// unrecognized token returns ExitUsage without spawning anything. A
// recognized token spawns its command and the child's exit code is
// returned; if the command cannot be spawned, ExitSpawn is returned.
func (d *Dispatcher) Run(args []string) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		fmt.Fprint(d.Stdout, d.Usage())
		return ExitOK
	}

	token := args[0]
	spec, ok := d.Table.Lookup(token)
	if !ok {
		fmt.Fprintln(d.Stderr, log.FormatError(log.ErrDispatchUnknownToken, fmt.Sprintf("unrecognized shortcut %q", token), nil))
		fmt.Fprintf(d.Stderr, "Run with --help to list configured shortcuts.\n")
		return ExitUsage
	}

	code, _ := d.Spawn(spec, args[1:])
	return code
}

// Handle is the passthrough entry point used before cobra argument
// parsing: it dispatches only when the first argument is a configured
// token, reporting whether the invocation was handled.
func (d *Dispatcher) Handle(args []string) (int, bool) {
	if len(args) == 0 {
		return ExitOK, false
	}
	spec, ok := d.Table.Lookup(args[0])
	if !ok {
		return ExitOK, false
	}
	code, _ := d.Spawn(spec, args[1:])
	return code, true
}

// Spawn executes the expanded command with inherited standard streams and
// waits for it, returning the exit code and whether the child actually ran
func (d *Dispatcher) Spawn(spec Spec, args []string) (int, bool) {
	argv := spec.Expand(args)

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = d.Stdin
	cmd.Stdout = d.Stdout
	cmd.Stderr = d.Stderr

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			return exitError.ExitCode(), true
		}
		fmt.Fprintln(d.Stderr, log.FormatError(log.ErrDispatchSpawnFailed, fmt.Sprintf("failed to run %q", strings.Join(argv, " ")), err))
		return ExitSpawn, false
	}
	return ExitOK, true
}

// ConfigPathFromArgs extracts a leading --config/-c flag from an
// argument vector, so that shortcut dispatch consults the same
// configuration file as the rest of the binary. It returns the config
// path and the remaining arguments.
func ConfigPathFromArgs(args []string, defaultPath string) (string, []string) {
	if len(args) == 0 {
		return defaultPath, args
	}

	switch {
	case strings.HasPrefix(args[0], "--config="):
		return strings.TrimPrefix(args[0], "--config="), args[1:]
	case strings.HasPrefix(args[0], "-c="):
		return strings.TrimPrefix(args[0], "-c="), args[1:]
	case (args[0] == "--config" || args[0] == "-c") && len(args) >= 2:
		return args[1], args[2:]
	}
	return defaultPath, args
}

// Usage renders the token table for help output
func (d *Dispatcher) Usage() string {
	var b strings.Builder
	b.WriteString("Configured shortcuts:\n")
	for _, token := range d.Table.Tokens() {
		spec, _ := d.Table.Lookup(token)
		fmt.Fprintf(&b, "  %-4s %s\n", token, strings.Join(spec.Argv, " "))
	}
	return b.String()
}
