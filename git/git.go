// Package git wraps the git commands that gl shells out to.
package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// LogOptions controls how the git log is fetched and rendered
type LogOptions struct {
	Relative bool // relative commit dates
	Colour   bool
	Reverse  bool
	All      bool

	// Filter commits by author or grep
	Authors []string
	Needles []string
}

// DefaultLogOptions returns the options used when no flags are given
func DefaultLogOptions() LogOptions {
	return LogOptions{Relative: true, Colour: true}
}

// runGit runs a git command and returns its stdout with the trailing
// newline removed
func runGit(dir string, args ...string) (string, error) {
	fullArgs := args
	if dir != "" {
		fullArgs = append([]string{"-C", dir}, args...)
	}

	cmd := exec.Command("git", fullArgs...)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("git %s failed: %v", args[0], err)
		}
		return "", fmt.Errorf("git %s failed: %s", args[0], msg)
	}

	return trimEOL(string(output)), nil
}

// trimEOL removes a single trailing newline (and carriage return)
func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
