package git

import "strings"

// Status returns the short branch-status of the repository containing
// dir (the current directory when dir is empty)
func Status(dir string, colour bool) (string, error) {
	var args []string
	if colour {
		args = append(args, "-c", "color.status=always")
	}
	args = append(args, "status", "--short", "--branch")

	out, err := runGit(dir, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

// IsDirty reports whether a short status shows anything beyond the
// branch header line
func IsDirty(status string) bool {
	return len(strings.Split(status, "\n")) > 1
}
