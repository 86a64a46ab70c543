package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// initTestRepo creates a throwaway repository in a temp directory and
// makes it the working directory for the duration of the test
func initTestRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(wd))
	})

	mustGit(t, dir, "init", "--initial-branch=main")
	mustGit(t, dir, "config", "user.name", "Test Author")
	mustGit(t, dir, "config", "user.email", "test@example.com")

	return dir
}

// commitFile writes a file and commits it
func commitFile(t *testing.T, dir, name, content, message string) {
	t.Helper()
	commitFileAt(t, dir, name, content, message, "")
}

// commitFileAt writes a file and commits it with the given author and
// committer date (RFC 3339), when one is given
func commitFileAt(t *testing.T, dir, name, content, message, date string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	mustGit(t, dir, "add", name)

	cmd := exec.Command("git", "-C", dir, "commit", "-m", message)
	if date != "" {
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_DATE="+date,
			"GIT_COMMITTER_DATE="+date,
		)
	}
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git commit failed: %s", out)
}

func mustGit(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, out)
	return trimEOL(string(out))
}
