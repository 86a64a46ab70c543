package git

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortlogParsing(t *testing.T) {
	t.Run("parses a summary line", func(t *testing.T) {
		match := shortlogRe.FindStringSubmatch("    42\tJane Doe <jane@example.com>")
		require.NotNil(t, match)
		assert.Equal(t, "42", match[1])
		assert.Equal(t, "Jane Doe", match[2])
		assert.Equal(t, "jane@example.com", match[3])
	})

	t.Run("rejects garbage", func(t *testing.T) {
		assert.Nil(t, shortlogRe.FindStringSubmatch("not a shortlog line"))
	})
}

func TestContributorSummary(t *testing.T) {
	contributor := Contributor{
		Contributions: []FileContribution{
			{Added: 10, Deleted: 3},
			{Added: 1, Deleted: 5},
		},
	}
	summary := contributor.Summary()
	assert.Equal(t, 11, summary.Added)
	assert.Equal(t, 8, summary.Deleted)
	assert.Equal(t, 3, summary.Net)
}

func TestAuthorFrequency(t *testing.T) {
	dir := initTestRepo(t)
	commitFile(t, dir, "a.txt", "one\ntwo\n", "first commit")
	commitFile(t, dir, "b.txt", "three\n", "second commit")
	commitAs(t, dir, "Other Person", "other@example.com", "c.txt", "four\n", "their commit")

	t.Run("counts commits per author", func(t *testing.T) {
		contributors, err := AuthorFrequency()
		require.NoError(t, err)
		require.Len(t, contributors, 2)

		// Ordered most commits first
		assert.Equal(t, "test@example.com", contributors[0].ID.Email)
		assert.Equal(t, 2, contributors[0].Commits)
		assert.Equal(t, "other@example.com", contributors[1].ID.Email)
		assert.Equal(t, 1, contributors[1].Commits)
	})

	t.Run("collects line contributions", func(t *testing.T) {
		contributors, err := ContributorStats()
		require.NoError(t, err)
		require.Len(t, contributors, 2)

		summary := contributors[0].Summary()
		assert.Equal(t, 3, summary.Added)
		assert.Equal(t, 0, summary.Deleted)
		assert.Equal(t, 3, summary.Net)
	})
}

// commitAs commits a file under a different author identity
func commitAs(t *testing.T, dir, name, email, file, content, message string) {
	t.Helper()

	require.NoError(t, os.WriteFile(dir+"/"+file, []byte(content), 0644))
	mustGit(t, dir, "add", file)

	cmd := exec.Command("git", "-C", dir, "commit", "-m", message)
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME="+name,
		"GIT_AUTHOR_EMAIL="+email,
		"GIT_COMMITTER_NAME="+name,
		"GIT_COMMITTER_EMAIL="+email,
	)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git commit failed: %s", out)
}
