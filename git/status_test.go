package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	dir := initTestRepo(t)
	commitFile(t, dir, "a.txt", "one", "first commit")

	t.Run("clean repository only shows the branch header", func(t *testing.T) {
		status, err := Status(dir, false)
		require.NoError(t, err)
		assert.Contains(t, status, "## main")
		assert.False(t, IsDirty(status))
	})

	t.Run("untracked files make the repository dirty", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("new"), 0644))

		status, err := Status(dir, false)
		require.NoError(t, err)
		assert.Contains(t, status, "new.txt")
		assert.True(t, IsDirty(status))
	})

	t.Run("outside a repository fails", func(t *testing.T) {
		_, err := Status(t.TempDir(), false)
		assert.Error(t, err)
	})
}

func TestCurrentBranch(t *testing.T) {
	dir := initTestRepo(t)
	commitFile(t, dir, "a.txt", "one", "first commit")

	branch, err := CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestBranchNames(t *testing.T) {
	dir := initTestRepo(t)
	commitFile(t, dir, "a.txt", "one", "first commit")
	mustGit(t, dir, "branch", "feature")

	t.Run("lists local branches", func(t *testing.T) {
		branches, err := BranchNames(LocalBranches)
		require.NoError(t, err)
		require.Len(t, branches, 2)

		var names []string
		for _, branch := range branches {
			names = append(names, StripANSI(branch))
		}
		assert.Contains(t, names, "* main")
		assert.Contains(t, names, "  feature")
	})

	t.Run("no remotes means no remote branches", func(t *testing.T) {
		branches, err := BranchNames(RemoteBranches)
		require.NoError(t, err)
		assert.Empty(t, branches)
	})
}

func TestRepoName(t *testing.T) {
	dir := initTestRepo(t)
	commitFile(t, dir, "a.txt", "one", "first commit")

	name, err := RepoName()
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), name)
}

func TestRepoRootOutsideRepository(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(os.TempDir()))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(wd))
	})

	_, err = RepoRoot()
	assert.Error(t, err)
}
