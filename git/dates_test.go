package git

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstCommitBefore(t *testing.T) {
	dir := initTestRepo(t)
	commitFileAt(t, dir, "a.txt", "one", "commit from 2020", "2020-06-01T12:00:00+00:00")
	commitFileAt(t, dir, "b.txt", "two", "commit from 2021", "2021-06-01T12:00:00+00:00")
	commitFileAt(t, dir, "c.txt", "three", "commit from 2022", "2022-06-01T12:00:00+00:00")

	date := func(s string) time.Time {
		parsed, err := time.ParseInLocation("2006-01-02", s, time.Local)
		require.NoError(t, err)
		return parsed
	}

	t.Run("finds the newest commit before the date", func(t *testing.T) {
		commit, err := FirstCommitBefore(date("2022-01-01"))
		require.NoError(t, err)
		require.NotNil(t, commit)
		assert.Equal(t, "commit from 2021", commit.Subject)
	})

	t.Run("returns the newest commit when all are before the date", func(t *testing.T) {
		commit, err := FirstCommitBefore(date("2030-01-01"))
		require.NoError(t, err)
		require.NotNil(t, commit)
		assert.Equal(t, "commit from 2022", commit.Subject)
	})

	t.Run("returns nothing when the date predates the repository", func(t *testing.T) {
		commit, err := FirstCommitBefore(date("2019-01-01"))
		require.NoError(t, err)
		assert.Nil(t, commit)
	})
}

func TestFirstCommitBeforeEmptyRepository(t *testing.T) {
	initTestRepo(t)

	date, err := time.ParseInLocation("2006-01-02", "2021-03-14", time.Local)
	require.NoError(t, err)

	commit, err := FirstCommitBefore(date)
	require.NoError(t, err)
	assert.Nil(t, commit)
}

func TestShortHash(t *testing.T) {
	assert.Equal(t, "deadbee", ShortHash("deadbeefdeadbeef", 7))
	assert.Equal(t, "abc", ShortHash("abc", 7))
}

func TestIdentityMatches(t *testing.T) {
	id := Identity{Email: "jane@example.com", Names: []string{"Jane Doe", "jdoe"}}

	assert.True(t, id.Matches([]string{"jane@example.com"}))
	assert.True(t, id.Matches([]string{"jdoe"}))
	assert.False(t, id.Matches([]string{"someone@example.com"}))
	assert.False(t, id.Matches(nil))
}
