package git

import (
	"fmt"
	"strconv"
	"time"
)

// CommitCountToday counts today's commits on the working branch
func CommitCountToday() (int, error) {
	now := time.Now()
	return CommitCountBetween(startOfDay(now), now)
}

// CommitCountYesterday counts yesterday's commits on the working branch
func CommitCountYesterday() (int, error) {
	today := startOfDay(time.Now())
	return CommitCountBetween(today.AddDate(0, 0, -1), today)
}

// CommitCountSinceDays counts commits made since local midnight n days ago
func CommitCountSinceDays(n int) (int, error) {
	now := time.Now()
	return CommitCountBetween(startOfDay(now).AddDate(0, 0, -n), now)
}

// CommitCountBetween counts non-merge commits in the half-open window
// [since, before)
func CommitCountBetween(since, before time.Time) (int, error) {
	return revListCount(
		fmt.Sprintf("--since=%d", since.Unix()),
		fmt.Sprintf("--before=%d", before.Unix()),
	)
}

// CommitCountAll counts every non-merge commit reachable from HEAD
func CommitCountAll() (int, error) {
	return revListCount()
}

func revListCount(windowArgs ...string) (int, error) {
	args := []string{"rev-list", "--count", "--no-merges"}
	args = append(args, windowArgs...)
	args = append(args, "HEAD")

	out, err := runGit("", args...)
	if err != nil {
		return 0, err
	}

	count, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %q as a commit count: %v", out, err)
	}
	return count, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
