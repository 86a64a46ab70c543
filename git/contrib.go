package git

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var shortlogRe = regexp.MustCompile(`^\s*(?P<freq>\d+)\s+(?P<author>.*?)\s+<(?P<email>.*)>$`)

// FileContribution is one file's added/deleted line counts from a
// numstat log
type FileContribution struct {
	Added   int
	Deleted int
}

// Contributor is an author together with their commit count and per-file
// contributions
type Contributor struct {
	ID            Identity
	Commits       int
	Contributions []FileContribution
}

// ContributionSummary is a contributor's total line counts
type ContributionSummary struct {
	Added   int
	Deleted int
	Net     int
}

// Summary totals a contributor's per-file contributions
func (c Contributor) Summary() ContributionSummary {
	var summary ContributionSummary
	for _, contribution := range c.Contributions {
		summary.Added += contribution.Added
		summary.Deleted += contribution.Deleted
	}
	summary.Net = summary.Added - summary.Deleted
	return summary
}

// ContributorStats collects every author's commit frequency and line
// contributions, most commits first
func ContributorStats() ([]Contributor, error) {
	contributors, err := AuthorFrequency()
	if err != nil {
		return nil, err
	}

	for i := range contributors {
		contributions, err := contributionsFor(contributors[i].ID.Email)
		if err != nil {
			return nil, err
		}
		contributors[i].Contributions = contributions
	}

	return contributors, nil
}

// AuthorFrequency returns each author's commit count from the shortlog
// summary, identities merged by email and ordered most commits first
func AuthorFrequency() ([]Contributor, error) {
	out, err := runGit("", "shortlog", "--summary", "--numbered", "--email", "--no-merges", "--all")
	if err != nil {
		return nil, err
	}

	byEmail := make(map[string]*Contributor)
	var order []string

	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		match := shortlogRe.FindStringSubmatch(line)
		if match == nil {
			return nil, fmt.Errorf("failed to parse shortlog line %q", line)
		}

		freq, err := strconv.Atoi(match[1])
		if err != nil {
			return nil, fmt.Errorf("failed to parse commit frequency in %q: %v", line, err)
		}
		author, email := match[2], match[3]

		if existing, ok := byEmail[email]; ok {
			existing.ID.Names = append(existing.ID.Names, author)
			existing.Commits += freq
			continue
		}

		byEmail[email] = &Contributor{
			ID:      Identity{Email: email, Names: []string{author}},
			Commits: freq,
		}
		order = append(order, email)
	}

	contributors := make([]Contributor, 0, len(byEmail))
	for _, email := range order {
		contributors = append(contributors, *byEmail[email])
	}
	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].Commits > contributors[j].Commits
	})
	return contributors, nil
}

// contributionsFor reads an author's per-file line counts from a
// numstat-only log
func contributionsFor(email string) ([]FileContribution, error) {
	out, err := runGit("", "log", "--no-merges", "--author="+email, "--pretty=tformat:", "--numstat")
	if err != nil {
		return nil, err
	}

	var contributions []FileContribution
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}

		// Binary files show "-" for both counts; skip them
		added, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}
		deleted, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}

		contributions = append(contributions, FileContribution{Added: added, Deleted: deleted})
	}
	return contributions, nil
}
