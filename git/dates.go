package git

import "time"

// FirstCommitBefore finds the newest commit made strictly before the
// given date. It is useful for reconstructing a permalink to the version
// of a repository that an old reference to it would have pointed at.
//
// Returns nil when the repository has no commit before the date.
func FirstCommitBefore(date time.Time) (*Commit, error) {
	commits, err := Commits(0, LogOptions{Relative: true, All: true, Reverse: true})
	if err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		return nil, nil
	}

	target := startOfDay(date)

	// Every commit is on or after the target date
	if !dayOf(commits[0].Date.Abs).Before(target) {
		return nil, nil
	}

	for i := range commits {
		before := dayOf(commits[i].Date.Abs).Before(target)

		if i+1 < len(commits) {
			nextNotBefore := !dayOf(commits[i+1].Date.Abs).Before(target)
			if before && nextNotBefore {
				return &commits[i], nil
			}
		} else if before {
			// Newest commit, and still before the target date
			return &commits[i], nil
		}
	}

	return nil, nil
}

func dayOf(t time.Time) time.Time {
	return startOfDay(t.Local())
}
