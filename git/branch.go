package git

import "strings"

// BranchListing selects which branches to list
type BranchListing int

const (
	// LocalBranches lists branches in the local repository
	LocalBranches BranchListing = iota
	// RemoteBranches lists remote-tracking branches
	RemoteBranches
)

// CurrentBranch returns the name of the branch HEAD is on
func CurrentBranch() (string, error) {
	return runGit("", "rev-parse", "--abbrev-ref", "HEAD")
}

// inRepository reports whether the working directory is inside a git
// repository
func inRepository() bool {
	_, err := runGit("", "rev-parse", "--git-dir")
	return err == nil
}

// headExists reports whether the repository has any commit for HEAD to
// point at
func headExists() bool {
	_, err := runGit("", "rev-parse", "--verify", "--quiet", "HEAD")
	return err == nil
}

// BranchNames lists branch names, coloured by git. The current branch
// keeps git's leading "* " marker.
func BranchNames(listing BranchListing) ([]string, error) {
	args := []string{"branch", "--color"}
	if listing == RemoteBranches {
		args = append(args, "--remotes")
	}

	out, err := runGit("", args...)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}
