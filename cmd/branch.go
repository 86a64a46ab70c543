package cmd

import (
	"gl/git"
	"gl/log"

	"github.com/spf13/cobra"
)

// branchCmd represents the branch command
var branchCmd = &cobra.Command{
	Use:   "branch",
	Short: "Print the current branch name",
	Args:  cobra.NoArgs,
	Run:   runBranchCmd,
}

// branchesCmd represents the branches command
var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "Print all local branches in the current repository",
	Args:  cobra.NoArgs,
	Run:   runBranchesCmd,
}

// repoCmd represents the repo command
var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Print the name of the current repository",
	Args:  cobra.NoArgs,
	Run:   runRepoCmd,
}

var branchesRemotes bool

// initBranchCmds initializes the branch-related commands with their flags
func initBranchCmds() {
	branchesCmd.Flags().BoolVarP(&branchesRemotes, "remotes", "r", false, "Print remote branches instead of local ones")
}

// runBranchCmd is the main function for the branch command
func runBranchCmd(cmd *cobra.Command, args []string) {
	branch, err := git.CurrentBranch()
	if err != nil {
		log.PrintError(log.ErrGitBranchFailed, "Failed to get current branch; are you in a git repository?", err)
	}
	log.Println(branch)
}

// runBranchesCmd is the main function for the branches command
func runBranchesCmd(cmd *cobra.Command, args []string) {
	listing := git.LocalBranches
	if branchesRemotes {
		listing = git.RemoteBranches
	}

	branches, err := git.BranchNames(listing)
	if err != nil {
		log.PrintError(log.ErrGitBranchFailed, "Failed to list branches; are you in a git repository?", err)
	}

	for _, branch := range branches {
		log.Println(branch)
	}
}

// runRepoCmd is the main function for the repo command
func runRepoCmd(cmd *cobra.Command, args []string) {
	name, err := git.RepoName()
	if err != nil {
		log.PrintError(log.ErrRepoNotFound, "Failed to find the current repository", err)
	}
	log.Println(name)
}
