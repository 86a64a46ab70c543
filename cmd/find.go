package cmd

import (
	"fmt"
	"time"

	"gl/git"
	"gl/log"

	"github.com/spf13/cobra"
)

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find <yyyy-mm-dd>",
	Short: "Find the last commit before a given date",
	Long: `Find the last commit made before a given date and print its short
hash. Useful for reconstructing a permalink to the version of the
repository that an old reference to it would have pointed at.

Example:
  gl find 2021-03-14`,
	Args: cobra.ExactArgs(1),
	Run:  runFindCmd,
}

// initFindCmd initializes the find command with its flags
func initFindCmd() {
	// The find command only takes its date argument
}

// runFindCmd is the main function for the find command
func runFindCmd(cmd *cobra.Command, args []string) {
	date, err := time.ParseInLocation("2006-01-02", args[0], time.Local)
	if err != nil {
		log.PrintError(log.ErrInvalidArgument, fmt.Sprintf("invalid date %q, expected yyyy-mm-dd", args[0]), err)
	}

	commit, err := git.FirstCommitBefore(date)
	if err != nil {
		log.PrintError(log.ErrGitLogFailed, "Failed to read the git log; are you in a git repository?", err)
	}
	if commit == nil {
		// Every commit is on or after the date; nothing to print
		return
	}

	configObj := loadConfig()
	log.Println(git.ShortHash(commit.Hash, configObj.ShortHashLength))
}
