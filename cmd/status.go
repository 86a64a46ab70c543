package cmd

import (
	"fmt"

	"gl/git"
	"gl/log"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status [dir]",
	Short: "Print the current git status minimally",
	Long: `Print a minimal (short, branch-first) git status for the current or
given directory.

With --global, check every repository configured under global_repos and
print only the dirty ones.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStatusCmd,
}

var statusGlobal bool

// initStatusCmd initializes the status command with its flags
func initStatusCmd() {
	statusCmd.Flags().BoolVarP(&statusGlobal, "global", "g", false, "Check all configured repositories")
}

// runStatusCmd is the main function for the status command
func runStatusCmd(cmd *cobra.Command, args []string) {
	if statusGlobal {
		runGlobalStatus()
		return
	}

	dir := ""
	if len(args) == 1 {
		dir = args[0]
	}

	status, err := git.Status(dir, colourEnabled())
	if err != nil {
		log.PrintError(log.ErrGitStatusFailed, "Failed to get repository status; are you in a git repository?", err)
	}
	log.Println(status)
}

// runGlobalStatus prints the status of every configured repository that
// has uncommitted changes
func runGlobalStatus() {
	configObj := loadConfig()

	paths := configObj.GlobalRepoPaths()
	if len(paths) == 0 {
		log.PrintError(log.ErrConfigReadFailed, "No global_repos configured", nil)
	}

	for _, path := range paths {
		status, err := git.Status(path, colourEnabled())
		if err != nil {
			log.PrintErrorNoExit(log.ErrGitStatusFailed, fmt.Sprintf("Failed to get status of %s", path), err)
			continue
		}
		if !git.IsDirty(status) {
			continue
		}

		log.Println(fmt.Sprintf("We are looking at %s", path))
		log.Println(status)
		log.Println("")
	}
}
