package cmd

import (
	"fmt"
	"strconv"

	"gl/git"
	"gl/languages"
	"gl/log"

	"github.com/spf13/cobra"
)

// languagesCmd represents the languages command
var languagesCmd = &cobra.Command{
	Use:   "languages [n]",
	Short: "Print the language breakdown of the present repository",
	Long: `Print the language breakdown of the present repository by file count.
Given a number, only the top n languages are shown.

Example:
  gl languages
  gl languages 3`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLanguagesCmd,
}

// initLanguagesCmd initializes the languages command with its flags
func initLanguagesCmd() {
	// The languages command only takes its optional positional argument
}

// runLanguagesCmd is the main function for the languages command
func runLanguagesCmd(cmd *cobra.Command, args []string) {
	topN := 0
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed <= 0 {
			log.PrintError(log.ErrInvalidArgument, fmt.Sprintf("expected a positive number of languages, got %q", args[0]), nil)
		}
		topN = parsed
	}

	root, err := git.RepoRoot()
	if err != nil {
		log.PrintError(log.ErrRepoNotFound, "Failed to find the current repository", err)
	}

	summaries, err := languages.Breakdown(root)
	if err != nil {
		log.PrintError(log.ErrOperationFailed, "Failed to analyse repository languages", err)
	}

	for _, line := range languages.Render(summaries, topN, colourEnabled()) {
		log.Println(line)
	}
}
