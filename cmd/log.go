package cmd

import (
	"fmt"
	"strconv"

	"gl/git"
	"gl/log"

	"github.com/spf13/cobra"
)

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log [n]",
	Short: "Print the last n commits nicely",
	Long: `Print the last n commits nicely (10 by default). Commits by the
configured identity are highlighted.

Example:
  gl log 25
  gl log --author torvalds --grep fix
  gl log 5 --reverse`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLogCmd,
}

var (
	logAuthors []string
	logNeedles []string
	logReverse bool
	logAll     bool
)

// initLogCmd initializes the log command with its flags
func initLogCmd() {
	logCmd.Flags().StringArrayVarP(&logAuthors, "author", "a", nil, "Only show commits by this author (repeatable)")
	logCmd.Flags().StringArrayVarP(&logNeedles, "grep", "g", nil, "Only show commits whose message matches (repeatable)")
	logCmd.Flags().BoolVarP(&logReverse, "reverse", "r", false, "Show oldest commits first")
	logCmd.Flags().BoolVar(&logAll, "all", false, "Show the whole log")
}

// runLogCmd is the main function for the log command
func runLogCmd(cmd *cobra.Command, args []string) {
	n := DefaultTopNLog
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed <= 0 {
			log.PrintError(log.ErrInvalidArgument, fmt.Sprintf("expected a positive number of commits, got %q", args[0]), nil)
		}
		n = parsed
	}

	opts := logOptions()
	opts.Authors = logAuthors
	opts.Needles = logNeedles
	opts.Reverse = logReverse
	opts.All = logAll

	printLog(n, opts)
}

// printLog fetches and prints the log, highlighting the configured
// identity
func printLog(n int, opts git.LogOptions) {
	configObj := loadConfig()

	lines, err := git.Log(n, opts, configObj.Identity)
	if err != nil {
		log.PrintError(log.ErrGitLogFailed, "Failed to read the git log; are you in a git repository?", err)
	}

	for _, line := range lines {
		log.Println(line)
	}
}
