package cmd

import (
	"fmt"
	"strconv"

	"gl/git"
	"gl/log"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)

// countCmd represents the count command
var countCmd = &cobra.Command{
	Use:   "count [today|yesterday|n]",
	Short: "Count commits on the working branch for a given day",
	Long: `Count the commits made to the working branch today (the default),
yesterday, or in the past n days. With --total, count every commit on
the branch.

Example:
  gl count
  gl count yesterday
  gl count 7
  gl count --total`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCountCmd,
}

var countTotal bool

// initCountCmd initializes the count command with its flags
func initCountCmd() {
	countCmd.Flags().BoolVarP(&countTotal, "total", "t", false, "Count all commits on the working branch")
}

// runCountCmd is the main function for the count command
func runCountCmd(cmd *cobra.Command, args []string) {
	if countTotal {
		if len(args) != 0 {
			log.PrintError(log.ErrInvalidArgument, "--total does not take a day argument", nil)
		}
		printTotalCount()
		return
	}

	when := "today"
	if len(args) == 1 {
		when = args[0]
	}

	var count int
	var err error
	switch when {
	case "today":
		count, err = git.CommitCountToday()
	case "yesterday":
		count, err = git.CommitCountYesterday()
	default:
		days, parseErr := strconv.Atoi(when)
		if parseErr != nil || days <= 0 {
			log.PrintError(log.ErrInvalidArgument, fmt.Sprintf("expected \"today\", \"yesterday\" or a number of days, got %q", when), nil)
		}
		count, err = git.CommitCountSinceDays(days)
	}
	if err != nil {
		log.PrintError(log.ErrGitRevListFailed, "Failed to count commits; are you in a git repository?", err)
	}

	printCountMessage(countMessage(count, when))
}

func printTotalCount() {
	count, err := git.CommitCountAll()
	if err != nil {
		log.PrintError(log.ErrGitRevListFailed, "Failed to count commits; are you in a git repository?", err)
	}

	verb := "have"
	if count == 1 {
		verb = "has"
	}
	printCountMessage(fmt.Sprintf("%d commit%s %s been made to %s.",
		count, pluralSuffix(count), verb, repoAndBranch()))
}

// countMessage renders the friendly sentence for a windowed count, with
// the right tense for the window
func countMessage(count int, when string) string {
	var verb, window string
	switch when {
	case "today":
		verb = "have been made"
		if count == 1 {
			verb = "has been made"
		}
		window = "today"
	case "yesterday":
		verb = "were made"
		if count == 1 {
			verb = "was made"
		}
		window = "yesterday"
	default:
		verb = "have been made"
		if count == 1 {
			verb = "has been made"
		}
		window = fmt.Sprintf("in the past %s days", when)
	}

	return fmt.Sprintf("%d commit%s %s to %s %s.", count, pluralSuffix(count), verb, repoAndBranch(), window)
}

func printCountMessage(message string) {
	if colourEnabled() {
		message = countStyle.Render(message)
	}
	log.Println(message)
}

func pluralSuffix(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

// repoAndBranch renders "repo/branch" for count messages, degrading
// gracefully when either cannot be determined
func repoAndBranch() string {
	repo, err := git.RepoName()
	if err != nil {
		repo = "this repository"
	}
	branch, err := git.CurrentBranch()
	if err != nil {
		return repo
	}
	return repo + "/" + branch
}
