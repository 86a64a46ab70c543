package cmd

import (
	"fmt"
	"strings"

	"gl/git"
	"gl/log"

	"github.com/spf13/cobra"
)

// contribCmd represents the contrib command
var contribCmd = &cobra.Command{
	Use:   "contrib",
	Short: "Print contribution statistics of the present repository",
	Long: `Print per-author contribution statistics: commit counts and lines
added, deleted, and written. Authors are merged by email across the
names they have committed under.

Example:
  gl contrib
  gl contrib --frequency`,
	Args: cobra.NoArgs,
	Run:  runContribCmd,
}

var contribFrequency bool

// initContribCmd initializes the contrib command with its flags
func initContribCmd() {
	contribCmd.Flags().BoolVarP(&contribFrequency, "frequency", "f", false, "Only show commit counts per author")
}

// runContribCmd is the main function for the contrib command
func runContribCmd(cmd *cobra.Command, args []string) {
	if contribFrequency {
		contributors, err := git.AuthorFrequency()
		if err != nil {
			log.PrintError(log.ErrGitShortlogFailed, "Failed to summarise authors; are you in a git repository?", err)
		}
		for _, contributor := range contributors {
			log.Println(fmt.Sprintf("%6d  %s", contributor.Commits, displayName(contributor)))
		}
		return
	}

	contributors, err := git.ContributorStats()
	if err != nil {
		log.PrintError(log.ErrGitShortlogFailed, "Failed to collect contribution statistics; are you in a git repository?", err)
	}

	log.Println(fmt.Sprintf("%-40s %7s %9s %9s %9s", "AUTHOR", "COMMITS", "ADDED", "DELETED", "WRITTEN"))
	for _, contributor := range contributors {
		summary := contributor.Summary()
		log.Println(fmt.Sprintf("%-40s %7d %9d %9d %9d",
			displayName(contributor), contributor.Commits,
			summary.Added, summary.Deleted, summary.Net))
	}
}

// displayName renders an author as "Name <email>", joining alternate
// names when the author committed under several
func displayName(contributor git.Contributor) string {
	name := strings.Join(contributor.ID.Names, " / ")
	if name == "" {
		return contributor.ID.Email
	}
	return fmt.Sprintf("%s <%s>", name, contributor.ID.Email)
}
