package cmd

import (
	"fmt"
	"os"
	"strconv"

	"gl/config"
	"gl/git"
	"gl/log"

	"github.com/spf13/cobra"
)

// DefaultTopNLog is how many commits the bare invocation shows
const DefaultTopNLog = 10

// Global flags used across multiple commands
var (
	configFile    string
	noColour      bool
	absoluteDates bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gl [n]",
	Short: "Git log and other personalised git utilities",
	Long: `Git log and other personalised git utilities. By default (i.e. without
any arguments), it will print the last 10 commits nicely. Configured
shortcut tokens (see "gl shortcuts") are dispatched straight to git.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRootCmd,
}

// Initialize adds all child commands to the root command
func Initialize() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultPath(), "Path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&noColour, "no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().BoolVar(&absoluteDates, "absolute", false, "Show absolute commit dates instead of relative ones")

	initLogCmd()
	initStatusCmd()
	initBranchCmds()
	initCountCmd()
	initContribCmd()
	initLanguagesCmd()
	initFindCmd()

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(branchCmd)
	rootCmd.AddCommand(branchesCmd)
	rootCmd.AddCommand(repoCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(contribCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(shortcutsCmd)
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// ReservedNames are the subcommand names that shortcut tokens must not
// shadow
func ReservedNames() []string {
	return []string{
		"log", "status", "branch", "branches", "repo", "count", "contrib",
		"languages", "find", "shortcuts", "help", "completion",
	}
}

// runRootCmd prints the last n commits (10 by default)
func runRootCmd(cmd *cobra.Command, args []string) {
	n := DefaultTopNLog
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed <= 0 {
			log.PrintError(log.ErrInvalidArgument, fmt.Sprintf("expected a positive number of commits, got %q", args[0]), nil)
		}
		n = parsed
	}

	printLog(n, logOptions())
}

// loadConfig reads the configuration file, exiting on failure
func loadConfig() *config.Configuration {
	configObj, err := config.ReadConfig(configFile)
	if err != nil {
		log.PrintError(log.ErrConfigReadFailed, "Error reading config", err)
	}
	return configObj
}

func colourEnabled() bool {
	return !noColour && log.ColourEnabled()
}

// logOptions builds the log options implied by the global flags
func logOptions() git.LogOptions {
	opts := git.DefaultLogOptions()
	opts.Relative = !absoluteDates
	opts.Colour = colourEnabled()
	return opts
}
