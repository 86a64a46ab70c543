package cmd

import (
	"fmt"

	"gl/dispatch"
	"gl/log"

	"github.com/spf13/cobra"
)

// shortcutsCmd represents the shortcuts command
var shortcutsCmd = &cobra.Command{
	Use:   "shortcuts",
	Short: "List the configured shortcut tokens",
	Long: `List every configured shortcut token and the git command it expands
to. Shortcuts are dispatched before normal command parsing, so "gl st"
runs the command the st token maps to. The built-in table can be
overridden token by token in the shortcuts section of the
configuration file.`,
	Args: cobra.NoArgs,
	Run:  runShortcutsCmd,
}

// runShortcutsCmd is the main function for the shortcuts command
func runShortcutsCmd(cmd *cobra.Command, args []string) {
	configObj := loadConfig()

	table, err := dispatch.NewTable(configObj.Shortcuts, ReservedNames())
	if err != nil {
		log.PrintError(log.ErrConfigShortcut, "Invalid shortcut configuration", err)
	}

	fmt.Print(dispatch.NewDispatcher(table).Usage())
}
