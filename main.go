package main

import (
	"os"

	"gl/cmd"
	"gl/config"
	"gl/dispatch"
	"gl/log"
)

func main() {
	// Dispatch shortcut tokens before cobra argument parsing; anything
	// that is not a configured token falls through to the subcommands.
	// A leading --config flag selects the same file the subcommands use.
	if len(os.Args) > 1 {
		configPath, args := dispatch.ConfigPathFromArgs(os.Args[1:], config.DefaultPath())

		configObj, err := config.ReadConfig(configPath)
		if err != nil {
			log.PrintError(log.ErrConfigReadFailed, "Error reading config", err)
		}

		table, err := dispatch.NewTable(configObj.Shortcuts, cmd.ReservedNames())
		if err != nil {
			log.PrintError(log.ErrConfigShortcut, "Invalid shortcut configuration", err)
		}

		if code, handled := dispatch.NewDispatcher(table).Handle(args); handled {
			os.Exit(code)
		}
	}

	cmd.Initialize()
	cmd.Execute()
}
