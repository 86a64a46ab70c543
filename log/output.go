package log

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// PrintError prints an error message with the appropriate error code and exits with code 1
func PrintError(code string, description string, err error) {
	fmt.Fprintln(os.Stderr, FormatError(code, description, err))
	os.Exit(1)
}

// PrintErrorNoExit prints an error message with the appropriate error code without exiting
func PrintErrorNoExit(code string, description string, err error) {
	fmt.Fprintln(os.Stderr, FormatError(code, description, err))
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Fprintf(os.Stderr, "[WARN] %s\n", message)
}

// Println prints a plain message to stdout
func Println(message string) {
	fmt.Println(message)
}

// ColourEnabled reports whether coloured output should be produced.
// Colour is suppressed when stdout is not a terminal or when NO_COLOR
// is set, per no-color.org. The NO_COLOUR spelling is honoured too, for
// environments configured with the British spelling.
func ColourEnabled() bool {
	if termenv.EnvNoColor() || noColourSet() {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func noColourSet() bool {
	return os.Getenv("NO_COLOUR") != ""
}
