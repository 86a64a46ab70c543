package log

import (
	"fmt"
	"strings"
)

// Error codes for all application errors
const (
	// Configuration errors (1xx)
	ErrConfigReadFailed  = "E101" // Error reading configuration file
	ErrConfigParseFailed = "E102" // Error parsing configuration file
	ErrConfigShortcut    = "E103" // Invalid shortcut definition in configuration

	// Git operation errors (2xx)
	ErrGitLogFailed      = "E201" // Failed to read the git log
	ErrGitStatusFailed   = "E202" // Failed to get repository status
	ErrGitBranchFailed   = "E203" // Failed to get branch information
	ErrGitRevListFailed  = "E204" // Failed to count commits
	ErrGitShortlogFailed = "E205" // Failed to summarise authors

	// Repository errors (3xx)
	ErrRepoNotFound    = "E301" // Not inside a git repository
	ErrRepoInvalidPath = "E302" // Invalid repository path

	// Dispatch errors (5xx)
	ErrDispatchUnknownToken = "E501" // Unrecognized shortcut token
	ErrDispatchSpawnFailed  = "E502" // Failed to spawn external command

	// General errors (9xx)
	ErrInvalidArgument = "E901" // Invalid argument passed
	ErrOperationFailed = "E999" // Generic operation failed
)

// FormatError formats an error with a consistent structure including the error code
func FormatError(code string, description string, err error) string {
	if err != nil {
		return fmt.Sprintf("[%s] %s: %v", code, description, err)
	}
	return fmt.Sprintf("[%s] %s", code, description)
}

// GetErrorCode extracts the error code from a formatted error message
func GetErrorCode(errorMsg string) string {
	if strings.HasPrefix(errorMsg, "[E") && len(errorMsg) >= 6 {
		return errorMsg[1:5]
	}
	return ""
}
