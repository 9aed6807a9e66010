// Package errors provides structured error handling for the clkpr CLI.
// It includes categorized errors with actionable remediation guidance
// and a stable mapping from categories to process exit codes.
package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/ariel-frischer/clkpr/internal/changelog"
)

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Usage errors are caused by invalid or missing command arguments
	// or flags.
	Usage ErrorCategory = iota
	// Parse errors are caused by a changelog file whose structure
	// cannot be read into the document model.
	Parse
	// Invariant errors mean the changelog violates a document-wide
	// rule, such as carrying more than one pending version.
	Invariant
	// Mutation errors mean a requested change could not be applied,
	// such as releasing under a duplicate version name.
	Mutation
	// IO errors cover filesystem failures around the changelog file.
	IO
)

// Exit codes reported by the clkpr process. Scripts depend on these
// staying stable across releases.
const (
	ExitSuccess   = 0
	ExitFailure   = 1
	ExitUsage     = 2
	ExitMutation  = 3
	ExitParse     = 4
	ExitInvariant = 5
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Usage:
		return "Usage Error"
	case Parse:
		return "Parse Error"
	case Invariant:
		return "Invariant Error"
	case Mutation:
		return "Mutation Error"
	case IO:
		return "IO Error"
	default:
		return "Error"
	}
}

// ExitCode returns the process exit code for the category.
func (c ErrorCategory) ExitCode() int {
	switch c {
	case Usage:
		return ExitUsage
	case Parse:
		return ExitParse
	case Invariant:
		return ExitInvariant
	case Mutation:
		return ExitMutation
	case IO:
		return ExitFailure
	default:
		return ExitFailure
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	// Category is the type of error (Usage, Parse, etc.)
	Category ErrorCategory
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Usage shows the correct command syntax (optional, for usage errors).
	Usage string
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// ExitCode returns the process exit code for the error.
func (e *CLIError) ExitCode() int {
	return e.Category.ExitCode()
}

// NewUsageError creates a new usage error with the given message and
// remediation steps.
func NewUsageError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Usage,
		Message:     message,
		Remediation: remediation,
	}
}

// NewUsageErrorWithSyntax creates a new usage error that includes the
// correct command syntax.
func NewUsageErrorWithSyntax(message, usage string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Usage,
		Message:     message,
		Usage:       usage,
		Remediation: remediation,
	}
}

// NewIOError creates a new filesystem error.
func NewIOError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    IO,
		Message:     message,
		Remediation: remediation,
	}
}

// FromError maps any error onto a CLIError, classifying the changelog
// package's typed errors into their categories and attaching
// remediation for the common cases. A CLIError passes through
// unchanged; anything unrecognized becomes an IO error.
func FromError(err error) *CLIError {
	if err == nil {
		return nil
	}

	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}

	var parseErr *changelog.ParseError
	if stderrors.As(err, &parseErr) {
		return &CLIError{
			Category: Parse,
			Message:  parseErr.Error(),
			Remediation: []string{
				"Fix the reported line so the changelog follows the expected heading layout",
				"Run 'clkpr check' after editing to confirm the file parses",
			},
		}
	}

	var tagErr *changelog.TagError
	if stderrors.As(err, &tagErr) {
		return &CLIError{
			Category:    Parse,
			Message:     tagErr.Error(),
			Remediation: tagRemediation(tagErr),
		}
	}

	var invErr *changelog.InvariantError
	if stderrors.As(err, &invErr) {
		return &CLIError{
			Category:    Invariant,
			Message:     invErr.Error(),
			Remediation: invariantRemediation(invErr),
		}
	}

	var mutErr *changelog.MutationError
	if stderrors.As(err, &mutErr) {
		return &CLIError{
			Category:    Mutation,
			Message:     mutErr.Error(),
			Remediation: mutationRemediation(mutErr),
		}
	}

	return &CLIError{Category: IO, Message: err.Error()}
}

// ExitCodeFor returns the exit code for any error.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return FromError(err).ExitCode()
}

func tagRemediation(err *changelog.TagError) []string {
	switch err.Kind {
	case changelog.TagInconsistent:
		return []string{
			"Give every line of the entry the same tag, or remove the tags entirely",
		}
	case changelog.TagUnknownVersion:
		return []string{
			fmt.Sprintf("Pending-entry tags may only reference %q", changelog.UnreleasedName),
			"Edit the tag or move the entry under the version it belongs to",
		}
	case changelog.TagUnknownChangeType:
		return []string{
			fmt.Sprintf("Valid change types are: %v", changelog.ChangeTypes()),
		}
	case changelog.TagStale:
		return []string{
			"Remove the tag from the released entry; tags only belong to pending entries",
		}
	}
	return nil
}

func invariantRemediation(err *changelog.InvariantError) []string {
	switch err.Kind {
	case changelog.MultiplePendingVersions:
		return []string{
			fmt.Sprintf("Merge the duplicate %s sections into one", changelog.UnreleasedName),
		}
	case changelog.MissingPendingVersion:
		return []string{
			"Run 'clkpr add' to record a change; it recreates the pending section",
		}
	case changelog.PendingNotFirst:
		return []string{
			fmt.Sprintf("Move the %s section above every released version", changelog.UnreleasedName),
		}
	}
	return nil
}

func mutationRemediation(err *changelog.MutationError) []string {
	switch err.Kind {
	case changelog.InvalidVersionName:
		return []string{
			"Pick a version name that is non-empty, not reserved, and not already in the changelog",
		}
	case changelog.VersionNotFound:
		return []string{
			"Run 'clkpr export' to list the versions the changelog knows about",
		}
	case changelog.InvalidYankTarget:
		return []string{
			"Only released versions can be yanked",
		}
	}
	return nil
}
