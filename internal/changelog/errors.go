package changelog

import (
	"fmt"
	"strings"
)

// ParseError is a structural parsing failure: malformed heading order or
// unrecognized top-level layout. Parsing aborts before validation runs.
type ParseError struct {
	Line    int // 1-based line number in the source text
	Text    string
	Message string
}

func (e *ParseError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("line %d: %s: %q", e.Line, e.Message, e.Text)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// TagErrorKind identifies the kind of pending-entry tag corruption.
type TagErrorKind string

const (
	// TagInconsistent means the lines of one entry carry disagreeing
	// tags, or only some of its lines are tagged.
	TagInconsistent TagErrorKind = "inconsistent-tag"
	// TagUnknownVersion means a tag names a version that is not the
	// reserved pending name.
	TagUnknownVersion TagErrorKind = "unknown-version"
	// TagUnknownChangeType means a tag (or user input) names a change
	// type outside the fixed set.
	TagUnknownChangeType TagErrorKind = "unknown-change-type"
	// TagStale means an entry under a released or yanked version still
	// carries a tag; tags are stripped permanently at release.
	TagStale TagErrorKind = "stale-tag"
)

// TagError reports tag corruption with enough context for a human to
// fix the entry manually. The tool never guesses: ambiguous placements
// are reported, not repaired.
type TagError struct {
	Kind  TagErrorKind
	Value string // offending tag or change-type value
	Entry string // text of the affected entry, when known
}

func (e *TagError) Error() string {
	var msg string
	switch e.Kind {
	case TagInconsistent:
		msg = "entry carries inconsistent pending-entry tags"
	case TagUnknownVersion:
		msg = fmt.Sprintf("tag references unknown version %q", e.Value)
	case TagUnknownChangeType:
		msg = fmt.Sprintf("unknown change type %q", e.Value)
	case TagStale:
		msg = fmt.Sprintf("released entry still carries tag %q", e.Value)
	default:
		msg = "tag error"
	}
	if e.Entry != "" {
		return fmt.Sprintf("%s: %q", msg, snippet(e.Entry))
	}
	return msg
}

// InvariantKind identifies a violated document-wide invariant.
type InvariantKind string

const (
	MultiplePendingVersions InvariantKind = "multiple-pending-versions"
	MissingPendingVersion   InvariantKind = "missing-pending-version"
	PendingNotFirst         InvariantKind = "pending-not-first"
)

// InvariantError reports a document-wide invariant violation. No repair
// is attempted once one is detected: the position of content can no
// longer be trusted.
type InvariantError struct {
	Kind InvariantKind
}

func (e *InvariantError) Error() string {
	switch e.Kind {
	case MultiplePendingVersions:
		return fmt.Sprintf("changelog has more than one %s version", UnreleasedName)
	case MissingPendingVersion:
		return fmt.Sprintf("changelog has no %s version", UnreleasedName)
	case PendingNotFirst:
		return fmt.Sprintf("%s version is not the first version in the changelog", UnreleasedName)
	default:
		return "invariant violation"
	}
}

// MutationKind identifies a failed mutation precondition.
type MutationKind string

const (
	InvalidVersionName MutationKind = "invalid-version-name"
	VersionNotFound    MutationKind = "version-not-found"
	InvalidYankTarget  MutationKind = "invalid-yank-target"
)

// MutationError reports a mutation whose preconditions were not met.
type MutationError struct {
	Kind    MutationKind
	Version string
	Message string
}

func (e *MutationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	switch e.Kind {
	case InvalidVersionName:
		return fmt.Sprintf("invalid version name %q", e.Version)
	case VersionNotFound:
		return fmt.Sprintf("version %q not found in the changelog", e.Version)
	case InvalidYankTarget:
		return fmt.Sprintf("version %q is not in released state and cannot be yanked", e.Version)
	default:
		return fmt.Sprintf("mutation failed for version %q", e.Version)
	}
}

// snippet truncates entry text for error messages.
func snippet(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	const max = 60
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}
