package changelog

import (
	"regexp"
	"strings"
)

// Markup literals. These are load-bearing wire format: the renderer must
// reproduce them bit-for-bit for content the parser did not change.
const (
	versionHeadingPrefix = "## "
	changeHeadingPrefix  = "### "
	entryStartPrefix     = "- "
	entryContinuePrefix  = "  "
	yankedSuffix         = " [YANKED]"
)

// versionHeadingRE matches `## [name](link) - YYYY-MM-DD [YANKED]` with
// the link, date, and yanked marker each optional. The yanked marker is
// only legal after a date.
var versionHeadingRE = regexp.MustCompile(
	`^## \[(\S*)\](?:\((\S*)\))?(?: - (\d{4}-\d{2}-\d{2})( \[YANKED\])?)?$`)

// LineKind tags the classification of a single raw line.
type LineKind int

const (
	LineBlank LineKind = iota
	LineVersionHeading
	LineChangeTypeHeading
	LineEntryStart
	LineEntryContinuation
	LineUnrecognized
)

// LineClass is the classification result for one line. Raw always holds
// the line verbatim so unrecognized content is never lost.
type LineClass struct {
	Kind LineKind
	Raw  string

	// Version heading fields.
	Name   string
	Link   string
	Date   string
	Yanked bool

	// Change-type heading field.
	Type ChangeType

	// Entry text with the list-item prefix removed.
	Text string
}

// Classify recognizes a single raw line. It is a pure function and
// never fails: lines that fit no category come back as LineUnrecognized
// with the text preserved verbatim.
func Classify(line string) LineClass {
	if line == "" {
		return LineClass{Kind: LineBlank}
	}

	if strings.HasPrefix(line, changeHeadingPrefix) {
		// Heading change types are accepted case-insensitively; the
		// renderer restores the canonical capitalization.
		t, err := ParseChangeType(strings.TrimSpace(line[len(changeHeadingPrefix):]))
		if err == nil {
			return LineClass{Kind: LineChangeTypeHeading, Raw: line, Type: t}
		}
		return LineClass{Kind: LineUnrecognized, Raw: line}
	}

	if strings.HasPrefix(line, versionHeadingPrefix) {
		if m := versionHeadingRE.FindStringSubmatch(line); m != nil && m[1] != "" {
			return LineClass{
				Kind:   LineVersionHeading,
				Raw:    line,
				Name:   m[1],
				Link:   m[2],
				Date:   m[3],
				Yanked: m[4] != "",
			}
		}
		return LineClass{Kind: LineUnrecognized, Raw: line}
	}

	if strings.HasPrefix(line, entryStartPrefix) {
		return LineClass{Kind: LineEntryStart, Raw: line, Text: line[len(entryStartPrefix):]}
	}
	if strings.HasPrefix(line, entryContinuePrefix) {
		return LineClass{Kind: LineEntryContinuation, Raw: line, Text: line[len(entryContinuePrefix):]}
	}

	return LineClass{Kind: LineUnrecognized, Raw: line}
}
