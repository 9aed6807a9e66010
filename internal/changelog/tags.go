package changelog

import (
	"fmt"
	"regexp"
	"strings"
)

// tagRE matches a pending-entry tag at the start of a line:
// <VersionName-ChangeType/>. The tag is a prefix marker; everything
// after it is entry content.
var tagRE = regexp.MustCompile(`^<(\S+?)-(\S+?)/>`)

// Tag is a resolved pending-entry marker: the (version, change type)
// destination an entry declares for itself so it survives
// version-control merges.
type Tag struct {
	Version string
	Type    ChangeType
}

// String renders the tag in its wire form.
func (t Tag) String() string {
	return fmt.Sprintf("<%s-%s/>", t.Version, t.Type)
}

// ResolveTags scans every physical line of one entry for a pending-entry
// tag and validates agreement. It succeeds only when every line carries
// an identical tag, or no line carries a tag at all. On success it
// returns the resolved tag (nil when untagged) and the tag-stripped
// lines.
//
// Failure kinds: TagInconsistent when lines disagree or only some are
// tagged, TagUnknownVersion when the tagged name is not the reserved
// pending name, TagUnknownChangeType when the tagged type is outside
// the fixed set. Malformed placements are always reported, never
// repaired: silent repair could relocate user content to the wrong
// section.
func ResolveTags(lines []string) (*Tag, []string, error) {
	entryText := strings.Join(lines, "\n")

	var found *Tag
	tagged := 0
	stripped := make([]string, len(lines))

	for i, line := range lines {
		m := tagRE.FindStringSubmatch(line)
		if m == nil {
			stripped[i] = line
			continue
		}
		tagged++
		tag := Tag{Version: m[1], Type: ChangeType(m[2])}
		if found != nil && *found != tag {
			return nil, nil, &TagError{Kind: TagInconsistent, Value: tag.String(), Entry: entryText}
		}
		found = &tag
		stripped[i] = line[len(m[0]):]
	}

	if found == nil {
		return nil, stripped, nil
	}
	if tagged != len(lines) {
		return nil, nil, &TagError{Kind: TagInconsistent, Value: found.String(), Entry: entryText}
	}
	if found.Version != UnreleasedName {
		return nil, nil, &TagError{Kind: TagUnknownVersion, Value: found.Version, Entry: entryText}
	}
	if !IsValidChangeType(found.Type) {
		return nil, nil, &TagError{Kind: TagUnknownChangeType, Value: string(found.Type), Entry: entryText}
	}

	return found, stripped, nil
}

// hasTag reports whether any line of the entry starts with a tag. Used
// to detect stale tags under released versions.
func hasTag(lines []string) (string, bool) {
	for _, line := range lines {
		if m := tagRE.FindString(line); m != "" {
			return m, true
		}
	}
	return "", false
}
