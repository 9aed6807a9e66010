package changelog

import "strings"

// UnreleasedName is the reserved version name that marks the pending
// (in-progress, not yet released) section of the changelog.
const UnreleasedName = "Unreleased"

// ChangeType classifies the nature of a changelog entry.
// The set is fixed by the Keep a Changelog convention.
type ChangeType string

const (
	Added      ChangeType = "Added"
	Changed    ChangeType = "Changed"
	Deprecated ChangeType = "Deprecated"
	Removed    ChangeType = "Removed"
	Fixed      ChangeType = "Fixed"
	Security   ChangeType = "Security"
)

// ChangeTypes returns all valid change types in their standard
// rendering order.
func ChangeTypes() []ChangeType {
	return []ChangeType{Added, Changed, Deprecated, Removed, Fixed, Security}
}

// IsValidChangeType reports whether t is one of the fixed change types.
func IsValidChangeType(t ChangeType) bool {
	switch t {
	case Added, Changed, Deprecated, Removed, Fixed, Security:
		return true
	}
	return false
}

// ParseChangeType converts user input to a ChangeType, accepting any
// capitalization ("fixed", "FIXED", "Fixed" all resolve to Fixed).
// Returns a TagError of kind TagUnknownChangeType for values outside
// the fixed set.
func ParseChangeType(s string) (ChangeType, error) {
	t := ChangeType(capitalize(s))
	if !IsValidChangeType(t) {
		return "", &TagError{Kind: TagUnknownChangeType, Value: s}
	}
	return t, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// VersionState is the lifecycle state of a version. The only legal
// transitions are Pending -> Released (release) and Released -> Yanked
// (yank); both are one-way.
type VersionState int

const (
	Pending VersionState = iota
	Released
	Yanked
)

// String returns the lowercase state name used in YAML export and
// human-readable messages.
func (s VersionState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Released:
		return "released"
	case Yanked:
		return "yanked"
	default:
		return "unknown"
	}
}

// Entry is a single changelog item. Lines holds the physical lines of
// the entry text, tag-free; pending-entry tags are a serialization
// artifact added by the renderer and stripped during validation.
type Entry struct {
	Lines []string
}

// Text returns the entry joined into a single string.
func (e Entry) Text() string {
	return strings.Join(e.Lines, "\n")
}

// ChangeGroup owns the ordered entries of one change type under a
// version. A group is never serialized empty.
type ChangeGroup struct {
	Type    ChangeType
	Entries []Entry
}

// Version is a single changelog section. Name identity is unique per
// document; the reserved name marks the pending version. Link and Date
// are opaque strings, never validated or interpreted.
type Version struct {
	Name   string
	State  VersionState
	Link   string
	Date   string
	Groups []*ChangeGroup
}

// IsPending reports whether the version is the in-progress section.
func (v *Version) IsPending() bool {
	return v.State == Pending
}

// Group returns the change group for t, or nil if the version has no
// entries of that type.
func (v *Version) Group(t ChangeType) *ChangeGroup {
	for _, g := range v.Groups {
		if g.Type == t {
			return g
		}
	}
	return nil
}

// EnsureGroup returns the change group for t, creating it in place if
// the version has none yet.
func (v *Version) EnsureGroup(t ChangeType) *ChangeGroup {
	if g := v.Group(t); g != nil {
		return g
	}
	g := &ChangeGroup{Type: t}
	v.Groups = append(v.Groups, g)
	return g
}

// EntryCount returns the total number of entries across all groups.
func (v *Version) EntryCount() int {
	n := 0
	for _, g := range v.Groups {
		n += len(g.Entries)
	}
	return n
}

// Document is the parsed changelog. Versions are ordered newest first;
// a valid document has exactly one pending version and it is the first
// element. Header and Rest preserve the free-form preamble and trailing
// content verbatim for round-trip fidelity.
type Document struct {
	Header   []string
	Versions []*Version
	Rest     []string
}

// PendingVersions returns all versions in pending state, in document
// order. A valid document has exactly one.
func (d *Document) PendingVersions() []*Version {
	var pending []*Version
	for _, v := range d.Versions {
		if v.IsPending() {
			pending = append(pending, v)
		}
	}
	return pending
}

// FindVersion returns the version with the given name, or nil.
func (d *Document) FindVersion(name string) *Version {
	for _, v := range d.Versions {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// VersionNames returns the names of all versions in document order.
func (d *Document) VersionNames() []string {
	names := make([]string, len(d.Versions))
	for i, v := range d.Versions {
		names[i] = v.Name
	}
	return names
}
