package changelog

import (
	"strings"
	"time"
)

// releaseDateFormat is the literal stamp written at release time. No
// timezone handling beyond formatting the supplied instant.
const releaseDateFormat = "2006-01-02"

// DefaultHeader is the preamble written by New.
var DefaultHeader = []string{"# Changelog", ""}

// New produces a fresh document holding the default header and a single
// empty pending version.
func New() *Document {
	return &Document{
		Header:   append([]string(nil), DefaultHeader...),
		Versions: []*Version{{Name: UnreleasedName, State: Pending}},
	}
}

// Add appends a new entry with the given text to the pending version's
// group for changeType, creating the group on first use. Multi-line
// text becomes one entry spanning several physical lines.
//
// When the document has no pending version (the previous one was just
// released), the pending slot is recreated at the front; the returned
// flag reports that. Callers must have validated the document first, so
// more than one pending version is a prior failure, not a concern here.
func (d *Document) Add(changeType ChangeType, text string) (createdPending bool, err error) {
	if !IsValidChangeType(changeType) {
		return false, &TagError{Kind: TagUnknownChangeType, Value: string(changeType)}
	}

	pending := d.PendingVersions()
	if len(pending) > 1 {
		return false, &InvariantError{Kind: MultiplePendingVersions}
	}

	var target *Version
	if len(pending) == 1 {
		target = pending[0]
	} else {
		target = &Version{Name: UnreleasedName, State: Pending}
		d.Versions = append([]*Version{target}, d.Versions...)
		createdPending = true
	}

	g := target.EnsureGroup(changeType)
	g.Entries = append(g.Entries, Entry{Lines: strings.Split(text, "\n")})
	return createdPending, nil
}

// Release transitions the pending version in place: state to released,
// name to the given version name, link to the given value (or absent),
// date stamped from now. Tags disappear from the serialized form
// because the renderer only prefixes pending entries.
//
// No new pending version is inserted; the pending slot reappears on
// the next Add.
func (d *Document) Release(name, link string, now time.Time) error {
	pending := d.PendingVersions()
	if len(pending) > 1 {
		return &InvariantError{Kind: MultiplePendingVersions}
	}
	if len(pending) == 0 {
		return &InvariantError{Kind: MissingPendingVersion}
	}

	if name == "" || name == UnreleasedName {
		return &MutationError{Kind: InvalidVersionName, Version: name}
	}
	if d.FindVersion(name) != nil {
		return &MutationError{
			Kind:    InvalidVersionName,
			Version: name,
			Message: "version " + name + " already exists in the changelog",
		}
	}
	if link != "" {
		for _, v := range d.Versions {
			if v.Link == link {
				return &MutationError{
					Kind:    InvalidVersionName,
					Version: name,
					Message: "version link " + link + " already exists in the changelog",
				}
			}
		}
	}

	v := pending[0]
	v.Name = name
	v.Link = link
	v.Date = now.Format(releaseDateFormat)
	v.State = Released
	return nil
}

// Yank marks a released version as withdrawn without touching its
// entries, link, or date. Only released versions are yankable: yanking
// the pending version or an already yanked one fails with
// InvalidYankTarget. A version heading carrying no date cannot express
// the yanked marker, so a date-less version fails the same way instead
// of losing the yank on the next rendering.
func (d *Document) Yank(name string) error {
	v := d.FindVersion(name)
	if v == nil {
		return &MutationError{Kind: VersionNotFound, Version: name}
	}
	if v.State != Released {
		return &MutationError{Kind: InvalidYankTarget, Version: name}
	}
	if v.Date == "" {
		return &MutationError{
			Kind:    InvalidYankTarget,
			Version: name,
			Message: "version " + name + " has no release date and cannot be yanked",
		}
	}
	v.State = Yanked
	return nil
}
