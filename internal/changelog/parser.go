package changelog

import "strings"

// Parse consumes the full raw text of a changelog and assembles the
// Document model. Versions, change groups, and entries mirror document
// order exactly.
//
// Everything before the first version heading is preserved verbatim as
// the document header. Blank lines between recognized content are
// treated as formatting and regenerated by the renderer; non-blank
// content the classifier does not recognize is a structural failure
// unless it trails the last recognized line, in which case it is
// preserved verbatim as the document rest.
//
// Entry text is accumulated raw, pending-entry tags included: tag
// resolution and stripping happen during validation so that corrupted
// tags abort with context instead of being silently dropped here.
func Parse(text string) (*Document, error) {
	p := &parser{doc: &Document{}}

	lines := strings.Split(text, "\n")
	// A trailing newline produces one empty trailing element; drop it so
	// line accounting matches the physical file.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for i, line := range lines {
		if err := p.feed(i+1, line); err != nil {
			return nil, err
		}
	}
	p.finish()

	return p.doc, nil
}

// parser is the streaming state for Parse.
type parser struct {
	doc     *Document
	version *Version
	group   *ChangeGroup
	entry   *Entry

	// pending holds blank and unrecognized lines seen since the last
	// recognized line. At end of input it becomes the document rest;
	// non-blank content here followed by more recognized content is a
	// structural error.
	pending []pendingLine
}

type pendingLine struct {
	num  int
	text string
}

func (p *parser) feed(num int, line string) error {
	cls := Classify(line)

	// Malformed headings are structural failures anywhere: treating
	// them as opaque content would silently detach whole sections.
	if cls.Kind == LineUnrecognized {
		if strings.HasPrefix(line, changeHeadingPrefix) {
			return &ParseError{Line: num, Text: line, Message: "unrecognized change type in heading"}
		}
		if strings.HasPrefix(line, versionHeadingPrefix) {
			return &ParseError{Line: num, Text: line, Message: "malformed version heading"}
		}
	}

	// Header: everything up to the first version heading, verbatim.
	if p.version == nil && cls.Kind != LineVersionHeading {
		if cls.Kind == LineChangeTypeHeading {
			return &ParseError{Line: num, Text: line, Message: "change-type heading before any version heading"}
		}
		p.doc.Header = append(p.doc.Header, line)
		return nil
	}

	switch cls.Kind {
	case LineBlank, LineUnrecognized:
		p.pending = append(p.pending, pendingLine{num: num, text: line})
		return nil
	}

	// A recognized line: anything non-blank buffered before it is
	// content we would otherwise silently lose.
	if err := p.flushPending(); err != nil {
		return err
	}

	switch cls.Kind {
	case LineVersionHeading:
		p.closeEntry()
		state := Released
		if cls.Yanked {
			state = Yanked
		} else if cls.Name == UnreleasedName {
			state = Pending
		}
		p.version = &Version{Name: cls.Name, State: state, Link: cls.Link, Date: cls.Date}
		p.group = nil
		p.doc.Versions = append(p.doc.Versions, p.version)

	case LineChangeTypeHeading:
		p.closeEntry()
		p.group = p.version.EnsureGroup(cls.Type)

	case LineEntryStart:
		if p.group == nil {
			return &ParseError{Line: num, Text: line, Message: "list entry before any change-type heading"}
		}
		p.closeEntry()
		p.entry = &Entry{Lines: []string{cls.Text}}

	case LineEntryContinuation:
		if p.group == nil {
			return &ParseError{Line: num, Text: line, Message: "list entry before any change-type heading"}
		}
		// A continuation with no open entry starts a fresh one; merges
		// can leave an entry's first line elsewhere and the tag pass
		// sorts it out.
		if p.entry == nil {
			p.entry = &Entry{}
		}
		p.entry.Lines = append(p.entry.Lines, cls.Text)
	}

	return nil
}

// flushPending rejects buffered non-blank unrecognized content and
// discards buffered blanks (the renderer regenerates canonical
// spacing).
func (p *parser) flushPending() error {
	for _, l := range p.pending {
		if l.text != "" {
			return &ParseError{Line: l.num, Text: l.text, Message: "unrecognized content inside changelog body"}
		}
	}
	p.pending = nil
	return nil
}

// finish closes the open entry and converts any buffered tail into the
// document rest, preserved verbatim.
func (p *parser) finish() {
	p.closeEntry()
	for _, l := range p.pending {
		p.doc.Rest = append(p.doc.Rest, l.text)
	}
	p.pending = nil
}

func (p *parser) closeEntry() {
	if p.entry != nil {
		p.group.Entries = append(p.group.Entries, *p.entry)
		p.entry = nil
	}
}
