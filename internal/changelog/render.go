package changelog

import "strings"

// Render serializes a Document into canonical changelog text. It is the
// exact inverse of Parse for a validated document: parsing the output
// and validating it yields an equal model with zero repairs.
//
// Canonical form: the header and rest are reproduced verbatim, version
// headings and change groups are separated by single blank lines, and
// every physical line of an entry under the pending version carries its
// <Name-Type/> tag prefix. Released and yanked versions render tag-free.
func Render(d *Document) string {
	var out []string
	out = append(out, d.Header...)

	for _, v := range d.Versions {
		if len(out) > 0 && out[len(out)-1] != "" {
			out = append(out, "")
		}
		out = append(out, renderHeading(v))

		for _, g := range v.Groups {
			if len(g.Entries) == 0 {
				continue
			}
			out = append(out, "", changeHeadingPrefix+string(g.Type), "")
			for _, e := range g.Entries {
				out = append(out, renderEntry(v, g, e)...)
			}
		}
	}

	out = append(out, d.Rest...)

	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}

// renderHeading formats a version heading, degrading through the
// optional link and date: `## [name](link) - date [YANKED]`.
func renderHeading(v *Version) string {
	var b strings.Builder
	b.WriteString(versionHeadingPrefix)
	b.WriteString("[")
	b.WriteString(v.Name)
	b.WriteString("]")
	if v.Link != "" {
		b.WriteString("(")
		b.WriteString(v.Link)
		b.WriteString(")")
	}
	if v.Date != "" {
		b.WriteString(" - ")
		b.WriteString(v.Date)
		if v.State == Yanked {
			b.WriteString(yankedSuffix)
		}
	}
	return b.String()
}

// renderEntry produces the physical lines of one entry. Lines of
// entries owned by the pending version are re-prefixed with their tag
// so they survive version-control merges.
func renderEntry(v *Version, g *ChangeGroup, e Entry) []string {
	tag := ""
	if v.IsPending() {
		tag = Tag{Version: v.Name, Type: g.Type}.String()
	}

	lines := make([]string, 0, len(e.Lines))
	for i, text := range e.Lines {
		prefix := entryStartPrefix
		if i > 0 {
			prefix = entryContinuePrefix
		}
		lines = append(lines, prefix+tag+text)
	}
	return lines
}
