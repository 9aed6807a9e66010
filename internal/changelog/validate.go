package changelog

import "fmt"

// RepairKind identifies a safe, idempotent repair applied during
// validation. Repairs are informational changes, never failures.
type RepairKind string

const (
	// RepairRelocatedEntry means an entry was moved to the change group
	// its pending-entry tag designates (merge scramble recovery).
	RepairRelocatedEntry RepairKind = "relocated-entry"
	// RepairNormalizedFormatting means the serialized form differed
	// from the canonical rendering (spacing, tag prefixes, ordering of
	// physical lines); semantic content is unchanged.
	RepairNormalizedFormatting RepairKind = "normalized-formatting"
)

// Repair describes one applied repair for human-readable reporting.
type Repair struct {
	Kind   RepairKind
	Detail string
}

// ValidateOptions controls a validation pass.
type ValidateOptions struct {
	// RequirePending fails with MissingPendingVersion when the document
	// has no pending version. The check and add paths require one;
	// release and yank tolerate its absence at validation time.
	RequirePending bool
	// Source is the raw text the document was parsed from. When set,
	// the validator compares it against the canonical rendering and
	// records a formatting repair on mismatch. Leave empty for
	// documents built in memory.
	Source string
}

// Result is the outcome of a successful validation pass.
type Result struct {
	// Doc is the validated document. It is a fresh tree: relocation is
	// a pure re-bucketing pass and never mutates its input.
	Doc     *Document
	Repairs []Repair
}

// Repaired reports whether any repairs were applied.
func (r *Result) Repaired() bool {
	return len(r.Repairs) > 0
}

// Validate checks document-wide invariants and performs safe repairs.
//
// Checks run in order: pending cardinality, pending position, tag
// consistency (including stale tags under released versions), then the
// repairs: relocation of entries to their tag-declared group and
// formatting normalization. Validation stops at the first hard failure;
// once an invariant like cardinality or position is violated, the
// position of content can no longer be trusted and no repair is
// attempted.
//
// Validation is idempotent: validating the rendered output of a Result
// yields zero further repairs.
func Validate(doc *Document, opts ValidateOptions) (*Result, error) {
	pending := doc.PendingVersions()
	if len(pending) > 1 {
		return nil, &InvariantError{Kind: MultiplePendingVersions}
	}
	if len(pending) == 0 && opts.RequirePending {
		return nil, &InvariantError{Kind: MissingPendingVersion}
	}
	if len(pending) == 1 && doc.Versions[0] != pending[0] {
		return nil, &InvariantError{Kind: PendingNotFirst}
	}

	result := &Result{}
	repaired, repairs, err := rebucket(doc)
	if err != nil {
		return nil, err
	}
	result.Doc = repaired
	result.Repairs = repairs

	if opts.Source != "" && Render(repaired) != opts.Source {
		result.Repairs = append(result.Repairs, Repair{
			Kind:   RepairNormalizedFormatting,
			Detail: "normalized spacing and entry tags to canonical form",
		})
	}

	return result, nil
}

// rebucket produces a new Document with every entry in its tag-declared
// home. Entries under the pending version have their tags resolved and
// stripped; a tag disagreeing with the entry's physical location moves
// the entry, never rejects it. Entries are neither invented nor lost:
// the pass only redistributes what the parser found.
func rebucket(doc *Document) (*Document, []Repair, error) {
	out := &Document{Header: doc.Header, Rest: doc.Rest}
	var repairs []Repair

	for _, v := range doc.Versions {
		nv := &Version{Name: v.Name, State: v.State, Link: v.Link, Date: v.Date}
		out.Versions = append(out.Versions, nv)

		// Entries whose tag designates a different group, keyed by
		// destination, appended after the in-place entries so repeated
		// validation preserves order.
		moved := map[ChangeType][]Entry{}

		for _, g := range v.Groups {
			ng := &ChangeGroup{Type: g.Type}
			for _, e := range g.Entries {
				if !v.IsPending() {
					if tag, ok := hasTag(e.Lines); ok {
						return nil, nil, &TagError{Kind: TagStale, Value: tag, Entry: e.Text()}
					}
					ng.Entries = append(ng.Entries, e)
					continue
				}

				tag, stripped, err := ResolveTags(e.Lines)
				if err != nil {
					return nil, nil, err
				}
				entry := Entry{Lines: stripped}
				if tag != nil && tag.Type != g.Type {
					moved[tag.Type] = append(moved[tag.Type], entry)
					repairs = append(repairs, Repair{
						Kind:   RepairRelocatedEntry,
						Detail: fmt.Sprintf("moved entry %q from %s to %s", snippet(entry.Text()), g.Type, tag.Type),
					})
					continue
				}
				ng.Entries = append(ng.Entries, entry)
			}
			if len(ng.Entries) > 0 || len(moved[ng.Type]) > 0 {
				nv.Groups = append(nv.Groups, ng)
			}
		}

		// Deterministic placement for relocated entries: existing
		// groups first, then any newly required groups in standard
		// change-type order.
		for _, g := range nv.Groups {
			if entries := moved[g.Type]; len(entries) > 0 {
				g.Entries = append(g.Entries, entries...)
				delete(moved, g.Type)
			}
		}
		for _, t := range ChangeTypes() {
			if entries := moved[t]; len(entries) > 0 {
				nv.Groups = append(nv.Groups, &ChangeGroup{Type: t, Entries: entries})
				delete(moved, t)
			}
		}
	}

	return out, repairs, nil
}
