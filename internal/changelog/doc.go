// Package changelog implements the clkpr document model for Keep a
// Changelog style files.
//
// This package implements:
//   - Line classification and parsing of CHANGELOG.md markup
//   - Pending-entry tag resolution (the <Unreleased-Type/> line prefixes
//     that let entries survive version-control merges)
//   - Document validation with safe, idempotent repairs (entry relocation,
//     formatting normalization)
//   - The four mutations: create, add, release, yank
//   - Canonical rendering back to text, plus YAML export
//
// The model is a strict tree: Document owns Versions, a Version owns
// ChangeGroups, a ChangeGroup owns Entries. Parsing, validation, and
// rendering are pure in-memory transformations; file I/O lives in the
// keeper package.
package changelog
