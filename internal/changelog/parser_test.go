package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleChangelog = `# Changelog

## [Unreleased]

### Added

- <Unreleased-Added/>Support X

## [1.0.0](https://example.com/1.0.0) - 2024-01-15

### Fixed

- Squashed a bug
  spanning two lines
`

func TestParse_FullDocument(t *testing.T) {
	t.Parallel()

	doc, err := Parse(sampleChangelog)
	require.NoError(t, err)

	assert.Equal(t, []string{"# Changelog", ""}, doc.Header)
	require.Len(t, doc.Versions, 2)

	pending := doc.Versions[0]
	assert.Equal(t, UnreleasedName, pending.Name)
	assert.Equal(t, Pending, pending.State)
	require.Len(t, pending.Groups, 1)
	assert.Equal(t, Added, pending.Groups[0].Type)
	// Raw text, tags included: stripping happens during validation.
	assert.Equal(t, []string{"<Unreleased-Added/>Support X"}, pending.Groups[0].Entries[0].Lines)

	released := doc.Versions[1]
	assert.Equal(t, "1.0.0", released.Name)
	assert.Equal(t, Released, released.State)
	assert.Equal(t, "https://example.com/1.0.0", released.Link)
	assert.Equal(t, "2024-01-15", released.Date)
	require.Len(t, released.Groups, 1)
	require.Len(t, released.Groups[0].Entries, 1)
	assert.Equal(t, []string{"Squashed a bug", "spanning two lines"}, released.Groups[0].Entries[0].Lines)

	assert.Empty(t, doc.Rest)
}

func TestParse_YankedVersion(t *testing.T) {
	t.Parallel()

	doc, err := Parse("## [0.9.0] - 2023-12-01 [YANKED]\n\n### Security\n\n- Bad release\n")
	require.NoError(t, err)
	require.Len(t, doc.Versions, 1)
	assert.Equal(t, Yanked, doc.Versions[0].State)
	assert.Equal(t, "0.9.0", doc.Versions[0].Name)
}

func TestParse_PendingStateFollowsReservedName(t *testing.T) {
	t.Parallel()

	// A released version never has the reserved name; a version heading
	// without a date is still released when named otherwise.
	doc, err := Parse("## [1.0.0]\n")
	require.NoError(t, err)
	assert.Equal(t, Released, doc.Versions[0].State)

	doc, err = Parse("## [Unreleased]\n")
	require.NoError(t, err)
	assert.Equal(t, Pending, doc.Versions[0].State)
}

func TestParse_HeaderPreservedVerbatim(t *testing.T) {
	t.Parallel()

	text := "# Changelog\n\nFree-form preamble prose.\n\n- even a stray bullet\n\n## [Unreleased]\n"
	doc, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, []string{"# Changelog", "", "Free-form preamble prose.", "", "- even a stray bullet", ""}, doc.Header)
}

func TestParse_TrailingContentBecomesRest(t *testing.T) {
	t.Parallel()

	text := "## [Unreleased]\n\n### Added\n\n- entry\n\ntrailing notes\nmore notes\n"
	doc, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "trailing notes", "more notes"}, doc.Rest)
}

func TestParse_SplitChangeGroupsMerge(t *testing.T) {
	t.Parallel()

	// The same heading appearing twice under one version resumes the
	// existing group.
	text := "## [Unreleased]\n\n### Added\n\n- one\n\n### Fixed\n\n- two\n\n### Added\n\n- three\n"
	doc, err := Parse(text)
	require.NoError(t, err)

	require.Len(t, doc.Versions[0].Groups, 2)
	added := doc.Versions[0].Group(Added)
	require.NotNil(t, added)
	assert.Len(t, added.Entries, 2)
}

func TestParse_ContinuationWithoutStartOpensEntry(t *testing.T) {
	t.Parallel()

	// Merges can strand an entry's continuation lines; they become an
	// entry of their own and the tag pass reassembles meaning.
	text := "## [Unreleased]\n\n### Added\n\n  stranded continuation\n"
	doc, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, doc.Versions[0].Groups[0].Entries, 1)
	assert.Equal(t, []string{"stranded continuation"}, doc.Versions[0].Groups[0].Entries[0].Lines)
}

func TestParse_StructuralFailures(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		text string
	}{
		"change-type heading before any version": {
			text: "# Changelog\n\n### Added\n\n- entry\n",
		},
		"entry before any change-type heading": {
			text: "## [Unreleased]\n\n- entry\n",
		},
		"malformed version heading": {
			text: "## Unreleased\n",
		},
		"unknown change type in heading": {
			text: "## [Unreleased]\n\n### Broke\n\n- entry\n",
		},
		"unrecognized content inside body": {
			text: "## [Unreleased]\n\n### Added\n\n- entry\n\nstray prose\n\n## [1.0.0] - 2024-01-01\n\n### Fixed\n\n- fix\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.text)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Greater(t, parseErr.Line, 0)
		})
	}
}

func TestParse_EmptyInput(t *testing.T) {
	t.Parallel()

	doc, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, doc.Versions)
	assert.Empty(t, doc.Header)
	assert.Empty(t, doc.Rest)
}
