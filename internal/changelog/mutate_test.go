package changelog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
}

func TestNew_FreshDocument(t *testing.T) {
	t.Parallel()

	doc := New()
	assert.Equal(t, []string{"# Changelog", ""}, doc.Header)
	require.Len(t, doc.Versions, 1)
	assert.Equal(t, UnreleasedName, doc.Versions[0].Name)
	assert.Equal(t, Pending, doc.Versions[0].State)
	assert.Empty(t, doc.Versions[0].Groups)
}

func TestAdd_AppendsToPendingGroup(t *testing.T) {
	t.Parallel()

	doc := New()
	created, err := doc.Add(Added, "Support X")
	require.NoError(t, err)
	assert.False(t, created)

	created, err = doc.Add(Added, "Support Y")
	require.NoError(t, err)
	assert.False(t, created)

	added := doc.Versions[0].Group(Added)
	require.NotNil(t, added)
	require.Len(t, added.Entries, 2)
	assert.Equal(t, "Support X", added.Entries[0].Text())
	assert.Equal(t, "Support Y", added.Entries[1].Text())
}

func TestAdd_MultiLineEntry(t *testing.T) {
	t.Parallel()

	doc := New()
	_, err := doc.Add(Fixed, "first line\nsecond line")
	require.NoError(t, err)

	entry := doc.Versions[0].Group(Fixed).Entries[0]
	assert.Equal(t, []string{"first line", "second line"}, entry.Lines)
}

func TestAdd_RecreatesPendingSlotAfterRelease(t *testing.T) {
	t.Parallel()

	doc := New()
	_, err := doc.Add(Added, "feature")
	require.NoError(t, err)
	require.NoError(t, doc.Release("1.0.0", "", fixedNow(t)))
	require.Empty(t, doc.PendingVersions())

	created, err := doc.Add(Fixed, "post-release fix")
	require.NoError(t, err)
	assert.True(t, created)

	require.Len(t, doc.Versions, 2)
	assert.Equal(t, UnreleasedName, doc.Versions[0].Name)
	assert.Equal(t, Pending, doc.Versions[0].State)
	assert.Equal(t, "1.0.0", doc.Versions[1].Name)
}

func TestAdd_UnknownChangeType(t *testing.T) {
	t.Parallel()

	doc := New()
	_, err := doc.Add(ChangeType("Broke"), "entry")
	var tagErr *TagError
	require.ErrorAs(t, err, &tagErr)
	assert.Equal(t, TagUnknownChangeType, tagErr.Kind)
}

func TestRelease_TransitionsPendingVersion(t *testing.T) {
	t.Parallel()

	doc := New()
	_, err := doc.Add(Added, "Support X")
	require.NoError(t, err)

	require.NoError(t, doc.Release("1.0.0", "https://x/1.0.0", fixedNow(t)))

	require.Len(t, doc.Versions, 1)
	v := doc.Versions[0]
	assert.Equal(t, "1.0.0", v.Name)
	assert.Equal(t, Released, v.State)
	assert.Equal(t, "https://x/1.0.0", v.Link)
	assert.Equal(t, "2024-03-09", v.Date)

	// No pending version is auto-created; the slot reappears on the
	// next add.
	assert.Empty(t, doc.PendingVersions())
}

func TestRelease_EmptyPendingVersionIsPermitted(t *testing.T) {
	t.Parallel()

	doc := New()
	require.NoError(t, doc.Release("0.0.1", "", fixedNow(t)))
	assert.Equal(t, Released, doc.Versions[0].State)
	assert.Empty(t, doc.Versions[0].Groups)
}

func TestRelease_Preconditions(t *testing.T) {
	t.Parallel()

	released := func(t *testing.T) *Document {
		t.Helper()
		doc := New()
		_, err := doc.Add(Added, "x")
		require.NoError(t, err)
		require.NoError(t, doc.Release("1.0.0", "https://x/1.0.0", fixedNow(t)))
		return doc
	}

	t.Run("no pending version", func(t *testing.T) {
		t.Parallel()

		doc := released(t)
		err := doc.Release("2.0.0", "", fixedNow(t))
		var invErr *InvariantError
		require.ErrorAs(t, err, &invErr)
		assert.Equal(t, MissingPendingVersion, invErr.Kind)
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		err := New().Release("", "", fixedNow(t))
		var mutErr *MutationError
		require.ErrorAs(t, err, &mutErr)
		assert.Equal(t, InvalidVersionName, mutErr.Kind)
	})

	t.Run("reserved name", func(t *testing.T) {
		t.Parallel()

		err := New().Release(UnreleasedName, "", fixedNow(t))
		var mutErr *MutationError
		require.ErrorAs(t, err, &mutErr)
		assert.Equal(t, InvalidVersionName, mutErr.Kind)
	})

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()

		doc := released(t)
		_, err := doc.Add(Fixed, "fix")
		require.NoError(t, err)
		err = doc.Release("1.0.0", "", fixedNow(t))
		var mutErr *MutationError
		require.ErrorAs(t, err, &mutErr)
		assert.Equal(t, InvalidVersionName, mutErr.Kind)
	})

	t.Run("duplicate link", func(t *testing.T) {
		t.Parallel()

		doc := released(t)
		_, err := doc.Add(Fixed, "fix")
		require.NoError(t, err)
		err = doc.Release("1.0.1", "https://x/1.0.0", fixedNow(t))
		var mutErr *MutationError
		require.ErrorAs(t, err, &mutErr)
		assert.Equal(t, InvalidVersionName, mutErr.Kind)
	})
}

func TestYank_TransitionsReleasedVersion(t *testing.T) {
	t.Parallel()

	doc := New()
	_, err := doc.Add(Added, "x")
	require.NoError(t, err)
	require.NoError(t, doc.Release("1.0.0", "https://x/1.0.0", fixedNow(t)))

	require.NoError(t, doc.Yank("1.0.0"))

	v := doc.FindVersion("1.0.0")
	assert.Equal(t, Yanked, v.State)
	// Entries, link, and date are untouched.
	assert.Equal(t, "https://x/1.0.0", v.Link)
	assert.Equal(t, "2024-03-09", v.Date)
	assert.Equal(t, 1, v.EntryCount())
}

func TestYank_Preconditions(t *testing.T) {
	t.Parallel()

	t.Run("version not found", func(t *testing.T) {
		t.Parallel()

		err := New().Yank("9.9.9")
		var mutErr *MutationError
		require.ErrorAs(t, err, &mutErr)
		assert.Equal(t, VersionNotFound, mutErr.Kind)
	})

	t.Run("pending version is not yankable", func(t *testing.T) {
		t.Parallel()

		err := New().Yank(UnreleasedName)
		var mutErr *MutationError
		require.ErrorAs(t, err, &mutErr)
		assert.Equal(t, InvalidYankTarget, mutErr.Kind)
	})

	t.Run("version without a date", func(t *testing.T) {
		t.Parallel()

		doc, err := Parse("# Changelog\n\n## [Unreleased]\n\n## [1.0.0]\n\n### Added\n\n- Support X\n")
		require.NoError(t, err)
		require.Equal(t, Released, doc.Versions[1].State)

		err = doc.Yank("1.0.0")
		var mutErr *MutationError
		require.ErrorAs(t, err, &mutErr)
		assert.Equal(t, InvalidYankTarget, mutErr.Kind)
		assert.Contains(t, mutErr.Error(), "no release date")

		// The failed yank leaves the document unchanged, so the state
		// survives a rendering round trip.
		reparsed, err := Parse(Render(doc))
		require.NoError(t, err)
		assert.Equal(t, Released, reparsed.Versions[1].State)
	})

	t.Run("already yanked", func(t *testing.T) {
		t.Parallel()

		doc := New()
		require.NoError(t, doc.Release("1.0.0", "", fixedNow(t)))
		require.NoError(t, doc.Yank("1.0.0"))

		err := doc.Yank("1.0.0")
		var mutErr *MutationError
		require.ErrorAs(t, err, &mutErr)
		assert.Equal(t, InvalidYankTarget, mutErr.Kind)
	})
}

func TestParseChangeType(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    ChangeType
		wantErr bool
	}{
		"canonical":  {input: "Added", want: Added},
		"lowercase":  {input: "security", want: Security},
		"uppercase":  {input: "FIXED", want: Fixed},
		"mixed case": {input: "dEpReCaTeD", want: Deprecated},
		"unknown":    {input: "broke", wantErr: true},
		"empty":      {input: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseChangeType(tt.input)
			if tt.wantErr {
				var tagErr *TagError
				require.ErrorAs(t, err, &tagErr)
				assert.Equal(t, TagUnknownChangeType, tagErr.Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
