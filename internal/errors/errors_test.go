package errors

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/ariel-frischer/clkpr/internal/changelog"
)

func TestFromError_Classification(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err          error
		wantCategory ErrorCategory
		wantExit     int
	}{
		"parse error": {
			err:          &changelog.ParseError{Line: 3, Message: "unexpected heading"},
			wantCategory: Parse,
			wantExit:     ExitParse,
		},
		"tag error": {
			err:          &changelog.TagError{Kind: changelog.TagInconsistent},
			wantCategory: Parse,
			wantExit:     ExitParse,
		},
		"invariant error": {
			err:          &changelog.InvariantError{Kind: changelog.MissingPendingVersion},
			wantCategory: Invariant,
			wantExit:     ExitInvariant,
		},
		"mutation error": {
			err:          &changelog.MutationError{Kind: changelog.VersionNotFound, Version: "2.0.0"},
			wantCategory: Mutation,
			wantExit:     ExitMutation,
		},
		"wrapped mutation error": {
			err:          fmt.Errorf("applying release: %w", &changelog.MutationError{Kind: changelog.InvalidVersionName}),
			wantCategory: Mutation,
			wantExit:     ExitMutation,
		},
		"plain error": {
			err:          fmt.Errorf("open CHANGELOG.md: permission denied"),
			wantCategory: IO,
			wantExit:     ExitFailure,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cliErr := FromError(tt.err)
			assert.Equal(t, tt.wantCategory, cliErr.Category)
			assert.Equal(t, tt.wantExit, cliErr.ExitCode())
			assert.Equal(t, tt.wantExit, ExitCodeFor(tt.err))
		})
	}
}

func TestFromError_PassesThroughCLIError(t *testing.T) {
	t.Parallel()

	orig := NewUsageError("missing version argument", "Provide a version name")
	assert.Same(t, orig, FromError(orig))
	assert.Equal(t, ExitUsage, orig.ExitCode())
}

func TestFromError_Nil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, FromError(nil))
	assert.Equal(t, ExitSuccess, ExitCodeFor(nil))
}

func TestFprintError_PlainDegrades(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	err := NewUsageErrorWithSyntax(
		"release requires a version name",
		"clkpr release <version>",
		"Provide the version to release",
	)

	var buf bytes.Buffer
	FprintError(&buf, err)
	out := buf.String()
	assert.Contains(t, out, "Error [Usage Error]: release requires a version name")
	assert.Contains(t, out, "Usage: clkpr release <version>")
	assert.Contains(t, out, "• Provide the version to release")
	assert.NotContains(t, out, "\x1b[")
}

func TestFormatError_NilIsEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, FormatError(nil))
}
