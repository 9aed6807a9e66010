package yaml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSyntax_ValidYAML(t *testing.T) {
	tests := map[string]string{
		"simple key-value":      "key: value",
		"nested structure":      "parent:\n  child: value",
		"array":                 "items:\n  - one\n  - two",
		"config shape":          "file: CHANGELOG.md\nplain: false\nwatch_debounce: 300ms",
		"empty document":        "",
		"document with comment": "# comment\nkey: value",
		"multi-document":        "---\ndoc1: value1\n---\ndoc2: value2",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.NoError(t, ValidateSyntax(strings.NewReader(input)))
		})
	}
}

func TestValidateSyntax_ReportsLineNumber(t *testing.T) {
	t.Parallel()

	input := "valid: yes\nalso_valid: true\n  bad_indent: error"

	err := ValidateSyntax(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line")
}

func TestValidateFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".clkpr.yml")
	require.NoError(t, os.WriteFile(path, []byte("file: CHANGELOG.md\nauto_ref: true\n"), 0o644))
	assert.NoError(t, ValidateFile(path))

	require.NoError(t, os.WriteFile(path, []byte("a:\n b: 1\n  c: 2\n"), 0o644))
	err := ValidateFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestValidateFile_MissingFile(t *testing.T) {
	t.Parallel()

	err := ValidateFile(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestValidateSyntax_LargeDocument(t *testing.T) {
	t.Parallel()

	var builder strings.Builder
	builder.WriteString("items:\n")
	for i := 0; i < 1000; i++ {
		builder.WriteString("  - item: value\n")
		builder.WriteString("    nested:\n")
		builder.WriteString("      deep: true\n")
	}

	assert.NoError(t, ValidateSyntax(strings.NewReader(builder.String())))
}
