package config

import "time"

const (
	envPrefix = "CLKPR_"

	defaultWatchDebounce = 300 * time.Millisecond
)

// DefaultConfigTemplate returns a fully commented config template that
// helps users understand all available options.
func DefaultConfigTemplate() string {
	return `# clkpr configuration

file: CHANGELOG.md        # Changelog file to operate on
plain: false              # Disable colored output
auto_ref: false           # Derive release links from the git origin remote
watch_debounce: 300ms     # Quiet period before 'clkpr watch' re-checks
`
}

// Defaults returns the default configuration values.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"file":           "CHANGELOG.md",
		"plain":          false,
		"auto_ref":       false,
		"watch_debounce": defaultWatchDebounce.String(),
	}
}
