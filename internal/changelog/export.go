package changelog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlDocument mirrors the document model in a machine-friendly shape
// for `clkpr export`.
type yamlDocument struct {
	Versions []yamlVersion `yaml:"versions"`
}

type yamlVersion struct {
	Version string      `yaml:"version"`
	State   string      `yaml:"state"`
	Link    string      `yaml:"link,omitempty"`
	Date    string      `yaml:"date,omitempty"`
	Changes yamlChanges `yaml:"changes"`
}

type yamlChanges struct {
	Added      []string `yaml:"added,omitempty"`
	Changed    []string `yaml:"changed,omitempty"`
	Deprecated []string `yaml:"deprecated,omitempty"`
	Removed    []string `yaml:"removed,omitempty"`
	Fixed      []string `yaml:"fixed,omitempty"`
	Security   []string `yaml:"security,omitempty"`
}

// ExportYAML writes the document as YAML. Multi-line entries are
// emitted as single strings with embedded newlines; the header and rest
// are presentation detail and not exported.
func ExportYAML(d *Document, w io.Writer) error {
	out := yamlDocument{}
	for _, v := range d.Versions {
		yv := yamlVersion{
			Version: v.Name,
			State:   v.State.String(),
			Link:    v.Link,
			Date:    v.Date,
		}
		for _, g := range v.Groups {
			texts := make([]string, 0, len(g.Entries))
			for _, e := range g.Entries {
				texts = append(texts, e.Text())
			}
			switch g.Type {
			case Added:
				yv.Changes.Added = texts
			case Changed:
				yv.Changes.Changed = texts
			case Deprecated:
				yv.Changes.Deprecated = texts
			case Removed:
				yv.Changes.Removed = texts
			case Fixed:
				yv.Changes.Fixed = texts
			case Security:
				yv.Changes.Security = texts
			}
		}
		out.Versions = append(out.Versions, yv)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding changelog YAML: %w", err)
	}
	return enc.Close()
}
