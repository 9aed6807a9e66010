// Package keeper is the service layer between the CLI and the changelog
// model. Each operation reads the changelog file, parses and validates
// it, applies one mutation, and writes the canonical rendering back.
// Failures propagate unmodified; nothing is retried.
package keeper

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ariel-frischer/clkpr/internal/changelog"
	"github.com/ariel-frischer/clkpr/internal/errors"
)

const fileMode = 0o644

// Keeper executes one changelog operation per invocation against a
// single file.
type Keeper struct {
	// File is the path of the changelog file.
	File string
	// Now supplies the release timestamp. Overridable for tests.
	Now func() time.Time
}

// New returns a Keeper for the given changelog file.
func New(file string) *Keeper {
	return &Keeper{File: file, Now: time.Now}
}

// Report describes what an operation did, for human-readable display.
type Report struct {
	// Repairs applied by validation before the operation ran.
	Repairs []changelog.Repair
	// Notes are additional one-line facts about the operation, such as
	// the pending section having been recreated.
	Notes []string
	// Wrote reports whether the changelog file was rewritten.
	Wrote bool
}

// Create writes a fresh changelog with an empty pending section. It
// refuses to overwrite an existing file.
func (k *Keeper) Create() (*Report, error) {
	if _, err := os.Stat(k.File); err == nil {
		return nil, errors.NewIOError(
			fmt.Sprintf("changelog %s already exists", k.File),
			"Remove the file first if you really want to start over",
		)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking %s: %w", k.File, err)
	}

	if err := k.write(changelog.New()); err != nil {
		return nil, err
	}
	return &Report{Wrote: true}, nil
}

// Add records a new entry of the given change type in the pending
// section. The change type is matched case-insensitively. When the
// previous pending section was just released, a fresh one is recreated
// at the top of the changelog.
func (k *Keeper) Add(changeType, text string) (*Report, error) {
	ct, err := changelog.ParseChangeType(changeType)
	if err != nil {
		return nil, err
	}

	res, err := k.load(changelog.ValidateOptions{})
	if err != nil {
		return nil, err
	}

	created, err := res.Doc.Add(ct, text)
	if err != nil {
		return nil, err
	}

	report := &Report{Repairs: res.Repairs}
	if created {
		report.Notes = append(report.Notes,
			fmt.Sprintf("recreated the %s section", changelog.UnreleasedName))
	}
	if err := k.write(res.Doc); err != nil {
		return nil, err
	}
	report.Wrote = true
	return report, nil
}

// Check validates the changelog and rewrites it in canonical form when
// validation applied repairs. A changelog without a pending section
// fails the check.
func (k *Keeper) Check() (*Report, error) {
	res, err := k.load(changelog.ValidateOptions{RequirePending: true})
	if err != nil {
		return nil, err
	}

	report := &Report{Repairs: res.Repairs}
	if res.Repaired() {
		if err := k.write(res.Doc); err != nil {
			return nil, err
		}
		report.Wrote = true
	}
	return report, nil
}

// Release turns the pending section into a released version named name,
// stamped with today's date and the given reference link (may be
// empty). The next Add recreates the pending section.
func (k *Keeper) Release(name, link string) (*Report, error) {
	res, err := k.load(changelog.ValidateOptions{})
	if err != nil {
		return nil, err
	}

	if err := res.Doc.Release(name, link, k.Now()); err != nil {
		return nil, err
	}
	if err := k.write(res.Doc); err != nil {
		return nil, err
	}
	return &Report{Repairs: res.Repairs, Wrote: true}, nil
}

// Yank marks a released version as withdrawn.
func (k *Keeper) Yank(name string) (*Report, error) {
	res, err := k.load(changelog.ValidateOptions{})
	if err != nil {
		return nil, err
	}

	if err := res.Doc.Yank(name); err != nil {
		return nil, err
	}
	if err := k.write(res.Doc); err != nil {
		return nil, err
	}
	return &Report{Repairs: res.Repairs, Wrote: true}, nil
}

// Export writes the validated changelog as YAML. The file itself is not
// touched even when validation repaired the in-memory document.
func (k *Keeper) Export(w io.Writer) error {
	res, err := k.load(changelog.ValidateOptions{})
	if err != nil {
		return err
	}
	return changelog.ExportYAML(res.Doc, w)
}

// load reads, parses, and validates the changelog file. The validation
// source is always the raw file text so formatting drift is reported.
func (k *Keeper) load(opts changelog.ValidateOptions) (*changelog.Result, error) {
	data, err := os.ReadFile(k.File)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewIOError(
				fmt.Sprintf("changelog %s does not exist", k.File),
				"Run 'clkpr create' to start one",
			)
		}
		return nil, fmt.Errorf("reading %s: %w", k.File, err)
	}

	doc, err := changelog.Parse(string(data))
	if err != nil {
		return nil, err
	}

	opts.Source = string(data)
	return changelog.Validate(doc, opts)
}

func (k *Keeper) write(doc *changelog.Document) error {
	if err := os.WriteFile(k.File, []byte(changelog.Render(doc)), fileMode); err != nil {
		return fmt.Errorf("writing %s: %w", k.File, err)
	}
	return nil
}
