package ebuild

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/DimShadoWWW/npm2ebuild/pkg/errors"
)

// FileSink writes recipes below Root.
type FileSink struct {
	Root string
}

// Exists reports whether a recipe is already present at p (relative to Root).
func (s FileSink) Exists(p string) (bool, error) {
	return exists(s.Root, p)
}

// Write stores content at p, creating parent directories as needed.
func (s FileSink) Write(p, content string) error {
	full := filepath.Join(s.Root, filepath.FromSlash(p))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeRecipeWrite, err, "create directory for %s", p)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeRecipeWrite, err, "write %s", p)
	}
	return nil
}

// DryRunSink checks existence against Root like FileSink but prints recipes
// to Out instead of writing them. A path it has printed counts as existing
// afterwards, so each recipe is printed at most once per run.
type DryRunSink struct {
	Root string
	Out  io.Writer

	printed map[string]bool
}

// NewDryRunSink returns a DryRunSink reading from root and printing to out.
func NewDryRunSink(root string, out io.Writer) *DryRunSink {
	return &DryRunSink{Root: root, Out: out}
}

// Exists reports whether a recipe is already present at p (relative to Root)
// or was printed earlier by this sink.
func (s *DryRunSink) Exists(p string) (bool, error) {
	if s.printed[p] {
		return true, nil
	}
	return exists(s.Root, p)
}

// Write prints content under a header naming p.
func (s *DryRunSink) Write(p, content string) error {
	if _, err := fmt.Fprintf(s.Out, "--- %s ---\n%s", p, content); err != nil {
		return errors.Wrap(errors.ErrCodeRecipeWrite, err, "print %s", p)
	}
	if s.printed == nil {
		s.printed = make(map[string]bool)
	}
	s.printed[p] = true
	return nil
}

func exists(root, p string) (bool, error) {
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(p)))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrap(errors.ErrCodeRecipeWrite, err, "stat %s", p)
}
