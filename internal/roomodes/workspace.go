package roomodes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/ruminaider/mode-manager/internal/session"
)

// Library holds full mode definitions keyed by slug. It is the bundled
// .roomodes that ships next to the catalogs.
type Library map[string]json.RawMessage

// LoadLibrary reads a library from a .roomodes file. A missing file yields
// an empty library.
func LoadLibrary(path string) (Library, error) {
	f, err := Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Library{}, nil
		}
		return nil, err
	}
	return Library(f.Definitions()), nil
}

// Slugs returns the library's slugs sorted.
func (l Library) Slugs() []string {
	out := make([]string, 0, len(l))
	for slug := range l {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

// Workspace is the .roomodes file of one workspace. It loads the persisted
// selection and writes committed ones.
type Workspace struct {
	Path    string
	Library Library
}

var (
	_ session.PersistedSelection = (*Workspace)(nil)
	_ session.SelectionSink      = (*Workspace)(nil)
)

// NewWorkspace returns the workspace rooted at dir.
func NewWorkspace(dir string, lib Library) *Workspace {
	return &Workspace{Path: filepath.Join(dir, FileName), Library: lib}
}

func (w *Workspace) read() (File, bool, error) {
	f, err := Read(w.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return File{}, false, nil
		}
		return File{}, false, err
	}
	return f, true, nil
}

// Load returns the slugs listed in the workspace file, in file order. A
// missing file means nothing is selected.
func (w *Workspace) Load(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, _, err := w.read()
	if err != nil {
		return nil, err
	}
	return f.Slugs(), nil
}

// Apply rewrites customModes to hold exactly the given slugs, sorted by
// Order. Each definition is taken from the current workspace file, then the
// library, and otherwise reduced to {"slug": ...}. Other top-level keys are
// preserved. The file is replaced atomically.
func (w *Workspace) Apply(ctx context.Context, sel []session.OrderedSlug) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cur, _, err := w.read()
	if err != nil {
		return err
	}
	existing := cur.Definitions()

	ordered := append([]session.OrderedSlug(nil), sel...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	next := File{Extra: cur.Extra}
	seen := make(map[string]bool, len(ordered))
	for _, o := range ordered {
		if o.Slug == "" || seen[o.Slug] {
			continue
		}
		seen[o.Slug] = true
		m := Mode{Slug: o.Slug}
		if raw, ok := existing[o.Slug]; ok {
			m.Raw = raw
		} else if raw, ok := w.Library[o.Slug]; ok {
			m.Raw = raw
		}
		next.CustomModes = append(next.CustomModes, m)
	}

	data, err := Marshal(next)
	if err != nil {
		return err
	}
	return writeAtomic(w.Path, data)
}

// writeAtomic writes data to a temp file in the target directory and renames
// it over path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", FileName, err)
	}
	tmp, err := os.CreateTemp(dir, FileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", FileName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", FileName, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", FileName, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", FileName, err)
	}
	return nil
}
