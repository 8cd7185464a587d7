// Package levels provides the bird decks and campaign levels of the game and
// loads level files. This package depends on sim but sim does not depend on
// levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/slingshot/internal/sim"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Level is a parsed level file.
type Level struct {
	sim.Level
	DeckName string
	FilePath string
}

// Loader loads level files from a file system.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: root}
}

// NewFSLoader creates a loader over an arbitrary file system.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, root: "."}
}

// Builtin returns a loader for the embedded campaign.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("levels: builtin directory missing: %v", err))
	}
	return &Loader{fsys: sub, root: "builtin"}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file relative to the loader root.
func (l *Loader) LoadFile(name string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", name, err)
	}

	lvl, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", name, err)
	}
	lvl.FilePath = path.Join(l.root, name)
	return lvl, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return Find(levels, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Campaign returns the builtin levels merged with the levels found in
// extraDir (if not empty). A level in extraDir replaces a builtin level
// with the same ID.
func Campaign(extraDir string) ([]Level, error) {
	levels, err := Builtin().LoadAll()
	if err != nil {
		return nil, err
	}
	if extraDir == "" {
		return levels, nil
	}

	extra, err := NewLoader(extraDir).LoadAll()
	if err != nil {
		return nil, err
	}
	for _, lvl := range extra {
		if i := slices.IndexFunc(levels, func(l Level) bool { return l.ID == lvl.ID }); i >= 0 {
			levels[i] = lvl
		} else {
			levels = append(levels, lvl)
		}
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// Find returns the level with the given ID.
func Find(levels []Level, id string) (Level, error) {
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// Index returns the position of the level with the given ID, or -1.
func Index(levels []Level, id string) int {
	return slices.IndexFunc(levels, func(l Level) bool { return l.ID == id })
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(FormatExtensions(), ext)
}
