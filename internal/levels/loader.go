package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed data/*.yaml
var builtinFS embed.FS

// DefaultLevelID is the level played when none is requested.
const DefaultLevelID = "level01"

// Builtin returns the levels shipped inside the binary.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtinFS, "data")
	if err != nil {
		// data/ is embedded at build time
		panic(fmt.Sprintf("levels: embedded data missing: %v", err))
	}
	return sub
}

// Loader handles loading levels from a file tree.
type Loader struct {
	Root fs.FS
}

// NewLoader creates a new level loader over root.
func NewLoader(root fs.FS) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse are skipped. Levels are sorted by ID.
func (l *Loader) LoadAll() ([]*Level, error) {
	var lvls []*Level

	err := fs.WalkDir(l.Root, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}

		lvl, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		lvls = append(lvls, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking level tree: %w", err)
	}

	sort.Slice(lvls, func(i, j int) bool {
		return lvls[i].ID < lvls[j].ID
	})

	return lvls, nil
}

// LoadFile loads a single level file. A level without an ID takes the file
// name without extension.
func (l *Loader) LoadFile(p string) (*Level, error) {
	data, err := fs.ReadFile(l.Root, p)
	if err != nil {
		return nil, fmt.Errorf("levels: reading %s: %w", p, err)
	}

	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", p, err)
	}

	if lvl.ID == "" {
		lvl.ID = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}
	lvl.FilePath = p

	return lvl, nil
}

// LoadByID loads a specific level by ID. Unlike LoadAll it reports parse
// errors of the matching file instead of skipping it.
func (l *Loader) LoadByID(id string) (*Level, error) {
	for _, ext := range FormatExtensions() {
		p := id + ext
		if _, err := fs.Stat(l.Root, p); err == nil {
			return l.LoadFile(p)
		}
	}

	lvls, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, lvl := range lvls {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return nil, fmt.Errorf("levels: level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	lvls, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(lvls))
	for i, lvl := range lvls {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
