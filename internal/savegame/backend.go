package savegame

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Backend stores raw save documents by name.
// Get returns ErrNotFound (possibly wrapped) when the name is unknown.
type Backend interface {
	Put(name string, doc []byte) error
	Get(name string) ([]byte, error)
	Delete(name string) error
	List() ([]Entry, error)
}

// Entry describes one stored save.
type Entry struct {
	Name      string
	UpdatedAt time.Time
}

const saveExt = ".yaml"

// DirBackend keeps one YAML file per save in a directory.
type DirBackend struct {
	dir string
}

// NewDirBackend creates the save directory if needed.
func NewDirBackend(dir string) (*DirBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("savegame: cannot create directory %s: %w", dir, err)
	}
	return &DirBackend{dir: dir}, nil
}

// Dir returns the directory holding the save files.
func (b *DirBackend) Dir() string {
	return b.dir
}

func (b *DirBackend) path(name string) string {
	return filepath.Join(b.dir, name+saveExt)
}

// Put writes the document, replacing any existing save of that name.
func (b *DirBackend) Put(name string, doc []byte) error {
	if err := os.WriteFile(b.path(name), doc, 0o644); err != nil {
		return fmt.Errorf("savegame: cannot write %q: %w", name, err)
	}
	return nil
}

// Get reads the document saved under name.
func (b *DirBackend) Get(name string) ([]byte, error) {
	data, err := os.ReadFile(b.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("savegame: cannot read %q: %w", name, err)
	}
	return data, nil
}

// Delete removes the save file.
func (b *DirBackend) Delete(name string) error {
	err := os.Remove(b.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("savegame: cannot delete %q: %w", name, err)
	}
	return nil
}

// List returns every save in the directory, newest first.
func (b *DirBackend) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(b.dir)
	if err != nil {
		return nil, fmt.Errorf("savegame: cannot read directory %s: %w", b.dir, err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), saveExt) {
			continue
		}
		e := Entry{Name: strings.TrimSuffix(de.Name(), saveExt)}
		if info, err := de.Info(); err == nil {
			e.UpdatedAt = info.ModTime()
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].UpdatedAt.Equal(entries[j].UpdatedAt) {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].UpdatedAt.After(entries[j].UpdatedAt)
	})
	return entries, nil
}

var _ Backend = (*DirBackend)(nil)
