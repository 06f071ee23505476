package savegame

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Store saves and loads records through a Backend.
type Store struct {
	backend Backend
	names   *NameGenerator
	logger  *log.Logger
}

// NewStore creates a store. A nil logger discards log output.
func NewStore(backend Backend, names *NameGenerator, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{backend: backend, names: names, logger: logger}
}

// ValidateName reports whether name can address a save.
// Names are used verbatim, so anything that could escape the save
// directory is refused.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case strings.ContainsAny(name, `/\`), strings.Contains(name, ".."):
		return fmt.Errorf("%w: %q contains a path element", ErrInvalidName, name)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: %q starts with a dot", ErrInvalidName, name)
	}
	return nil
}

// Save persists rec under name and returns the name used.
// An empty name draws a generated one; an existing save with the same name
// is overwritten.
func (s *Store) Save(rec Record, name string) (string, error) {
	if name == "" {
		name = s.names.Generate()
	}
	if err := ValidateName(name); err != nil {
		return "", err
	}

	rec.Name = name
	data, err := Encode(rec)
	if err != nil {
		return "", err
	}
	if err := s.backend.Put(name, data); err != nil {
		s.logger.Error("save failed", "name", name, "error", err)
		return "", err
	}

	s.logger.Info("game saved", "name", name, "ships", len(rec.Ships))
	return name, nil
}

// Load reads the record saved under name.
func (s *Store) Load(name string) (Record, error) {
	if err := ValidateName(name); err != nil {
		return Record{}, err
	}

	data, err := s.backend.Get(name)
	if err != nil {
		return Record{}, err
	}

	rec, err := Decode(data)
	if err != nil {
		s.logger.Warn("corrupt save", "name", name, "error", err)
		return Record{}, fmt.Errorf("%q: %w", name, err)
	}

	s.logger.Info("game loaded", "name", name)
	return rec, nil
}

// List returns the stored saves.
func (s *Store) List() ([]Entry, error) {
	return s.backend.List()
}

// Delete removes a save.
func (s *Store) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := s.backend.Delete(name); err != nil {
		return err
	}
	s.logger.Info("save deleted", "name", name)
	return nil
}
