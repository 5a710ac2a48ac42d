package panel

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-plank/plank/pkg/errors"
)

// Geometry is a panel's persisted placement in host coordinates.
type Geometry struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GeometryStore persists panel placement across host sessions, keyed by a
// stable panel identifier.
type GeometryStore interface {
	Load(id string) (Geometry, bool)
	Save(id string, g Geometry) error
}

// FileStore is a GeometryStore backed by a single YAML file holding a map
// from panel id to geometry. Every save rewrites the file; panels move
// rarely enough that write batching is not worth the staleness risk.
type FileStore struct {
	path    string
	entries map[string]Geometry
}

// OpenFileStore reads the store file at path, creating an empty store when
// the file does not exist yet. A malformed file is reported and treated as
// empty rather than refused.
func OpenFileStore(path string) *FileStore {
	s := &FileStore{path: path, entries: make(map[string]Geometry)}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			errors.Report(errors.New("panel.OpenFileStore", errors.KindStore, err))
		}
		return s
	}
	if err := yaml.Unmarshal(data, &s.entries); err != nil {
		errors.Report(errors.New("panel.OpenFileStore", errors.KindStore,
			fmt.Errorf("decode %s: %w", path, err)))
		s.entries = make(map[string]Geometry)
	}
	return s
}

// Load returns the stored geometry for id.
func (s *FileStore) Load(id string) (Geometry, bool) {
	g, ok := s.entries[id]
	return g, ok
}

// Save records the geometry for id and rewrites the store file.
func (s *FileStore) Save(id string, g Geometry) error {
	s.entries[id] = g
	data, err := yaml.Marshal(s.entries)
	if err != nil {
		return errors.New("panel.Save", errors.KindStore, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.New("panel.Save", errors.KindStore, err)
	}
	return nil
}
