package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.TourLoader over a directory of YAML (or JSON) files,
// one tour per file. The file name without extension is the default tour name.
// Files are read on every call so edits show up without a restart.
type Loader struct {
	Dir string
}

// NewLoader creates a loader for dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

var tourExtensions = []string{".yaml", ".yml", ".json"}

// GetTour loads and validates the named tour.
func (l *Loader) GetTour(name string) (domain.TourDefinition, error) {
	tours, err := l.loadAll()
	if err != nil {
		return domain.TourDefinition{}, err
	}
	t, ok := tours[name]
	if !ok {
		return domain.TourDefinition{}, fmt.Errorf("%w: %s", domain.ErrTourNotFound, name)
	}
	return t, nil
}

// ListTours returns the names of all tours in the directory.
func (l *Loader) ListTours() ([]string, error) {
	tours, err := l.loadAll()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tours))
	for name := range tours {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (l *Loader) loadAll() (map[string]domain.TourDefinition, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read tours directory: %w", err)
	}

	tours := make(map[string]domain.TourDefinition)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !hasExt(ext) {
			continue
		}
		path := filepath.Join(l.Dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		t, err := ParseTour(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if t.Name == "" {
			t.Name = strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if _, dup := tours[t.Name]; dup {
			return nil, fmt.Errorf("%s: duplicate tour name %q", path, t.Name)
		}
		tours[t.Name] = t
	}
	return tours, nil
}

// ParseTour decodes one tour document. YAML is a superset of JSON, so both work.
// The document is decoded into generic values first and then mapped onto the
// domain types, which lets authors write scalar lists loosely
// (e.g. `buttons: next` for a single button).
func ParseTour(data []byte) (domain.TourDefinition, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.TourDefinition{}, fmt.Errorf("failed to parse tour: %w", err)
	}
	if raw == nil {
		return domain.TourDefinition{}, fmt.Errorf("%w: empty document", domain.ErrInvalidTour)
	}

	var t domain.TourDefinition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &t,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return domain.TourDefinition{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return domain.TourDefinition{}, fmt.Errorf("%w: %v", domain.ErrInvalidTour, err)
	}
	return t, nil
}

func hasExt(ext string) bool {
	for _, e := range tourExtensions {
		if e == ext {
			return true
		}
	}
	return false
}
