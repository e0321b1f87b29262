package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ImpositionPreset is a named, reusable imposition configuration, saved
// independently of any particular job. Field types mirror
// internal/imposition.Spec but presets store the raw JSON blob so this
// package has no import-cycle dependency on internal/imposition; callers
// unmarshal Config into imposition.Spec themselves.
type ImpositionPreset struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Config json.RawMessage `json:"config"`
}

// JobSpecPreset is a named, reusable cost job specification.
type JobSpecPreset struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Config json.RawMessage `json:"config"`
}

// PresetStore holds saved imposition and cost job presets, the same way
// SlabCut's model.TemplateStore/model.Inventory hold saved project and
// tooling presets.
type PresetStore struct {
	ImpositionPresets []ImpositionPreset `json:"imposition_presets"`
	JobSpecPresets    []JobSpecPreset    `json:"job_spec_presets"`
}

// NewPresetStore returns an empty preset store.
func NewPresetStore() PresetStore {
	return PresetStore{
		ImpositionPresets: []ImpositionPreset{},
		JobSpecPresets:    []JobSpecPreset{},
	}
}

// AddImposition appends a new named imposition preset, generating its ID.
func (s *PresetStore) AddImposition(name string, config json.RawMessage) ImpositionPreset {
	p := ImpositionPreset{ID: uuid.New().String()[:8], Name: name, Config: config}
	s.ImpositionPresets = append(s.ImpositionPresets, p)
	return p
}

// AddJobSpec appends a new named cost job preset, generating its ID.
func (s *PresetStore) AddJobSpec(name string, config json.RawMessage) JobSpecPreset {
	p := JobSpecPreset{ID: uuid.New().String()[:8], Name: name, Config: config}
	s.JobSpecPresets = append(s.JobSpecPresets, p)
	return p
}

// FindImpositionByName returns a pointer to the first matching preset, or nil.
func (s *PresetStore) FindImpositionByName(name string) *ImpositionPreset {
	for i := range s.ImpositionPresets {
		if s.ImpositionPresets[i].Name == name {
			return &s.ImpositionPresets[i]
		}
	}
	return nil
}

// FindJobSpecByName returns a pointer to the first matching preset, or nil.
func (s *PresetStore) FindJobSpecByName(name string) *JobSpecPreset {
	for i := range s.JobSpecPresets {
		if s.JobSpecPresets[i].Name == name {
			return &s.JobSpecPresets[i]
		}
	}
	return nil
}

// DefaultPresetPath returns ~/.printcore/presets.json.
func DefaultPresetPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".printcore")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "presets.json"), nil
}

// SavePresets writes the preset store to path as indented JSON.
func SavePresets(path string, store PresetStore) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPresets reads a preset store from path. A missing file is not an
// error; it yields an empty store.
func LoadPresets(path string) (PresetStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewPresetStore(), nil
		}
		return PresetStore{}, err
	}
	var store PresetStore
	if err := json.Unmarshal(data, &store); err != nil {
		return PresetStore{}, err
	}
	if store.ImpositionPresets == nil {
		store.ImpositionPresets = []ImpositionPreset{}
	}
	if store.JobSpecPresets == nil {
		store.JobSpecPresets = []JobSpecPreset{}
	}
	return store, nil
}
