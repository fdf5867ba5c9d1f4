package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Species holds static data for one demo entity archetype loaded from YAML.
type Species struct {
	Name     string  `yaml:"name"`
	Kind     string  `yaml:"kind"` // walker, chaser, spawner
	Glyph    string  `yaml:"glyph"`
	Color    string  `yaml:"color"`
	Speed    float64 `yaml:"speed"`
	Behavior string  `yaml:"behavior"` // Lua steering function; empty = built-in
	Lifetime float64 `yaml:"lifetime"` // seconds before culling; 0 = immortal

	// Spawner-kind fields.
	SpawnSpecies  string  `yaml:"spawn_species"`
	SpawnInterval float64 `yaml:"spawn_interval"` // seconds between spawns
}

// SpawnEntry defines how many of a species to place at boot.
type SpawnEntry struct {
	Species string `yaml:"species"`
	Count   int    `yaml:"count"`
}

type speciesFile struct {
	Species []Species    `yaml:"species"`
	Spawns  []SpawnEntry `yaml:"spawns"`
}

// SpeciesTable holds all species indexed by name, plus the boot spawn list.
type SpeciesTable struct {
	byName map[string]*Species
	spawns []SpawnEntry
}

// LoadSpeciesTable loads species and spawn definitions from a YAML file.
func LoadSpeciesTable(path string) (*SpeciesTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read species file: %w", err)
	}
	var f speciesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse species file: %w", err)
	}

	t := &SpeciesTable{
		byName: make(map[string]*Species, len(f.Species)),
		spawns: f.Spawns,
	}
	for i := range f.Species {
		sp := &f.Species[i]
		if sp.Name == "" {
			return nil, fmt.Errorf("species entry %d has no name", i)
		}
		if _, dup := t.byName[sp.Name]; dup {
			return nil, fmt.Errorf("duplicate species %q", sp.Name)
		}
		t.byName[sp.Name] = sp
	}
	for _, s := range t.spawns {
		if _, ok := t.byName[s.Species]; !ok {
			return nil, fmt.Errorf("spawn entry references unknown species %q", s.Species)
		}
	}
	for _, sp := range t.byName {
		if sp.SpawnSpecies != "" {
			if _, ok := t.byName[sp.SpawnSpecies]; !ok {
				return nil, fmt.Errorf("species %q spawns unknown species %q", sp.Name, sp.SpawnSpecies)
			}
		}
	}
	return t, nil
}

// Get returns a species by name.
func (t *SpeciesTable) Get(name string) (*Species, bool) {
	sp, ok := t.byName[name]
	return sp, ok
}

// Count returns the number of loaded species.
func (t *SpeciesTable) Count() int { return len(t.byName) }

// Spawns returns the boot spawn list.
func (t *SpeciesTable) Spawns() []SpawnEntry { return t.spawns }
