package data

import (
	"fmt"
	"os"
	"sort"

	"github.com/l1jgo/planter/internal/component"
	"gopkg.in/yaml.v3"
)

// Seed describes what a planted entity produces.
type Seed struct {
	Name     string
	Resource component.ResourceKind
	Amount   int
	Timeout  float64 // seconds per production cycle
	Repeat   bool
	Visual   string // sprite handle
}

type seedEntry struct {
	Name     string  `yaml:"name"`
	Resource string  `yaml:"resource"`
	Amount   int     `yaml:"amount"`
	Timeout  float64 `yaml:"timeout"`
	Repeat   bool    `yaml:"repeat"`
	Visual   string  `yaml:"visual"`
}

type seedListFile struct {
	Seeds []seedEntry `yaml:"seeds"`
}

// SeedTable holds all seed definitions indexed by name.
type SeedTable struct {
	seeds map[string]*Seed
}

// Get returns the seed with the given name, or nil if none defined.
func (t *SeedTable) Get(name string) *Seed {
	return t.seeds[name]
}

// Count returns the number of seeds.
func (t *SeedTable) Count() int {
	return len(t.seeds)
}

// Names returns the seed names sorted alphabetically.
func (t *SeedTable) Names() []string {
	names := make([]string, 0, len(t.seeds))
	for n := range t.seeds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LoadSeedTable loads seed definitions from a YAML file.
func LoadSeedTable(path string) (*SeedTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed list: %w", err)
	}
	return ParseSeedTable(raw)
}

// ParseSeedTable decodes and validates a YAML seed list.
func ParseSeedTable(raw []byte) (*SeedTable, error) {
	var f seedListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed list: %w", err)
	}
	t := &SeedTable{seeds: make(map[string]*Seed, len(f.Seeds))}
	for i, e := range f.Seeds {
		if e.Name == "" {
			return nil, fmt.Errorf("seed #%d: missing name", i)
		}
		if _, dup := t.seeds[e.Name]; dup {
			return nil, fmt.Errorf("seed %q: defined twice", e.Name)
		}
		kind, err := component.ParseResourceKind(e.Resource)
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w", e.Name, err)
		}
		if e.Timeout <= 0 {
			return nil, fmt.Errorf("seed %q: timeout must be positive, got %v", e.Name, e.Timeout)
		}
		t.seeds[e.Name] = &Seed{
			Name:     e.Name,
			Resource: kind,
			Amount:   e.Amount,
			Timeout:  e.Timeout,
			Repeat:   e.Repeat,
			Visual:   e.Visual,
		}
	}
	return t, nil
}
