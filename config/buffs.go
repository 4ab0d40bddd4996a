package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed buffs.yaml
var defaultBuffTable []byte

// Attribute names a character resource pool a buff can modify.
type Attribute string

const (
	AttrEndurance Attribute = "endurance"
	AttrInfluence Attribute = "influence"
	AttrResolve   Attribute = "resolve"
	AttrStrength  Attribute = "strength"
)

// BuffPhase is one half of a buff's lifecycle.
type BuffPhase struct {
	Ticks  int               `yaml:"ticks"`
	Deltas map[Attribute]int `yaml:"deltas"`
}

// BuffDef is a table entry describing a named buff.
type BuffDef struct {
	Name         string    `yaml:"name"`
	Category     string    `yaml:"category"`
	Images       int       `yaml:"images"`
	ImageTrigger int       `yaml:"image_trigger"`
	Buff         BuffPhase `yaml:"buff"`
	Debuff       BuffPhase `yaml:"debuff"`
}

type buffListFile struct {
	Buffs []BuffDef `yaml:"buffs"`
}

// BuffTable holds buff definitions indexed by name.
type BuffTable struct {
	defs map[string]*BuffDef
}

// ParseBuffTable decodes a YAML buff list.
func ParseBuffTable(data []byte) (*BuffTable, error) {
	var f buffListFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse buff table: %w", err)
	}
	t := &BuffTable{defs: make(map[string]*BuffDef, len(f.Buffs))}
	for i := range f.Buffs {
		def := &f.Buffs[i]
		if def.Name == "" {
			return nil, fmt.Errorf("parse buff table: entry %d has no name", i)
		}
		if def.Buff.Ticks < 0 || def.Debuff.Ticks < 0 {
			return nil, fmt.Errorf("parse buff table: %q has negative duration", def.Name)
		}
		for _, phase := range []BuffPhase{def.Buff, def.Debuff} {
			for attr := range phase.Deltas {
				switch attr {
				case AttrEndurance, AttrInfluence, AttrResolve, AttrStrength:
				default:
					return nil, fmt.Errorf("parse buff table: %q modifies unknown attribute %q", def.Name, attr)
				}
			}
		}
		t.defs[def.Name] = def
	}
	return t, nil
}

// DefaultBuffTable returns the table compiled into the binary.
func DefaultBuffTable() (*BuffTable, error) {
	return ParseBuffTable(defaultBuffTable)
}

// LoadBuffTable reads a buff table from a YAML file.
func LoadBuffTable(path string) (*BuffTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read buff table %s: %w", path, err)
	}
	return ParseBuffTable(data)
}

// Get returns the definition for name.
func (t *BuffTable) Get(name string) (*BuffDef, bool) {
	def, ok := t.defs[name]
	return def, ok
}

// Count returns the number of definitions.
func (t *BuffTable) Count() int {
	return len(t.defs)
}
