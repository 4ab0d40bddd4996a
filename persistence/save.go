// Package persistence stores character snapshots between sessions.
package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SaveVersion is written into every snapshot. Snapshots from another version
// are rejected.
const SaveVersion = 1

var (
	ErrNoSave      = errors.New("no save")
	ErrSaveVersion = errors.New("unsupported save version")
)

// PoolSave is one resource pool. Base is Max without buffs and Modifier is
// the sum of deltas from running buffs.
type PoolSave struct {
	Current  int `json:"current"`
	Max      int `json:"max"`
	Base     int `json:"base,omitempty"`
	Modifier int `json:"modifier"`
}

// BuffSave is the progress of one running buff.
type BuffSave struct {
	Name      string `json:"name"`
	Phase     int    `json:"phase"`
	Remaining int    `json:"remaining"`
}

// CharacterSave is everything needed to put a character back where it was.
type CharacterSave struct {
	Version   int        `json:"version"`
	Name      string     `json:"name"`
	Level     int        `json:"level"`
	SubLevel  int        `json:"subLevel"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	Direction int        `json:"direction"`
	Endurance PoolSave   `json:"endurance"`
	Influence PoolSave   `json:"influence"`
	Resolve   PoolSave   `json:"resolve"`
	Strength  PoolSave   `json:"strength"`
	Buffs     []BuffSave `json:"buffs,omitempty"`
}

// Store keeps snapshots by slot name.
type Store interface {
	Save(slot string, s *CharacterSave) error
	Load(slot string) (*CharacterSave, error)
	Delete(slot string) error
}

func encode(s *CharacterSave) ([]byte, error) {
	v := *s
	v.Version = SaveVersion
	data, err := json.Marshal(&v)
	if err != nil {
		return nil, fmt.Errorf("encode save: %w", err)
	}
	return data, nil
}

func decode(slot string, data []byte) (*CharacterSave, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("load %q: %w", slot, ErrNoSave)
	}
	var s CharacterSave
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("load %q: %w", slot, err)
	}
	if s.Version != SaveVersion {
		return nil, fmt.Errorf("load %q: version %d: %w", slot, s.Version, ErrSaveVersion)
	}
	return &s, nil
}
