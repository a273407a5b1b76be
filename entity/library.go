// Package entity - spawnable definitions loaded from the entity library file.
package entity

import (
	"fmt"
	"os"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// Definition describes a spawnable entity type: which variant to build and
// the stats it starts with.
type Definition struct {
	ID     string  `yaml:"id"`
	Kind   Kind    `yaml:"kind"`
	Name   string  `yaml:"name"`
	Sprite string  `yaml:"sprite"`
	Speed  float64 `yaml:"speed"` // world pixels per second
	HP     int     `yaml:"hp"`
}

type libraryFile struct {
	Name        string       `yaml:"name"`
	Definitions []Definition `yaml:"definitions"`
}

// Library holds all entity definitions for a game and instantiates live
// entities from specs.
type Library struct {
	Name string

	defs   map[string]*Definition
	nextID atomic.Uint64
}

// defaultPlayer backs maps that never define their own player entry.
var defaultPlayer = Definition{
	ID:     "player",
	Kind:   KindPlayer,
	Sprite: "player",
	Speed:  160,
}

// LoadLibrary loads entity definitions from a YAML file and applies
// per-kind defaults.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read entity library %s: %w", path, err)
	}

	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse entity library %s: %w", path, err)
	}

	lib := &Library{
		Name: file.Name,
		defs: make(map[string]*Definition, len(file.Definitions)),
	}
	for i := range file.Definitions {
		def := &file.Definitions[i]
		if def.ID == "" {
			return nil, fmt.Errorf("entity library %s: definition %d has no id", path, i)
		}
		if _, exists := lib.defs[def.ID]; exists {
			return nil, fmt.Errorf("entity library %s: duplicate definition %q", path, def.ID)
		}
		applyDefaults(def)
		lib.defs[def.ID] = def
	}
	return lib, nil
}

func applyDefaults(def *Definition) {
	if def.Kind == "" {
		def.Kind = KindDecoration
	}
	if def.Sprite == "" {
		def.Sprite = def.ID
	}
	if def.Speed == 0 {
		switch def.Kind {
		case KindPlayer:
			def.Speed = 160
		case KindEnemy:
			def.Speed = 48
		}
	}
	if def.HP == 0 && def.Kind == KindEnemy {
		def.HP = 10
	}
}

// Known reports whether a definition ID exists in the library. The player
// definition always resolves; see Spawn.
func (l *Library) Known(id string) bool {
	if _, ok := l.defs[id]; ok {
		return true
	}
	return id == defaultPlayer.ID
}

// Get returns a definition by ID, or nil if not found.
func (l *Library) Get(id string) *Definition {
	return l.defs[id]
}

// Spawn instantiates the live entity a spec describes. Each call produces a
// fresh entity with a unique ID; the spec is not retained.
func (l *Library) Spawn(spec Spec) (Entity, error) {
	def := l.defs[spec.Def]
	if def == nil {
		if spec.Def == defaultPlayer.ID && spec.Kind == KindPlayer {
			def = &defaultPlayer
		} else {
			return nil, fmt.Errorf("unknown entity definition %q", spec.Def)
		}
	}
	if def.Kind != spec.Kind {
		return nil, fmt.Errorf("entity definition %q is kind %s, spec says %s", spec.Def, def.Kind, spec.Kind)
	}

	id := fmt.Sprintf("%s#%d", def.ID, l.nextID.Add(1))

	// base holds a mutex, so each variant constructs its own in place
	// rather than copying a shared value.
	switch def.Kind {
	case KindDecoration:
		e := &Decoration{}
		e.init(id, def, spec.Pos)
		return e, nil
	case KindEnemy:
		e := &Enemy{Speed: def.Speed, HP: def.HP, spawn: spec.Pos}
		e.init(id, def, spec.Pos)
		return e, nil
	case KindPlayer:
		e := &Player{Speed: def.Speed}
		e.init(id, def, spec.Pos)
		return e, nil
	case KindOther:
		e := &Prop{}
		e.init(id, def, spec.Pos)
		return e, nil
	default:
		return nil, fmt.Errorf("entity definition %q has unknown kind %q", spec.Def, def.Kind)
	}
}
