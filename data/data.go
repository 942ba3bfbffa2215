package data

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
)

// ErrUnknownSpecies is returned when a species name is not in the catalog.
var ErrUnknownSpecies = errors.New("unknown species")

//go:embed pokedex.json
var pokedexJSON []byte

// Stats holds one value per Generation I stat.
type Stats struct {
	HP      int `json:"hp"`
	Attack  int `json:"atk"`
	Defense int `json:"def"`
	Special int `json:"spc"`
	Speed   int `json:"spe"`
}

// Species is the immutable catalog entry a combatant is built from.
type Species struct {
	Name  string
	Types Types
	Base  Stats
}

type rawSpecies struct {
	Name      string   `json:"name"`
	Types     []string `json:"types"`
	BaseStats Stats    `json:"baseStats"`
}

var pokedex map[string]*Species

func init() {
	db, err := decodePokedex(bytes.NewReader(pokedexJSON))
	if err != nil {
		panic(fmt.Sprintf("embedded pokedex: %v", err))
	}
	pokedex = db
}

// LoadPokedex replaces the catalog with the JSON file at path.
func LoadPokedex(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	db, err := decodePokedex(file)
	if err != nil {
		return fmt.Errorf("load pokedex %s: %w", path, err)
	}
	pokedex = db
	return nil
}

func decodePokedex(r io.Reader) (map[string]*Species, error) {
	var rawData map[string]rawSpecies
	if err := json.NewDecoder(r).Decode(&rawData); err != nil {
		return nil, err
	}

	db := make(map[string]*Species, len(rawData))
	for id, p := range rawData {
		if len(p.Types) == 0 || len(p.Types) > 2 {
			return nil, fmt.Errorf("species %s: want 1 or 2 types, got %d", id, len(p.Types))
		}
		primary, err := ParseType(p.Types[0])
		if err != nil {
			return nil, fmt.Errorf("species %s: %w", id, err)
		}
		types := Mono(primary)
		if len(p.Types) == 2 {
			secondary, err := ParseType(p.Types[1])
			if err != nil {
				return nil, fmt.Errorf("species %s: %w", id, err)
			}
			types = Dual(primary, secondary)
		}
		db[nameKey(p.Name)] = &Species{Name: p.Name, Types: types, Base: p.BaseStats}
	}
	return db, nil
}

// LookupSpecies finds a species by name, ignoring case, spaces and dashes.
func LookupSpecies(name string) (*Species, error) {
	if s, ok := pokedex[nameKey(name)]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("species %q: %w", name, ErrUnknownSpecies)
}

// AllSpecies returns the catalog sorted by name.
func AllSpecies() []*Species {
	out := make([]*Species, 0, len(pokedex))
	for _, s := range pokedex {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
