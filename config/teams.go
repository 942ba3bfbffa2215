package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gen1-battle/data"
	"gen1-battle/game"
)

// ErrInvalidTeams is returned for a team sheet that cannot be played.
var ErrInvalidTeams = errors.New("invalid team sheet")

// defaultLevel is used for members whose level is omitted.
const defaultLevel = 50

//go:embed teams.yaml
var defaultTeams []byte

// Sheet is a YAML team sheet with exactly two teams.
type Sheet struct {
	Teams []TeamSheet `yaml:"teams"`
}

type TeamSheet struct {
	Name    string        `yaml:"name"`
	Members []MemberSheet `yaml:"members"`
}

type MemberSheet struct {
	Species string     `yaml:"species"`
	Level   int        `yaml:"level"`
	IVs     StatsSheet `yaml:"ivs"`
	EVs     StatsSheet `yaml:"evs"`
	Moves   []string   `yaml:"moves"`
}

type StatsSheet struct {
	HP      int `yaml:"hp"`
	Attack  int `yaml:"atk"`
	Defense int `yaml:"def"`
	Special int `yaml:"spc"`
	Speed   int `yaml:"spe"`
}

func (s StatsSheet) stats() data.Stats {
	return data.Stats{HP: s.HP, Attack: s.Attack, Defense: s.Defense, Special: s.Special, Speed: s.Speed}
}

// DefaultTeams returns the built-in sample sheet.
func DefaultTeams() (*Sheet, error) {
	return ParseTeams(defaultTeams)
}

// LoadTeams reads and validates the sheet at path.
func LoadTeams(path string) (*Sheet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read team sheet: %w", err)
	}
	return ParseTeams(raw)
}

// ParseTeams decodes and validates a sheet.
func ParseTeams(raw []byte) (*Sheet, error) {
	var sheet Sheet
	if err := yaml.Unmarshal(raw, &sheet); err != nil {
		return nil, fmt.Errorf("decode team sheet: %v: %w", err, ErrInvalidTeams)
	}
	if len(sheet.Teams) != 2 {
		return nil, fmt.Errorf("sheet has %d teams, want 2: %w", len(sheet.Teams), ErrInvalidTeams)
	}
	for i, team := range sheet.Teams {
		if team.Name == "" {
			sheet.Teams[i].Name = fmt.Sprintf("Player %d", i+1)
		}
		if len(team.Members) == 0 || len(team.Members) > game.MaxTeamSize {
			return nil, fmt.Errorf("team %d has %d members: %w", i+1, len(team.Members), ErrInvalidTeams)
		}
		for j, m := range team.Members {
			if _, err := data.LookupSpecies(m.Species); err != nil {
				return nil, fmt.Errorf("team %d member %d: %v: %w", i+1, j+1, err, ErrInvalidTeams)
			}
			for _, name := range m.Moves {
				if _, err := data.MoveByName(name); err != nil {
					return nil, fmt.Errorf("team %d member %d: %v: %w", i+1, j+1, err, ErrInvalidTeams)
				}
			}
		}
	}
	return &sheet, nil
}

// Names returns the two player names.
func (s *Sheet) Names() (string, string) {
	return s.Teams[0].Name, s.Teams[1].Name
}

// BuildTeams turns a validated sheet into fresh combatants.
func BuildTeams(s *Sheet) ([2][]*game.Combatant, error) {
	var teams [2][]*game.Combatant
	for i, team := range s.Teams[:2] {
		for j, m := range team.Members {
			c, err := buildMember(m)
			if err != nil {
				return teams, fmt.Errorf("team %d member %d: %w", i+1, j+1, err)
			}
			teams[i] = append(teams[i], c)
		}
	}
	return teams, nil
}

func buildMember(m MemberSheet) (*game.Combatant, error) {
	species, err := data.LookupSpecies(m.Species)
	if err != nil {
		return nil, err
	}
	ids := make([]data.MoveID, 0, len(m.Moves))
	for _, name := range m.Moves {
		mv, err := data.MoveByName(name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, mv.ID)
	}
	level := m.Level
	if level == 0 {
		level = defaultLevel
	}
	return game.NewCombatant(species, level, m.IVs.stats(), m.EVs.stats(), ids)
}
