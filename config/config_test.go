package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"gen1-battle/game"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Seed != 0 || cfg.MaxTurns != 200 || cfg.LogLevel != "info" || cfg.TeamsFile != "" || cfg.NoColor {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Level() != zerolog.InfoLevel {
		t.Fatalf("Level() = %v, want info", cfg.Level())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BATTLE_SEED", "42")
	t.Setenv("BATTLE_MAX_TURNS", "10")
	t.Setenv("BATTLE_LOG_LEVEL", "debug")
	t.Setenv("BATTLE_NO_COLOR", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Seed != 42 || cfg.MaxTurns != 10 || !cfg.NoColor {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Level() != zerolog.DebugLevel {
		t.Fatalf("Level() = %v, want debug", cfg.Level())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, key, value, want string
	}{
		{"bad seed", "BATTLE_SEED", "not-a-number", "parse env:"},
		{"zero turns", "BATTLE_MAX_TURNS", "0", "BATTLE_MAX_TURNS"},
		{"bad level", "BATTLE_LOG_LEVEL", "loud", "BATTLE_LOG_LEVEL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestDefaultTeamsBuild(t *testing.T) {
	sheet, err := DefaultTeams()
	if err != nil {
		t.Fatalf("DefaultTeams returned error: %v", err)
	}
	teams, err := BuildTeams(sheet)
	if err != nil {
		t.Fatalf("BuildTeams returned error: %v", err)
	}
	if len(teams[0]) != 2 || len(teams[1]) != 2 {
		t.Fatalf("team sizes = %d, %d, want 2, 2", len(teams[0]), len(teams[1]))
	}
	if teams[0][0].Name() != "Pikachu" || teams[1][1].Name() != "Venusaur" {
		t.Fatalf("unexpected members %s, %s", teams[0][0].Name(), teams[1][1].Name())
	}
	if teams[1][0].Level != 55 {
		t.Fatalf("Charizard level = %d, want 55", teams[1][0].Level)
	}
	if _, err := game.NewBattle(teams[0], teams[1], game.WithSeed(1)); err != nil {
		t.Fatalf("NewBattle returned error: %v", err)
	}
}

func TestParseTeamsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "teams: ["},
		{"one team", "teams:\n  - name: A\n    members:\n      - {species: Pikachu, moves: [Thunderbolt]}\n"},
		{"empty team", "teams:\n  - name: A\n    members: []\n  - name: B\n    members:\n      - {species: Onix, moves: [Tackle]}\n"},
		{"unknown species", "teams:\n  - members:\n      - {species: Togepi, moves: [Tackle]}\n  - members:\n      - {species: Onix, moves: [Tackle]}\n"},
		{"unknown move", "teams:\n  - members:\n      - {species: Pikachu, moves: [Volt Tackle]}\n  - members:\n      - {species: Onix, moves: [Tackle]}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTeams([]byte(tt.yaml)); !errors.Is(err, ErrInvalidTeams) {
				t.Fatalf("ParseTeams error = %v, want %v", err, ErrInvalidTeams)
			}
		})
	}
}

func TestLoadTeamsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.yaml")
	body := "teams:\n  - members:\n      - {species: Pikachu, moves: [Thunderbolt, Thunderbolt]}\n  - name: Brock\n    members:\n      - {species: Onix, level: 12, moves: [Tackle]}\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write sheet: %v", err)
	}
	t.Setenv("BATTLE_TEAMS_FILE", path)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	sheet, err := cfg.Teams()
	if err != nil {
		t.Fatalf("Teams returned error: %v", err)
	}
	if p1, p2 := sheet.Names(); p1 != "Player 1" || p2 != "Brock" {
		t.Fatalf("Names() = %q, %q", p1, p2)
	}
	if _, err := BuildTeams(sheet); !errors.Is(err, game.ErrInvalidCombatant) {
		t.Fatalf("BuildTeams error = %v, want %v", err, game.ErrInvalidCombatant)
	}
}
