package game

import (
	"errors"
	"testing"

	"gen1-battle/data"
)

func TestNewCombatantStats(t *testing.T) {
	tests := []struct {
		name  string
		level int
		ivs   data.Stats
		evs   data.Stats
		want  data.Stats
	}{
		{
			name:  "level 50 no training",
			level: 50,
			want:  data.Stats{HP: 95, Attack: 60, Defense: 35, Special: 55, Speed: 95},
		},
		{
			name:  "level 100 max training",
			level: 100,
			ivs:   data.Stats{HP: 15, Attack: 15, Defense: 15, Special: 15, Speed: 15},
			evs:   data.Stats{HP: 255, Attack: 255, Defense: 255, Special: 255, Speed: 255},
			want:  data.Stats{HP: 273, Attack: 208, Defense: 158, Special: 198, Speed: 278},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCombatant(mustSpecies(t, "Pikachu"), tt.level, tt.ivs, tt.evs, []data.MoveID{data.MoveThunderbolt})
			if err != nil {
				t.Fatalf("NewCombatant returned error: %v", err)
			}
			if c.Stats() != tt.want {
				t.Fatalf("Stats() = %+v, want %+v", c.Stats(), tt.want)
			}
			if c.HP() != tt.want.HP || c.MaxHP() != tt.want.HP {
				t.Fatalf("HP = %d/%d, want full %d", c.HP(), c.MaxHP(), tt.want.HP)
			}
			if c.Status() != StatusNone || c.Volatiles() != 0 {
				t.Fatalf("new combatant has status %q volatiles %q", c.Status(), c.Volatiles())
			}
		})
	}
}

func TestNewCombatantInvalid(t *testing.T) {
	pika := mustSpecies(t, "Pikachu")
	tests := []struct {
		name    string
		species *data.Species
		level   int
		ivs     data.Stats
		evs     data.Stats
		moves   []data.MoveID
		want    error
	}{
		{"nil species", nil, 50, data.Stats{}, data.Stats{}, []data.MoveID{data.MoveTackle}, ErrInvalidCombatant},
		{"level zero", pika, 0, data.Stats{}, data.Stats{}, []data.MoveID{data.MoveTackle}, ErrInvalidCombatant},
		{"level too high", pika, 101, data.Stats{}, data.Stats{}, []data.MoveID{data.MoveTackle}, ErrInvalidCombatant},
		{"iv too high", pika, 50, data.Stats{Speed: 16}, data.Stats{}, []data.MoveID{data.MoveTackle}, ErrInvalidCombatant},
		{"negative ev", pika, 50, data.Stats{}, data.Stats{HP: -1}, []data.MoveID{data.MoveTackle}, ErrInvalidCombatant},
		{"no moves", pika, 50, data.Stats{}, data.Stats{}, nil, ErrInvalidCombatant},
		{"five moves", pika, 50, data.Stats{}, data.Stats{}, []data.MoveID{1, 2, 3, 4, 5}, ErrInvalidCombatant},
		{"duplicate move", pika, 50, data.Stats{}, data.Stats{}, []data.MoveID{data.MoveTackle, data.MoveTackle}, ErrInvalidCombatant},
		{"unknown move", pika, 50, data.Stats{}, data.Stats{}, []data.MoveID{data.NumMoves + 1}, data.ErrInvalidMove},
		{"skip sentinel", pika, 50, data.Stats{}, data.Stats{}, []data.MoveID{data.SkipTurn}, data.ErrInvalidMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCombatant(tt.species, tt.level, tt.ivs, tt.evs, tt.moves)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewCombatant error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestApplyDamageAndHeal(t *testing.T) {
	c := newMon(t, "Pikachu", 50, data.MoveTackle)
	if got := c.ApplyDamage(30); got != 30 || c.HP() != 65 {
		t.Fatalf("ApplyDamage(30) = %d, HP %d", got, c.HP())
	}
	if got := c.Heal(100); got != 30 || c.HP() != 95 {
		t.Fatalf("Heal(100) = %d, HP %d", got, c.HP())
	}
	if got := c.ApplyDamage(-5); got != 0 || c.HP() != 95 {
		t.Fatalf("negative damage changed HP: %d, %d", got, c.HP())
	}
	if got := c.ApplyDamage(500); got != 95 || c.HP() != 0 || !c.IsFainted() {
		t.Fatalf("overkill = %d, HP %d, fainted %v", got, c.HP(), c.IsFainted())
	}
}

func TestSetStatusFirstWins(t *testing.T) {
	c := newMon(t, "Pikachu", 50, data.MoveTackle)
	if !c.SetStatus(StatusPoison) {
		t.Fatal("SetStatus(poison) on a healthy combatant failed")
	}
	if c.SetStatus(StatusBurn) || c.Status() != StatusPoison {
		t.Fatalf("status was overwritten: %q", c.Status())
	}
	c.ForceStatus(StatusSleep)
	if c.Status() != StatusSleep {
		t.Fatalf("ForceStatus did not apply: %q", c.Status())
	}
	c.CureStatus()
	if c.Status() != StatusNone {
		t.Fatalf("CureStatus left %q", c.Status())
	}
}

func TestModifyStatClamps(t *testing.T) {
	c := newMon(t, "Pikachu", 50, data.MoveTackle)
	if got := c.ModifyStat(StatAttack, 4); got != 4 {
		t.Fatalf("first boost applied %d, want 4", got)
	}
	if got := c.ModifyStat(StatAttack, 4); got != 2 || c.Stage(StatAttack) != 6 {
		t.Fatalf("clamped boost applied %d, stage %d", got, c.Stage(StatAttack))
	}
	if got := c.ModifyStat(StatAttack, 1); got != 0 {
		t.Fatalf("boost at +6 applied %d", got)
	}
	if got := c.ModifyStat(StatEvasion, -8); got != -6 {
		t.Fatalf("drop applied %d, want -6", got)
	}
	if got := c.ModifyStat(StatHP, 2); got != 0 || c.Stage(StatHP) != 0 {
		t.Fatalf("HP stage changed: %d", got)
	}
	c.ResetStatStages()
	if c.Stage(StatAttack) != 0 || c.Stage(StatEvasion) != 0 {
		t.Fatal("ResetStatStages left stages behind")
	}
}

func TestEffectiveStat(t *testing.T) {
	tests := []struct {
		name   string
		stat   Stat
		stage  int
		status Status
		want   int
	}{
		{"plain attack", StatAttack, 0, StatusNone, 60},
		{"plus two", StatAttack, 2, StatusNone, 120},
		{"minus one", StatAttack, -1, StatusNone, 40},
		{"minus six", StatDefense, -6, StatusNone, 8},
		{"burn halves attack", StatAttack, 0, StatusBurn, 30},
		{"burn keeps special", StatSpecial, 0, StatusBurn, 55},
		{"paralysis quarters speed", StatSpeed, 0, StatusParalysis, 23},
		{"accuracy base", StatAccuracy, -1, StatusNone, 66},
		{"hp ignores stages", StatHP, 3, StatusNone, 95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newMon(t, "Pikachu", 50, data.MoveTackle)
			c.ModifyStat(tt.stat, tt.stage)
			c.ForceStatus(tt.status)
			if got := c.EffectiveStat(tt.stat); got != tt.want {
				t.Fatalf("EffectiveStat(%s) = %d, want %d", tt.stat, got, tt.want)
			}
		})
	}
}

func TestClearVolatilesRevertsOverrides(t *testing.T) {
	c := newMon(t, "Pikachu", 50, data.MoveMimic, data.MoveTackle)
	c.AddVolatile(VolatileConfusion | VolatileSubstitute)
	c.confusionTurns = 3
	c.substituteHP = 24
	c.saveMoves()
	c.moves[0] = MoveSlot{ID: data.MoveSurf, PP: 9, MaxPP: 10}
	c.moves[1].PP = 30
	c.types = data.Mono(data.Water)

	c.ClearVolatiles()
	if c.Volatiles() != 0 || c.confusionTurns != 0 || c.substituteHP != 0 {
		t.Fatalf("volatiles survived: %q", c.Volatiles())
	}
	if c.Types() != data.Mono(data.Electric) {
		t.Fatalf("types = %s, want Electric", c.Types())
	}
	moves := c.Moves()
	if moves[0].ID != data.MoveMimic || moves[1].ID != data.MoveTackle {
		t.Fatalf("moves not restored: %+v", moves)
	}
	if moves[1].PP != 30 {
		t.Fatalf("Tackle PP = %d, want the spent PP to carry over", moves[1].PP)
	}
}
