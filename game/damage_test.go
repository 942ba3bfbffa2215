package game

import (
	"slices"
	"testing"

	"gen1-battle/data"
)

func damageBattle(t *testing.T, r *stubRand, attacker, defender *Combatant) *Battle {
	t.Helper()
	return newTestBattle(t, r, []*Combatant{attacker}, []*Combatant{defender})
}

func TestComputeDamage(t *testing.T) {
	tests := []struct {
		name     string
		attacker func(t *testing.T) *Combatant
		defender func(t *testing.T) *Combatant
		move     data.MoveID
		setup    func(r *stubRand, a, d *Combatant)
		want     int
		crit     bool
	}{
		{
			name:     "stab super effective top roll",
			attacker: func(t *testing.T) *Combatant { return newMon(t, "Pikachu", 50, data.MoveThunderbolt) },
			defender: func(t *testing.T) *Combatant { return newMon(t, "Squirtle", 50, data.MoveTackle) },
			move:     data.MoveThunderbolt,
			want:     129,
		},
		{
			name:     "stab super effective bottom roll",
			attacker: func(t *testing.T) *Combatant { return newMon(t, "Pikachu", 50, data.MoveThunderbolt) },
			defender: func(t *testing.T) *Combatant { return newMon(t, "Squirtle", 50, data.MoveTackle) },
			move:     data.MoveThunderbolt,
			setup:    func(r *stubRand, _, _ *Combatant) { r.queue(39, 0) },
			want:     109,
		},
		{
			name:     "critical hit doubles base",
			attacker: func(t *testing.T) *Combatant { return newMon(t, "Pikachu", 50, data.MoveThunderbolt) },
			defender: func(t *testing.T) *Combatant { return newMon(t, "Squirtle", 50, data.MoveTackle) },
			move:     data.MoveThunderbolt,
			setup:    func(r *stubRand, _, _ *Combatant) { r.queue(512, 0) },
			want:     258,
			crit:     true,
		},
		{
			name:     "critical hit ignores stages",
			attacker: func(t *testing.T) *Combatant { return newMon(t, "Pikachu", 50, data.MoveThunderbolt) },
			defender: func(t *testing.T) *Combatant { return newMon(t, "Squirtle", 50, data.MoveTackle) },
			move:     data.MoveThunderbolt,
			setup: func(r *stubRand, a, d *Combatant) {
				r.queue(512, 0)
				a.ModifyStat(StatSpecial, -6)
				d.ModifyStat(StatSpecial, 6)
			},
			want: 258,
			crit: true,
		},
		{
			name:     "physical neutral",
			attacker: func(t *testing.T) *Combatant { return newMon(t, "Pikachu", 50, data.MoveTackle) },
			defender: func(t *testing.T) *Combatant { return newMon(t, "Squirtle", 50, data.MoveTackle) },
			move:     data.MoveTackle,
			want:     15,
		},
		{
			name:     "reflect halves physical",
			attacker: func(t *testing.T) *Combatant { return newMon(t, "Pikachu", 50, data.MoveTackle) },
			defender: func(t *testing.T) *Combatant { return newMon(t, "Squirtle", 50, data.MoveTackle) },
			move:     data.MoveTackle,
			setup:    func(_ *stubRand, _, d *Combatant) { d.AddVolatile(VolatileReflect) },
			want:     7,
		},
		{
			name:     "light screen ignores physical",
			attacker: func(t *testing.T) *Combatant { return newMon(t, "Pikachu", 50, data.MoveTackle) },
			defender: func(t *testing.T) *Combatant { return newMon(t, "Squirtle", 50, data.MoveTackle) },
			move:     data.MoveTackle,
			setup:    func(_ *stubRand, _, d *Combatant) { d.AddVolatile(VolatileLightScreen) },
			want:     15,
		},
		{
			name:     "minimum one",
			attacker: func(t *testing.T) *Combatant { return newMon(t, "Pikachu", 1, data.MoveTackle) },
			defender: func(t *testing.T) *Combatant { return newMon(t, "Onix", 100, data.MoveTackle) },
			move:     data.MoveTackle,
			setup:    func(r *stubRand, _, _ *Combatant) { r.queue(39, 0) },
			want:     1,
		},
		{
			name:     "reflect keeps minimum one",
			attacker: func(t *testing.T) *Combatant { return newMon(t, "Pikachu", 1, data.MoveTackle) },
			defender: func(t *testing.T) *Combatant { return newMon(t, "Onix", 100, data.MoveTackle) },
			move:     data.MoveTackle,
			setup:    func(r *stubRand, _, d *Combatant) {
				r.queue(39, 0)
				d.AddVolatile(VolatileReflect)
			},
			want: 1,
		},
		{
			name:     "seismic toss deals level",
			attacker: func(t *testing.T) *Combatant { return newMon(t, "Pikachu", 42, data.MoveSeismicToss) },
			defender: func(t *testing.T) *Combatant { return newMon(t, "Onix", 100, data.MoveTackle) },
			move:     data.MoveSeismicToss,
			want:     42,
		},
		{
			name:     "sonic boom ignores the chart",
			attacker: func(t *testing.T) *Combatant { return newMon(t, "Pikachu", 50, data.MoveSonicBoom) },
			defender: func(t *testing.T) *Combatant { return newMon(t, "Gengar", 50, data.MoveTackle) },
			move:     data.MoveSonicBoom,
			want:     20,
		},
		{
			name:     "psywave",
			attacker: func(t *testing.T) *Combatant { return newMon(t, "Pikachu", 50, data.MovePsywave) },
			defender: func(t *testing.T) *Combatant { return newMon(t, "Onix", 50, data.MoveTackle) },
			move:     data.MovePsywave,
			setup:    func(r *stubRand, _, _ *Combatant) { r.queue(75, 9) },
			want:     10,
		},
		{
			name:     "super fang halves current hp",
			attacker: func(t *testing.T) *Combatant { return newMon(t, "Rattata", 50, data.MoveSuperFang) },
			defender: func(t *testing.T) *Combatant { return newMon(t, "Pikachu", 50, data.MoveTackle) },
			move:     data.MoveSuperFang,
			setup:    func(_ *stubRand, _, d *Combatant) { d.ApplyDamage(15) },
			want:     40,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newStubRand()
			a, d := tt.attacker(t), tt.defender(t)
			b := damageBattle(t, r, a, d)
			if tt.setup != nil {
				tt.setup(r, a, d)
			}
			got := b.computeDamage(a, d, data.MustMove(tt.move))
			if got.damage != tt.want || got.crit != tt.crit {
				t.Fatalf("computeDamage = %d (crit %v), want %d (crit %v)", got.damage, got.crit, tt.want, tt.crit)
			}
		})
	}
}

func TestImmuneSkipsCritRoll(t *testing.T) {
	r := newStubRand()
	a := newMon(t, "Pikachu", 50, data.MoveTackle)
	d := newMon(t, "Gengar", 50, data.MoveTackle)
	b := damageBattle(t, r, a, d)

	got := b.computeDamage(a, d, data.MustMove(data.MoveTackle))
	if got.damage != 0 || got.effectiveness != 0 {
		t.Fatalf("Tackle on Gengar = %+v, want no damage", got)
	}
	if slices.Contains(r.draws, 512) || slices.Contains(r.draws, 39) {
		t.Fatalf("immune hit drew random numbers: %v", r.draws)
	}
}

func TestCritThreshold(t *testing.T) {
	pika := newMon(t, "Pikachu", 50, data.MoveTackle, data.MoveSlash)
	tests := []struct {
		name  string
		move  data.MoveID
		focus bool
		want  int
	}{
		{"base speed", data.MoveTackle, false, 90},
		{"high critical capped", data.MoveSlash, false, 511},
		// Focus Energy quarters the rate instead of raising it.
		{"focus energy", data.MoveTackle, true, 22},
		{"focus energy high critical", data.MoveSlash, true, 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pika.RemoveVolatile(VolatileFocusEnergy)
			if tt.focus {
				pika.AddVolatile(VolatileFocusEnergy)
			}
			if got := critThreshold(pika, data.MustMove(tt.move)); got != tt.want {
				t.Fatalf("critThreshold = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHitCountDistribution(t *testing.T) {
	tests := []struct {
		roll int
		want int
	}{
		{0, 2}, {2, 2}, {3, 3}, {5, 3}, {6, 4}, {7, 5},
	}
	for _, tt := range tests {
		r := newStubRand().queue(8, tt.roll)
		b := damageBattle(t, r, newMon(t, "Pikachu", 50, data.MoveTackle), newMon(t, "Onix", 50, data.MoveTackle))
		if got := b.hitCount(data.MustMove(data.MoveFuryAttack)); got != tt.want {
			t.Errorf("roll %d: hitCount = %d, want %d", tt.roll, got, tt.want)
		}
	}
	b := damageBattle(t, newStubRand(), newMon(t, "Pikachu", 50, data.MoveTackle), newMon(t, "Onix", 50, data.MoveTackle))
	if got := b.hitCount(data.MustMove(data.MoveDoubleKick)); got != 2 {
		t.Errorf("Double Kick hitCount = %d, want 2", got)
	}
	if got := b.hitCount(data.MustMove(data.MoveTackle)); got != 1 {
		t.Errorf("Tackle hitCount = %d, want 1", got)
	}
}
