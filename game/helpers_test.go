package game

import (
	"testing"

	"gen1-battle/data"
)

// stubRand serves queued values per n. With an empty queue it never
// crits, always rolls top damage and otherwise returns 0, which passes
// accuracy, wakes sleepers and gives speed ties to side1.
type stubRand struct {
	queues map[int][]int
	draws  []int
}

func newStubRand() *stubRand {
	return &stubRand{queues: make(map[int][]int)}
}

func (r *stubRand) queue(n int, vals ...int) *stubRand {
	r.queues[n] = append(r.queues[n], vals...)
	return r
}

func (r *stubRand) IntN(n int) int {
	r.draws = append(r.draws, n)
	if q := r.queues[n]; len(q) > 0 {
		r.queues[n] = q[1:]
		return q[0]
	}
	switch n {
	case 512:
		return 511
	case 39:
		return 38
	}
	return 0
}

func mustSpecies(t *testing.T, name string) *data.Species {
	t.Helper()
	s, err := data.LookupSpecies(name)
	if err != nil {
		t.Fatalf("LookupSpecies(%s) returned error: %v", name, err)
	}
	return s
}

// newMon builds a combatant with zero IVs and EVs.
func newMon(t *testing.T, species string, level int, moves ...data.MoveID) *Combatant {
	t.Helper()
	c, err := NewCombatant(mustSpecies(t, species), level, data.Stats{}, data.Stats{}, moves)
	if err != nil {
		t.Fatalf("NewCombatant(%s) returned error: %v", species, err)
	}
	return c
}

func newTestBattle(t *testing.T, r Rand, team1, team2 []*Combatant) *Battle {
	t.Helper()
	b, err := NewBattle(team1, team2, WithRand(r))
	if err != nil {
		t.Fatalf("NewBattle returned error: %v", err)
	}
	return b
}

func mustTurn(t *testing.T, b *Battle, a1, a2 Action) {
	t.Helper()
	if err := b.Turn(a1, a2); err != nil {
		t.Fatalf("Turn(%s, %s) returned error: %v", a1, a2, err)
	}
}

// recorder collects every emitted event.
type recorder struct {
	events []Event
}

func (r *recorder) Emit(e Event) { r.events = append(r.events, e) }

func (r *recorder) count(kind EventKind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
