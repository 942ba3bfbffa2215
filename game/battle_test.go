package game

import (
	"errors"
	"slices"
	"testing"

	"gen1-battle/data"
)

func TestNewBattleValidatesTeams(t *testing.T) {
	pika := newMon(t, "Pikachu", 50, data.MoveTackle)
	onix := newMon(t, "Onix", 50, data.MoveTackle)
	seven := make([]*Combatant, 7)
	for i := range seven {
		seven[i] = newMon(t, "Rattata", 10, data.MoveTackle)
	}
	tests := []struct {
		name         string
		team1, team2 []*Combatant
	}{
		{"empty team", nil, []*Combatant{onix}},
		{"too many", seven, []*Combatant{onix}},
		{"nil member", []*Combatant{pika, nil}, []*Combatant{onix}},
		{"shared member", []*Combatant{pika}, []*Combatant{pika}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBattle(tt.team1, tt.team2, WithRand(newStubRand())); !errors.Is(err, ErrInvalidTeam) {
				t.Fatalf("NewBattle error = %v, want %v", err, ErrInvalidTeam)
			}
		})
	}
}

func TestNewBattleOpening(t *testing.T) {
	rec := &recorder{}
	fainted := newMon(t, "Rattata", 10, data.MoveTackle)
	fainted.ApplyDamage(fainted.MaxHP())
	pika := newMon(t, "Pikachu", 50, data.MoveTackle)
	onix := newMon(t, "Onix", 50, data.MoveTackle)

	b, err := NewBattle([]*Combatant{fainted, pika}, []*Combatant{onix},
		WithRand(newStubRand()), WithSink(rec), WithPlayerNames("Red", "Brock"))
	if err != nil {
		t.Fatalf("NewBattle returned error: %v", err)
	}
	if b.ActiveIndex(Side1) != 1 || b.Active(Side1) != pika {
		t.Fatalf("side1 active = %d, want the first healthy member", b.ActiveIndex(Side1))
	}
	want := []string{"Battle started!", "Red sent out Pikachu!", "Brock sent out Onix!"}
	if !slices.Equal(b.Log(), want) {
		t.Fatalf("Log() = %q, want %q", b.Log(), want)
	}
	if rec.count(EventPoke) != 3 || rec.count(EventPlayer) != 2 {
		t.Fatalf("opening events: %d poke, %d player", rec.count(EventPoke), rec.count(EventPlayer))
	}
	if b.IsOver() || b.Winner() != SideNone || b.TurnCount() != 0 {
		t.Fatalf("fresh battle over=%v winner=%s turns=%d", b.IsOver(), b.Winner(), b.TurnCount())
	}
}

func TestTurnRejectsInvalidActions(t *testing.T) {
	fainted := newMon(t, "Rattata", 10, data.MoveTackle)
	fainted.ApplyDamage(fainted.MaxHP())
	pika := newMon(t, "Pikachu", 50, data.MoveTackle, data.MoveSplash)
	pika.moves[1].PP = 0

	tests := []struct {
		name   string
		a1, a2 Action
	}{
		{"slot out of range", UseMove(4), UseMove(0)},
		{"negative slot", UseMove(-1), UseMove(0)},
		{"no pp", UseMove(1), UseMove(0)},
		{"switch to active", SwitchTo(0), UseMove(0)},
		{"switch to fainted", SwitchTo(2), UseMove(0)},
		{"switch out of range", SwitchTo(9), UseMove(0)},
		{"caller skip", skip, UseMove(0)},
		{"second side invalid", UseMove(0), UseMove(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			onix := newMon(t, "Onix", 50, data.MoveTackle)
			squirtle := newMon(t, "Squirtle", 50, data.MoveTackle)
			b := newTestBattle(t, newStubRand(), []*Combatant{pika, onix, fainted}, []*Combatant{squirtle})
			before := len(b.Log())
			if err := b.Turn(tt.a1, tt.a2); !errors.Is(err, ErrInvalidAction) {
				t.Fatalf("Turn error = %v, want %v", err, ErrInvalidAction)
			}
			if b.TurnCount() != 0 || len(b.Log()) != before {
				t.Fatal("rejected turn mutated the battle")
			}
			if pika.HP() != pika.MaxHP() || squirtle.HP() != squirtle.MaxHP() || pika.moves[0].PP != 35 {
				t.Fatal("rejected turn changed combatants")
			}
		})
	}
}

func TestSwitchResetsVolatilesAndStages(t *testing.T) {
	pika := newMon(t, "Pikachu", 50, data.MoveTackle)
	onix := newMon(t, "Onix", 50, data.MoveTackle)
	squirtle := newMon(t, "Squirtle", 50, data.MoveSplash)
	b := newTestBattle(t, newStubRand(), []*Combatant{pika, onix}, []*Combatant{squirtle})

	pika.ModifyStat(StatAttack, 2)
	pika.AddVolatile(VolatileConfusion | VolatileLeechSeed)
	pika.ForceStatus(StatusPoison)
	b.sides[Side1].mode, b.sides[Side1].turnsLeft = ModeBound, 3

	mustTurn(t, b, SwitchTo(1), UseMove(0))
	if b.ActiveIndex(Side1) != 1 {
		t.Fatalf("active = %d, want 1", b.ActiveIndex(Side1))
	}
	if pika.Stage(StatAttack) != 0 || pika.Volatiles() != 0 {
		t.Fatalf("switched-out Pikachu kept stage %d volatiles %q", pika.Stage(StatAttack), pika.Volatiles())
	}
	if pika.Status() != StatusPoison {
		t.Fatal("primary status must survive a switch")
	}
	if mode, _ := b.Mode(Side1); mode != ModeNormal {
		t.Fatalf("mode = %s, want normal", mode)
	}
	if !slices.Contains(b.Log(), "side1 withdrew Pikachu and sent out Onix!") {
		t.Fatalf("missing switch line in %q", b.Log())
	}
}

func TestSendOutAfterFaint(t *testing.T) {
	pika := newMon(t, "Pikachu", 50, data.MoveSplash)
	onix := newMon(t, "Onix", 50, data.MoveTackle)
	squirtle := newMon(t, "Squirtle", 50, data.MoveTackle)
	b := newTestBattle(t, newStubRand(), []*Combatant{pika, onix}, []*Combatant{squirtle})
	pika.ApplyDamage(pika.MaxHP() - 1)

	mustTurn(t, b, UseMove(0), UseMove(0))
	if !pika.IsFainted() || b.IsOver() {
		t.Fatalf("Pikachu fainted=%v over=%v", pika.IsFainted(), b.IsOver())
	}
	if !b.NeedsSendOut(Side1) || b.NeedsSendOut(Side2) {
		t.Fatal("NeedsSendOut mismatch")
	}
	if got := b.LegalActions(Side1); !slices.Equal(got, []Action{SwitchTo(1)}) {
		t.Fatalf("LegalActions = %v, want only switch(1)", got)
	}
	if err := b.SendOut(Side1, 0); !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("SendOut to the fainted active: %v", err)
	}
	if err := b.SendOut(Side1, 1); err != nil {
		t.Fatalf("SendOut returned error: %v", err)
	}
	if err := b.SendOut(Side1, 0); !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("SendOut with a healthy active: %v", err)
	}
	if b.Active(Side1) != onix || b.NeedsSendOut(Side1) {
		t.Fatal("Onix was not sent out")
	}
}

func TestLogSince(t *testing.T) {
	b := newTestBattle(t, newStubRand(),
		[]*Combatant{newMon(t, "Pikachu", 50, data.MoveSplash)},
		[]*Combatant{newMon(t, "Squirtle", 50, data.MoveSplash)})
	seen := len(b.Log())
	mustTurn(t, b, UseMove(0), UseMove(0))
	fresh := b.LogSince(seen)
	if len(fresh) == 0 || fresh[0] != "Turn 1" {
		t.Fatalf("LogSince(%d) = %q", seen, fresh)
	}
	if got := b.LogSince(len(b.Log())); got != nil {
		t.Fatalf("LogSince(end) = %q, want nil", got)
	}
	if got := b.LogSince(-3); len(got) != len(b.Log()) {
		t.Fatalf("LogSince(-3) returned %d lines", len(got))
	}
}

func TestSnapshotHidesOpponentMoves(t *testing.T) {
	pika := newMon(t, "Pikachu", 50, data.MoveThunderbolt, data.MoveSplash)
	squirtle := newMon(t, "Squirtle", 50, data.MoveTackle)
	b := newTestBattle(t, newStubRand(), []*Combatant{pika}, []*Combatant{squirtle})
	pika.ModifyStat(StatSpeed, 2)
	pika.ForceStatus(StatusParalysis)

	snap := b.Snapshot(Side1)
	own := snap.Sides[Side1].ActiveCombatant()
	if own == nil || len(own.Moves) != 2 {
		t.Fatalf("own side moves = %+v", own)
	}
	if own.Moves[0].Name != "Thunderbolt" || own.Moves[0].Power != 95 || own.Moves[0].Type != data.Electric {
		t.Fatalf("Thunderbolt snapshot = %+v", own.Moves[0])
	}
	if own.Status != StatusParalysis || own.Boosts["spe"] != 2 || own.HP != 95 || own.Level != 50 {
		t.Fatalf("own snapshot = %+v", own)
	}
	if foe := snap.Sides[Side2].ActiveCombatant(); foe.Moves != nil {
		t.Fatalf("opponent moves leaked: %+v", foe.Moves)
	}
	if spectator := b.Snapshot(SideNone); spectator.Sides[Side1].Team[0].Moves != nil {
		t.Fatal("spectator view shows moves")
	}
}
