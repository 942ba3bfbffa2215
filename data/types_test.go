package data

import "testing"

func TestEffectivenessValuesAreInChartDomain(t *testing.T) {
	for d := Type(0); int(d) < NumTypes; d++ {
		for a := Type(0); int(a) < NumTypes; a++ {
			switch v := Effectiveness(d, a); v {
			case 0, 0.5, 1, 2:
			default:
				t.Fatalf("Effectiveness(%s, %s) = %v, want one of 0, 0.5, 1, 2", d, a, v)
			}
		}
	}
}

func TestCombinedEffectivenessIsProduct(t *testing.T) {
	for d1 := Type(0); int(d1) < NumTypes; d1++ {
		for d2 := Type(0); int(d2) < NumTypes; d2++ {
			for a := Type(0); int(a) < NumTypes; a++ {
				got := CombinedEffectiveness(Dual(d1, d2), a)
				want := Effectiveness(d1, a) * Effectiveness(d2, a)
				if d1 == d2 {
					want = Effectiveness(d1, a)
				}
				if got != want {
					t.Fatalf("CombinedEffectiveness(%s/%s, %s) = %v, want %v", d1, d2, a, got, want)
				}
			}
		}
	}
}

func TestEffectivenessMatchups(t *testing.T) {
	tcs := []struct {
		attack Type
		defend Type
		want   float64
	}{
		{Normal, Rock, 0.5},
		{Normal, Ghost, 0},
		{Normal, Normal, 1},
		{Fighting, Normal, 2},
		{Fighting, Flying, 0.5},
		{Fighting, Ghost, 0},
		{Flying, Bug, 2},
		{Poison, Grass, 2},
		{Poison, Ground, 0.5},
		{Ground, Electric, 2},
		{Ground, Flying, 0},
		{Rock, Fire, 2},
		{Bug, Fire, 0.5},
		{Ghost, Ghost, 2},
		{Ghost, Normal, 0},
		{Fire, Ice, 2},
		{Fire, Water, 0.5},
		{Water, Ground, 2},
		{Grass, Dragon, 0.5},
		{Electric, Ground, 0},
		{Electric, Water, 2},
		{Psychic, Poison, 2},
		{Ice, Dragon, 2},
		{Ice, Ice, 0.5},
		{Dragon, Dragon, 2},
		{Dragon, Fire, 0.5},
	}
	for _, tc := range tcs {
		if got := Effectiveness(tc.defend, tc.attack); got != tc.want {
			t.Errorf("%s vs %s = %v, want %v", tc.attack, tc.defend, got, tc.want)
		}
	}
}

func TestCombinedEffectivenessMatchups(t *testing.T) {
	tcs := []struct {
		attack Type
		defend Types
		want   float64
	}{
		{Water, Dual(Fire, Flying), 2},
		{Electric, Dual(Water, Flying), 4},
		{Rock, Dual(Fire, Flying), 4},
		{Ground, Dual(Fire, Rock), 4},
		{Fighting, Dual(Ice, Psychic), 1},
		{Bug, Dual(Grass, Poison), 1},
		{Psychic, Dual(Grass, Poison), 2},
		{Electric, Dual(Water, Ground), 0},
		{Grass, Dual(Water, Ground), 4},
		{Ice, Dual(Dragon, Flying), 4},
		{Fire, Mono(Grass), 2},
	}
	for _, tc := range tcs {
		if got := CombinedEffectiveness(tc.defend, tc.attack); got != tc.want {
			t.Errorf("%s vs %s = %v, want %v", tc.attack, tc.defend, got, tc.want)
		}
	}
}

func TestTypeSpecialSplit(t *testing.T) {
	special := map[Type]bool{Fire: true, Water: true, Grass: true, Electric: true, Psychic: true, Ice: true, Dragon: true}
	for ty := Type(0); int(ty) < NumTypes; ty++ {
		if ty.Special() != special[ty] {
			t.Errorf("%s.Special() = %v, want %v", ty, ty.Special(), special[ty])
		}
	}
}

func TestParseType(t *testing.T) {
	got, err := ParseType("eLeCtRiC")
	if err != nil {
		t.Fatalf("ParseType returned error: %v", err)
	}
	if got != Electric {
		t.Fatalf("ParseType = %s, want Electric", got)
	}
	if _, err := ParseType("Fairy"); err == nil {
		t.Fatal("expected error for a type outside the chart")
	}
}
