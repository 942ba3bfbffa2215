package data

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Type is one of the fifteen Generation I elemental types.
type Type int

const (
	Normal Type = iota
	Fighting
	Flying
	Poison
	Ground
	Rock
	Bug
	Ghost
	Fire
	Water
	Grass
	Electric
	Psychic
	Ice
	Dragon
)

// NumTypes is the number of types in the chart.
const NumTypes = 15

var typeNames = [NumTypes]string{
	"Normal", "Fighting", "Flying", "Poison", "Ground", "Rock", "Bug", "Ghost",
	"Fire", "Water", "Grass", "Electric", "Psychic", "Ice", "Dragon",
}

func (t Type) String() string {
	if t < 0 || int(t) >= NumTypes {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Valid reports whether t is one of the chart's types.
func (t Type) Valid() bool {
	return t >= 0 && int(t) < NumTypes
}

// Special reports whether moves of this type use the Special stat. In
// Generation I the split is by type: Fire and every type after it in the
// chart ordering are special, the rest physical.
func (t Type) Special() bool {
	return t >= Fire
}

// ParseType resolves a type name, ignoring case.
func ParseType(name string) (Type, error) {
	folded := cases.Fold().String(name)
	for i, n := range typeNames {
		if cases.Fold().String(n) == folded {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("unknown type %q", name)
}

// chart[defender][attacker] is the multiplier of an attacking type against a
// single defending type.
var chart = [NumTypes][NumTypes]float64{
	// Attacker: Nor Fig Fly Poi Gro Roc Bug Gho Fir Wat Gra Ele Psy Ice Dra
	Normal:   {1, 2, 1, 1, 1, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1},
	Fighting: {1, 1, 2, 1, 1, 0.5, 0.5, 0, 1, 1, 1, 1, 2, 1, 1},
	Flying:   {1, 0.5, 1, 1, 0, 2, 0.5, 1, 1, 1, 0.5, 2, 1, 2, 1},
	Poison:   {1, 0.5, 1, 0.5, 2, 0.5, 0.5, 0.5, 1, 1, 0.5, 1, 2, 1, 1},
	Ground:   {1, 1, 1, 0.5, 1, 0.5, 0.5, 1, 1, 2, 2, 0, 1, 2, 1},
	Rock:     {0.5, 2, 0.5, 0.5, 2, 1, 1, 1, 0.5, 2, 2, 1, 1, 1, 1},
	Bug:      {1, 0.5, 2, 2, 0.5, 2, 1, 0.5, 2, 1, 0.5, 1, 1, 1, 1},
	Ghost:    {0, 0, 1, 0.5, 1, 1, 0.5, 2, 1, 1, 1, 1, 0, 1, 1},
	Fire:     {1, 1, 1, 1, 2, 2, 0.5, 1, 0.5, 2, 0.5, 1, 1, 0.5, 0.5},
	Water:    {1, 1, 1, 1, 1, 1, 1, 1, 0.5, 0.5, 2, 2, 1, 0.5, 0.5},
	Grass:    {1, 1, 2, 2, 0.5, 1, 2, 1, 2, 0.5, 0.5, 0.5, 1, 2, 0.5},
	Electric: {1, 1, 0.5, 1, 2, 1, 1, 1, 1, 1, 1, 0.5, 1, 1, 0.5},
	Psychic:  {1, 0.5, 1, 1, 1, 1, 2, 2, 1, 1, 1, 1, 0.5, 1, 1},
	Ice:      {1, 2, 1, 1, 1, 2, 1, 1, 2, 1, 1, 1, 1, 0.5, 1},
	Dragon:   {1, 1, 1, 1, 1, 1, 1, 1, 0.5, 0.5, 0.5, 0.5, 1, 2, 2},
}

// Effectiveness returns the multiplier (0, 0.5, 1 or 2) of an attack of type
// attack against a defender of the single type defend.
func Effectiveness(defend, attack Type) float64 {
	return chart[defend][attack]
}

// Types is a creature's typing. Mono-typed species repeat the primary type.
type Types struct {
	Primary   Type `json:"primary"`
	Secondary Type `json:"secondary"`
}

// Mono returns the typing of a single-typed species.
func Mono(t Type) Types {
	return Types{Primary: t, Secondary: t}
}

// Dual returns a two-typed typing.
func Dual(primary, secondary Type) Types {
	return Types{Primary: primary, Secondary: secondary}
}

// Includes reports whether t is one of the typing's types.
func (ts Types) Includes(t Type) bool {
	return ts.Primary == t || ts.Secondary == t
}

func (ts Types) String() string {
	if ts.Primary == ts.Secondary {
		return ts.Primary.String()
	}
	return ts.Primary.String() + "/" + ts.Secondary.String()
}

// CombinedEffectiveness multiplies the effectiveness against both defending
// types. When both types are equal the single lookup is returned.
func CombinedEffectiveness(defender Types, attack Type) float64 {
	first := Effectiveness(defender.Primary, attack)
	if defender.Primary == defender.Secondary {
		return first
	}
	return first * Effectiveness(defender.Secondary, attack)
}

// Immune reports whether the typing takes no damage from type t.
func (ts Types) Immune(t Type) bool {
	return CombinedEffectiveness(ts, t) == 0
}
