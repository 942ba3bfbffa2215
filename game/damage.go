package game

import (
	"math"

	"gen1-battle/data"
)

type damageResult struct {
	damage        int
	crit          bool
	effectiveness float64
}

// critThreshold is out of 512. Focus Energy divides the rate by four, which
// is what the Generation I games actually do.
func critThreshold(c *Combatant, m data.Move) int {
	t := c.Species.Base.Speed
	if m.Effect.HighCritical() {
		t *= 8
	}
	if c.HasVolatile(VolatileFocusEnergy) {
		t /= 4
	}
	return min(t, 511)
}

// computeDamage returns the damage of one hit of m. Moves with fixed damage
// skip the formula and the type chart.
func (b *Battle) computeDamage(attacker, defender *Combatant, m data.Move) damageResult {
	if fixed, ok := b.fixedDamage(attacker, defender, m); ok {
		return damageResult{damage: fixed, effectiveness: 1}
	}
	if m.Power <= 0 {
		return damageResult{effectiveness: 1}
	}

	eff := data.CombinedEffectiveness(defender.Types(), m.Type)
	if eff == 0 {
		return damageResult{effectiveness: 0}
	}

	atkStat, defStat := StatAttack, StatDefense
	if m.Category() == data.Special {
		atkStat, defStat = StatSpecial, StatSpecial
	}

	roll := b.rng.IntN(512)
	threshold := critThreshold(attacker, m)
	crit := roll < threshold
	b.logger.Debug().Int("roll", roll).Int("threshold", threshold).Bool("crit", crit).Msg("critCheck")

	var atk, def int
	if crit {
		atk, def = attacker.rawStat(atkStat), defender.rawStat(defStat)
	} else {
		atk, def = attacker.EffectiveStat(atkStat), defender.EffectiveStat(defStat)
	}
	def = max(def, 1)

	base := ((2*attacker.Level/5+2)*atk*m.Power/def)/50 + 2
	if crit {
		base *= 2
	}

	stab := 1.0
	if attacker.Types().Includes(m.Type) {
		stab = 1.5
	}
	variance := 217 + b.rng.IntN(39)
	b.logger.Debug().Int("variance", variance).Float64("effectiveness", eff).Msg("damageRoll")

	dmg := int(math.Floor(float64(base) * stab * eff * float64(variance) / 255))
	dmg = max(dmg, 1)

	if (m.Category() == data.Physical && defender.HasVolatile(VolatileReflect)) ||
		(m.Category() == data.Special && defender.HasVolatile(VolatileLightScreen)) {
		dmg = max(dmg/2, 1)
	}
	return damageResult{damage: dmg, crit: crit, effectiveness: eff}
}

func (b *Battle) fixedDamage(attacker, defender *Combatant, m data.Move) (int, bool) {
	switch m.Effect {
	case data.EffectSuperFang:
		return defender.HP() / 2, true
	case data.EffectSpecialDamage:
	default:
		return 0, false
	}
	switch m.ID {
	case data.MoveSeismicToss, data.MoveNightShade:
		return attacker.Level, true
	case data.MoveSonicBoom:
		return 20, true
	case data.MoveDragonRage:
		return 40, true
	case data.MovePsywave:
		n := max(attacker.Level*3/2, 1)
		dmg := 1 + b.rng.IntN(n)
		b.logger.Debug().Int("damage", dmg).Int("range", n).Msg("psywave")
		return dmg, true
	}
	return attacker.Level, true
}

// hitCount draws the number of strikes for m: two for double hitters, two
// to five for the rest with weights 3/8, 3/8, 1/8, 1/8.
func (b *Battle) hitCount(m data.Move) int {
	switch m.Effect {
	case data.EffectDoubleHit, data.EffectTwineedle:
		return 2
	case data.EffectMultiHit:
	default:
		return 1
	}
	roll := b.rng.IntN(8)
	hits := 5
	switch {
	case roll < 3:
		hits = 2
	case roll < 6:
		hits = 3
	case roll < 7:
		hits = 4
	}
	b.logger.Debug().Int("roll", roll).Int("hits", hits).Msg("hits")
	return hits
}

// confusionDamage is the 40-power typeless hit a confused combatant deals
// to itself.
func confusionDamage(c *Combatant) int {
	atk, def := c.EffectiveStat(StatAttack), max(c.EffectiveStat(StatDefense), 1)
	return ((2*c.Level/5+2)*atk*40/def)/50 + 2
}
