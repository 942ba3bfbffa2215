package game

import (
	"fmt"
	"strconv"

	"gen1-battle/data"
)

type effectContext struct {
	b        *Battle
	side     Side
	attacker *Combatant
	defender *Combatant
	move     data.Move
	// damage is the HP the defender lost to this move.
	damage        int
	hitSubstitute bool
}

func (ctx *effectContext) opp() Side { return ctx.side.Opponent() }

type effectHandler func(ctx *effectContext)

// effectHandlers has exactly one handler per effect tag. It is filled in
// init because several handlers reach back into the Battle.
var effectHandlers map[data.Effect]effectHandler

func init() {
	noop := func(*effectContext) {}
	effectHandlers = map[data.Effect]effectHandler{
		// Resolved by the damage step or by useMove.
		data.EffectNone:          noop,
		data.EffectHighCritical:  noop,
		data.EffectSwift:         noop,
		data.EffectDoubleHit:     noop,
		data.EffectMultiHit:      noop,
		data.EffectSpecialDamage: noop,
		data.EffectSuperFang:     noop,
		data.EffectCounter:       noop,
		data.EffectOHKO:          noop,
		data.EffectCharge:        noop,
		data.EffectMetronome:     noop,
		data.EffectMirrorMove:    noop,
		data.EffectJumpKick:      noop,

		data.EffectConfusion:         confusionEffect,
		data.EffectConversion:        conversionEffect,
		data.EffectFocusEnergy:       selfVolatile(VolatileFocusEnergy, "is getting pumped!"),
		data.EffectHaze:              hazeEffect,
		data.EffectHeal:              healEffect,
		data.EffectLeechSeed:         leechSeedEffect,
		data.EffectLightScreen:       selfVolatile(VolatileLightScreen, "is protected against special attacks!"),
		data.EffectMimic:             mimicEffect,
		data.EffectMist:              selfVolatile(VolatileMist, "is shrouded in mist!"),
		data.EffectParalyze:          guaranteedStatus(StatusParalysis),
		data.EffectPoison:            guaranteedStatus(StatusPoison),
		data.EffectReflect:           selfVolatile(VolatileReflect, "is protected against physical attacks!"),
		data.EffectSplash:            message("But nothing happened!"),
		data.EffectSubstitute:        substituteEffect,
		data.EffectSwitchAndTeleport: func(ctx *effectContext) { ctx.b.fail(ctx.side) },
		data.EffectTransform:         transformEffect,

		data.EffectAccuracyDown1: foeStat(StatAccuracy, -1),
		data.EffectAttackDown1:   foeStat(StatAttack, -1),
		data.EffectDefenseDown1:  foeStat(StatDefense, -1),
		data.EffectDefenseDown2:  foeStat(StatDefense, -2),
		data.EffectSpeedDown1:    foeStat(StatSpeed, -1),
		data.EffectAttackUp1:     selfStat(StatAttack, 1),
		data.EffectAttackUp2:     selfStat(StatAttack, 2),
		data.EffectBide:          message("is storing energy!"),
		data.EffectDefenseUp1:    selfStat(StatDefense, 1),
		data.EffectDefenseUp2:    selfStat(StatDefense, 2),
		data.EffectEvasionUp1:    selfStat(StatEvasion, 1),
		data.EffectSleep:         guaranteedStatus(StatusSleep),
		data.EffectSpecialUp1:    selfStat(StatSpecial, 1),
		data.EffectSpecialUp2:    selfStat(StatSpecial, 2),
		data.EffectSpeedUp2:      selfStat(StatSpeed, 2),

		data.EffectDrainHP:    drainEffect,
		data.EffectDreamEater: drainEffect,
		data.EffectExplode:    explodeEffect,
		data.EffectPayDay:     message("Coins were scattered everywhere!"),
		data.EffectRage:       rageEffect,
		data.EffectRecoil:     recoilEffect,
		data.EffectBinding:    bindingEffect,
		data.EffectThrashing:  thrashingEffect,
		data.EffectTwineedle:  chanceStatus(StatusPoison, 20),
		data.EffectDisable:    disableEffect,
		data.EffectHyperBeam:  hyperBeamEffect,

		data.EffectAttackDownChance:   chanceStat(StatAttack, data.EffectAttackDownChance.Chance()),
		data.EffectDefenseDownChance:  chanceStat(StatDefense, data.EffectDefenseDownChance.Chance()),
		data.EffectSpeedDownChance:    chanceStat(StatSpeed, data.EffectSpeedDownChance.Chance()),
		data.EffectSpeedDownChanceLow: chanceStat(StatSpeed, data.EffectSpeedDownChanceLow.Chance()),
		data.EffectSpecialDownChance:  chanceStat(StatSpecial, data.EffectSpecialDownChance.Chance()),
		data.EffectBurnChance1:        chanceStatus(StatusBurn, data.EffectBurnChance1.Chance()),
		data.EffectBurnChance2:        chanceStatus(StatusBurn, data.EffectBurnChance2.Chance()),
		data.EffectFreezeChance:       chanceStatus(StatusFreeze, data.EffectFreezeChance.Chance()),
		data.EffectParalyzeChance1:    chanceStatus(StatusParalysis, data.EffectParalyzeChance1.Chance()),
		data.EffectParalyzeChance2:    chanceStatus(StatusParalysis, data.EffectParalyzeChance2.Chance()),
		data.EffectPoisonChance1:      chanceStatus(StatusPoison, data.EffectPoisonChance1.Chance()),
		data.EffectPoisonChance2:      chanceStatus(StatusPoison, data.EffectPoisonChance2.Chance()),
		data.EffectConfusionChance:    chanceConfusion(data.EffectConfusionChance.Chance()),
		data.EffectFlinchChance1:      chanceFlinch(data.EffectFlinchChance1.Chance()),
		data.EffectFlinchChance2:      chanceFlinch(data.EffectFlinchChance2.Chance()),
	}
}

// blockedBySubstitute lists the foe-targeting status moves a substitute
// stops.
func blockedBySubstitute(e data.Effect) bool {
	switch e {
	case data.EffectTransform, data.EffectMimic, data.EffectConversion,
		data.EffectSwitchAndTeleport, data.EffectHaze:
		return false
	}
	return true
}

func (b *Battle) roll(name string, p int) bool {
	ok := percent(b.rng, p)
	b.logger.Debug().Int("chance", p).Bool("hit", ok).Msg(name)
	return ok
}

func message(text string) effectHandler {
	return func(ctx *effectContext) {
		line := text
		if line[0] >= 'a' && line[0] <= 'z' {
			line = ctx.attacker.Name() + " " + line
		}
		ctx.b.emit(EventMessage, ctx.side, line, line)
	}
}

// statusImmune reports the Generation I type immunities to status: a
// creature cannot receive a secondary status from a move of its own type,
// and Poison types are never poisoned.
func statusImmune(c *Combatant, s Status, moveType data.Type) bool {
	if s == StatusPoison && c.Types().Includes(data.Poison) {
		return true
	}
	return c.Types().Includes(moveType)
}

func (b *Battle) inflict(ctx *effectContext, s Status) bool {
	opp := ctx.opp()
	if !ctx.defender.SetStatus(s) {
		return false
	}
	b.emit(EventStatus, opp, ctx.defender.Name()+" "+s.inflictedText()+"!", b.ident(opp), s.String())
	return true
}

func guaranteedStatus(s Status) effectHandler {
	return func(ctx *effectContext) {
		b, d := ctx.b, ctx.defender
		if d.Types().Immune(ctx.move.Type) || (s == StatusPoison && d.Types().Includes(data.Poison)) {
			b.emit(EventImmune, ctx.opp(), "It doesn't affect "+d.Name()+"...", b.ident(ctx.opp()))
			return
		}
		if !b.inflict(ctx, s) {
			b.fail(ctx.side)
		}
	}
}

func chanceStatus(s Status, p int) effectHandler {
	return func(ctx *effectContext) {
		b, d := ctx.b, ctx.defender
		if ctx.damage == 0 || d.IsFainted() || ctx.hitSubstitute || d.Status() != StatusNone {
			return
		}
		if statusImmune(d, s, ctx.move.Type) {
			return
		}
		if b.roll("statusChance", p) {
			b.inflict(ctx, s)
		}
	}
}

func (b *Battle) confuse(side Side, c *Combatant, text string) {
	c.AddVolatile(VolatileConfusion)
	c.confusionTurns = 2 + b.rng.IntN(4)
	b.logger.Debug().Int("turns", c.confusionTurns).Msg("confusionDuration")
	b.emit(EventVolatile, side, text, b.ident(side), "confusion")
}

func confusionEffect(ctx *effectContext) {
	d := ctx.defender
	if d.HasVolatile(VolatileConfusion) {
		ctx.b.emit(EventFail, ctx.side, d.Name()+" is already confused!", ctx.b.ident(ctx.opp()), "confusion")
		return
	}
	ctx.b.confuse(ctx.opp(), d, d.Name()+" became confused!")
}

func chanceConfusion(p int) effectHandler {
	return func(ctx *effectContext) {
		d := ctx.defender
		if d.HasVolatile(VolatileConfusion) {
			return
		}
		if ctx.b.roll("confusionChance", p) {
			ctx.b.confuse(ctx.opp(), d, d.Name()+" became confused!")
		}
	}
}

func chanceFlinch(p int) effectHandler {
	return func(ctx *effectContext) {
		if ctx.b.roll("flinchChance", p) {
			ctx.defender.AddVolatile(VolatileFlinch)
		}
	}
}

func (b *Battle) changeStat(side Side, c *Combatant, stat Stat, delta int) {
	applied := c.ModifyStat(stat, delta)
	if applied == 0 {
		dir := "higher"
		if delta < 0 {
			dir = "lower"
		}
		b.emit(EventFail, side, fmt.Sprintf("%s's %s won't go any %s!", c.Name(), stat.label(), dir), b.ident(side), stat.String())
		return
	}
	kind, verb := EventBoost, "rose"
	if applied < 0 {
		kind, verb = EventUnboost, "fell"
	}
	if applied >= 2 || applied <= -2 {
		verb = "sharply " + verb
	}
	n := applied
	if n < 0 {
		n = -n
	}
	b.emit(kind, side, fmt.Sprintf("%s's %s %s!", c.Name(), stat.label(), verb), b.ident(side), stat.String(), strconv.Itoa(n))
}

func selfStat(stat Stat, delta int) effectHandler {
	return func(ctx *effectContext) {
		ctx.b.changeStat(ctx.side, ctx.attacker, stat, delta)
	}
}

func foeStat(stat Stat, delta int) effectHandler {
	return func(ctx *effectContext) {
		b, d := ctx.b, ctx.defender
		if d.HasVolatile(VolatileMist) {
			b.emit(EventActivate, ctx.opp(), d.Name()+" is protected by the mist!", b.ident(ctx.opp()), "Mist")
			return
		}
		b.changeStat(ctx.opp(), d, stat, delta)
	}
}

func chanceStat(stat Stat, p int) effectHandler {
	drop := foeStat(stat, -1)
	return func(ctx *effectContext) {
		if ctx.defender.HasVolatile(VolatileMist) {
			return
		}
		if ctx.b.roll("statDropChance", p) {
			drop(ctx)
		}
	}
}

func selfVolatile(v Volatile, text string) effectHandler {
	return func(ctx *effectContext) {
		a := ctx.attacker
		if a.HasVolatile(v) {
			ctx.b.fail(ctx.side)
			return
		}
		a.AddVolatile(v)
		ctx.b.emit(EventVolatile, ctx.side, a.Name()+" "+text, ctx.b.ident(ctx.side), v.String())
	}
}

func conversionEffect(ctx *effectContext) {
	ctx.attacker.types = ctx.defender.Types()
	ctx.b.emit(EventVolatile, ctx.side,
		fmt.Sprintf("%s converted its type to %s!", ctx.attacker.Name(), ctx.attacker.types),
		ctx.b.ident(ctx.side), "typechange", ctx.attacker.types.String())
}

func hazeEffect(ctx *effectContext) {
	b := ctx.b
	for _, side := range sides {
		c := b.active(side)
		c.ResetStatStages()
		c.RemoveVolatile(VolatileConfusion | VolatileLeechSeed | VolatileReflect |
			VolatileLightScreen | VolatileFocusEnergy | VolatileMist)
		c.confusionTurns = 0
		c.disabledSlot, c.disabledTurns = -1, 0
	}
	if ctx.defender.Status() != StatusNone && !ctx.defender.IsFainted() {
		old := ctx.defender.Status()
		ctx.defender.CureStatus()
		b.emit(EventCureStatus, ctx.opp(), "", b.ident(ctx.opp()), old.String(), "[silent]")
	}
	b.emit(EventClearBoosts, SideNone, "All stat changes were eliminated!")
}

func healEffect(ctx *effectContext) {
	b, a := ctx.b, ctx.attacker
	if a.HP() == a.MaxHP() {
		b.fail(ctx.side)
		return
	}
	if ctx.move.ID == data.MoveRest {
		a.ForceStatus(StatusSleep)
		a.Heal(a.MaxHP())
		b.emit(EventStatus, ctx.side, a.Name()+" slept and became healthy!", b.ident(ctx.side), StatusSleep.String(), "[from] move: Rest")
		b.emit(EventHeal, ctx.side, "", b.ident(ctx.side), hpText(a), "[silent]")
		return
	}
	a.Heal(a.MaxHP() / 2)
	b.emit(EventHeal, ctx.side, a.Name()+" regained health!", b.ident(ctx.side), hpText(a))
}

func leechSeedEffect(ctx *effectContext) {
	b, d := ctx.b, ctx.defender
	if d.Types().Includes(data.Grass) {
		b.emit(EventImmune, ctx.opp(), "It doesn't affect "+d.Name()+"...", b.ident(ctx.opp()))
		return
	}
	if d.HasVolatile(VolatileLeechSeed) {
		b.fail(ctx.side)
		return
	}
	d.AddVolatile(VolatileLeechSeed)
	b.emit(EventVolatile, ctx.opp(), d.Name()+" was seeded!", b.ident(ctx.opp()), "move: Leech Seed")
}

func mimicEffect(ctx *effectContext) {
	b, a := ctx.b, ctx.attacker
	slot := -1
	for i, m := range a.moves {
		if m.ID == data.MoveMimic {
			slot = i
		}
	}
	var candidates []data.MoveID
	for _, m := range ctx.defender.moves {
		known := false
		for _, own := range a.moves {
			known = known || own.ID == m.ID
		}
		if !known {
			candidates = append(candidates, m.ID)
		}
	}
	if slot < 0 || len(candidates) == 0 {
		b.fail(ctx.side)
		return
	}
	learned := candidates[b.rng.IntN(len(candidates))]
	a.saveMoves()
	a.moves[slot] = MoveSlot{ID: learned, PP: a.moves[slot].PP, MaxPP: a.moves[slot].MaxPP}
	b.emit(EventVolatile, ctx.side, fmt.Sprintf("%s learned %s!", a.Name(), learned), b.ident(ctx.side), "Mimic", learned.String())
}

func substituteEffect(ctx *effectContext) {
	b, a := ctx.b, ctx.attacker
	if a.HasVolatile(VolatileSubstitute) {
		b.emit(EventFail, ctx.side, a.Name()+" already has a substitute!", b.ident(ctx.side), "move: Substitute")
		return
	}
	cost := a.MaxHP() / 4
	if a.HP() <= cost {
		b.emit(EventFail, ctx.side, "But it does not have enough HP left to make a substitute!", b.ident(ctx.side), "move: Substitute")
		return
	}
	a.ApplyDamage(cost)
	a.substituteHP = cost + 1
	a.AddVolatile(VolatileSubstitute)
	b.emit(EventVolatile, ctx.side, a.Name()+" put in a substitute!", b.ident(ctx.side), "Substitute")
	b.emit(EventDamage, ctx.side, "", b.ident(ctx.side), hpText(a))
}

func transformEffect(ctx *effectContext) {
	b, a, d := ctx.b, ctx.attacker, ctx.defender
	a.saveMoves()
	a.types = d.Types()
	a.current = data.Stats{
		HP:      a.stats.HP,
		Attack:  d.current.Attack,
		Defense: d.current.Defense,
		Special: d.current.Special,
		Speed:   d.current.Speed,
	}
	a.stages = d.stages
	a.moves = make([]MoveSlot, len(d.moves))
	for i, m := range d.moves {
		a.moves[i] = MoveSlot{ID: m.ID, PP: 5, MaxPP: 5}
	}
	a.AddVolatile(VolatileTransformed)
	b.emit(EventTransform, ctx.side, fmt.Sprintf("%s transformed into %s!", a.Name(), d.Name()), b.ident(ctx.side), b.ident(ctx.opp()))
}

func drainEffect(ctx *effectContext) {
	if ctx.damage <= 0 {
		return
	}
	a := ctx.attacker
	a.Heal(max(ctx.damage/2, 1))
	ctx.b.emit(EventHeal, ctx.side, ctx.defender.Name()+" had its energy drained!", ctx.b.ident(ctx.side), hpText(a), "[from] drain")
}

func explodeEffect(ctx *effectContext) {
	a := ctx.attacker
	a.ApplyDamage(a.HP())
	ctx.b.emit(EventDamage, ctx.side, "", ctx.b.ident(ctx.side), hpText(a))
}

// rageEffect only sets the flag; the attack build-up is not modelled.
func rageEffect(ctx *effectContext) {
	ctx.attacker.AddVolatile(VolatileRage)
	ctx.b.emit(EventVolatile, ctx.side, ctx.attacker.Name()+" is in a rage!", ctx.b.ident(ctx.side), "Rage")
}

func recoilEffect(ctx *effectContext) {
	recoil := ctx.damage / 4
	if recoil <= 0 {
		return
	}
	a := ctx.attacker
	a.ApplyDamage(recoil)
	ctx.b.emit(EventDamage, ctx.side, a.Name()+" is hit with recoil!", ctx.b.ident(ctx.side), hpText(a), "[from] Recoil")
}

func bindingEffect(ctx *effectContext) {
	b, d := ctx.b, ctx.defender
	if ctx.damage == 0 || d.IsFainted() || ctx.hitSubstitute {
		return
	}
	s := b.sides[ctx.opp()]
	s.mode = ModeBound
	s.turnsLeft = 2 + b.rng.IntN(4)
	d.RemoveVolatile(VolatileInvulnerable)
	b.logger.Debug().Int("turns", s.turnsLeft).Msg("bindDuration")
	b.emit(EventActivate, ctx.opp(), fmt.Sprintf("%s was trapped by %s!", d.Name(), ctx.move.Name),
		b.ident(ctx.opp()), "move: "+ctx.move.Name)
}

func thrashingEffect(ctx *effectContext) {
	s := ctx.b.sides[ctx.side]
	if s.mode == ModeThrashing {
		return
	}
	s.mode = ModeThrashing
	s.turnsLeft = 1 + ctx.b.rng.IntN(2)
	s.lockedMove = ctx.move.ID
	ctx.b.logger.Debug().Int("turns", s.turnsLeft).Msg("thrashDuration")
}

func disableEffect(ctx *effectContext) {
	b, d := ctx.b, ctx.defender
	if d.disabledSlot >= 0 {
		b.fail(ctx.side)
		return
	}
	var slots []int
	for i, m := range d.moves {
		if m.PP > 0 {
			slots = append(slots, i)
		}
	}
	if len(slots) == 0 {
		b.fail(ctx.side)
		return
	}
	d.disabledSlot = slots[b.rng.IntN(len(slots))]
	d.disabledTurns = 1 + b.rng.IntN(8)
	id := d.moves[d.disabledSlot].ID
	b.emit(EventVolatile, ctx.opp(), fmt.Sprintf("%s's %s was disabled!", d.Name(), id), b.ident(ctx.opp()), "Disable", id.String())
}

func hyperBeamEffect(ctx *effectContext) {
	if ctx.defender.IsFainted() {
		return
	}
	ctx.b.sides[ctx.side].mode = ModeRecharging
}
