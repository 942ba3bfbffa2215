package game

import (
	"fmt"
	"strconv"

	"gen1-battle/data"
)

var sides = [2]Side{Side1, Side2}

// maxCallDepth bounds chains such as Metronome calling Mirror Move.
const maxCallDepth = 3

// Turn resolves one turn. Both actions are validated before anything
// changes; an invalid action rejects the whole turn.
func (b *Battle) Turn(a1, a2 Action) error {
	if b.over {
		return ErrBattleOver
	}
	actions := [2]Action{a1, a2}
	for _, side := range sides {
		if err := b.validateAction(side, actions[side]); err != nil {
			return err
		}
	}

	b.turn++
	b.emit(EventTurn, SideNone, fmt.Sprintf("Turn %d", b.turn), strconv.Itoa(b.turn))
	for _, s := range b.sides {
		s.lastDamage = 0
	}

	for _, side := range sides {
		if actions[side].Kind == ActionSwitch {
			b.switchIn(side, actions[side].Target)
			actions[side] = skip
		}
	}

	var locked [2]bool
	for _, side := range sides {
		if actions[side].Kind != ActionMove || b.active(side).IsFainted() {
			continue
		}
		s := b.sides[side]
		switch s.mode {
		case ModeRecharging:
			s.mode = ModeNormal
			b.emit(EventCant, side, b.active(side).Name()+" must recharge!", b.ident(side), "recharge")
			actions[side] = skip
		case ModeBound:
			if s.turnsLeft > 0 {
				s.turnsLeft--
				b.emit(EventCant, side, b.active(side).Name()+" can't move!", b.ident(side), "partiallytrapped")
				actions[side] = skip
			}
		case ModeCharging, ModeThrashing:
			locked[side] = true
		}
	}

	first := b.order()
	second := first.Opponent()
	connected := b.execute(first, actions[first], locked[first])
	if !b.checkOver() {
		target := b.active(second)
		if connected && actions[second].Kind == ActionMove && target.HasVolatile(VolatileFlinch) && !target.IsFainted() {
			target.RemoveVolatile(VolatileFlinch)
			b.emit(EventCant, second, target.Name()+" flinched!", b.ident(second), "flinch")
		} else {
			b.execute(second, actions[second], locked[second])
		}
	}
	if !b.checkOver() {
		b.residuals()
		b.checkOver()
	}
	for _, side := range sides {
		b.active(side).RemoveVolatile(VolatileFlinch)
	}
	return nil
}

// order returns the side that moves first: the faster effective speed, or
// a coin flip on a tie.
func (b *Battle) order() Side {
	s1 := b.active(Side1).EffectiveStat(StatSpeed)
	s2 := b.active(Side2).EffectiveStat(StatSpeed)
	switch {
	case s1 > s2:
		return Side1
	case s2 > s1:
		return Side2
	}
	roll := b.rng.IntN(2)
	b.logger.Debug().Int("speed", s1).Int("roll", roll).Msg("speedTie")
	if roll == 0 {
		return Side1
	}
	return Side2
}

// execute runs one side's action and reports whether a move connected.
func (b *Battle) execute(side Side, a Action, locked bool) bool {
	attacker := b.active(side)
	if a.Kind != ActionMove || attacker.IsFainted() {
		return false
	}
	s := b.sides[side]
	if !b.canAct(side) {
		if s.mode == ModeCharging || s.mode == ModeThrashing {
			s.mode, s.turnsLeft = ModeNormal, 0
			attacker.RemoveVolatile(VolatileInvulnerable)
		}
		return false
	}

	if locked && s.mode != ModeCharging && s.mode != ModeThrashing {
		// The lock was broken earlier this turn, for example by a bind.
		return false
	}

	slot := a.Move
	if !locked && !attacker.mustStruggle() && !attacker.usable(slot) {
		if slot == attacker.disabledSlot {
			// Disabled earlier this turn by the faster side.
			name := data.MustMove(attacker.moves[slot].ID).Name
			b.emit(EventCant, side, fmt.Sprintf("%s's %s is disabled!", attacker.Name(), name), b.ident(side), "Disable", name)
			return false
		}
		// A side released from a bind this turn was not asked for a slot.
		for i := len(attacker.moves) - 1; i >= 0; i-- {
			if attacker.usable(i) {
				slot = i
			}
		}
	}
	a.Move = slot

	var m data.Move
	switch {
	case locked:
		m = data.MustMove(s.lockedMove)
	case attacker.mustStruggle():
		m = data.MustMove(data.MoveStruggle)
	default:
		attacker.moves[a.Move].PP--
		m = data.MustMove(attacker.moves[a.Move].ID)
	}

	wasThrashing := locked && s.mode == ModeThrashing
	b.emit(EventMove, side, fmt.Sprintf("%s used %s!", attacker.Name(), m.Name),
		b.ident(side), m.Name, b.ident(side.Opponent()))
	connected := b.useMove(side, m, 0)

	if wasThrashing && s.mode == ModeThrashing {
		s.turnsLeft--
		if s.turnsLeft <= 0 {
			s.mode = ModeNormal
			if !attacker.IsFainted() && !attacker.HasVolatile(VolatileConfusion) {
				b.confuse(side, attacker, attacker.Name()+" became confused due to fatigue!")
			}
		}
	}
	return connected
}

// canAct applies status gating and then confusion.
func (b *Battle) canAct(side Side) bool {
	c := b.active(side)
	switch c.status {
	case StatusParalysis:
		roll := b.rng.IntN(100)
		b.logger.Debug().Int("roll", roll).Msg("paralysisCheck")
		if roll < 25 {
			b.emit(EventCant, side, c.Name()+" is fully paralyzed!", b.ident(side), "par")
			return false
		}
	case StatusSleep:
		roll := b.rng.IntN(3)
		b.logger.Debug().Int("roll", roll).Msg("wakeCheck")
		if roll != 0 {
			b.emit(EventCant, side, c.Name()+" is fast asleep.", b.ident(side), "slp")
			return false
		}
		c.CureStatus()
		b.emit(EventCureStatus, side, c.Name()+" woke up!", b.ident(side), "slp")
	case StatusFreeze:
		roll := b.rng.IntN(100)
		b.logger.Debug().Int("roll", roll).Msg("thawCheck")
		if roll >= 10 {
			b.emit(EventCant, side, c.Name()+" is frozen solid!", b.ident(side), "frz")
			return false
		}
		c.CureStatus()
		b.emit(EventCureStatus, side, c.Name()+" thawed out!", b.ident(side), "frz")
	}

	if !c.HasVolatile(VolatileConfusion) {
		return true
	}
	c.confusionTurns--
	if c.confusionTurns <= 0 {
		c.RemoveVolatile(VolatileConfusion)
		b.emit(EventVolatileEnd, side, c.Name()+" snapped out of confusion!", b.ident(side), "confusion")
		return true
	}
	b.emit(EventActivate, side, c.Name()+" is confused!", b.ident(side), "confusion")
	roll := b.rng.IntN(2)
	b.logger.Debug().Int("roll", roll).Msg("confusionCheck")
	if roll != 0 {
		return true
	}
	lost := c.ApplyDamage(confusionDamage(c))
	b.emit(EventDamage, side, fmt.Sprintf("It hurt itself in its confusion! (%d HP)", lost),
		b.ident(side), hpText(c), "[from] confusion")
	return false
}

func chargeText(id data.MoveID) string {
	switch id {
	case data.MoveFly:
		return "flew up high!"
	case data.MoveDig:
		return "dug a hole!"
	case data.MoveSolarBeam:
		return "took in sunlight!"
	case data.MoveSkullBash:
		return "lowered its head!"
	case data.MoveSkyAttack:
		return "is glowing!"
	}
	return "made a whirlwind!"
}

// useMove resolves m for side after the move announcement.
func (b *Battle) useMove(side Side, m data.Move, depth int) bool {
	attacker, defender := b.active(side), b.active(side.Opponent())
	s := b.sides[side]
	if depth > maxCallDepth {
		b.fail(side)
		return false
	}
	if m.Effect != data.EffectMirrorMove {
		s.lastMove = m.ID
	}

	switch m.Effect {
	case data.EffectMetronome:
		pool := data.MetronomePool()
		called := data.MustMove(pool[b.rng.IntN(len(pool))])
		b.logger.Debug().Str("move", called.Name).Msg("metronome")
		b.emit(EventMove, side, fmt.Sprintf("Waggling a finger let %s use %s!", attacker.Name(), called.Name),
			b.ident(side), called.Name, b.ident(side.Opponent()), "[from] move: Metronome")
		return b.useMove(side, called, depth+1)
	case data.EffectMirrorMove:
		last := b.sides[side.Opponent()].lastMove
		if !last.Valid() || last == data.MoveMirrorMove {
			b.fail(side)
			return false
		}
		copied := data.MustMove(last)
		b.emit(EventMove, side, fmt.Sprintf("%s copied %s!", attacker.Name(), copied.Name),
			b.ident(side), copied.Name, b.ident(side.Opponent()), "[from] move: Mirror Move")
		return b.useMove(side, copied, depth+1)
	case data.EffectCharge:
		if s.mode != ModeCharging {
			s.mode, s.turnsLeft, s.lockedMove = ModeCharging, 1, m.ID
			if m.ID == data.MoveFly || m.ID == data.MoveDig {
				attacker.AddVolatile(VolatileInvulnerable)
			}
			b.emit(EventPrepare, side, attacker.Name()+" "+chargeText(m.ID), b.ident(side), m.Name)
			return false
		}
		s.mode, s.turnsLeft = ModeNormal, 0
		attacker.RemoveVolatile(VolatileInvulnerable)
	}

	if m.Target == data.TargetSelf {
		return b.resolveHit(side, m)
	}
	if defender.IsFainted() {
		b.fail(side)
		return false
	}
	if m.Effect == data.EffectDreamEater && defender.Status() != StatusSleep {
		b.emit(EventImmune, side.Opponent(), "It didn't affect "+defender.Name()+".", b.ident(side.Opponent()))
		return false
	}
	if !b.hits(attacker, defender, m) {
		b.emit(EventMiss, side, attacker.Name()+"'s attack missed!", b.ident(side), b.ident(side.Opponent()))
		switch m.Effect {
		case data.EffectJumpKick:
			attacker.ApplyDamage(1)
			b.emit(EventDamage, side, attacker.Name()+" kept going and crashed!", b.ident(side), hpText(attacker), "[from] crash")
		case data.EffectExplode:
			attacker.ApplyDamage(attacker.HP())
			b.emit(EventDamage, side, "", b.ident(side), hpText(attacker))
		}
		return false
	}
	return b.resolveHit(side, m)
}

// hits rolls accuracy. Every move but Swift also misses on a separate
// 1-in-256 roll, as in the Generation I games.
func (b *Battle) hits(attacker, defender *Combatant, m data.Move) bool {
	if defender.HasVolatile(VolatileInvulnerable) {
		return false
	}
	if m.Effect == data.EffectSwift {
		return true
	}
	an, ad := stageRatio(attacker.Stage(StatAccuracy))
	en, ed := stageRatio(-defender.Stage(StatEvasion))
	acc := m.Accuracy * an * en / (ad * ed)
	roll := b.rng.IntN(100)
	b.logger.Debug().Int("roll", roll).Int("accuracy", acc).Msg("accuracyCheck")
	if roll >= acc {
		return false
	}
	quirk := b.rng.IntN(256)
	b.logger.Debug().Int("roll", quirk).Msg("missQuirk")
	return quirk != 255
}

// resolveHit applies damage, commentary and the move's effect once the
// move has connected.
func (b *Battle) resolveHit(side Side, m data.Move) bool {
	opp := side.Opponent()
	ctx := &effectContext{
		b:        b,
		side:     side,
		attacker: b.active(side),
		defender: b.active(opp),
		move:     m,
	}
	if m.Damaging() && m.Target != data.TargetSelf {
		if !b.dealDamage(ctx) {
			if m.Effect == data.EffectExplode {
				explodeEffect(ctx)
			}
			return false
		}
	}

	switch data.Classify(m.Effect) {
	case data.TimingSecondaryChance:
		if ctx.damage == 0 || ctx.defender.IsFainted() || ctx.hitSubstitute {
			return true
		}
	case data.TimingOnBegin, data.TimingOnEnd:
		if m.Target != data.TargetSelf && ctx.defender.HasVolatile(VolatileSubstitute) && blockedBySubstitute(m.Effect) {
			b.fail(side)
			return true
		}
	}
	effectHandlers[m.Effect](ctx)
	return true
}

// dealDamage runs the damage loop. It returns false when the move had no
// effect at all.
func (b *Battle) dealDamage(ctx *effectContext) bool {
	m, opp := ctx.move, ctx.side.Opponent()
	defender := ctx.defender

	switch m.Effect {
	case data.EffectOHKO:
		if defender.Types().Immune(m.Type) {
			b.emit(EventImmune, opp, "It doesn't affect "+defender.Name()+"...", b.ident(opp))
			return false
		}
		b.applyHit(ctx, max(defender.HP(), defender.substituteHP))
		b.emit(EventActivate, opp, "It's a one-hit KO!", b.ident(opp), "ohko")
		return true
	case data.EffectCounter:
		s := b.sides[ctx.side]
		if s.lastDamage == 0 || (s.lastDamageType != data.Normal && s.lastDamageType != data.Fighting) {
			b.fail(ctx.side)
			return false
		}
		b.applyHit(ctx, 2*s.lastDamage)
		return true
	}

	hits := b.hitCount(m)
	eff := 1.0
	landed := 0
	for range hits {
		r := b.computeDamage(ctx.attacker, defender, m)
		eff = r.effectiveness
		if eff == 0 {
			b.emit(EventImmune, opp, "It doesn't affect "+defender.Name()+"...", b.ident(opp))
			return false
		}
		if r.crit {
			b.emit(EventCrit, opp, "A critical hit!", b.ident(opp))
		}
		broke := b.applyHit(ctx, r.damage)
		landed++
		if defender.IsFainted() || broke {
			break
		}
	}
	if hits > 1 {
		b.emit(EventHitCount, opp, fmt.Sprintf("Hit %d time(s)!", landed), b.ident(opp), strconv.Itoa(landed))
	}
	switch {
	case eff > 1:
		b.emit(EventSuper, opp, "It's super effective!", b.ident(opp))
	case eff < 1:
		b.emit(EventResisted, opp, "It's not very effective...", b.ident(opp))
	}
	if m.Type == data.Fire && defender.Status() == StatusFreeze && ctx.damage > 0 {
		defender.CureStatus()
		b.emit(EventCureStatus, opp, defender.Name()+" thawed out!", b.ident(opp), "frz")
	}
	return true
}

// applyHit routes dmg to the substitute or the defender and reports whether
// a substitute broke.
func (b *Battle) applyHit(ctx *effectContext, dmg int) bool {
	opp := ctx.side.Opponent()
	defender := ctx.defender
	if defender.HasVolatile(VolatileSubstitute) {
		ctx.hitSubstitute = true
		defender.substituteHP -= dmg
		if defender.substituteHP <= 0 {
			defender.substituteHP = 0
			defender.RemoveVolatile(VolatileSubstitute)
			b.emit(EventVolatileEnd, opp, defender.Name()+"'s substitute faded!", b.ident(opp), "Substitute")
			return true
		}
		b.emit(EventActivate, opp, "The substitute took damage for "+defender.Name()+"!", b.ident(opp), "Substitute")
		return false
	}
	lost := defender.ApplyDamage(dmg)
	ctx.damage += lost
	s := b.sides[opp]
	s.lastDamage, s.lastDamageType = lost, ctx.move.Type
	b.emit(EventDamage, opp, fmt.Sprintf("%s lost %d HP.", defender.Name(), lost), b.ident(opp), hpText(defender))
	return false
}

// residuals applies end-of-turn damage in order: burn, poison, leech seed,
// binding. Each step skips combatants that have already fainted.
func (b *Battle) residuals() {
	for _, side := range sides {
		c := b.active(side)
		if c.IsFainted() || c.status != StatusBurn {
			continue
		}
		c.ApplyDamage(max(c.MaxHP()/8, 1))
		b.emit(EventDamage, side, c.Name()+" was hurt by its burn!", b.ident(side), hpText(c), "[from] brn")
	}
	for _, side := range sides {
		c := b.active(side)
		if c.IsFainted() || c.status != StatusPoison {
			continue
		}
		c.ApplyDamage(max(c.MaxHP()/16, 1))
		b.emit(EventDamage, side, c.Name()+" was hurt by poison!", b.ident(side), hpText(c), "[from] psn")
	}
	for _, side := range sides {
		c, seeder := b.active(side), b.active(side.Opponent())
		if !c.HasVolatile(VolatileLeechSeed) || c.IsFainted() || seeder.IsFainted() {
			continue
		}
		drained := c.ApplyDamage(max(c.MaxHP()/16, 1))
		seeder.Heal(drained)
		b.emit(EventDamage, side, c.Name()+"'s health was sapped by Leech Seed!", b.ident(side), hpText(c), "[from] Leech Seed")
		b.emit(EventHeal, side.Opponent(), "", b.ident(side.Opponent()), hpText(seeder), "[silent]")
	}
	for _, side := range sides {
		s, c := b.sides[side], b.active(side)
		if s.mode != ModeBound {
			continue
		}
		if !c.IsFainted() {
			c.ApplyDamage(max(c.MaxHP()/16, 1))
			b.emit(EventDamage, side, c.Name()+" is hurt by the squeeze!", b.ident(side), hpText(c), "[from] partiallytrapped")
		}
		if s.turnsLeft <= 0 {
			s.mode = ModeNormal
			b.emit(EventVolatileEnd, side, c.Name()+" was freed!", b.ident(side), "partiallytrapped")
		}
	}
	for _, side := range sides {
		c := b.active(side)
		if c.disabledSlot < 0 {
			continue
		}
		c.disabledTurns--
		if c.disabledTurns <= 0 {
			c.disabledSlot = -1
			b.emit(EventVolatileEnd, side, c.Name()+" is no longer disabled!", b.ident(side), "Disable")
		}
	}
}

func (b *Battle) fail(side Side) {
	b.emit(EventFail, side, "But it failed!", b.ident(side))
}
