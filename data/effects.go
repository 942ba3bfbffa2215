package data

import "fmt"

// Effect is the symbolic tag that selects how a move's secondary
// consequence is resolved. A move carries exactly one.
type Effect int

const (
	EffectNone Effect = iota

	EffectConfusion
	EffectConversion
	EffectFocusEnergy
	EffectHaze
	EffectHeal
	EffectLeechSeed
	EffectLightScreen
	EffectMimic
	EffectMist
	EffectParalyze
	EffectPoison
	EffectReflect
	EffectSplash
	EffectSubstitute
	EffectSwitchAndTeleport
	EffectTransform

	EffectAccuracyDown1
	EffectAttackDown1
	EffectDefenseDown1
	EffectDefenseDown2
	EffectSpeedDown1
	EffectAttackUp1
	EffectAttackUp2
	EffectBide
	EffectDefenseUp1
	EffectDefenseUp2
	EffectEvasionUp1
	EffectSleep
	EffectSpecialUp1
	EffectSpecialUp2
	EffectSpeedUp2

	EffectDrainHP
	EffectDreamEater
	EffectExplode
	EffectJumpKick
	EffectPayDay
	EffectRage
	EffectRecoil
	EffectBinding
	EffectCharge
	EffectSpecialDamage
	EffectSuperFang
	EffectSwift
	EffectThrashing
	EffectDoubleHit
	EffectMultiHit
	EffectTwineedle

	EffectAttackDownChance
	EffectDefenseDownChance
	EffectSpeedDownChance
	EffectSpecialDownChance
	EffectBurnChance1
	EffectBurnChance2
	EffectConfusionChance
	EffectFlinchChance1
	EffectFlinchChance2
	EffectFreezeChance
	EffectParalyzeChance1
	EffectParalyzeChance2
	EffectPoisonChance1
	EffectPoisonChance2

	EffectDisable
	EffectHighCritical
	EffectHyperBeam
	EffectMetronome
	EffectMirrorMove
	EffectOHKO

	// Constrict's 10% speed drop, split out of EffectSpeedDownChance.
	EffectSpeedDownChanceLow
	EffectCounter

	numEffects
)

var effectNames = [numEffects]string{
	"None",
	"Confusion", "Conversion", "FocusEnergy", "Haze", "Heal", "LeechSeed",
	"LightScreen", "Mimic", "Mist", "Paralyze", "Poison", "Reflect", "Splash",
	"Substitute", "SwitchAndTeleport", "Transform",
	"AccuracyDown1", "AttackDown1", "DefenseDown1", "DefenseDown2", "SpeedDown1",
	"AttackUp1", "AttackUp2", "Bide", "DefenseUp1", "DefenseUp2", "EvasionUp1",
	"Sleep", "SpecialUp1", "SpecialUp2", "SpeedUp2",
	"DrainHP", "DreamEater", "Explode", "JumpKick", "PayDay", "Rage", "Recoil",
	"Binding", "Charge", "SpecialDamage", "SuperFang", "Swift", "Thrashing",
	"DoubleHit", "MultiHit", "Twineedle",
	"AttackDownChance", "DefenseDownChance", "SpeedDownChance",
	"SpecialDownChance", "BurnChance1", "BurnChance2", "ConfusionChance",
	"FlinchChance1", "FlinchChance2", "FreezeChance", "ParalyzeChance1",
	"ParalyzeChance2", "PoisonChance1", "PoisonChance2",
	"Disable", "HighCritical", "HyperBeam", "Metronome", "MirrorMove", "OHKO",
	"SpeedDownChanceLow", "Counter",
}

// NumEffects is the number of effect tags, EffectNone included.
const NumEffects = int(numEffects)

func (e Effect) String() string {
	if e < 0 || e >= numEffects {
		return fmt.Sprintf("Effect(%d)", int(e))
	}
	return effectNames[e]
}

// Timing is the point in a move's resolution at which its effect applies.
type Timing int

const (
	TimingNone Timing = iota
	// TimingOnBegin effects replace damage: guaranteed status, screens,
	// healing, copying moves.
	TimingOnBegin
	// TimingOnEnd effects are stat stage changes and sleep.
	TimingOnEnd
	// TimingAlways effects are bound to the damage step.
	TimingAlways
	// TimingSecondaryChance effects roll after a hit connects.
	TimingSecondaryChance
)

func (t Timing) String() string {
	switch t {
	case TimingOnBegin:
		return "on-begin"
	case TimingOnEnd:
		return "on-end"
	case TimingAlways:
		return "always"
	case TimingSecondaryChance:
		return "secondary-chance"
	}
	return "none"
}

var timingByEffect = map[Effect]Timing{
	EffectNone: TimingNone,

	EffectConfusion:         TimingOnBegin,
	EffectConversion:        TimingOnBegin,
	EffectFocusEnergy:       TimingOnBegin,
	EffectHaze:              TimingOnBegin,
	EffectHeal:              TimingOnBegin,
	EffectLeechSeed:         TimingOnBegin,
	EffectLightScreen:       TimingOnBegin,
	EffectMimic:             TimingOnBegin,
	EffectMist:              TimingOnBegin,
	EffectParalyze:          TimingOnBegin,
	EffectPoison:            TimingOnBegin,
	EffectReflect:           TimingOnBegin,
	EffectSplash:            TimingOnBegin,
	EffectSubstitute:        TimingOnBegin,
	EffectSwitchAndTeleport: TimingOnBegin,
	EffectTransform:         TimingOnBegin,

	EffectAccuracyDown1: TimingOnEnd,
	EffectAttackDown1:   TimingOnEnd,
	EffectDefenseDown1:  TimingOnEnd,
	EffectDefenseDown2:  TimingOnEnd,
	EffectSpeedDown1:    TimingOnEnd,
	EffectAttackUp1:     TimingOnEnd,
	EffectAttackUp2:     TimingOnEnd,
	EffectBide:          TimingOnEnd,
	EffectDefenseUp1:    TimingOnEnd,
	EffectDefenseUp2:    TimingOnEnd,
	EffectEvasionUp1:    TimingOnEnd,
	EffectSleep:         TimingOnEnd,
	EffectSpecialUp1:    TimingOnEnd,
	EffectSpecialUp2:    TimingOnEnd,
	EffectSpeedUp2:      TimingOnEnd,

	EffectDrainHP:       TimingAlways,
	EffectDreamEater:    TimingAlways,
	EffectExplode:       TimingAlways,
	EffectJumpKick:      TimingAlways,
	EffectPayDay:        TimingAlways,
	EffectRage:          TimingAlways,
	EffectRecoil:        TimingAlways,
	EffectBinding:       TimingAlways,
	EffectCharge:        TimingAlways,
	EffectSpecialDamage: TimingAlways,
	EffectSuperFang:     TimingAlways,
	EffectSwift:         TimingAlways,
	EffectThrashing:     TimingAlways,
	EffectDoubleHit:     TimingAlways,
	EffectMultiHit:      TimingAlways,
	EffectTwineedle:     TimingAlways,
	EffectDisable:       TimingAlways,
	EffectHighCritical:  TimingAlways,
	EffectHyperBeam:     TimingAlways,
	EffectMetronome:     TimingAlways,
	EffectMirrorMove:    TimingAlways,
	EffectOHKO:          TimingAlways,
	EffectCounter:       TimingAlways,

	EffectAttackDownChance:   TimingSecondaryChance,
	EffectDefenseDownChance:  TimingSecondaryChance,
	EffectSpeedDownChance:    TimingSecondaryChance,
	EffectSpeedDownChanceLow: TimingSecondaryChance,
	EffectSpecialDownChance:  TimingSecondaryChance,
	EffectBurnChance1:        TimingSecondaryChance,
	EffectBurnChance2:        TimingSecondaryChance,
	EffectConfusionChance:    TimingSecondaryChance,
	EffectFlinchChance1:      TimingSecondaryChance,
	EffectFlinchChance2:      TimingSecondaryChance,
	EffectFreezeChance:       TimingSecondaryChance,
	EffectParalyzeChance1:    TimingSecondaryChance,
	EffectParalyzeChance2:    TimingSecondaryChance,
	EffectPoisonChance1:      TimingSecondaryChance,
	EffectPoisonChance2:      TimingSecondaryChance,
}

// Classify returns the timing class of e. Unknown tags are TimingNone.
func Classify(e Effect) Timing {
	return timingByEffect[e]
}

// MultiHit reports whether moves with this tag strike more than once.
func (e Effect) MultiHit() bool {
	return e == EffectDoubleHit || e == EffectMultiHit || e == EffectTwineedle
}

// HighCritical reports whether the tag multiplies the critical-hit rate.
func (e Effect) HighCritical() bool {
	return e == EffectHighCritical
}

// Chance returns the percent probability of a secondary-chance effect, or
// 0 for tags that are not chance based.
func (e Effect) Chance() int {
	switch e {
	case EffectAttackDownChance, EffectSpeedDownChance, EffectSpecialDownChance:
		return 33
	case EffectDefenseDownChance, EffectSpeedDownChanceLow:
		return 10
	case EffectBurnChance1, EffectParalyzeChance1, EffectFreezeChance,
		EffectConfusionChance, EffectFlinchChance1:
		return 10
	case EffectBurnChance2, EffectParalyzeChance2, EffectPoisonChance2,
		EffectFlinchChance2:
		return 30
	case EffectPoisonChance1:
		return 20
	}
	return 0
}
