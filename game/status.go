package game

import (
	"fmt"
	"strings"
)

// Status is the primary, switch-persistent condition of a combatant. At most
// one is held at a time.
type Status int

const (
	StatusNone Status = iota
	StatusBurn
	StatusPoison
	StatusParalysis
	StatusSleep
	StatusFreeze
)

var statusCodes = [...]string{"", "brn", "psn", "par", "slp", "frz"}

// String returns the short protocol code (brn, psn, ...), empty for none.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusCodes) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusCodes[s]
}

// ParseStatus is the inverse of String.
func ParseStatus(code string) Status {
	for i, c := range statusCodes {
		if c != "" && c == code {
			return Status(i)
		}
	}
	return StatusNone
}

func (s Status) inflictedText() string {
	switch s {
	case StatusBurn:
		return "was burned"
	case StatusPoison:
		return "was poisoned"
	case StatusParalysis:
		return "is paralyzed! It may be unable to move"
	case StatusSleep:
		return "fell asleep"
	case StatusFreeze:
		return "was frozen solid"
	}
	return ""
}

// Volatile is a set of switch-scoped conditions.
type Volatile uint16

const (
	VolatileConfusion Volatile = 1 << iota
	VolatileLeechSeed
	VolatileFlinch
	VolatileReflect
	VolatileLightScreen
	VolatileSubstitute
	VolatileMist
	VolatileFocusEnergy
	VolatileRage
	VolatileTransformed
	// VolatileInvulnerable covers the charge turn of Fly and Dig.
	VolatileInvulnerable
)

var volatileNames = []struct {
	v    Volatile
	name string
}{
	{VolatileConfusion, "confusion"},
	{VolatileLeechSeed, "leechSeed"},
	{VolatileFlinch, "flinch"},
	{VolatileReflect, "reflect"},
	{VolatileLightScreen, "lightScreen"},
	{VolatileSubstitute, "substitute"},
	{VolatileMist, "mist"},
	{VolatileFocusEnergy, "focusEnergy"},
	{VolatileRage, "rage"},
	{VolatileTransformed, "transformed"},
	{VolatileInvulnerable, "invulnerable"},
}

func (v Volatile) String() string {
	var parts []string
	for _, n := range volatileNames {
		if v&n.v != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Stat indexes the staged and unstaged battle stats.
type Stat int

const (
	StatHP Stat = iota
	StatAttack
	StatDefense
	StatSpecial
	StatSpeed
	StatAccuracy
	StatEvasion
	numStats
)

var statNames = [numStats]string{"hp", "atk", "def", "spc", "spe", "accuracy", "evasion"}

func (s Stat) String() string {
	if s < 0 || s >= numStats {
		return fmt.Sprintf("Stat(%d)", int(s))
	}
	return statNames[s]
}

// ParseStat is the inverse of String.
func ParseStat(name string) (Stat, bool) {
	for i, n := range statNames {
		if n == name {
			return Stat(i), true
		}
	}
	return 0, false
}

func (s Stat) label() string {
	switch s {
	case StatAttack:
		return "Attack"
	case StatDefense:
		return "Defense"
	case StatSpecial:
		return "Special"
	case StatSpeed:
		return "Speed"
	case StatAccuracy:
		return "accuracy"
	case StatEvasion:
		return "evasiveness"
	}
	return "HP"
}

const (
	minStage = -6
	maxStage = 6
)

// stageRatio returns the numerator and denominator of the stage multiplier:
// (2+s)/2 for s >= 0, 2/(2-s) otherwise.
func stageRatio(stage int) (num, den int) {
	if stage >= 0 {
		return 2 + stage, 2
	}
	return 2, 2 - stage
}
