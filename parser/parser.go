package parser

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"gen1-battle/data"
	"gen1-battle/game"
)

// ParseLog folds a whole protocol transcript into a spectator snapshot.
func ParseLog(logText string) (*game.Snapshot, error) {
	snap := game.NewSnapshot()
	for _, line := range strings.Split(logText, "\n") {
		ProcessLine(snap, line)
	}
	return snap, nil
}

// ProcessLine applies one protocol line such as
// |-damage|p2a: Onix|31/95 to snap. Unknown commands and malformed lines
// are ignored.
func ProcessLine(snap *game.Snapshot, line string) {
	parts := strings.Split(strings.TrimSpace(line), "|")
	if len(parts) < 2 {
		return
	}
	switch parts[1] {
	case "player":
		if len(parts) >= 4 {
			if side, ok := sideOf(parts[2]); ok {
				snap.Sides[side].Name = parts[3]
			}
		}
	case "poke":
		if len(parts) >= 4 {
			if side, ok := sideOf(parts[2]); ok {
				addMember(&snap.Sides[side], parts[3])
			}
		}
	case "switch":
		if len(parts) >= 5 {
			side, name, ok := splitIdent(parts[2])
			if !ok {
				return
			}
			s := &snap.Sides[side]
			if s.Member(name) == nil {
				addMember(s, parts[3])
			}
			_, idx, _ := lo.FindIndexOf(s.Team, func(c game.CombatantSnapshot) bool { return c.Species == name })
			s.Active = idx
			poke := &s.Team[idx]
			poke.Boosts = make(map[string]int)
			setHP(poke, parts[4])
		}
	case "move":
		if len(parts) >= 4 {
			poke := member(snap, parts[2])
			if poke == nil || (len(parts) >= 6 && strings.HasPrefix(parts[5], "[from]")) {
				return
			}
			m, err := data.MoveByName(parts[3])
			if err != nil {
				return
			}
			if lo.ContainsBy(poke.Moves, func(ms game.MoveSnapshot) bool { return ms.Name == m.Name }) {
				return
			}
			poke.Moves = append(poke.Moves, game.MoveSnapshot{
				Name: m.Name, Type: m.Type, Power: m.Power, Accuracy: m.Accuracy,
			})
		}
	case "-damage", "-heal":
		if len(parts) >= 4 {
			if poke := member(snap, parts[2]); poke != nil {
				setHP(poke, parts[3])
			}
		}
	case "-status":
		if len(parts) >= 4 {
			if poke := member(snap, parts[2]); poke != nil {
				poke.Status = game.ParseStatus(parts[3])
			}
		}
	case "-curestatus":
		if len(parts) >= 3 {
			if poke := member(snap, parts[2]); poke != nil {
				poke.Status = game.StatusNone
			}
		}
	case "-boost", "-unboost":
		if len(parts) >= 5 {
			poke := member(snap, parts[2])
			amount, err := strconv.Atoi(parts[4])
			if poke == nil || err != nil {
				return
			}
			if parts[1] == "-unboost" {
				amount = -amount
			}
			if poke.Boosts == nil {
				poke.Boosts = make(map[string]int)
			}
			poke.Boosts[parts[3]] += amount
			if poke.Boosts[parts[3]] == 0 {
				delete(poke.Boosts, parts[3])
			}
		}
	case "-clearallboost":
		for i := range snap.Sides {
			if poke := snap.Sides[i].ActiveCombatant(); poke != nil {
				poke.Boosts = make(map[string]int)
			}
		}
	case "faint":
		if len(parts) >= 3 {
			if poke := member(snap, parts[2]); poke != nil {
				poke.HP = 0
				poke.Fainted = true
			}
		}
	case "turn":
		if len(parts) >= 3 {
			if t, err := strconv.Atoi(parts[2]); err == nil {
				snap.Turn = t
			}
		}
	case "win":
		if len(parts) >= 3 {
			snap.Over = true
			for _, s := range snap.Sides {
				if s.Name == parts[2] {
					snap.Winner = s.Side
				}
			}
		}
	case "tie":
		snap.Over = true
		snap.Winner = game.SideNone
	}
}

func sideOf(id string) (game.Side, bool) {
	switch {
	case strings.HasPrefix(id, "p1"):
		return game.Side1, true
	case strings.HasPrefix(id, "p2"):
		return game.Side2, true
	}
	return game.SideNone, false
}

// splitIdent splits "p1a: Pikachu" into its side and species.
func splitIdent(ident string) (game.Side, string, bool) {
	info := strings.SplitN(ident, ": ", 2)
	if len(info) != 2 {
		return game.SideNone, "", false
	}
	side, ok := sideOf(info[0])
	return side, info[1], ok
}

func member(snap *game.Snapshot, ident string) *game.CombatantSnapshot {
	side, name, ok := splitIdent(ident)
	if !ok {
		return nil
	}
	return snap.Sides[side].Member(name)
}

// addMember appends the combatant described by details ("Onix, L50").
func addMember(s *game.SideSnapshot, details string) {
	info := strings.Split(details, ",")
	name := strings.TrimSpace(info[0])
	poke := game.CombatantSnapshot{Species: name, Boosts: make(map[string]int)}
	if sp, err := data.LookupSpecies(name); err == nil {
		poke.Types = sp.Types
	}
	for _, field := range info[1:] {
		field = strings.TrimSpace(field)
		if lvl, ok := strings.CutPrefix(field, "L"); ok {
			poke.Level, _ = strconv.Atoi(lvl)
		}
	}
	s.Team = append(s.Team, poke)
}

// setHP applies a condition such as "31/95", "31/95 par" or "0 fnt".
func setHP(poke *game.CombatantSnapshot, condition string) {
	fields := strings.Fields(condition)
	if len(fields) == 0 {
		return
	}
	if len(fields) > 1 {
		if fields[1] == "fnt" {
			poke.HP = 0
			poke.Fainted = true
			return
		}
		poke.Status = game.ParseStatus(fields[1])
	} else {
		poke.Status = game.StatusNone
	}
	hpInfo := strings.Split(fields[0], "/")
	if len(hpInfo) != 2 {
		return
	}
	hp, err1 := strconv.Atoi(hpInfo[0])
	maxhp, err2 := strconv.Atoi(hpInfo[1])
	if err1 != nil || err2 != nil {
		return
	}
	poke.HP, poke.MaxHP = hp, maxhp
	poke.Fainted = hp == 0
}
