package parser

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gen1-battle/data"
	"gen1-battle/game"
)

var title = cases.Title(language.English)

// assumedPower scores status moves and fixed-damage moves, whose listed
// power says nothing about how hard they hit.
const assumedPower = 80

func moveScore(m game.MoveSnapshot, target data.Types) (float64, float64) {
	power := m.Power
	if power == 0 {
		power = assumedPower
	}
	eff := data.CombinedEffectiveness(target, m.Type)
	return float64(power) * eff, eff
}

func bestMove(p1, p2 *game.CombatantSnapshot) (game.MoveSnapshot, float64) {
	best := game.MoveSnapshot{}
	bestScore := -1.0
	for _, move := range p1.Moves {
		if move.MaxPP > 0 && move.PP == 0 {
			continue
		}
		score, _ := moveScore(move, p2.Types)
		if score > bestScore {
			best = move
			bestScore = score
		}
	}
	return best, bestScore
}

// bestSwitch returns the benched member that takes the least damage from
// the foe's types, or nil when no member resists them.
func bestSwitch(p1 *game.SideSnapshot, p2 *game.CombatantSnapshot) *game.CombatantSnapshot {
	var best *game.CombatantSnapshot
	bestScore := 0.0
	for i := range p1.Team {
		poke := &p1.Team[i]
		if i == p1.Active || poke.Fainted {
			continue
		}
		score := data.CombinedEffectiveness(poke.Types, p2.Types.Primary)
		if p2.Types.Secondary != p2.Types.Primary {
			score *= data.CombinedEffectiveness(poke.Types, p2.Types.Secondary)
		}
		if best == nil || score < bestScore {
			best = poke
			bestScore = score
		}
	}
	if bestScore < 1.0 {
		return best
	}
	return nil
}

func bestMovesList(p2, p1 *game.CombatantSnapshot) []game.MoveSnapshot {
	type scoredMove struct {
		move  game.MoveSnapshot
		score float64
	}
	var scored []scoredMove
	for _, move := range p2.Moves {
		score, _ := moveScore(move, p1.Types)
		scored = append(scored, scoredMove{move, score})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	res := []game.MoveSnapshot{}
	for i := 0; i < len(scored) && i < game.MaxMoves; i++ {
		res = append(res, scored[i].move)
	}
	return res
}

func effText(eff float64) string {
	switch {
	case eff == 0:
		return " (no effect)"
	case eff > 1:
		return " (super effective)"
	case eff < 1:
		return " (not very effective)"
	}
	return ""
}

// RenderSnapshot renders a plain-text summary of snap with move and
// switch hints for the first player.
func RenderSnapshot(snap *game.Snapshot) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Turn: %d\n", snap.Turn)
	if snap.Over {
		if snap.Winner == game.SideNone {
			sb.WriteString("Result: draw\n")
		} else {
			fmt.Fprintf(&sb, "Result: %s won\n", snap.Sides[snap.Winner].Name)
		}
	}

	for i := range snap.Sides {
		player := &snap.Sides[i]
		fmt.Fprintf(&sb, "== %s ==\n", player.Name)
		poke := player.ActiveCombatant()
		if poke == nil {
			continue
		}
		hp := "?/?"
		if poke.MaxHP > 0 {
			hp = fmt.Sprintf("%d/%d", poke.HP, poke.MaxHP)
		}
		fmt.Fprintf(&sb, "%s L%d [%s] %s", poke.Species, poke.Level, poke.Types, hp)
		if poke.Fainted {
			sb.WriteString(" (fainted)")
		}
		if poke.Status != game.StatusNone {
			fmt.Fprintf(&sb, " [%s]", strings.ToUpper(poke.Status.String()))
		}
		sb.WriteString("\n")

		if len(poke.Boosts) > 0 {
			stats := make([]string, 0, len(poke.Boosts))
			for stat := range poke.Boosts {
				stats = append(stats, stat)
			}
			sort.Strings(stats)
			boosts := make([]string, 0, len(stats))
			for _, stat := range stats {
				boosts = append(boosts, fmt.Sprintf("%+d %s", poke.Boosts[stat], title.String(stat)))
			}
			sb.WriteString("Boosts: " + strings.Join(boosts, ", ") + "\n")
		}
		if len(poke.Moves) > 0 {
			names := make([]string, 0, len(poke.Moves))
			for _, m := range poke.Moves {
				names = append(names, m.Name)
			}
			sb.WriteString("Moves seen: " + strings.Join(names, ", ") + "\n")
		}
		bench := 0
		for j, c := range player.Team {
			if j != player.Active && !c.Fainted {
				bench++
			}
		}
		fmt.Fprintf(&sb, "Healthy in reserve: %d\n", bench)
	}

	p1, p2 := &snap.Sides[game.Side1], &snap.Sides[game.Side2]
	a1, a2 := p1.ActiveCombatant(), p2.ActiveCombatant()
	if snap.Over || a1 == nil || a2 == nil || a1.Fainted || a2.Fainted {
		return sb.String()
	}

	fmt.Fprintf(&sb, "-- Hints for %s --\n", p1.Name)
	if best, score := bestMove(a1, a2); best.Name != "" {
		_, eff := moveScore(best, a2.Types)
		fmt.Fprintf(&sb, "Best move: %s [%s] estimated power %.0f%s\n", best.Name, best.Type, score, effText(eff))
	} else {
		sb.WriteString("No known moves.\n")
	}
	if sw := bestSwitch(p1, a2); sw != nil {
		fmt.Fprintf(&sb, "Consider switching to %s!\n", sw.Species)
	}
	if len(a2.Moves) > 0 {
		fmt.Fprintf(&sb, "Dangerous moves of %s:\n", p2.Name)
		for _, m := range bestMovesList(a2, a1) {
			_, eff := moveScore(m, a1.Types)
			fmt.Fprintf(&sb, "  %s [%s] power %d%s\n", m.Name, m.Type, m.Power, effText(eff))
		}
	}
	return sb.String()
}
