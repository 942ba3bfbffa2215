package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"gen1-battle/config"
	"gen1-battle/game"
	"gen1-battle/parser"
)

type styles struct {
	turn, faint, win, plain lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{turn: plain, faint: plain, win: plain, plain: plain}
	}
	return styles{
		turn: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true),
		faint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E74C3C")),
		win: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1),
		plain: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")),
	}
}

func (s styles) render(line string) string {
	switch {
	case strings.HasPrefix(line, "Turn "):
		return s.turn.Render(line)
	case strings.HasSuffix(line, " fainted!"):
		return s.faint.Render(line)
	case strings.HasSuffix(line, "won the battle!"), strings.HasSuffix(line, "ended in a draw!"):
		return s.win.Render(line)
	}
	return s.plain.Render(line)
}

// pick returns a random element of actions.
func pick(r game.Rand, actions []game.Action) game.Action {
	return actions[r.IntN(len(actions))]
}

// moveOrSwitch prefers moves three times out of four so that battles end.
func moveOrSwitch(r game.Rand, actions []game.Action) game.Action {
	var moves []game.Action
	for _, a := range actions {
		if a.Kind == game.ActionMove {
			moves = append(moves, a)
		}
	}
	if len(moves) > 0 && (len(moves) == len(actions) || r.IntN(4) != 0) {
		return pick(r, moves)
	}
	return pick(r, actions)
}

func run(cfg *config.Config, out io.Writer, logger zerolog.Logger) error {
	sheet, err := cfg.Teams()
	if err != nil {
		return err
	}
	teams, err := config.BuildTeams(sheet)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = game.NewSeed(); err != nil {
			return err
		}
	}
	logger.Info().Uint64("seed", seed).Int("maxTurns", cfg.MaxTurns).Msg("Starting battle")

	snap := game.NewSnapshot()
	name1, name2 := sheet.Names()
	b, err := game.NewBattle(teams[0], teams[1],
		game.WithSeed(seed),
		game.WithPlayerNames(name1, name2),
		game.WithLogger(logger.With().Str("component", "battle").Logger()),
		game.WithSink(game.SinkFunc(func(e game.Event) {
			logger.Trace().Msg(e.Protocol())
			parser.ProcessLine(snap, e.Protocol())
		})),
	)
	if err != nil {
		return fmt.Errorf("new battle: %w", err)
	}

	st := newStyles(cfg.NoColor)
	seen := 0
	flush := func() {
		for _, line := range b.LogSince(seen) {
			fmt.Fprintln(out, st.render(line))
		}
		seen = len(b.Log())
	}
	flush()

	chooser := game.NewRand(seed ^ 0x5bd1e995)
	for !b.IsOver() && b.TurnCount() < cfg.MaxTurns {
		var actions [2]game.Action
		for i, side := range []game.Side{game.Side1, game.Side2} {
			if b.NeedsSendOut(side) {
				next := pick(chooser, b.LegalActions(side))
				if err := b.SendOut(side, next.Target); err != nil {
					return fmt.Errorf("send out: %w", err)
				}
			}
			actions[i] = moveOrSwitch(chooser, b.LegalActions(side))
		}
		if err := b.Turn(actions[0], actions[1]); err != nil {
			return fmt.Errorf("turn %d: %w", b.TurnCount()+1, err)
		}
		flush()
	}

	if !b.IsOver() {
		logger.Warn().Int("turns", b.TurnCount()).Msg("Turn limit reached")
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, parser.RenderSnapshot(snap))
	logger.Info().Str("winner", b.Winner().String()).Int("turns", b.TurnCount()).Msg("Battle finished")
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: cfg.NoColor}).
		Level(cfg.Level()).
		With().Timestamp().Logger()

	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Fatal().Err(err).Msg("Battle aborted")
	}
}
