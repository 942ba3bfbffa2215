package game

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"gen1-battle/data"
)

// MaxTeamSize is the largest team a side may bring.
const MaxTeamSize = 6

// Side identifies one of the two players.
type Side int

const (
	Side1 Side = iota
	Side2
	SideNone
)

func (s Side) String() string {
	switch s {
	case Side1:
		return "side1"
	case Side2:
		return "side2"
	}
	return "none"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Side1 {
		return Side2
	}
	return Side1
}

// ID is the protocol player id, p1 or p2.
func (s Side) ID() string {
	if s == Side2 {
		return "p2"
	}
	return "p1"
}

// Mode is a side's multi-turn state. The modes are mutually exclusive and
// switching out returns the side to ModeNormal.
type Mode int

const (
	ModeNormal Mode = iota
	ModeRecharging
	ModeBound
	ModeCharging
	ModeThrashing
)

func (m Mode) String() string {
	switch m {
	case ModeRecharging:
		return "recharging"
	case ModeBound:
		return "bound"
	case ModeCharging:
		return "charging"
	case ModeThrashing:
		return "thrashing"
	}
	return "normal"
}

type sideState struct {
	name      string
	team      []*Combatant
	active    int
	mode      Mode
	turnsLeft int
	// lockedMove is replayed by charging and thrashing.
	lockedMove data.MoveID

	// lastMove is read by the opponent's Mirror Move.
	lastMove data.MoveID
	// lastDamage and lastDamageType record the damage taken this turn for
	// Counter.
	lastDamage     int
	lastDamageType data.Type
}

func (s *sideState) activeCombatant() *Combatant {
	return s.team[s.active]
}

func (s *sideState) wiped() bool {
	return lo.EveryBy(s.team, func(c *Combatant) bool { return c.IsFainted() })
}

// Battle is a self-contained, single-goroutine battle between two teams.
type Battle struct {
	sides  [2]*sideState
	turn   int
	log    []string
	rng    Rand
	sink   Sink
	logger zerolog.Logger
	over   bool
	winner Side
}

// Option configures a Battle.
type Option func(*Battle)

// WithRand injects the random source.
func WithRand(r Rand) Option {
	return func(b *Battle) { b.rng = r }
}

// WithSeed uses a deterministic PCG source seeded with seed.
func WithSeed(seed uint64) Option {
	return func(b *Battle) { b.rng = NewRand(seed) }
}

// WithSink forwards every event to s.
func WithSink(s Sink) Option {
	return func(b *Battle) { b.sink = s }
}

// WithLogger sets the diagnostic logger. Every random draw is logged at
// debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Battle) { b.logger = l }
}

// WithPlayerNames sets the names shown for both players.
func WithPlayerNames(side1, side2 string) Option {
	return func(b *Battle) {
		b.sides[Side1].name = side1
		b.sides[Side2].name = side2
	}
}

// NewBattle validates both teams, sends out the first healthy member of
// each and emits the opening events.
func NewBattle(team1, team2 []*Combatant, opts ...Option) (*Battle, error) {
	if err := validateTeams(team1, team2); err != nil {
		return nil, err
	}
	b := &Battle{
		sink:   discard{},
		logger: zerolog.Nop(),
		winner: SideNone,
	}
	for i, team := range [2][]*Combatant{team1, team2} {
		_, first, _ := lo.FindIndexOf(team, func(c *Combatant) bool { return !c.IsFainted() })
		b.sides[i] = &sideState{
			name:   Side(i).String(),
			team:   append([]*Combatant(nil), team...),
			active: max(first, 0),
		}
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		seed, err := NewSeed()
		if err != nil {
			return nil, err
		}
		b.rng = NewRand(seed)
	}

	for _, side := range []Side{Side1, Side2} {
		s := b.sides[side]
		b.emit(EventPlayer, side, "", side.ID(), s.name)
		for _, c := range s.team {
			b.emit(EventPoke, side, "", side.ID(), details(c))
		}
	}
	b.emit(EventStart, SideNone, "Battle started!")
	for _, side := range []Side{Side1, Side2} {
		c := b.active(side)
		b.emit(EventSwitch, side, fmt.Sprintf("%s sent out %s!", b.sides[side].name, c.Name()),
			b.ident(side), details(c), hpText(c))
	}
	b.checkOver()
	return b, nil
}

func validateTeams(team1, team2 []*Combatant) error {
	seen := make(map[*Combatant]bool)
	for i, team := range [][]*Combatant{team1, team2} {
		if len(team) == 0 || len(team) > MaxTeamSize {
			return fmt.Errorf("side%d has %d members: %w", i+1, len(team), ErrInvalidTeam)
		}
		for j, c := range team {
			if c == nil {
				return fmt.Errorf("side%d member %d is nil: %w", i+1, j, ErrInvalidTeam)
			}
			if seen[c] {
				return fmt.Errorf("side%d member %d appears twice: %w", i+1, j, ErrInvalidTeam)
			}
			seen[c] = true
		}
	}
	return nil
}

// IsOver reports whether either team is fully fainted.
func (b *Battle) IsOver() bool { return b.over }

// Winner returns the side whose opponent was wiped out. It is SideNone while
// the battle runs and when both teams fall on the same turn.
func (b *Battle) Winner() Side { return b.winner }

// ActiveIndex returns the team index of side's active combatant.
func (b *Battle) ActiveIndex(side Side) int { return b.sides[side].active }

// Active returns side's active combatant.
func (b *Battle) Active(side Side) *Combatant { return b.active(side) }

// Team returns side's team. The combatants are shared with the battle and
// must be treated as read-only.
func (b *Battle) Team(side Side) []*Combatant {
	return append([]*Combatant(nil), b.sides[side].team...)
}

// Mode returns side's multi-turn state and the turns it has left.
func (b *Battle) Mode(side Side) (Mode, int) {
	s := b.sides[side]
	return s.mode, s.turnsLeft
}

// TurnCount returns the number of turns played.
func (b *Battle) TurnCount() int { return b.turn }

// Log returns every human-readable line so far.
func (b *Battle) Log() []string {
	return append([]string(nil), b.log...)
}

// LogSince returns the lines after the first n, which lets a consumer that
// has already shown n lines fetch only the new ones.
func (b *Battle) LogSince(n int) []string {
	if n < 0 {
		n = 0
	}
	if n >= len(b.log) {
		return nil
	}
	return append([]string(nil), b.log[n:]...)
}

// NeedsSendOut reports whether side's active combatant has fainted while
// the side still has a healthy member.
func (b *Battle) NeedsSendOut(side Side) bool {
	return !b.over && b.active(side).IsFainted() && !b.sides[side].wiped()
}

// SendOut replaces a fainted active combatant between turns without using
// the side's action.
func (b *Battle) SendOut(side Side, index int) error {
	if b.over {
		return ErrBattleOver
	}
	if side != Side1 && side != Side2 {
		return fmt.Errorf("send out for %s: %w", side, ErrInvalidAction)
	}
	if !b.active(side).IsFainted() {
		return fmt.Errorf("%s active %s has not fainted: %w", side, b.active(side).Name(), ErrInvalidAction)
	}
	if err := b.validateSwitch(side, index); err != nil {
		return err
	}
	b.switchIn(side, index)
	return nil
}

// LegalActions lists every action side may submit next turn.
func (b *Battle) LegalActions(side Side) []Action {
	if b.over {
		return nil
	}
	s := b.sides[side]
	var out []Action
	c := b.active(side)
	if !c.IsFainted() {
		if c.mustStruggle() || s.mode != ModeNormal {
			out = append(out, UseMove(0))
		} else {
			for i := range c.moves {
				if c.usable(i) {
					out = append(out, UseMove(i))
				}
			}
		}
	}
	for i := range s.team {
		if b.validateSwitch(side, i) == nil {
			out = append(out, SwitchTo(i))
		}
	}
	return out
}

func (b *Battle) validateSwitch(side Side, index int) error {
	s := b.sides[side]
	if index < 0 || index >= len(s.team) {
		return fmt.Errorf("%s switch target %d out of range: %w", side, index, ErrInvalidAction)
	}
	if index == s.active {
		return fmt.Errorf("%s switch target %d is already active: %w", side, index, ErrInvalidAction)
	}
	if s.team[index].IsFainted() {
		return fmt.Errorf("%s switch target %s has fainted: %w", side, s.team[index].Name(), ErrInvalidAction)
	}
	return nil
}

func (b *Battle) validateAction(side Side, a Action) error {
	switch a.Kind {
	case ActionSwitch:
		return b.validateSwitch(side, a.Target)
	case ActionMove:
		c := b.active(side)
		if c.IsFainted() || b.sides[side].mode != ModeNormal || c.mustStruggle() {
			return nil
		}
		if a.Move < 0 || a.Move >= len(c.moves) {
			return fmt.Errorf("%s move slot %d out of range: %w", side, a.Move, ErrInvalidAction)
		}
		if !c.usable(a.Move) {
			return fmt.Errorf("%s move %s cannot be used: %w", side, c.moves[a.Move].ID, ErrInvalidAction)
		}
		return nil
	}
	return fmt.Errorf("%s action %s: %w", side, a.Kind, ErrInvalidAction)
}

// switchIn makes index the active combatant. Both the outgoing and the
// incoming combatant lose their volatiles and stages.
func (b *Battle) switchIn(side Side, index int) {
	s := b.sides[side]
	out := s.activeCombatant()
	out.ClearVolatiles()
	out.ResetStatStages()
	s.active = index
	s.mode = ModeNormal
	s.turnsLeft = 0
	in := s.activeCombatant()
	in.ClearVolatiles()
	in.ResetStatStages()

	// The binder leaving releases its target.
	if foe := side.Opponent(); b.sides[foe].mode == ModeBound {
		b.sides[foe].mode, b.sides[foe].turnsLeft = ModeNormal, 0
		b.emit(EventVolatileEnd, foe, b.active(foe).Name()+" was freed!", b.ident(foe), "partiallytrapped")
	}

	text := fmt.Sprintf("%s sent out %s!", s.name, in.Name())
	if !out.IsFainted() {
		text = fmt.Sprintf("%s withdrew %s and sent out %s!", s.name, out.Name(), in.Name())
	}
	b.emit(EventSwitch, side, text, b.ident(side), details(in), hpText(in))
}

func (b *Battle) active(side Side) *Combatant {
	return b.sides[side].activeCombatant()
}

// checkOver announces faints not yet announced and settles the result.
func (b *Battle) checkOver() bool {
	for _, side := range []Side{Side1, Side2} {
		c := b.active(side)
		if c.IsFainted() && !c.faintLogged {
			c.faintLogged = true
			s := b.sides[side]
			s.mode = ModeNormal
			s.turnsLeft = 0
			b.emit(EventFaint, side, c.Name()+" fainted!", b.ident(side))
		}
	}
	if b.over {
		return true
	}
	wiped1, wiped2 := b.sides[Side1].wiped(), b.sides[Side2].wiped()
	switch {
	case wiped1 && wiped2:
		b.over = true
		b.emit(EventTie, SideNone, "The battle ended in a draw!")
	case wiped1:
		b.over, b.winner = true, Side2
		b.emit(EventWin, Side2, b.sides[Side2].name+" won the battle!", b.sides[Side2].name)
	case wiped2:
		b.over, b.winner = true, Side1
		b.emit(EventWin, Side1, b.sides[Side1].name+" won the battle!", b.sides[Side1].name)
	}
	return b.over
}

func (b *Battle) emit(kind EventKind, side Side, text string, args ...string) {
	ev := Event{Kind: kind, Side: side, Args: args, Text: text}
	if text != "" {
		b.log = append(b.log, text)
	}
	b.sink.Emit(ev)
}

func (b *Battle) ident(side Side) string {
	return side.ID() + "a: " + b.active(side).Name()
}

func details(c *Combatant) string {
	return c.Name() + ", L" + strconv.Itoa(c.Level)
}

func hpText(c *Combatant) string {
	if c.IsFainted() {
		return "0 fnt"
	}
	s := strconv.Itoa(c.hp) + "/" + strconv.Itoa(c.MaxHP())
	if c.status != StatusNone {
		s += " " + c.status.String()
	}
	return s
}
