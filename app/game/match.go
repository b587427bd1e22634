package game

import (
	"errors"
	"fmt"

	"github.com/josecleiton/dominosim/app/models"
	"github.com/josecleiton/dominosim/app/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyBoneyard = errors.New("boneyard has no starting tile")
	ErrMatchOver     = errors.New("match is over")
	ErrInvalidPlayer = errors.New("invalid player position")
)

// passesToDraw consecutive passes block the game.
const passesToDraw = 2

type State int

const (
	P1Turn State = iota
	P2Turn
	P1Won
	P2Won
	Draw
)

func (s State) String() string {
	switch s {
	case P1Turn:
		return "p1_turn"
	case P2Turn:
		return "p2_turn"
	case P1Won:
		return "p1_won"
	case P2Won:
		return "p2_won"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func (s State) Terminal() bool {
	return s == P1Won || s == P2Won || s == Draw
}

// Display receives everything a match has to report.
type Display interface {
	Hand(label string, tiles []models.Domino)
	Start(bone models.Domino)
	Turn(play models.DominoPlay, board []models.Domino)
	Outcome(state State)
}

type Player struct {
	Position int
	Hand     []models.Domino
	Strategy Strategy
}

func NewPlayer(position int, hand []models.Domino, strategy Strategy) *Player {
	return &Player{
		Position: position,
		Hand:     hand,
		Strategy: strategy,
	}
}

type Match struct {
	Players  [models.DominoMaxPlayer]*Player
	Board    *Board
	Boneyard *Boneyard
	State    State
	Passes   int
	Plays    []models.DominoPlay

	display Display
}

// NewMatch takes the last boneyard tile as the starting tile. Player one
// moves first.
func NewMatch(p1, p2 *Player, boneyard *Boneyard, display Display) (*Match, error) {
	for _, p := range []*Player{p1, p2} {
		if p == nil {
			return nil, fmt.Errorf("%w: missing player", ErrInvalidPlayer)
		}
		if p.Position < models.DominoMinPlayer || p.Position > models.DominoMaxPlayer {
			return nil, fmt.Errorf(
				"%w: must be between %d and %d, not %d",
				ErrInvalidPlayer,
				models.DominoMinPlayer,
				models.DominoMaxPlayer,
				p.Position,
			)
		}
	}
	if p1.Position == p2.Position {
		return nil, fmt.Errorf("%w: both players at %d", ErrInvalidPlayer, p1.Position)
	}

	start, ok := boneyard.Draw()
	if !ok {
		return nil, ErrEmptyBoneyard
	}

	if display == nil {
		display = nopDisplay{}
	}

	m := &Match{
		Players:  [models.DominoMaxPlayer]*Player{p1, p2},
		Board:    NewBoard(start),
		Boneyard: boneyard,
		State:    P1Turn,
		display:  display,
	}

	display.Start(start)

	return m, nil
}

func (m *Match) active() (int, *Player) {
	if m.State == P2Turn {
		return 1, m.Players[1]
	}
	return 0, m.Players[0]
}

// Step plays a single turn and advances the state.
func (m *Match) Step() (models.DominoPlay, error) {
	if m.State.Terminal() {
		return models.DominoPlay{}, ErrMatchOver
	}

	idx, player := m.active()
	play := player.Strategy.Play(player.Position, &player.Hand, m.Board, m.Boneyard)
	m.Plays = append(m.Plays, play)

	m.display.Turn(play, m.Board.Tiles())

	if play.Pass() {
		m.Passes++
	} else {
		m.Passes = 0
	}

	switch {
	case len(player.Hand) == 0:
		m.State = P1Won
		if idx == 1 {
			m.State = P2Won
		}
	case m.Passes >= passesToDraw:
		m.State = Draw
	case m.State == P1Turn:
		m.State = P2Turn
	default:
		m.State = P1Turn
	}

	if m.State.Terminal() {
		utils.Log.WithFields(logrus.Fields{
			"outcome": m.State,
			"turns":   len(m.Plays),
			"board":   m.Board.Len(),
		}).Info("match finished")

		m.display.Outcome(m.State)
	}

	return play, nil
}

// Run plays turns until the match reaches a terminal state.
func (m *Match) Run() State {
	for !m.State.Terminal() {
		if _, err := m.Step(); err != nil {
			break
		}
	}

	return m.State
}

type nopDisplay struct{}

func (nopDisplay) Hand(string, []models.Domino)            {}
func (nopDisplay) Start(models.Domino)                     {}
func (nopDisplay) Turn(models.DominoPlay, []models.Domino) {}
func (nopDisplay) Outcome(State)                           {}
