package game_test

import (
	"errors"
	"testing"

	"github.com/josecleiton/dominosim/app/game"
	"github.com/josecleiton/dominosim/app/models"
)

func newTestMatch(t *testing.T, p1, p2, boneyard []models.Domino) (*game.Match, *recordingDisplay) {
	t.Helper()

	display := &recordingDisplay{}
	m, err := game.NewMatch(
		game.NewPlayer(1, p1, game.SmallestFirst),
		game.NewPlayer(2, p2, game.LargestFirst),
		game.NewBoneyard(boneyard),
		display,
	)
	if err != nil {
		t.Fatalf("new match: %v", err)
	}
	return m, display
}

func TestNewMatchSeedsBoardFromBoneyard(t *testing.T) {
	m, display := newTestMatch(t, nil, nil, bones([2]int{6, 6}, [2]int{0, 0}))

	if !sameBones(m.Board.Tiles(), bones([2]int{0, 0})) {
		t.Fatalf("expected [0|0] start, got %v", m.Board.Tiles())
	}
	if m.Boneyard.Len() != 1 {
		t.Fatalf("expected 1 bone left in boneyard, got %d", m.Boneyard.Len())
	}
	if display.start == nil || *display.start != (models.Domino{L: 0, R: 0}) {
		t.Fatalf("start tile not announced: %v", display.start)
	}
	if m.State != game.P1Turn {
		t.Fatalf("expected %v, got %v", game.P1Turn, m.State)
	}
}

func TestNewMatchEmptyBoneyard(t *testing.T) {
	_, err := game.NewMatch(
		game.NewPlayer(1, nil, game.SmallestFirst),
		game.NewPlayer(2, nil, game.LargestFirst),
		game.NewBoneyard(nil),
		nil,
	)
	if !errors.Is(err, game.ErrEmptyBoneyard) {
		t.Fatalf("expected ErrEmptyBoneyard, got %v", err)
	}
}

func TestNewMatchRejectsPlayerPositions(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 *game.Player
	}{
		{"below range", game.NewPlayer(0, nil, game.SmallestFirst), game.NewPlayer(2, nil, game.LargestFirst)},
		{"above range", game.NewPlayer(1, nil, game.SmallestFirst), game.NewPlayer(3, nil, game.LargestFirst)},
		{"same seat", game.NewPlayer(1, nil, game.SmallestFirst), game.NewPlayer(1, nil, game.LargestFirst)},
		{"missing player", game.NewPlayer(1, nil, game.SmallestFirst), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := game.NewMatch(tt.p1, tt.p2, game.NewBoneyard(bones([2]int{0, 0})), nil)
			if !errors.Is(err, game.ErrInvalidPlayer) {
				t.Fatalf("expected ErrInvalidPlayer, got %v", err)
			}
		})
	}
}

func TestMatchWinsWhenHandEmpties(t *testing.T) {
	m, display := newTestMatch(t,
		bones([2]int{0, 1}, [2]int{1, 2}),
		bones([2]int{6, 6}, [2]int{6, 5}),
		bones([2]int{0, 0}),
	)

	wantStates := []game.State{game.P2Turn, game.P1Turn, game.P1Won}
	for i, want := range wantStates {
		if _, err := m.Step(); err != nil {
			t.Fatalf("turn %d: %v", i+1, err)
		}
		if m.State != want {
			t.Fatalf("turn %d: expected %v, got %v", i+1, want, m.State)
		}
	}

	if !m.Plays[1].Pass() {
		t.Fatalf("expected player 2 to pass, got %v", m.Plays[1])
	}
	if len(display.outcomes) != 1 || display.outcomes[0] != game.P1Won {
		t.Fatalf("expected a single P1Won outcome, got %v", display.outcomes)
	}
	if _, err := m.Step(); !errors.Is(err, game.ErrMatchOver) {
		t.Fatalf("expected ErrMatchOver, got %v", err)
	}
}

func TestMatchPlayerTwoWins(t *testing.T) {
	m, _ := newTestMatch(t,
		bones([2]int{6, 6}, [2]int{5, 5}),
		bones([2]int{0, 3}),
		bones([2]int{0, 0}),
	)

	if state := m.Run(); state != game.P2Won {
		t.Fatalf("expected %v, got %v", game.P2Won, state)
	}
	if len(m.Plays) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(m.Plays))
	}
}

func TestMatchDrawAfterTwoPasses(t *testing.T) {
	m, display := newTestMatch(t,
		bones([2]int{6, 6}),
		bones([2]int{5, 5}),
		bones([2]int{0, 0}),
	)

	m.Step()
	if m.State != game.P2Turn || m.Passes != 1 {
		t.Fatalf("one pass must not end the match: %v, passes %d", m.State, m.Passes)
	}

	m.Step()
	if m.State != game.Draw {
		t.Fatalf("expected %v after two passes, got %v", game.Draw, m.State)
	}
	if len(m.Plays) != 2 {
		t.Fatalf("expected exactly 2 turns, got %d", len(m.Plays))
	}
	if len(display.plays) != 2 {
		t.Fatalf("expected 2 reported turns, got %d", len(display.plays))
	}
}

func TestMatchPlayResetsPasses(t *testing.T) {
	m, _ := newTestMatch(t,
		bones([2]int{6, 6}),
		bones([2]int{0, 5}, [2]int{6, 4}),
		bones([2]int{0, 0}),
	)

	if state := m.Run(); state != game.Draw {
		t.Fatalf("expected %v, got %v", game.Draw, state)
	}
	if len(m.Plays) != 4 {
		t.Fatalf("expected 4 turns, got %d: %v", len(m.Plays), m.Plays)
	}
	if m.Plays[1].Pass() {
		t.Fatal("expected player 2 to play on turn 2")
	}
}

func TestMatchReportsEveryTurn(t *testing.T) {
	m, display := newTestMatch(t,
		bones([2]int{0, 1}, [2]int{1, 2}),
		bones([2]int{6, 6}, [2]int{6, 5}),
		bones([2]int{0, 0}),
	)
	m.Run()

	if len(display.plays) != len(m.Plays) {
		t.Fatalf("expected %d reported turns, got %d", len(m.Plays), len(display.plays))
	}
	for i, play := range display.plays {
		wantPlayer := 1 + i%2
		if play.PlayerPosition != wantPlayer {
			t.Fatalf("turn %d: expected player %d, got %d", i+1, wantPlayer, play.PlayerPosition)
		}
	}
	last := display.boards[len(display.boards)-1]
	if !sameBones(last, m.Board.Tiles()) {
		t.Fatalf("last reported board %v, want %v", last, m.Board.Tiles())
	}
}
