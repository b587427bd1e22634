package game

import (
	"fmt"

	"github.com/josecleiton/dominosim/app/models"
)

type SimulationOptions struct {
	Deal DealOptions
}

type Result struct {
	// Deal.Boneyard is the stack the match drew from, so it holds the
	// boneyard as it was at the end of the match.
	Deal  DealResult
	State State
	Plays []models.DominoPlay
	Board []models.Domino
	// Hands are the players' hands when the match ended.
	Hands [models.DominoMaxPlayer][]models.Domino
}

// Simulate plays one whole match: build, shuffle and deal the set, show the
// hands, then let smallest-first (player 1) face largest-first (player 2).
func Simulate(rnd Randomness, display Display, opts SimulationOptions) (*Result, error) {
	if display == nil {
		display = nopDisplay{}
	}

	deck := NewDeck()
	Shuffle(deck, rnd)

	deal := Deal(deck, rnd, opts.Deal)

	display.Hand("Player 1", deal.Hands[0])
	display.Hand("Player 2", deal.Hands[1])
	display.Hand("Remaining dominoes (boneyard)", deal.Boneyard.Tiles())

	p1 := NewPlayer(models.DominoMinPlayer, append([]models.Domino(nil), deal.Hands[0]...), SmallestFirst)
	p2 := NewPlayer(models.DominoMaxPlayer, append([]models.Domino(nil), deal.Hands[1]...), LargestFirst)

	match, err := NewMatch(p1, p2, deal.Boneyard, display)
	if err != nil {
		return nil, fmt.Errorf("start match: %w", err)
	}

	state := match.Run()

	result := &Result{
		Deal:  deal,
		State: state,
		Plays: match.Plays,
		Board: match.Board.Tiles(),
	}
	for i, player := range match.Players {
		result.Hands[i] = append([]models.Domino(nil), player.Hand...)
	}

	return result, nil
}
