package game_test

import (
	"github.com/josecleiton/dominosim/app/game"
	"github.com/josecleiton/dominosim/app/models"
)

// scriptedRandomness replays fixed coin flips, then keeps returning zero.
type scriptedRandomness struct {
	flips []int
}

func (s *scriptedRandomness) Shuffle(int, func(i, j int)) {}

func (s *scriptedRandomness) IntN(int) int {
	if len(s.flips) == 0 {
		return 0
	}
	flip := s.flips[0]
	s.flips = s.flips[1:]
	return flip
}

type recordingDisplay struct {
	hands    []string
	start    *models.Domino
	plays    []models.DominoPlay
	boards   [][]models.Domino
	outcomes []game.State
}

func (r *recordingDisplay) Hand(label string, _ []models.Domino) {
	r.hands = append(r.hands, label)
}

func (r *recordingDisplay) Start(bone models.Domino) {
	r.start = &bone
}

func (r *recordingDisplay) Turn(play models.DominoPlay, board []models.Domino) {
	r.plays = append(r.plays, play)
	r.boards = append(r.boards, board)
}

func (r *recordingDisplay) Outcome(state game.State) {
	r.outcomes = append(r.outcomes, state)
}

func bones(pairs ...[2]int) []models.Domino {
	result := make([]models.Domino, 0, len(pairs))
	for _, p := range pairs {
		result = append(result, models.Domino{L: p[0], R: p[1]})
	}
	return result
}

func sameBones(a, b []models.Domino) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// countBones tallies physical tiles, ignoring orientation.
func countBones(groups ...[]models.Domino) map[models.Domino]int {
	seen := make(map[models.Domino]int, models.DominoLength)
	for _, group := range groups {
		for _, bone := range group {
			if bone.L > bone.R {
				bone = bone.Reversed()
			}
			seen[bone]++
		}
	}
	return seen
}
