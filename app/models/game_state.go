package models

import "fmt"

const DominoMaxPlayer = 2
const DominoMinPlayer = 1

type Edge string

const (
	LeftEdge  Edge = "left"
	RightEdge Edge = "right"
)

type DominoInTable struct {
	Edge Edge
	Domino
}

// DominoPlay is one turn as seen from the table. A nil Bone is a pass.
type DominoPlay struct {
	PlayerPosition int
	Bone           *DominoInTable
	Drawn          int
}

func (play DominoPlay) Pass() bool {
	return play.Bone == nil
}

func (play DominoPlay) String() string {
	if play.Pass() {
		return fmt.Sprintf("{Player: %d, Pass, Drawn: %d}", play.PlayerPosition, play.Drawn)
	}

	return fmt.Sprintf(
		"{Player: %d, Bone: %v, Edge: %v, Drawn: %d}",
		play.PlayerPosition,
		play.Bone.Domino,
		play.Bone.Edge,
		play.Drawn,
	)
}
