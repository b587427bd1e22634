package game

import "github.com/josecleiton/dominosim/app/models"

func CanPlay(bone models.Domino, left, right int) bool {
	return bone.Has(left) || bone.Has(right)
}

// Orient turns the tile so the face touching the chain equals match: the R
// face when attaching on the left, the L face when attaching on the right.
func Orient(bone models.Domino, match int, edge models.Edge) models.Domino {
	if edge == models.LeftEdge {
		if bone.R == match {
			return bone
		}
		return bone.Reversed()
	}

	if bone.L == match {
		return bone
	}
	return bone.Reversed()
}

// glue picks the edge for a playable tile, preferring the left end.
func glue(bone models.Domino, board *Board) (models.DominoInTable, bool) {
	left, right := board.Left(), board.Right()

	if bone.Has(left) {
		return models.DominoInTable{
			Edge:   models.LeftEdge,
			Domino: Orient(bone, left, models.LeftEdge),
		}, true
	}

	if bone.Has(right) {
		return models.DominoInTable{
			Edge:   models.RightEdge,
			Domino: Orient(bone, right, models.RightEdge),
		}, true
	}

	return models.DominoInTable{}, false
}
