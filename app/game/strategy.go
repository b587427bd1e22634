package game

import (
	"sort"

	"github.com/josecleiton/dominosim/app/models"
	"github.com/josecleiton/dominosim/app/utils"
	"github.com/sirupsen/logrus"
)

// Strategy is a deterministic player. The two bots differ only in the order
// they try their tiles.
type Strategy struct {
	Name string
	Less func(a, b models.Domino) bool
}

var SmallestFirst = Strategy{
	Name: "smallest-first",
	Less: func(a, b models.Domino) bool {
		return a.Sum() < b.Sum()
	},
}

var LargestFirst = Strategy{
	Name: "largest-first",
	Less: func(a, b models.Domino) bool {
		return a.Sum() > b.Sum()
	},
}

// Play makes one turn for the hand: the first tile in strategy order that
// fits is placed, drawing from the boneyard until something fits. When the
// boneyard runs dry the turn is a pass.
func (s Strategy) Play(
	player int,
	hand *[]models.Domino,
	board *Board,
	boneyard *Boneyard,
) models.DominoPlay {
	play := models.DominoPlay{PlayerPosition: player}

	for {
		bones := *hand
		sort.SliceStable(bones, func(i, j int) bool {
			return s.Less(bones[i], bones[j])
		})

		for i, bone := range bones {
			placed, ok := glue(bone, board)
			if !ok {
				continue
			}

			board.Place(placed.Domino, placed.Edge)
			*hand = append(bones[:i], bones[i+1:]...)
			play.Bone = &placed

			return play
		}

		bone, ok := boneyard.Draw()
		if !ok {
			return play
		}

		*hand = append(bones, bone)
		play.Drawn++

		utils.Log.WithFields(logrus.Fields{
			"player":   player,
			"strategy": s.Name,
			"bone":     bone,
			"boneyard": boneyard.Len(),
		}).Debug("drew from boneyard")
	}
}
