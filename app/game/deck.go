package game

import (
	"sort"

	"github.com/josecleiton/dominosim/app/models"
	"gonum.org/v1/gonum/stat/combin"
)

// NewDeck builds the double-six set in canonical order:
// [0|0] [0|1] ... [0|6] [1|1] ... [6|6].
func NewDeck() []models.Domino {
	deck := make([]models.Domino, 0, models.DominoLength)

	for bone := models.DominoMinBone; bone <= models.DominoMaxBone; bone++ {
		deck = append(deck, models.Domino{L: bone, R: bone})
	}

	for _, pair := range combin.Combinations(models.DominoUniqueBones, 2) {
		deck = append(deck, models.Domino{
			L: models.DominoMinBone + pair[0],
			R: models.DominoMinBone + pair[1],
		})
	}

	sort.Slice(deck, func(i, j int) bool {
		if deck[i].L != deck[j].L {
			return deck[i].L < deck[j].L
		}
		return deck[i].R < deck[j].R
	})

	return deck
}
