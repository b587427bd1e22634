package game

import "github.com/josecleiton/dominosim/app/models"

// Boneyard is the stack of undealt tiles. Draws come off the end.
type Boneyard struct {
	tiles []models.Domino
}

func NewBoneyard(tiles []models.Domino) *Boneyard {
	return &Boneyard{tiles: tiles}
}

func (b *Boneyard) Len() int {
	return len(b.tiles)
}

func (b *Boneyard) Empty() bool {
	return len(b.tiles) == 0
}

func (b *Boneyard) Draw() (models.Domino, bool) {
	if len(b.tiles) == 0 {
		return models.Domino{}, false
	}

	last := len(b.tiles) - 1
	bone := b.tiles[last]
	b.tiles = b.tiles[:last]

	return bone, true
}

// Tiles returns a copy, bottom of the stack first.
func (b *Boneyard) Tiles() []models.Domino {
	return append([]models.Domino(nil), b.tiles...)
}
