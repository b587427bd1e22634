package game

import (
	"github.com/josecleiton/dominosim/app/models"
	"github.com/josecleiton/dominosim/app/utils"
)

// Board is the chain of played tiles. Tiles are stored oriented: the R face
// of each tile touches the L face of the next one.
type Board struct {
	chain *utils.LinkedList[models.Domino]
}

func NewBoard(start models.Domino) *Board {
	chain := utils.NewLinkedList[models.Domino]()
	chain.PushBack(start)

	return &Board{chain: chain}
}

func (b *Board) Left() int {
	return b.chain.Head().Data.L
}

func (b *Board) Right() int {
	return b.chain.Tail().Data.R
}

func (b *Board) Len() int {
	return b.chain.Len()
}

func (b *Board) Tiles() []models.Domino {
	return b.chain.Slice()
}

// Place attaches an already oriented tile to the given edge.
func (b *Board) Place(bone models.Domino, edge models.Edge) {
	if edge == models.LeftEdge {
		b.chain.PushFront(bone)
		return
	}

	b.chain.PushBack(bone)
}

// Valid reports whether every pair of neighbours shares its touching pips.
func (b *Board) Valid() bool {
	for node := b.chain.Head(); node != nil && node.Next != nil; node = node.Next {
		if node.Data.R != node.Next.Data.L {
			return false
		}
	}

	return true
}
