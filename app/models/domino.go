package models

const DominoLength = 28
const DominoUniqueBones = 7
const DominoHandLength = 7
const DominoMaxBone = 6
const DominoMinBone = 0

type Domino struct {
	L, R int
}

func (d Domino) Sum() int {
	return d.L + d.R
}

func (d Domino) IsDouble() bool {
	return d.L == d.R
}

func (d Domino) Reversed() Domino {
	return Domino{L: d.R, R: d.L}
}

func (d Domino) Has(bone int) bool {
	return d.L == bone || d.R == bone
}
