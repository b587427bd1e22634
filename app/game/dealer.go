package game

import (
	"github.com/josecleiton/dominosim/app/models"
	"github.com/josecleiton/dominosim/app/utils"
	"github.com/sirupsen/logrus"
)

const DefaultMaxDealIterations = 1000

// A hand may take a tile only while every pip on it, and its double count,
// is still below these limits.
const (
	fairBoneLimit   = 5
	fairDoubleLimit = 5
)

type DealOptions struct {
	// MaxIterations bounds the fair phase. Past it the fairness checks are
	// dropped so a hand blocked on the top tile cannot stall the deal.
	MaxIterations int
}

type DealResult struct {
	Hands      [models.DominoMaxPlayer][]models.Domino
	Boneyard   *Boneyard
	Iterations int
	FellBack   bool
}

type handTally struct {
	bones   [models.DominoUniqueBones]int
	doubles int
}

func (t handTally) accepts(bone models.Domino) bool {
	return t.bones[bone.L] < fairBoneLimit &&
		t.bones[bone.R] < fairBoneLimit &&
		t.doubles < fairDoubleLimit
}

func (t *handTally) add(bone models.Domino) {
	t.bones[bone.L]++
	if bone.IsDouble() {
		t.doubles++
		return
	}
	t.bones[bone.R]++
}

// Deal hands out tiles from the back of a shuffled deck. Each tile is routed
// to a random player; if that player may not take it, nothing is drawn and
// the next iteration routes again. Whatever is left becomes the boneyard.
func Deal(deck []models.Domino, rnd Randomness, opts DealOptions) DealResult {
	maxIterations := opts.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxDealIterations
	}

	var result DealResult
	var tallies [models.DominoMaxPlayer]handTally
	for i := range result.Hands {
		result.Hands[i] = make([]models.Domino, 0, models.DominoHandLength)
	}

	handsFull := func() bool {
		for _, hand := range result.Hands {
			if len(hand) < models.DominoHandLength {
				return false
			}
		}
		return true
	}

	for !handsFull() && len(deck) > 0 {
		result.Iterations++

		target := coinFlip(rnd)
		bone := deck[len(deck)-1]

		if result.Iterations > maxIterations {
			if !result.FellBack {
				result.FellBack = true
				utils.Log.WithFields(logrus.Fields{
					"iterations": maxIterations,
					"top":        bone,
					"hand1":      len(result.Hands[0]),
					"hand2":      len(result.Hands[1]),
				}).Warn("deal stalled, dropping fairness checks")
			}

			if len(result.Hands[target]) >= models.DominoHandLength {
				target = 1 - target
			}
		} else if len(result.Hands[target]) >= models.DominoHandLength || !tallies[target].accepts(bone) {
			continue
		}

		tallies[target].add(bone)
		result.Hands[target] = append(result.Hands[target], bone)
		deck = deck[:len(deck)-1]
	}

	result.Boneyard = NewBoneyard(deck)

	utils.Log.WithFields(logrus.Fields{
		"iterations": result.Iterations,
		"boneyard":   len(deck),
	}).Debug("deal finished")

	return result
}
