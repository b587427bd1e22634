package controllers

import (
	"fmt"
	"io"

	"github.com/josecleiton/dominosim/app/game"
	"github.com/josecleiton/dominosim/app/models"
)

// ConsoleDisplay prints the match as plain text, or with Unicode domino
// glyphs when glyphs is set.
type ConsoleDisplay struct {
	w      io.Writer
	glyphs bool
}

func NewConsoleDisplay(w io.Writer, glyphs bool) *ConsoleDisplay {
	return &ConsoleDisplay{w: w, glyphs: glyphs}
}

func (c *ConsoleDisplay) bones(tiles []models.Domino) string {
	if c.glyphs {
		return models.DominoesGlyphs(tiles)
	}
	return models.DominoesString(tiles)
}

func (c *ConsoleDisplay) Hand(label string, tiles []models.Domino) {
	fmt.Fprintf(c.w, "%s:\n%s\n\n", label, c.bones(tiles))
}

func (c *ConsoleDisplay) Start(bone models.Domino) {
	fmt.Fprintf(c.w, "Starting tile: %s\n\n", c.bones([]models.Domino{bone}))
}

func (c *ConsoleDisplay) Turn(play models.DominoPlay, board []models.Domino) {
	fmt.Fprintf(c.w, "[Player %d] %s", play.PlayerPosition, c.bones(board))
	if play.Pass() {
		fmt.Fprint(c.w, " - Pass")
	}
	fmt.Fprintln(c.w)
}

func (c *ConsoleDisplay) Outcome(state game.State) {
	fmt.Fprintf(c.w, "\n%s\n", outcomeMessage(state))
}

func outcomeMessage(state game.State) string {
	switch state {
	case game.P1Won:
		return "Player 1 wins!"
	case game.P2Won:
		return "Player 2 wins!"
	case game.Draw:
		return "Game ends in a draw."
	default:
		return fmt.Sprintf("Match unfinished (%v).", state)
	}
}

type externalDirection string

const (
	Left  externalDirection = "left"
	Right externalDirection = "right"
)

type handResponse struct {
	Label string   `json:"label"`
	Bones []string `json:"bones"`
}

type playResponse struct {
	Player    int                `json:"player"`
	Bone      *string            `json:"bone"`
	Direction *externalDirection `json:"side"`
	Drawn     int                `json:"drawn"`
	Board     []string           `json:"board"`
}

// Transcript records a match so it can be sent as JSON.
type Transcript struct {
	Seed     uint64         `json:"seed"`
	Hands    []handResponse `json:"hands"`
	Starting string         `json:"start"`
	Plays    []playResponse `json:"plays"`
	Result   string         `json:"outcome"`
	Message  string         `json:"message"`
}

func NewTranscript(seed uint64) *Transcript {
	return &Transcript{
		Seed:  seed,
		Hands: []handResponse{},
		Plays: []playResponse{},
	}
}

func (t *Transcript) Hand(label string, tiles []models.Domino) {
	t.Hands = append(t.Hands, handResponse{Label: label, Bones: bonesToResponse(tiles)})
}

func (t *Transcript) Start(bone models.Domino) {
	t.Starting = bone.String()
}

func (t *Transcript) Turn(play models.DominoPlay, board []models.Domino) {
	t.Plays = append(t.Plays, dominoPlayToResponse(play, board))
}

func (t *Transcript) Outcome(state game.State) {
	t.Result = state.String()
	t.Message = outcomeMessage(state)
}

func bonesToResponse(tiles []models.Domino) []string {
	bones := make([]string, 0, len(tiles))
	for _, bone := range tiles {
		bones = append(bones, bone.String())
	}

	return bones
}

func dominoPlayToResponse(dominoPlay models.DominoPlay, board []models.Domino) playResponse {
	resp := playResponse{
		Player: dominoPlay.PlayerPosition,
		Drawn:  dominoPlay.Drawn,
		Board:  bonesToResponse(board),
	}

	if dominoPlay.Pass() {
		return resp
	}

	direction := Left
	if dominoPlay.Bone.Edge == models.RightEdge {
		direction = Right
	}

	bone := dominoPlay.Bone.Domino.String()
	resp.Bone = &bone
	resp.Direction = &direction

	return resp
}
