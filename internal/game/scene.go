package game

import (
	"math"

	"github.com/samdwyer/luckysymbol/internal/gamedata"
	"github.com/samdwyer/luckysymbol/internal/selection"
	"github.com/samdwyer/luckysymbol/internal/stage"
)

// Scene text.
const (
	WonMessage  = "Guessed correct! :D"
	LostMessage = "Aww you guessed wrong! =("
	PlayAgain   = "PLAY AGAIN"
)

// Layout in normalized stage coordinates.
const (
	choiceRowY     = 0.6
	choiceSpacing  = 0.115
	choiceSize     = 102
	revealScale    = 0.8
	messageY       = 0.45
	chooseY        = 0.92
	playAgainY     = 0.86
	maxChoiceWidth = 0.9
)

// Scene is the set of display objects the round drives.
type Scene struct {
	Confetti  *stage.Layer
	Choose    *stage.Button
	Choices   []*stage.Button // Choices[i] shows choice i+1
	Reveal    *stage.Node     // placeholder until the winner is revealed
	Mystery   *stage.Node
	WonText   *stage.Node
	LostText  *stage.Node
	PlayAgain *stage.Button
}

// NewScene lays out a scene for n choices.
func NewScene(n int) *Scene {
	s := &Scene{
		Confetti: stage.NewLayer(),
		Choose:   stage.NewButton(stage.NewSprite("choose", gamedata.KeyButton, 0, 0), 0.5, chooseY, 160, 140),
	}

	spacing := math.Min(choiceSpacing, maxChoiceWidth/float64(n))
	for _, c := range selection.Choices(n) {
		x := 0.5 + (float64(c)-float64(n+1)/2)*spacing
		node := stage.NewSprite("choice", gamedata.SymbolKey(c), 0, 0)
		s.Choices = append(s.Choices, stage.NewButton(node, x, choiceRowY, choiceSize, choiceSize))
	}

	s.Reveal = stage.NewSprite("reveal", gamedata.KeyBlank, 120, 120)
	s.Reveal.Scale = revealScale
	stage.SetPosition(s.Reveal, 0.5, 0.1)

	s.Mystery = stage.NewSprite("mystery", gamedata.KeyMystery, 100, 100)
	stage.SetPosition(s.Mystery, 0.5, 0.16)

	s.WonText = stage.NewText("won", WonMessage, 260, 24)
	stage.SetPosition(s.WonText, 0.5, messageY)
	s.LostText = stage.NewText("lost", LostMessage, 320, 24)
	stage.SetPosition(s.LostText, 0.5, messageY)

	s.PlayAgain = stage.NewButton(stage.NewText("play-again", PlayAgain, 0, 0), 0.5, playAgainY, 180, 60)

	return s
}

// Nodes returns the scene's nodes in draw order, excluding confetti.
func (s *Scene) Nodes() []*stage.Node {
	nodes := []*stage.Node{s.Choose.Node}
	for _, b := range s.Choices {
		nodes = append(nodes, b.Node)
	}
	return append(nodes, s.Reveal, s.Mystery, s.LostText, s.WonText, s.PlayAgain.Node)
}

// Button returns the button for choice c, or nil.
func (s *Scene) Button(c selection.Choice) *stage.Button {
	if !c.Valid(len(s.Choices)) {
		return nil
	}
	return s.Choices[c-1]
}
