package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/luckysymbol/internal/game"
	"github.com/samdwyer/luckysymbol/internal/gamedata"
	"github.com/samdwyer/luckysymbol/internal/stage"
)

const (
	// Background is the stage colour; alpha is drawn by blending towards it.
	Background = 0x4a2299

	// inactiveAlpha dims buttons that are not highlighted.
	inactiveAlpha = 0.35

	statusRows = 1
)

var confettiRunes = [...]rune{'-', '\\', '|', '/'}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	assets *gamedata.AssetRegistry
	bg     colorful.Color
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, assets *gamedata.AssetRegistry) *Renderer {
	return &Renderer{
		screen: screen,
		assets: assets,
		bg:     gamedata.RGB(Background),
	}
}

// Render draws the scene, its confetti and a status line.
func (r *Renderer) Render(scene *game.Scene, state game.State, stats game.Stats) {
	cols, rows := r.Viewport()
	r.screen.Fill(' ', tcell.StyleDefault.Background(r.colour(r.bg, 1)))

	for _, n := range scene.Confetti.Nodes() {
		r.drawParticle(n, cols, rows)
	}

	r.drawButton(scene.Choose, cols, rows)
	for _, b := range scene.Choices {
		r.drawButton(b, cols, rows)
	}
	r.drawNode(scene.Reveal, 1, cols, rows)
	r.drawNode(scene.Mystery, 1, cols, rows)
	r.drawNode(scene.LostText, 1, cols, rows)
	r.drawNode(scene.WonText, 1, cols, rows)
	r.drawButton(scene.PlayAgain, cols, rows)

	r.drawStatus(state, stats, len(scene.Choices), rows)
	r.screen.Show()
}

// Viewport returns the number of columns and rows used for the stage.
func (r *Renderer) Viewport() (cols, rows int) {
	w, h := r.screen.Size()
	return w, max(h-statusRows, 1)
}

// ToCell maps a stage point to a cell in a cols x rows viewport.
func ToCell(x, y float64, cols, rows int) (cx, cy int) {
	cx = int(math.Floor(x / stage.Width * float64(cols)))
	cy = int(math.Floor(y / stage.Height * float64(rows)))
	return cx, cy
}

// ToStage maps the centre of a cell back to stage coordinates.
func ToStage(cx, cy, cols, rows int) (x, y float64) {
	x = (float64(cx) + 0.5) / float64(cols) * stage.Width
	y = (float64(cy) + 0.5) / float64(rows) * stage.Height
	return x, y
}

func (r *Renderer) drawButton(b *stage.Button, cols, rows int) {
	alpha := 1.0
	if !b.Active || b.Disabled {
		alpha = inactiveAlpha
	}
	r.drawNode(b.Node, alpha, cols, rows)
}

// drawNode draws a sprite's art or a text node centred on its position.
func (r *Renderer) drawNode(n *stage.Node, alpha float64, cols, rows int) {
	alpha *= n.Alpha
	if !n.Visible || alpha <= 0 {
		return
	}

	cx, cy := ToCell(n.X, n.Y, cols, rows)

	if n.Texture == "" {
		style := r.style(colorful.Color{R: 1, G: 1, B: 1}, alpha).Bold(true)
		r.drawLines([]string{n.Text}, cx, cy, style)
		return
	}

	asset := r.assets.GetByID(n.Texture)
	if asset == nil {
		r.screen.SetContent(cx, cy, '?', r.style(colorful.Color{R: 1}, alpha))
		return
	}

	fg := asset.Colour()
	if n.Tinted {
		fg = gamedata.RGB(n.Tint)
	}
	style := r.style(fg, alpha).Bold(n.Scale > 1)

	if len(asset.Frames) > 0 && n.Rotation != 0 {
		r.screen.SetContent(cx, cy, frame(asset.Frames, n.Rotation), style)
		return
	}
	r.drawLines(asset.Art, cx, cy, style)
}

func (r *Renderer) drawParticle(n *stage.Node, cols, rows int) {
	if !n.Visible || n.Alpha <= 0 {
		return
	}
	cx, cy := ToCell(n.X, n.Y, cols, rows)
	if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
		return
	}
	idx := int(math.Floor(n.Rotation/(math.Pi/4))) % len(confettiRunes)
	if idx < 0 {
		idx += len(confettiRunes)
	}
	r.screen.SetContent(cx, cy, confettiRunes[idx], r.style(gamedata.RGB(n.Tint), n.Alpha))
}

func (r *Renderer) drawLines(lines []string, cx, cy int, style tcell.Style) {
	top := cy - len(lines)/2
	for i, line := range lines {
		runes := []rune(line)
		left := cx - len(runes)/2
		for j, ch := range runes {
			r.screen.SetContent(left+j, top+i, ch, style)
		}
	}
}

func (r *Renderer) drawStatus(state game.State, stats game.Stats, choices, rows int) {
	msg := fmt.Sprintf(" %s | rounds %d  wins %d | 1-%d pick  enter confirm  q quit",
		state, stats.Rounds, stats.Wins, choices)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(msg) {
			ch = rune(msg[x])
		}
		r.screen.SetContent(x, rows, ch, style)
	}
}

// style returns fg blended towards the background by alpha.
func (r *Renderer) style(fg colorful.Color, alpha float64) tcell.Style {
	return tcell.StyleDefault.
		Foreground(r.colour(fg, alpha)).
		Background(r.colour(r.bg, 1))
}

func (r *Renderer) colour(c colorful.Color, alpha float64) tcell.Color {
	blended := r.bg.BlendRgb(c, math.Max(0, math.Min(alpha, 1)))
	red, green, blue := blended.Clamped().RGB255()
	return tcell.NewRGBColor(int32(red), int32(green), int32(blue))
}

// frame picks a rotation frame; each frame covers an eighth of a turn.
func frame(frames []string, rotation float64) rune {
	i := int(math.Floor(-rotation/(math.Pi/4))) % len(frames)
	if i < 0 {
		i += len(frames)
	}
	runes := []rune(frames[i])
	if len(runes) == 0 {
		return ' '
	}
	return runes[0]
}
