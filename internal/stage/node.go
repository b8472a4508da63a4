// Package stage provides the display objects the game mutates and the
// renderer draws: sprites, text, buttons and layers on a fixed-size stage.
package stage

// Stage dimensions in stage units. Renderers scale these to their surface.
const (
	Width  = 1136.0
	Height = 640.0
)

// Node is a positioned display object. X and Y locate its centre.
type Node struct {
	Name    string
	Texture string // asset key, empty for text nodes
	Text    string

	X, Y          float64
	Width, Height float64 // unscaled size
	Scale         float64
	Rotation      float64 // radians
	Alpha         float64 // 0 transparent, 1 opaque

	Tint   uint32 // 0xRRGGBB, used when Tinted
	Tinted bool

	Visible     bool
	Interactive bool
}

// NewSprite creates a visible sprite showing the given texture.
func NewSprite(name, texture string, width, height float64) *Node {
	return &Node{
		Name:    name,
		Texture: texture,
		Width:   width,
		Height:  height,
		Scale:   1,
		Alpha:   1,
		Visible: true,
	}
}

// NewText creates a visible text node. Width is measured in stage units.
func NewText(name, text string, width, height float64) *Node {
	return &Node{
		Name:    name,
		Text:    text,
		Width:   width,
		Height:  height,
		Scale:   1,
		Alpha:   1,
		Visible: true,
	}
}

// SetPosition places n using normalized coordinates (0-1) within the stage,
// keeping the whole node on stage at the extremes.
func SetPosition(n *Node, x, y float64) {
	w, h := n.Size()
	n.X = w/2 + (Width-w)*x
	n.Y = h/2 + (Height-h)*y
}

// Size returns the scaled width and height.
func (n *Node) Size() (w, h float64) {
	return n.Width * n.Scale, n.Height * n.Scale
}

// Bounds returns the scaled bounding box as min and max corners.
func (n *Node) Bounds() (minX, minY, maxX, maxY float64) {
	w, h := n.Size()
	return n.X - w/2, n.Y - h/2, n.X + w/2, n.Y + h/2
}

// Contains reports whether the stage point lies inside the node's bounds.
func (n *Node) Contains(x, y float64) bool {
	minX, minY, maxX, maxY := n.Bounds()
	return x >= minX && x <= maxX && y >= minY && y <= maxY
}

// SetTint colours the node with a 0xRRGGBB value.
func (n *Node) SetTint(rgb uint32) {
	n.Tint = rgb
	n.Tinted = true
}
