package stage

// Button is a clickable node.
//
// Disabled buttons ignore clicks but stay visible. Active controls the
// highlight: inactive buttons are drawn dimmed.
type Button struct {
	Node     *Node
	Disabled bool
	Active   bool
}

// NewButton sizes node to width x height, places it at the normalized
// position and makes it interactive.
func NewButton(node *Node, x, y, width, height float64) *Button {
	node.Width = width
	node.Height = height
	node.Interactive = true
	SetPosition(node, x, y)

	return &Button{
		Node:   node,
		Active: true,
	}
}

// Clickable reports whether a click on the button should be handled.
func (b *Button) Clickable() bool {
	return b.Node.Visible && b.Node.Interactive && !b.Disabled
}

// Hit reports whether a click at the stage point lands on a clickable button.
func (b *Button) Hit(x, y float64) bool {
	return b.Clickable() && b.Node.Contains(x, y)
}
