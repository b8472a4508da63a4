package stage

// Layer is an ordered group of nodes drawn back to front.
type Layer struct {
	nodes []*Node
}

// NewLayer creates an empty layer.
func NewLayer() *Layer {
	return &Layer{}
}

// Add appends n on top of the layer.
func (l *Layer) Add(n *Node) {
	l.nodes = append(l.nodes, n)
}

// Remove drops n from the layer. Removing a node that is not present is a no-op.
func (l *Layer) Remove(n *Node) {
	for i, existing := range l.nodes {
		if existing == n {
			copy(l.nodes[i:], l.nodes[i+1:])
			l.nodes[len(l.nodes)-1] = nil
			l.nodes = l.nodes[:len(l.nodes)-1]
			return
		}
	}
}

// Nodes returns the layer's nodes in draw order.
// The slice is owned by the layer and must not be modified.
func (l *Layer) Nodes() []*Node {
	return l.nodes
}

// Len returns the number of nodes in the layer.
func (l *Layer) Len() int {
	return len(l.nodes)
}
