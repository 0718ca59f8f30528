package stage

import "github.com/phanxgames/slidebutton"

// nodeIDCounter is a plain counter (no atomic, the stage is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is an element of the widget's view tree. A single flat struct is used
// for the track, the handle, the label and the spinner.
type Node struct {
	ID   uint32
	Name string

	Parent   *Node
	children []*Node

	// Local position and size. OffsetX is added to X when drawing and hit
	// testing; the tease animation writes it.
	X, Y          float64
	OffsetX       float64
	Width, Height float64

	Color   slidebutton.Color
	Alpha   float64 // set through the Layout
	Fade    float64 // set by scene transitions
	Visible bool

	// Text is drawn left-aligned and vertically centered when non-empty.
	Text string

	// Clip limits drawing to the horizontal span [ClipLeft, ClipRight] in the
	// parent's coordinates.
	Clipped             bool
	ClipLeft, ClipRight float64
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Alpha = 1
	n.Fade = 1
	n.Color = slidebutton.Color{R: 1, G: 1, B: 1, A: 1}
	n.Visible = true
}

// NewContainer creates a node with no visual output.
func NewContainer(name string, width, height float64) *Node {
	n := &Node{Name: name, Width: width, Height: height}
	nodeDefaults(n)
	n.Color.A = 0
	return n
}

// NewRect creates a solid rectangle node.
func NewRect(name string, width, height float64, color slidebutton.Color) *Node {
	n := &Node{Name: name, Width: width, Height: height}
	nodeDefaults(n)
	n.Color = color
	return n
}

// NewText creates a text node.
func NewText(name, text string, color slidebutton.Color) *Node {
	n := &Node{Name: name, Text: text}
	nodeDefaults(n)
	n.Color = color
	return n
}

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("stage: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("stage: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("stage: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

// isAncestor reports whether candidate is n or one of n's ancestors.
func isAncestor(candidate, n *Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// WorldPosition returns the node's top-left corner in scene coordinates.
func (n *Node) WorldPosition() (x, y float64) {
	for p := n; p != nil; p = p.Parent {
		x += p.X + p.OffsetX
		y += p.Y
	}
	return x, y
}

// Bounds returns the node's rectangle in scene coordinates.
func (n *Node) Bounds() slidebutton.Rect {
	x, y := n.WorldPosition()
	return slidebutton.Rect{X: x, Y: y, Width: n.Width, Height: n.Height}
}

// WorldAlpha multiplies Alpha and Fade up the parent chain.
func (n *Node) WorldAlpha() float64 {
	a := 1.0
	for p := n; p != nil; p = p.Parent {
		a *= p.Alpha * p.Fade
	}
	return a
}
