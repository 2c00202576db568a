package scene

import "github.com/gogpu/ggchart"

// Cursor names understood by hosts that render the scene interactively.
const (
	CursorDefault = "default"
	CursorPointer = "pointer"
)

// Node is an element of the retained scene graph: either a *Group or a
// *ShapeNode.
type Node interface {
	// Bounds returns the bounding rectangle of the node in screen space.
	Bounds() Rect

	// Parent returns the group the node was added to, or nil.
	Parent() *Group

	setParent(g *Group)
}

// ClickEvent describes a click delivered to a shape.
type ClickEvent struct {
	X, Y   float64
	Target *ShapeNode
}

// ClickHandler is invoked when a shape is clicked.
type ClickHandler func(ev ClickEvent)

// ShapeNode is a paintable shape with a style and click bindings.
type ShapeNode struct {
	Shape  Shape
	Style  ggchart.ItemStyle
	Cursor string

	// Silent shapes are painted but never hit by clicks.
	Silent bool

	parent   *Group
	handlers []ClickHandler
}

// NewShapeNode creates a node painting s.
func NewShapeNode(s Shape) *ShapeNode {
	return &ShapeNode{Shape: s, Cursor: CursorDefault}
}

// Bounds implements Node.
func (n *ShapeNode) Bounds() Rect {
	return n.Shape.Bounds()
}

// Parent implements Node.
func (n *ShapeNode) Parent() *Group { return n.parent }

func (n *ShapeNode) setParent(g *Group) { n.parent = g }

// SetStyle replaces the node style.
func (n *ShapeNode) SetStyle(st ggchart.ItemStyle) {
	n.Style = st
}

// OnClick registers h to run when the node is clicked.
func (n *ShapeNode) OnClick(h ClickHandler) {
	n.handlers = append(n.handlers, h)
}

// Clickable reports whether the node has click handlers.
func (n *ShapeNode) Clickable() bool {
	return len(n.handlers) > 0
}

// Click runs the node's click handlers in registration order.
func (n *ShapeNode) Click(x, y float64) {
	ev := ClickEvent{X: x, Y: y, Target: n}
	for _, h := range n.handlers {
		h(ev)
	}
}

// Contains reports whether (x, y) hits the node. A stroked rectangle is
// also hit within half the line width of its outline, so degenerate
// rectangles drawn as lines stay clickable.
func (n *ShapeNode) Contains(x, y float64) bool {
	if n.Shape.Contains(x, y) {
		return true
	}
	if r, ok := n.Shape.(*RectShape); ok && n.Style.HasStroke() {
		hw := n.Style.LineWidth / 2
		b := r.Normalize()
		b.X -= hw
		b.Y -= hw
		b.Width += 2 * hw
		b.Height += 2 * hw
		return b.Contains(x, y)
	}
	return false
}

// Group is an ordered container of nodes with an optional clip path.
type Group struct {
	Name string

	parent   *Group
	children []Node
	clip     Shape
}

// NewGroup creates an empty group.
func NewGroup(name string) *Group {
	return &Group{Name: name}
}

// Bounds returns the union of the children's bounds, limited to the clip
// path when one is set.
func (g *Group) Bounds() Rect {
	var b Rect
	for i, c := range g.children {
		if i == 0 {
			b = c.Bounds()
			continue
		}
		b = b.Union(c.Bounds())
	}
	if g.clip != nil && len(g.children) > 0 {
		b = b.Intersect(g.clip.Bounds())
	}
	return b
}

// Parent implements Node.
func (g *Group) Parent() *Group { return g.parent }

func (g *Group) setParent(p *Group) { g.parent = p }

// Add appends n as the last child. A node already attached elsewhere is
// moved.
func (g *Group) Add(n Node) {
	if p := n.Parent(); p != nil {
		p.remove(n)
	}
	n.setParent(g)
	g.children = append(g.children, n)
}

func (g *Group) remove(n Node) {
	for i, c := range g.children {
		if c == n {
			g.children = append(g.children[:i], g.children[i+1:]...)
			n.setParent(nil)
			return
		}
	}
}

// RemoveAll detaches every child.
func (g *Group) RemoveAll() {
	for _, c := range g.children {
		c.setParent(nil)
	}
	g.children = nil
}

// Children returns the children in paint order. The slice must not be
// modified.
func (g *Group) Children() []Node {
	return g.children
}

// Len returns the number of direct children.
func (g *Group) Len() int {
	return len(g.children)
}

// EachChild calls fn for every direct child in paint order.
func (g *Group) EachChild(fn func(Node)) {
	for _, c := range g.children {
		fn(c)
	}
}

// Shapes returns every ShapeNode in the subtree, depth first in paint
// order.
func (g *Group) Shapes() []*ShapeNode {
	var out []*ShapeNode
	for _, c := range g.children {
		switch n := c.(type) {
		case *ShapeNode:
			out = append(out, n)
		case *Group:
			out = append(out, n.Shapes()...)
		}
	}
	return out
}

// SetClipPath limits painting and hit testing of the subtree to s.
func (g *Group) SetClipPath(s Shape) {
	g.clip = s
}

// ClipPath returns the clip shape, or nil.
func (g *Group) ClipPath() Shape {
	return g.clip
}

// HitTest returns the topmost non-silent shape at (x, y), or nil.
func (g *Group) HitTest(x, y float64) *ShapeNode {
	if g.clip != nil && !g.clip.Contains(x, y) {
		return nil
	}
	for i := len(g.children) - 1; i >= 0; i-- {
		switch n := g.children[i].(type) {
		case *Group:
			if hit := n.HitTest(x, y); hit != nil {
				return hit
			}
		case *ShapeNode:
			if !n.Silent && n.Contains(x, y) {
				return n
			}
		}
	}
	return nil
}

// Click delivers a click at (x, y) to the topmost shape under it and
// reports whether a shape was hit.
func (g *Group) Click(x, y float64) bool {
	target := g.HitTest(x, y)
	if target == nil {
		return false
	}
	target.Click(x, y)
	return true
}
