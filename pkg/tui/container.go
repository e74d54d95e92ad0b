// ABOUTME: nodeList is the ordered, id-indexed child list shared by Window and Group
// ABOUTME: Group is a compound element that is also a container for its children

package tui

import "fmt"

// nodeList holds children in insertion order.
type nodeList struct {
	children []Node
}

func (l *nodeList) add(owner Container, n Node) error {
	if l.index(n.ID()) >= 0 {
		return fmt.Errorf("adding %s: %w", n.ID(), ErrDuplicateID)
	}
	if prev := n.Parent(); prev != nil && prev != owner {
		if r, ok := prev.(interface{ Remove(id string) Node }); ok {
			r.Remove(n.ID())
		}
	}
	n.SetParent(owner)
	l.children = append(l.children, n)
	return nil
}

func (l *nodeList) remove(id string) Node {
	i := l.index(id)
	if i < 0 {
		return nil
	}
	n := l.children[i]
	l.children = append(l.children[:i], l.children[i+1:]...)
	return n
}

func (l *nodeList) get(id string) Node {
	if i := l.index(id); i >= 0 {
		return l.children[i]
	}
	return nil
}

func (l *nodeList) index(id string) int {
	for i, c := range l.children {
		if c.ID() == id {
			return i
		}
	}
	return -1
}

// snapshot returns a copy of the children.
func (l *nodeList) snapshot() []Node {
	out := make([]Node, len(l.children))
	copy(out, l.children)
	return out
}

func (l *nodeList) holds(e *Element) bool {
	for _, c := range l.children {
		if c.holds(e) {
			return true
		}
	}
	return false
}

// Group is an element with children. Its own lines render first, then
// each child in insertion order. Children see the group's size and
// maxima; focus, output and input pass through to the group's parent.
type Group struct {
	Element
	nodes nodeList
}

var (
	_ Node      = (*Group)(nil)
	_ Container = (*Group)(nil)
)

// NewGroup returns an empty group with the given id.
func NewGroup(id string) *Group {
	return &Group{Element: *NewElement(id)}
}

// Add appends n to the group, moving it out of any previous container.
func (g *Group) Add(n Node) error {
	return g.nodes.add(g, n)
}

// Remove detaches the child with the given id and returns it, or nil.
// Focus held by the removed subtree is cleared.
func (g *Group) Remove(id string) Node {
	n := g.nodes.remove(id)
	if n == nil {
		return nil
	}
	if f := g.Focused(); f != nil && n.holds(f) {
		g.SetFocus(nil)
	}
	n.SetParent(nil)
	return n
}

// Get returns the child with the given id, or nil.
func (g *Group) Get(id string) Node {
	return g.nodes.get(id)
}

// Elements returns the children in insertion order.
func (g *Group) Elements() []Node {
	return g.nodes.snapshot()
}

// SetFocus forwards to the group's parent.
func (g *Group) SetFocus(e *Element) {
	if g.parent != nil {
		g.parent.SetFocus(e)
	}
}

// Focused returns the parent's focused element.
func (g *Group) Focused() *Element {
	if g.parent == nil {
		return nil
	}
	return g.parent.Focused()
}

// Dirty reports whether the group or any child needs drawing.
func (g *Group) Dirty() bool {
	if g.Element.Dirty() {
		return true
	}
	for _, c := range g.nodes.children {
		if c.Dirty() {
			return true
		}
	}
	return false
}

// Render draws the group's own lines, then its children.
func (g *Group) Render(force bool) (bool, error) {
	rendered, err := g.Element.Render(force)
	if err != nil {
		return rendered, err
	}
	for _, c := range g.nodes.children {
		ok, err := c.Render(force)
		if err != nil {
			return true, fmt.Errorf("rendering group %s: %w", g.id, err)
		}
		rendered = rendered || ok
	}
	return rendered, nil
}

// ResetSize drops the memoized size of the group and its children.
func (g *Group) ResetSize() {
	g.Element.ResetSize()
	for _, c := range g.nodes.children {
		c.ResetSize()
	}
}

// SetParent sets the container and drops memoized sizes below it.
func (g *Group) SetParent(c Container) {
	g.Element.SetParent(c)
	g.ResetSize()
}

func (g *Group) holds(e *Element) bool {
	return &g.Element == e || g.nodes.holds(e)
}
