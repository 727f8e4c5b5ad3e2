// Package locatortest provides a fake native view tree and a harness for
// testing locator searches without a host framework.
//
// Since this package is only needed by tests, import it with a short alias:
//
//	import ltest "github.com/go-drift/introspect/pkg/locatortest"
package locatortest

import (
	"github.com/go-drift/introspect/pkg/geometry"
	"github.com/go-drift/introspect/pkg/native"
)

// FakeView is an in-memory native.View for tests. Bounds are expressed
// directly in window coordinates.
type FakeView struct {
	tag      native.TypeTag
	bounds   geometry.Rect
	detached bool
	parent   *FakeView
	children []*FakeView
}

// NewFakeView creates a fake view and attaches the given children. The tag
// is recorded in the default type registry, as a host would do for its real
// native types.
func NewFakeView(tag native.TypeTag, bounds geometry.Rect, children ...*FakeView) *FakeView {
	native.DefaultRegistry().Register(tag)
	v := &FakeView{tag: tag, bounds: bounds}
	for _, child := range children {
		v.AddChild(child)
	}
	return v
}

// AddChild appends a child in natural order and reparents it to v.
func (v *FakeView) AddChild(child *FakeView) {
	if child == nil {
		return
	}
	child.parent = v
	v.children = append(v.children, child)
}

// SetBounds replaces the view's window bounds, simulating a re-layout.
func (v *FakeView) SetBounds(bounds geometry.Rect) {
	v.bounds = bounds
}

// Detach marks the view detached: it and every view below it stop resolving
// window bounds, the way a subtree removed from a window behaves.
func (v *FakeView) Detach() {
	v.detached = true
}

// Reattach clears the detached mark.
func (v *FakeView) Reattach() {
	v.detached = false
}

// ViewType returns the view's type tag.
func (v *FakeView) ViewType() native.TypeTag {
	return v.tag
}

// VisitChildren visits children in the order they were added.
func (v *FakeView) VisitChildren(visitor func(native.View) bool) {
	for _, child := range v.children {
		if !visitor(child) {
			return
		}
	}
}

// Parent returns the parent view, or nil at the root.
func (v *FakeView) Parent() native.View {
	if v.parent == nil {
		return nil
	}
	return v.parent
}

// BoundsInWindow reports the view's window bounds. Resolution fails when the
// view or any of its ancestors is detached.
func (v *FakeView) BoundsInWindow() (geometry.Rect, bool) {
	for n := v; n != nil; n = n.parent {
		if n.detached {
			return geometry.Rect{}, false
		}
	}
	return v.bounds, true
}
