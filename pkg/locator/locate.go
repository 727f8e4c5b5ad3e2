package locator

import (
	"github.com/go-drift/introspect/pkg/geometry"
	"github.com/go-drift/introspect/pkg/native"
)

// MatchRequest is the ephemeral input to one search. It is constructed
// immediately before the search and discarded after.
type MatchRequest struct {
	// Root is the native view to search under.
	Root native.View
	// Type is the native view type to match.
	Type native.TypeTag
	// Region is the target rectangle in window coordinates.
	Region geometry.Rect
}

// Locate returns the first view under root, in depth-first pre-order, whose
// type matches typeTag and whose window bounds intersect region. Returns nil
// when no view qualifies.
//
// Pre-order means an ancestor is preferred over any of its descendants, and
// an earlier sibling subtree is preferred over a later one. Views that fail
// either predicate (or cannot resolve window bounds) are skipped, but their
// children are still visited. The traversal is read-only and deterministic
// for a fixed tree snapshot.
func Locate(root native.View, typeTag native.TypeTag, region geometry.Rect) native.View {
	var match native.View
	walk(root, func(v native.View) bool {
		if v.ViewType() != typeTag {
			return true
		}
		bounds, ok := v.BoundsInWindow()
		if !ok || !bounds.Intersects(region) {
			return true
		}
		match = v
		return false
	})
	return match
}

// LocateRequest runs Locate with the parameters bundled in req.
func LocateRequest(req MatchRequest) native.View {
	return Locate(req.Root, req.Type, req.Region)
}

// walk performs a depth-first pre-order traversal starting at v.
// The visitor returns false to stop traversal; walk returns false when the
// visitor stopped it.
func walk(v native.View, visitor func(native.View) bool) bool {
	if v == nil {
		return true
	}
	if !visitor(v) {
		return false
	}
	stopped := false
	v.VisitChildren(func(child native.View) bool {
		if !walk(child, visitor) {
			stopped = true
			return false
		}
		return true
	})
	return !stopped
}
