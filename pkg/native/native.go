// Package native defines the borrowed, read-only view of a host framework's
// native view tree.
//
// The host UI framework owns its native views. This package only describes
// the minimal surface a locator search needs: a type tag, ordered children,
// a parent link, and bounds resolved into window coordinates. Nothing here
// mutates the tree or retains a View beyond one search.
package native

import (
	"sync"

	"github.com/go-drift/introspect/pkg/geometry"
)

// TypeTag identifies a concrete native view type (e.g., "native_text_field").
// Hosts mint one tag per concrete view class they expose.
type TypeTag string

// View is one node in the host's native view tree.
//
// Implementations are non-owning handles: a View is only valid while the
// underlying native view remains alive in the host's tree.
type View interface {
	// ViewType returns the type tag for this view.
	ViewType() TypeTag

	// VisitChildren calls the visitor for each child in natural order
	// (front-to-back or construction order, as the host defines it).
	// The visitor returns false to stop early.
	VisitChildren(visitor func(View) bool)

	// Parent returns the parent view, or nil at the top of the tree.
	Parent() View

	// BoundsInWindow resolves this view's bounding rectangle into window
	// coordinates. Returns false when the view is not attached to a window
	// and its geometry cannot be resolved.
	BoundsInWindow() (geometry.Rect, bool)
}

// IsAttached reports whether v currently resolves window geometry.
func IsAttached(v View) bool {
	if v == nil {
		return false
	}
	_, ok := v.BoundsInWindow()
	return ok
}

// WindowRoot returns the topmost ancestor of v (the window or screen
// container), or nil when v is nil or detached.
func WindowRoot(v View) View {
	if !IsAttached(v) {
		return nil
	}
	for p := v.Parent(); p != nil; p = v.Parent() {
		v = p
	}
	return v
}

// Registry records the native view types known to the host, keyed by tag.
// Registration is optional; it exists so hosts and tests can validate that
// a requested tag corresponds to a real native type.
type Registry struct {
	mu   sync.RWMutex
	tags map[TypeTag]struct{}
}

var defaultRegistry = &Registry{}

// DefaultRegistry returns the process-wide type tag registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register records a type tag as known. Registering an already-known tag
// is a no-op.
func (r *Registry) Register(tag TypeTag) {
	if tag == "" {
		return
	}
	r.mu.Lock()
	if r.tags == nil {
		r.tags = make(map[TypeTag]struct{})
	}
	r.tags[tag] = struct{}{}
	r.mu.Unlock()
}

// Known reports whether the tag has been registered.
func (r *Registry) Known(tag TypeTag) bool {
	r.mu.RLock()
	_, ok := r.tags[tag]
	r.mu.RUnlock()
	return ok
}

// Tags returns all registered tags in unspecified order.
func (r *Registry) Tags() []TypeTag {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]TypeTag, 0, len(r.tags))
	for tag := range r.tags {
		result = append(result, tag)
	}
	return result
}
