// Package locator finds the concrete native view behind a declarative node.
//
// Declarative frameworks frequently render through, or wrap, lower-level
// native views whose full configuration surface is not exposed declaratively.
// This package is the escape hatch: given the root of a native view tree and
// a target region in window coordinates, Locate returns the first view of a
// requested type that geometrically overlaps the region, and Extractor
// delivers that view to a caller-supplied callback after each layout pass.
//
// # Locating a view directly
//
//	match := locator.Locate(root, "scroll_view", region)
//	if match != nil {
//	    // configure the native view imperatively
//	}
//
// # Extracting through an adjunct node
//
// Hosts embed an invisible adjunct view next to the declarative node of
// interest and forward their attach/layout hook:
//
//	ext := &locator.Extractor{
//	    Type:    "scroll_view",
//	    OnMatch: func(v native.View) { /* configure */ },
//	}
//	// from the host's layout hook, every pass:
//	ext.LayoutDidSettle(adjunctView)
//
// OnMatch may fire again on every re-layout; callers must treat delivery as
// idempotent or de-duplicate themselves. Searches never mutate the native
// tree and never retain views beyond one scheduled search.
package locator
