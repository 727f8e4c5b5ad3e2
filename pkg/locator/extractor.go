package locator

import (
	stderrors "errors"
	"sync"

	"github.com/go-drift/introspect/pkg/dispatch"
	"github.com/go-drift/introspect/pkg/errors"
	"github.com/go-drift/introspect/pkg/native"
)

// Extractor delivers the first native view of a requested type that overlaps
// its anchor's window bounds to a caller-supplied callback.
//
// Hosts embed an invisible adjunct view next to the declarative node of
// interest and call LayoutDidSettle from their attach/layout hook on every
// layout pass. Each pass that finds a match invokes OnMatch again; there is
// no de-duplication, so callbacks must be idempotent-safe. OnMatch always
// runs on the UI thread, after the layout pass that scheduled it, and never
// concurrently with itself.
type Extractor struct {
	// Type is the native view type to search for.
	Type native.TypeTag
	// OnMatch receives the matched view. The reference is only valid while
	// the underlying native view remains alive; callers must not retain it
	// across re-layouts.
	OnMatch func(native.View)
}

// Extract returns an Extractor searching for views of the given type. Hosts
// pair it with the invisible adjunct view they embed next to the declarative
// node being introspected.
func Extract(tag native.TypeTag, onMatch func(native.View)) *Extractor {
	return &Extractor{Type: tag, OnMatch: onMatch}
}

// missingDispatchOnce limits the missing-dispatcher report to one per process.
// A host that never registers a dispatcher would otherwise log every pass.
var missingDispatchOnce sync.Once

// LayoutDidSettle schedules one search against the anchor's window root.
//
// The search is deferred to the UI-thread task queue so that it runs after
// the current layout pass, when native geometry is final. If the anchor has
// no window attachment yet the pass is skipped silently; the next layout
// pass will retry. Absence of a match is not an error and produces no
// callback.
func (e *Extractor) LayoutDidSettle(anchor native.View) {
	if e == nil || e.OnMatch == nil || anchor == nil {
		return
	}
	if native.WindowRoot(anchor) == nil {
		return // not attached yet
	}
	scheduled := dispatch.Dispatch(func() {
		e.search(anchor)
	})
	if !scheduled {
		missingDispatchOnce.Do(func() {
			errors.Report(&errors.IntrospectError{
				Op:   "locator.Extractor.LayoutDidSettle",
				Kind: errors.KindDispatch,
				Err:  stderrors.New("no dispatch function registered; search not scheduled"),
			})
		})
	}
}

// search runs at execution time on the UI thread. Attachment is re-validated
// here because the anchor may have been detached between scheduling and
// execution; a stale task aborts with no callback.
func (e *Extractor) search(anchor native.View) {
	root := native.WindowRoot(anchor)
	if root == nil {
		return
	}
	region, ok := anchor.BoundsInWindow()
	if !ok {
		return
	}
	match := LocateRequest(MatchRequest{Root: root, Type: e.Type, Region: region})
	if match == nil {
		return
	}
	e.deliver(match)
}

// deliver invokes OnMatch with panic recovery so a misbehaving callback
// cannot take down the host's frame loop.
func (e *Extractor) deliver(match native.View) {
	defer errors.Recover("locator.Extractor.deliver")
	e.OnMatch(match)
}
