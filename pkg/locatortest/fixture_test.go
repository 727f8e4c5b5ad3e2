package locatortest

import (
	"testing"

	"github.com/go-drift/introspect/pkg/geometry"
	"github.com/go-drift/introspect/pkg/native"
)

func TestParseTree(t *testing.T) {
	data := []byte(`
type: window
bounds: [0, 0, 800, 600]
children:
  - type: container
    bounds: [0, 0, 400, 300]
    children:
      - type: label
        bounds: [10, 10, 50, 20]
  - type: label
    bounds: [400, 0, 50, 20]
`)
	root, err := ParseTree(data)
	if err != nil {
		t.Fatalf("ParseTree: %v", err)
	}
	if root.ViewType() != "window" {
		t.Errorf("expected window root, got %q", root.ViewType())
	}
	bounds, ok := root.BoundsInWindow()
	if !ok || bounds != geometry.RectFromLTWH(0, 0, 800, 600) {
		t.Errorf("unexpected root bounds: %+v attached=%v", bounds, ok)
	}

	var order []native.TypeTag
	var collect func(v native.View)
	collect = func(v native.View) {
		order = append(order, v.ViewType())
		v.VisitChildren(func(child native.View) bool {
			collect(child)
			return true
		})
	}
	collect(root)
	want := []native.TypeTag{"window", "container", "label", "label"}
	if len(order) != len(want) {
		t.Fatalf("expected %d nodes, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("unexpected traversal order: %v", order)
		}
	}
	if !native.DefaultRegistry().Known("container") {
		t.Error("expected fixture types to be registered")
	}
}

func TestParseTreeDetached(t *testing.T) {
	data := []byte(`
type: window
bounds: [0, 0, 800, 600]
children:
  - type: overlay
    bounds: [0, 0, 100, 100]
    detached: true
    children:
      - type: label
        bounds: [5, 5, 10, 10]
`)
	root, err := ParseTree(data)
	if err != nil {
		t.Fatalf("ParseTree: %v", err)
	}
	var leaf native.View
	root.VisitChildren(func(child native.View) bool {
		child.VisitChildren(func(grandchild native.View) bool {
			leaf = grandchild
			return false
		})
		return false
	})
	if leaf == nil {
		t.Fatal("expected to find the leaf")
	}
	if _, ok := leaf.BoundsInWindow(); ok {
		t.Error("expected bounds to be unresolvable under a detached ancestor")
	}
}

func TestParseTreeErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"missing type", "bounds: [0, 0, 1, 1]"},
		{"bad bounds", "type: window\nbounds: [0, 0]"},
		{"invalid yaml", "type: [unclosed"},
	}
	for _, tc := range cases {
		if _, err := ParseTree([]byte(tc.data)); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestFakeViewReattach(t *testing.T) {
	v := NewFakeView("label", geometry.RectFromLTWH(0, 0, 10, 10))
	v.Detach()
	if _, ok := v.BoundsInWindow(); ok {
		t.Fatal("expected detached view")
	}
	v.Reattach()
	if _, ok := v.BoundsInWindow(); !ok {
		t.Fatal("expected reattached view to resolve bounds")
	}
}
