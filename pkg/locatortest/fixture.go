package locatortest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/introspect/pkg/geometry"
	"github.com/go-drift/introspect/pkg/native"
)

// fixtureNode is the YAML shape of one view in a tree fixture:
//
//	type: window
//	bounds: [0, 0, 800, 600]   # left, top, width, height
//	children:
//	  - type: label
//	    bounds: [10, 10, 50, 20]
//	    detached: true
type fixtureNode struct {
	Type     string        `yaml:"type"`
	Bounds   []float64     `yaml:"bounds"`
	Detached bool          `yaml:"detached,omitempty"`
	Children []fixtureNode `yaml:"children,omitempty"`
}

// LoadTree reads a YAML tree fixture from path and builds the FakeView
// hierarchy it describes.
func LoadTree(path string) (*FakeView, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree fixture: %w", err)
	}
	return ParseTree(data)
}

// ParseTree builds a FakeView hierarchy from YAML fixture data.
func ParseTree(data []byte) (*FakeView, error) {
	var root fixtureNode
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse tree fixture: %w", err)
	}
	return buildNode(root)
}

func buildNode(node fixtureNode) (*FakeView, error) {
	if node.Type == "" {
		return nil, fmt.Errorf("tree fixture node is missing a type")
	}
	if len(node.Bounds) != 4 {
		return nil, fmt.Errorf("tree fixture node %q: bounds must be [left, top, width, height], got %v", node.Type, node.Bounds)
	}
	bounds := geometry.RectFromLTWH(node.Bounds[0], node.Bounds[1], node.Bounds[2], node.Bounds[3])
	view := NewFakeView(native.TypeTag(node.Type), bounds)
	if node.Detached {
		view.Detach()
	}
	for _, child := range node.Children {
		built, err := buildNode(child)
		if err != nil {
			return nil, err
		}
		view.AddChild(built)
	}
	return view, nil
}
