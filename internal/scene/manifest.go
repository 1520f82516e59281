package scene

import (
	"encoding/json"
	"fmt"
	"os"
)

// manifestNode matches the scene manifest JSON schema. The manifest is
// the hand-off format from the model-parsing step: a node tree where
// meshes carry the texture name their model file declared.
type manifestNode struct {
	Kind     string         `json:"kind"` // "mesh", "group", anything else is opaque
	Name     string         `json:"name"`
	Texture  string         `json:"texture,omitempty"`
	Children []manifestNode `json:"children,omitempty"`
}

// LoadManifest reads a scene manifest JSON file and builds the node
// graph with unbound materials.
func LoadManifest(path string) (*Node, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var root manifestNode
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}

	return buildNode(root), nil
}

func buildNode(m manifestNode) *Node {
	n := &Node{Name: m.Name}
	switch m.Kind {
	case "mesh":
		n.Kind = KindMesh
		n.Mesh = &Mesh{
			TexturePath: m.Texture,
			Material:    Material{Color: White, DepthWrite: true},
		}
	case "group":
		n.Kind = KindGroup
	default:
		n.Kind = KindOther
	}
	for _, c := range m.Children {
		n.Children = append(n.Children, buildNode(c))
	}
	return n
}
