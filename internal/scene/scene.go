// Package scene holds the mesh scene graph the binder operates on. The
// graph arrives from an external model parser; only materials are
// mutated here.
package scene

import "image"

// NodeKind is the explicit variant tag for scene nodes. Texture binding
// touches only KindMesh nodes; groups are traversed, everything else is
// passed over.
type NodeKind int

const (
	KindOther NodeKind = iota
	KindGroup
	KindMesh
)

// BlendMode selects how a bound texture is composited.
type BlendMode int

const (
	BlendNone BlendMode = iota
	BlendNormal
)

func (m BlendMode) String() string {
	if m == BlendNormal {
		return "normal"
	}
	return "none"
}

// Node is one element of the scene graph.
type Node struct {
	Kind     NodeKind
	Name     string
	Children []*Node

	// Mesh is set iff Kind == KindMesh.
	Mesh *Mesh
}

// Mesh is a drawable node with an optional texture requirement.
type Mesh struct {
	// TexturePath is the raw texture name declared by the model file,
	// unnormalized (may contain backslash directories and any case).
	// Empty means the mesh wants no texture.
	TexturePath string

	Material Material
}

// WantsTexture reports whether this node is a mesh declaring a texture
// reference.
func (n *Node) WantsTexture() bool {
	return n.Kind == KindMesh && n.Mesh != nil && n.Mesh.TexturePath != ""
}

// Walk visits every node in depth-first order.
func (n *Node) Walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// Meshes returns every mesh node that declares a texture reference.
func (n *Node) Meshes() []*Node {
	var out []*Node
	n.Walk(func(node *Node) {
		if node.WantsTexture() {
			out = append(out, node)
		}
	})
	return out
}

// Color is an RGB tint applied on top of the bound texture.
type Color struct {
	R, G, B float64
}

// White leaves the texture's own colors untinted.
var White = Color{R: 1, G: 1, B: 1}

// Material is the mutable binding state on a mesh. The binder builds a
// complete replacement Material and installs it in one assignment, so
// no observer sees a stale map with fresh flags.
type Material struct {
	Map         *Texture
	Color       Color
	Transparent bool
	BlendMode   BlendMode
	DepthWrite  bool
	NeedsUpdate bool
}

// Texture wraps a decoded bitmap as a releasable resource. Ownership
// belongs to exactly one material at a time; Release must run before
// the owning material drops its reference.
type Texture struct {
	Image    *image.NRGBA
	Source   string // file path the bitmap was decoded from
	released bool
}

// NewTexture wraps a decoded bitmap.
func NewTexture(img *image.NRGBA, source string) *Texture {
	return &Texture{Image: img, Source: source}
}

// Release frees the underlying pixel buffer. Safe to call more than
// once; only the first call has effect.
func (t *Texture) Release() {
	if t == nil || t.released {
		return
	}
	t.released = true
	t.Image = nil
}

// Released reports whether Release has run.
func (t *Texture) Released() bool {
	return t != nil && t.released
}
