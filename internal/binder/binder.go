// Package binder matches mesh texture references against discovered
// candidate files, decodes the winners and installs them into mesh
// materials. It is the only code with side effects on the scene graph.
package binder

import (
	"fmt"

	"mu-texture-binder/internal/scene"
	"mu-texture-binder/internal/texture"
)

// DiagnosticKind classifies a non-fatal binding problem.
type DiagnosticKind int

const (
	// NoMatchingTexture: a mesh's texture reference had no satisfying
	// candidate file. The mesh stays unbound.
	NoMatchingTexture DiagnosticKind = iota
	// NoMatchingMesh: a discovered texture base name was never
	// requested by any mesh.
	NoMatchingMesh
	// DecodeFailure: the accepted candidate file could not be decoded.
	DecodeFailure
)

func (k DiagnosticKind) String() string {
	switch k {
	case NoMatchingTexture:
		return "no matching texture"
	case NoMatchingMesh:
		return "no matching mesh"
	default:
		return "decode failure"
	}
}

// Diagnostic records one per-texture problem. Diagnostics never abort
// the job; other texture names keep binding.
type Diagnostic struct {
	Kind DiagnosticKind
	Base string // normalized texture base name
	Path string // candidate file involved, if any
	Err  error  // underlying decode error, if any
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case NoMatchingTexture:
		return fmt.Sprintf("%s: %s", d.Kind, d.Base)
	case NoMatchingMesh:
		return fmt.Sprintf("%s: %s (%s)", d.Kind, d.Base, d.Path)
	default:
		return fmt.Sprintf("%s: %s: %v", d.Kind, d.Path, d.Err)
	}
}

// Binder resolves and installs textures for one conversion job.
type Binder struct {
	candidates *texture.CandidateSet
	cache      *texture.Cache
}

// New creates a Binder over a read-only candidate set. A nil cache
// gets a fresh one backed by the file loader.
func New(candidates *texture.CandidateSet, cache *texture.Cache) *Binder {
	if cache == nil {
		cache = texture.NewCache(nil)
	}
	return &Binder{candidates: candidates, cache: cache}
}

// resolve finds the first candidate file satisfying the wanted
// reference, in discovery order.
func (b *Binder) resolve(wanted texture.Ref) (path string, ref texture.Ref, ok bool) {
	for _, p := range b.candidates.Lookup(wanted.Base) {
		fref := texture.Normalize(p)
		if fref.Base == wanted.Base && texture.Matches(wanted.Ext, fref.Ext) {
			return p, fref, true
		}
	}
	return "", texture.Ref{}, false
}

// BindMesh resolves and installs a texture for one mesh node. It
// returns a diagnostic instead of an error for per-texture failures;
// nodes without a texture reference are ignored.
func (b *Binder) BindMesh(node *scene.Node) *Diagnostic {
	if !node.WantsTexture() {
		return nil
	}
	mesh := node.Mesh

	wanted := texture.Normalize(mesh.TexturePath)
	path, accepted, ok := b.resolve(wanted)
	if !ok {
		return &Diagnostic{Kind: NoMatchingTexture, Base: wanted.Base}
	}

	img, err := b.cache.Decode(path)
	if err != nil {
		return &Diagnostic{Kind: DecodeFailure, Base: wanted.Base, Path: path, Err: err}
	}

	// Build the complete replacement binding first, swap it in with one
	// assignment, then release the old resource. Render flags come from
	// the accepted file's extension, not the requested one.
	alpha := texture.AlphaExt(accepted.Ext)
	next := scene.Material{
		Map:         scene.NewTexture(img, path),
		Color:       scene.White,
		Transparent: alpha,
		DepthWrite:  !alpha,
		NeedsUpdate: true,
	}
	if alpha {
		next.BlendMode = scene.BlendNormal
	} else {
		next.BlendMode = scene.BlendNone
	}

	old := mesh.Material.Map
	mesh.Material = next
	old.Release()

	return nil
}
