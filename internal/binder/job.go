package binder

import (
	"sort"
	"sync"
	"sync/atomic"

	"mu-texture-binder/internal/scene"
	"mu-texture-binder/internal/texture"
)

// Report summarizes one binding job. Per-texture failures are recorded
// as diagnostics; the job itself always runs to completion.
type Report struct {
	Bound       int
	Unbound     int
	Diagnostics []Diagnostic
}

// Failed returns only the diagnostics that left a mesh unbound.
func (r *Report) Failed() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Kind != NoMatchingMesh {
			out = append(out, d)
		}
	}
	return out
}

// group is the unit of parallel work: all meshes requesting the same
// normalized base name. Workers own disjoint groups, so no two workers
// ever touch the same mesh.
type group struct {
	base  string
	nodes []*scene.Node
}

// Run binds every texture-tagged mesh under root. Distinct texture base
// names are processed by a pool of workers; meshes sharing a base name
// are bound sequentially within one worker. workers <= 1 runs inline.
func (b *Binder) Run(root *scene.Node, workers int) Report {
	groups := groupMeshes(root)

	diags := make([][]Diagnostic, len(groups))
	var bound, unbound atomic.Int64

	work := func(i int) {
		for _, node := range groups[i].nodes {
			if d := b.BindMesh(node); d != nil {
				diags[i] = append(diags[i], *d)
				unbound.Add(1)
			} else {
				bound.Add(1)
			}
		}
	}

	if workers <= 1 || len(groups) <= 1 {
		for i := range groups {
			work(i)
		}
	} else {
		idxChan := make(chan int, workers*2)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range idxChan {
					work(i)
				}
			}()
		}
		for i := range groups {
			idxChan <- i
		}
		close(idxChan)
		wg.Wait()
	}

	report := Report{Bound: int(bound.Load()), Unbound: int(unbound.Load())}
	for _, ds := range diags {
		report.Diagnostics = append(report.Diagnostics, ds...)
	}

	// Discovered base names no mesh ever asked for.
	requested := make(map[string]bool, len(groups))
	for _, g := range groups {
		requested[g.base] = true
	}
	for _, base := range b.candidates.Bases() {
		if !requested[base] {
			paths := b.candidates.Lookup(base)
			report.Diagnostics = append(report.Diagnostics, Diagnostic{
				Kind: NoMatchingMesh,
				Base: base,
				Path: paths[0],
			})
		}
	}

	return report
}

func groupMeshes(root *scene.Node) []group {
	byBase := make(map[string][]*scene.Node)
	for _, node := range root.Meshes() {
		base := texture.Normalize(node.Mesh.TexturePath).Base
		byBase[base] = append(byBase[base], node)
	}

	groups := make([]group, 0, len(byBase))
	for base, nodes := range byBase {
		groups = append(groups, group{base: base, nodes: nodes})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].base < groups[j].base })
	return groups
}
