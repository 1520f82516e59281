package texture

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// allowedExts is the discovery allow-list. Files with other extensions
// are never considered texture candidates.
var allowedExts = map[string]bool{
	"jpg": true, "jpeg": true, "png": true,
	"tga": true, "ozj": true, "ozt": true,
}

// CandidateSet maps a normalized base name to the file paths sharing
// that base, in discovery order. The first eligible path wins when
// several extensions could satisfy a request; later paths stay listed
// for diagnostics.
type CandidateSet struct {
	entries map[string][]string
}

// NewCandidateSet returns an empty set.
func NewCandidateSet() *CandidateSet {
	return &CandidateSet{entries: make(map[string][]string)}
}

// Add appends path under its normalized base name if its extension is
// on the allow-list.
func (cs *CandidateSet) Add(path string) {
	ref := Normalize(path)
	if !allowedExts[ref.Ext] {
		return
	}
	cs.entries[ref.Base] = append(cs.entries[ref.Base], path)
}

// Lookup returns the discovery-ordered paths for a base name.
func (cs *CandidateSet) Lookup(base string) []string {
	return cs.entries[base]
}

// Bases returns all known base names, sorted for stable iteration.
func (cs *CandidateSet) Bases() []string {
	bases := make([]string, 0, len(cs.entries))
	for b := range cs.entries {
		bases = append(bases, b)
	}
	sort.Strings(bases)
	return bases
}

// Len returns the number of distinct base names.
func (cs *CandidateSet) Len() int {
	return len(cs.entries)
}

// Discover walks root up to maxDepth directory levels below it (0 means
// root's own files only) and collects every allow-listed texture file
// into a CandidateSet. filepath.WalkDir visits entries in lexical
// order, so discovery order is deterministic for a given tree.
func Discover(root string, maxDepth int) (*CandidateSet, error) {
	cs := NewCandidateSet()
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if depthBelow(root, path) > maxDepth {
				return filepath.SkipDir
			}
			return nil
		}
		cs.Add(path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cs, nil
}

func depthBelow(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return len(strings.Split(rel, string(filepath.Separator)))
}
