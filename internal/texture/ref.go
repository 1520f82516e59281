// Package texture resolves the texture names a mesh asks for against
// files discovered on disk, and decodes the winning candidates.
package texture

import (
	"path/filepath"
	"strings"
)

// Ref is a normalized texture reference: lowercase base name without
// extension, plus the lowercase extension without its dot.
type Ref struct {
	Base string
	Ext  string
}

// Normalize derives a Ref from any file path or mesh-declared texture
// string. Directory prefixes (including backslash-separated ones from
// model files) are stripped. Normalizing a name that is already
// normalized returns the same Ref.
func Normalize(name string) Ref {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	return Ref{
		Base: strings.ToLower(strings.TrimSuffix(base, ext)),
		Ext:  strings.ToLower(strings.TrimPrefix(ext, ".")),
	}
}
