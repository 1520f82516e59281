package texture

// equivalents maps an extension to the set of extensions that may stand
// in for it. The table is not stored symmetrically; Matches queries it
// in both directions.
var equivalents = map[string][]string{
	"jpg":  {"ozj", "jpeg"},
	"jpeg": {"ozj", "jpg"},
	"ozj":  {"jpg", "jpeg", "png"},
	"png":  {"ozj", "ozt"},
	"tga":  {"ozt", "png"},
	"ozt":  {"tga", "png"},
}

// AlphaExt reports whether ext belongs to the alpha-bearing format
// family. Meshes bound from these files render with blending enabled.
func AlphaExt(ext string) bool {
	return ext == "ozt" || ext == "tga"
}

// Matches reports whether a file with extension candidate is an
// acceptable substitute for a requested extension wanted. Extensions
// absent from the table match only themselves.
func Matches(wanted, candidate string) bool {
	if wanted == candidate {
		return true
	}
	for _, e := range equivalents[wanted] {
		if e == candidate {
			return true
		}
	}
	for _, e := range equivalents[candidate] {
		if e == wanted {
			return true
		}
	}
	return false
}
