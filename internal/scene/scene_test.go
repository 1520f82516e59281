package scene

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestWalkAndMeshes(t *testing.T) {
	root := &Node{
		Kind: KindGroup,
		Children: []*Node{
			{Kind: KindMesh, Name: "body", Mesh: &Mesh{TexturePath: "skin.jpg"}},
			{Kind: KindOther, Name: "light"},
			{
				Kind: KindGroup,
				Children: []*Node{
					{Kind: KindMesh, Name: "wing", Mesh: &Mesh{TexturePath: "wing.ozt"}},
					{Kind: KindMesh, Name: "bare", Mesh: &Mesh{}},
				},
			},
		},
	}

	var visited int
	root.Walk(func(*Node) { visited++ })
	if visited != 6 {
		t.Fatalf("visited got=%d want=6", visited)
	}

	tagged := root.Meshes()
	if len(tagged) != 2 {
		t.Fatalf("tagged meshes got=%d want=2", len(tagged))
	}
	if tagged[0].Name != "body" || tagged[1].Name != "wing" {
		t.Fatalf("mesh order got=%q,%q want=body,wing", tagged[0].Name, tagged[1].Name)
	}
}

func TestTextureReleaseIdempotent(t *testing.T) {
	tex := NewTexture(image.NewNRGBA(image.Rect(0, 0, 1, 1)), "a.ozt")
	if tex.Released() {
		t.Fatal("fresh texture reports released")
	}
	tex.Release()
	tex.Release()
	if !tex.Released() {
		t.Fatal("texture not released")
	}
	if tex.Image != nil {
		t.Fatal("release kept the pixel buffer alive")
	}

	var nilTex *Texture
	nilTex.Release() // must not panic
}

func TestLoadManifest(t *testing.T) {
	manifest := `{
		"kind": "group",
		"name": "scene",
		"children": [
			{"kind": "mesh", "name": "blade", "texture": "Weapon01.OZJ"},
			{"kind": "camera", "name": "cam"},
			{"kind": "group", "name": "wings", "children": [
				{"kind": "mesh", "name": "left", "texture": "wing.tga"}
			]}
		]
	}`
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(manifest), 0644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	root, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if root.Kind != KindGroup || root.Name != "scene" {
		t.Fatalf("root got=%+v want group scene", root)
	}
	if root.Children[1].Kind != KindOther {
		t.Errorf("unknown kind got=%v want=KindOther", root.Children[1].Kind)
	}

	meshes := root.Meshes()
	if len(meshes) != 2 {
		t.Fatalf("meshes got=%d want=2", len(meshes))
	}
	blade := meshes[0].Mesh
	if blade.TexturePath != "Weapon01.OZJ" {
		t.Errorf("texture path got=%q want raw unnormalized name", blade.TexturePath)
	}
	if blade.Material.Map != nil {
		t.Error("manifest mesh starts with a bound material")
	}
	if blade.Material.Color != White {
		t.Errorf("initial tint got=%+v want=white", blade.Material.Color)
	}
}

func TestLoadManifestErrors(t *testing.T) {
	if _, err := LoadManifest(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("missing file: error got=nil")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadManifest(path); err == nil {
		t.Error("malformed JSON: error got=nil")
	}
}
