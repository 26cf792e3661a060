package enumerate

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, root, rel string, content []byte) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, content, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEnumerateRegistersFilesUnderLogicalPaths(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "index.html", []byte("<html></html>"))
	writeFixture(t, root, "games/sharedAssets-3js/three.js", []byte("var x=1;"))
	writeFixture(t, root, "games/sharedAssets-3js/particles/smoke.png", []byte{0x89, 'P', 'N', 'G'})

	result, err := Enumerate([]string{root})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, ok := result.Registry.Lookup("/index.html")
	if !ok {
		t.Fatalf("expected /index.html to be registered")
	}
	if !a.IsTextual {
		t.Fatalf("expected index.html to be textual")
	}
	if a.Extension != ".html" {
		t.Fatalf("expected extension .html, got %q", a.Extension)
	}

	png, ok := result.Registry.Lookup("/games/sharedAssets-3js/particles/smoke.png")
	if !ok {
		t.Fatalf("expected smoke.png to be registered")
	}
	if png.IsTextual {
		t.Fatalf("expected smoke.png to be opaque")
	}
}

func TestEnumerateCollectsImmediateChildDirectories(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "games/sharedAssets-3js/particles/smoke.png", []byte{1})
	writeFixture(t, root, "games/sharedAssets-3js/textures/wood.png", []byte{1})
	writeFixture(t, root, "games/sharedAssets-3js/three.js", []byte("x"))

	result, err := Enumerate([]string{root})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	children := result.DirChildren["/games/sharedAssets-3js"]
	if len(children) != 2 {
		t.Fatalf("expected 2 child directories, got %v", children)
	}
	if children[0] != "particles" || children[1] != "textures" {
		t.Fatalf("expected sorted [particles textures], got %v", children)
	}
}

func TestEnumerateFirstWinsAcrossRoots(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	writeFixture(t, rootA, "shared.js", []byte("from A"))
	writeFixture(t, rootB, "shared.js", []byte("from B"))

	result, err := Enumerate([]string{rootA, rootB})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, ok := result.Registry.Lookup("/shared.js")
	if !ok {
		t.Fatalf("expected /shared.js to be registered")
	}
	if filepath.Dir(a.OriginalPath) != rootA {
		t.Fatalf("expected first root to win, got asset from %s", a.OriginalPath)
	}
}
