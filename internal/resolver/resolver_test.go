package resolver

import (
	"testing"

	"github.com/n2code/recache/internal/asset"
)

func register(reg *asset.Registry, logicalPath string) *asset.Asset {
	a := &asset.Asset{LogicalPath: logicalPath, Base: logicalPath}
	reg.Register(a)
	return a
}

func TestResolveAsIs(t *testing.T) {
	reg := asset.NewRegistry()
	target := register(reg, "/app.js")
	referrer := register(reg, "/index.html")

	got, notFound := Resolve(reg, referrer, "/app.js", DefaultConfig())
	if got != target || notFound {
		t.Fatalf("expected as-is resolution to hit target, got %+v notFound=%v", got, notFound)
	}
}

func TestResolveRelativeToReferrerDirectory(t *testing.T) {
	reg := asset.NewRegistry()
	target := register(reg, "/scripts/app.js")
	referrer := register(reg, "/pages/index.html")

	got, _ := Resolve(reg, referrer, "../scripts/app.js", DefaultConfig())
	if got != target {
		t.Fatalf("expected relative resolution to hit target, got %+v", got)
	}
}

func TestResolveFixedPrefix(t *testing.T) {
	reg := asset.NewRegistry()
	target := register(reg, "/assets/logo.png")
	referrer := register(reg, "/index.html")

	got, _ := Resolve(reg, referrer, "logo.png", DefaultConfig())
	if got != target {
		t.Fatalf("expected fixed-prefix resolution to hit target, got %+v", got)
	}
}

func TestResolveSiblingDirectoryFallback(t *testing.T) {
	reg := asset.NewRegistry()
	target := register(reg, "/games/sharedAssets-3js/textures/wood.png")
	referrer := register(reg, "/index.html")

	cfg := DefaultConfig()
	cfg.SiblingDirectories = []string{"textures"}
	got, _ := Resolve(reg, referrer, "wood.png", cfg)
	if got != target {
		t.Fatalf("expected sibling-directory resolution to hit target, got %+v", got)
	}
}

func TestResolveSelfReferenceSuppressed(t *testing.T) {
	reg := asset.NewRegistry()
	self := register(reg, "/app.js")

	got, notFound := Resolve(reg, self, "/app.js", DefaultConfig())
	if got != nil || notFound {
		t.Fatalf("expected self-reference to resolve to nothing without notFound, got %+v notFound=%v", got, notFound)
	}
}

func TestResolveUnresolvedWithSlashIsNotFound(t *testing.T) {
	reg := asset.NewRegistry()
	referrer := register(reg, "/index.html")

	got, notFound := Resolve(reg, referrer, "/missing/thing.js", DefaultConfig())
	if got != nil || !notFound {
		t.Fatalf("expected unresolved candidate with slash to be reported not found, got %+v notFound=%v", got, notFound)
	}
}

func TestResolveUnresolvedWithoutSlashIsNotReported(t *testing.T) {
	reg := asset.NewRegistry()
	referrer := register(reg, "/index.html")

	got, notFound := Resolve(reg, referrer, "missing.js", DefaultConfig())
	if got != nil || notFound {
		t.Fatalf("expected unresolved slash-less candidate to not be reported, got %+v notFound=%v", got, notFound)
	}
}
