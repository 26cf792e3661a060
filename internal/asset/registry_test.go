package asset

import "testing"

func TestRegisterFirstWinsUnderBothKeys(t *testing.T) {
	r := NewRegistry()
	first := &Asset{LogicalPath: "/app.js", OriginalPath: "/src/app.js"}
	second := &Asset{LogicalPath: "/app.js", OriginalPath: "/other/app.js"}

	r.Register(first)
	r.Register(second)

	if got, _ := r.Lookup("app.js"); got != first {
		t.Fatalf("expected bare-key lookup to return first registration, got %+v", got)
	}
	if got, _ := r.Lookup("/app.js"); got != first {
		t.Fatalf("expected rooted-key lookup to return first registration, got %+v", got)
	}
	if r.Count() != 1 {
		t.Fatalf("expected exactly one distinct asset, got %d", r.Count())
	}
}

func TestLookupMiss(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Lookup("/missing.js"); ok {
		t.Fatal("expected lookup miss for unregistered path")
	}
}

func TestEntrySetContainsEitherForm(t *testing.T) {
	e := NewEntrySet([]string{"index.html"})
	if !e.Contains("index.html") || !e.Contains("/index.html") {
		t.Fatal("expected entry set to recognize both bare and rooted forms")
	}
	if e.Contains("tester.html") {
		t.Fatal("did not expect tester.html to be an entry")
	}
}

func TestIgnoreSetNilSafe(t *testing.T) {
	s := NewIgnoreSet(nil)
	if s.Ignores("/debug.js") {
		t.Fatal("expected empty ignore set to ignore nothing")
	}
}
