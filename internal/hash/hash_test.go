package hash

import "testing"

func TestShortLengthAndDeterminism(t *testing.T) {
	a := Short([]byte("console.log(1);"))
	b := Short([]byte("console.log(1);"))
	if len(a) != ShortLength {
		t.Fatalf("expected length %d, got %d (%s)", ShortLength, len(a), a)
	}
	if a != b {
		t.Fatalf("expected deterministic hash, got %s vs %s", a, b)
	}
}

func TestShortDiffersOnContentChange(t *testing.T) {
	a := Short([]byte("one"))
	b := Short([]byte("two"))
	if a == b {
		t.Fatal("expected different content to hash differently")
	}
}

func TestLineJoinedMatchesManualJoin(t *testing.T) {
	lines := []string{"// Updated: TS", "console.log(1);"}
	got := LineJoined(lines)
	want := Short([]byte("// Updated: TS\nconsole.log(1);"))
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
