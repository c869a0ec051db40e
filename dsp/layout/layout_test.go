package layout

import "testing"

func TestSurround50Counts(t *testing.T) {
	l := Surround50()

	if l.NCh() != 6 {
		t.Fatalf("NCh() = %d, want 6", l.NCh())
	}

	if l.NChNoLFE() != 5 {
		t.Fatalf("NChNoLFE() = %d, want 5", l.NChNoLFE())
	}

	if !l.HasLFE() {
		t.Fatal("expected HasLFE true")
	}
}

func TestIndexOfAndContiguous(t *testing.T) {
	l := Surround50()

	for i, c := range l.Channels {
		if c.Index != i {
			t.Fatalf("channel %s has index %d, want %d", c.Name, c.Index, i)
		}
	}

	idx, ok := l.IndexOf("M+030")
	if !ok || idx != 0 {
		t.Fatalf("IndexOf(M+030) = (%d, %v), want (0, true)", idx, ok)
	}

	_, ok = l.IndexOf("nope")
	if ok {
		t.Fatal("expected IndexOf to report missing channel")
	}
}

func TestNonLFEIndicesExcludesLFE(t *testing.T) {
	l := Surround50()

	idx := l.NonLFEIndices()
	if len(idx) != 5 {
		t.Fatalf("len = %d, want 5", len(idx))
	}

	for _, i := range idx {
		if l.Channels[i].IsLFE {
			t.Fatalf("NonLFEIndices returned an LFE channel at %d", i)
		}
	}
}

func TestCatalogAllocentricSupport(t *testing.T) {
	cat := Catalog()

	if cat["0+5+0"].AllocentricSupport {
		t.Error("0+5+0 should not support allocentric panning")
	}

	if !cat["9+10+3"].AllocentricSupport {
		t.Error("9+10+3 should support allocentric panning")
	}
}
