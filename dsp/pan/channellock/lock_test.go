package channellock

import (
	"testing"

	"github.com/cwbudde/algo-admrender/dsp/geom"
	"github.com/cwbudde/algo-admrender/dsp/layout"
)

func TestLockSnapsToNearestSpeaker(t *testing.T) {
	l := layout.Surround50()
	lk := NewPolarLocker(l)

	idx, ok := l.IndexOf("M+030")
	if !ok {
		t.Fatal("missing M+030")
	}

	source := geom.PolarToUnitVector(29, 0)

	res := lk.Lock(source, nil, nil)
	if !res.Locked {
		t.Fatal("expected a lock")
	}

	if res.Index != idx {
		t.Errorf("locked onto channel %d, want %d (M+030)", res.Index, idx)
	}
}

func TestLockReturnsUnlockedWhenAllExcluded(t *testing.T) {
	l := layout.Surround50()
	lk := NewPolarLocker(l)

	excluded := map[int]bool{}
	for _, idx := range l.NonLFEIndices() {
		excluded[idx] = true
	}

	res := lk.Lock(geom.PolarToUnitVector(0, 0), excluded, nil)
	if res.Locked {
		t.Fatal("expected no lock when every speaker is excluded")
	}
}

func TestLockReturnsUnlockedWhenMaxDistanceExcludesEverything(t *testing.T) {
	l := layout.Surround50()
	lk := NewPolarLocker(l)

	tiny := 1e-9
	res := lk.Lock(geom.PolarToUnitVector(180, 0), nil, &tiny)

	if res.Locked {
		t.Fatal("expected no lock when maxDistance excludes every candidate")
	}
}

func TestLockMaxDistanceMonotonicallyExpandsCandidates(t *testing.T) {
	l := layout.Surround50()
	lk := NewPolarLocker(l)

	source := geom.PolarToUnitVector(20, 0)

	prevCount := -1

	for _, md := range []float64{0.05, 0.2, 0.5, 1.0, 4.0} {
		count := 0

		for _, idx := range l.NonLFEIndices() {
			c := l.Channels[idx]
			if lk.dist(source, c.Real.ToUnitVector()) <= md {
				count++
			}
		}

		if count < prevCount {
			t.Fatalf("candidate count decreased at maxDistance=%v: %d < %d", md, count, prevCount)
		}

		prevCount = count
	}
}

func TestTieBreakPrefersHigherPriorityLayer(t *testing.T) {
	l := layout.Surround4_5_0()
	lk := NewPolarLocker(l)

	mIdx, _ := l.IndexOf("M+030")
	uIdx, _ := l.IndexOf("U+030")

	// Force an exact tie in distance by comparing the tie-break tuples
	// directly: an upper-layer speaker should sort ahead of a mid-layer
	// speaker at the same |az|,|el| magnitude.
	mTuple := lk.tuple(mIdx)
	uTuple := lk.tuple(uIdx)

	if !lessTuple(uTuple, mTuple) {
		t.Errorf("expected U+030's tuple %v to sort before M+030's %v", uTuple, mTuple)
	}
}
