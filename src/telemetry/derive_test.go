package telemetry

import (
	"math"
	"testing"
)

func TestKilometers(t *testing.T) {
	in := []float64{0, 500, 1000, 123456}
	got := Kilometers(in)
	want := []float64{0, 0.5, 1, 123.456}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("Kilometers[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	// order preserving (monotone linear transform)
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Fatalf("order not preserved at %d: %v < %v", i, got[i], got[i-1])
		}
	}
	if in[1] != 500 {
		t.Fatal("input slice was mutated")
	}
}

func TestDeltaVLost_ZeroInputsDegenerateToBaseline(t *testing.T) {
	expended := []float64{0, 0, 0, 0}
	orbital := []float64{0, 0, 0, 0}
	got := DeltaVLost(expended, orbital)
	for i, v := range got {
		if v != 0 {
			t.Fatalf("lost[%d] = %v, want 0 (orbital[0])", i, v)
		}
	}
}

func TestDeltaVLost_UsesFirstSampleAsReference(t *testing.T) {
	expended := []float64{0, 100, 250}
	orbital := []float64{174.5, 240, 380}
	got := DeltaVLost(expended, orbital)
	want := []float64{0, 34.5, 44.5} // expended - orbital + 174.5
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("lost[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDeltaVLost_Empty(t *testing.T) {
	if got := DeltaVLost(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty series, got %v", got)
	}
}

func TestTrimLeading(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5}
	got := TrimLeading(in, 3)
	if len(got) != 2 || got[0] != 4 || got[1] != 5 {
		t.Fatalf("TrimLeading = %v, want [4 5]", got)
	}
}

func TestTrimLeading_ShortSeriesYieldEmpty(t *testing.T) {
	for _, n := range [][]float64{nil, {1}, {1, 2}, {1, 2, 3}} {
		if got := TrimLeading(n, 3); len(got) != 0 {
			t.Fatalf("TrimLeading(%v, 3) = %v, want empty", n, got)
		}
	}
}
