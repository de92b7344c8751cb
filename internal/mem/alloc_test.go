package mem

import "testing"

func TestAllocAlignedAlignment(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 7, 64, 4096} {
		if s := AllocAligned[float32](n); len(s) != n || !IsAligned(s) {
			t.Fatalf("AllocAligned[float32](%d): len=%d aligned=%v", n, len(s), IsAligned(s))
		}

		if s := AllocAligned[float64](n); len(s) != n || !IsAligned(s) {
			t.Fatalf("AllocAligned[float64](%d): len=%d aligned=%v", n, len(s), IsAligned(s))
		}

		if s := AllocAligned[complex128](n); len(s) != n || !IsAligned(s) {
			t.Fatalf("AllocAligned[complex128](%d): len=%d aligned=%v", n, len(s), IsAligned(s))
		}
	}
}

func TestAllocAlignedDegenerate(t *testing.T) {
	t.Parallel()

	if AllocAligned[float64](0) != nil || AllocAligned[float64](-3) != nil {
		t.Fatal("nonpositive counts must return nil")
	}

	if !IsAligned([]float64(nil)) {
		t.Fatal("an empty slice counts as aligned")
	}
}
