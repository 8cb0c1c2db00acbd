package placement

import "testing"

func TestPRNG_DeterministicShuffle(t *testing.T) {
	shuffle := func(seedVal int64) []int {
		n := 10
		vals := make([]int, n)
		for i := range vals {
			vals[i] = i
		}
		p := NewPRNG(seedVal)
		p.Shuffle(n, func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
		return vals
	}

	a := shuffle(99)
	b := shuffle(99)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different shuffles at index %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestPRNG_IntnBounds(t *testing.T) {
	p := NewPRNG(1)
	for i := 0; i < 100; i++ {
		v := p.Intn(5)
		if v < 0 || v >= 5 {
			t.Fatalf("Intn(5) out of range: %d", v)
		}
	}
	if p.Intn(0) != 0 {
		t.Fatal("expected Intn(0) to return 0")
	}
}

func TestPRNG_RangeBounds(t *testing.T) {
	p := NewPRNG(2)
	for i := 0; i < 100; i++ {
		v := p.Range(3, 8)
		if v < 3 || v >= 8 {
			t.Fatalf("Range(3,8) out of bounds: %d", v)
		}
	}
	if p.Range(4, 4) != 4 {
		t.Fatal("expected Range(4,4) to return 4")
	}
}
