package seed

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestIntBetween_StaysInBounds(t *testing.T) {
	r := NewRand(1)

	seenMin, seenMax := false, false
	for i := 0; i < 1000; i++ {
		v := r.IntBetween(3, 7)
		if v < 3 || v > 7 {
			t.Fatalf("IntBetween(3, 7) = %d, out of range", v)
		}
		if v == 3 {
			seenMin = true
		}
		if v == 7 {
			seenMax = true
		}
	}
	if !seenMin || !seenMax {
		t.Errorf("bounds not inclusive: min hit %v, max hit %v", seenMin, seenMax)
	}
}

func TestIntBetween_SingleValue(t *testing.T) {
	r := NewRand(1)
	if v := r.IntBetween(5, 5); v != 5 {
		t.Errorf("IntBetween(5, 5) = %d, want 5", v)
	}
}

func TestIntBetween_InvertedRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for inverted range")
		}
	}()
	NewRand(1).IntBetween(7, 3)
}

func TestBool_Extremes(t *testing.T) {
	r := NewRand(1)
	for i := 0; i < 100; i++ {
		if r.Bool(0) {
			t.Fatal("Bool(0) returned true")
		}
		if !r.Bool(1) {
			t.Fatal("Bool(1) returned false")
		}
	}
}

func TestDateBetween_StaysInRange(t *testing.T) {
	r := NewRand(1)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		d := r.DateBetween(start, end)
		if d.Before(start) || d.After(end) {
			t.Fatalf("DateBetween returned %s outside [%s, %s]", d, start, end)
		}
	}
}

func TestClockTime_Format(t *testing.T) {
	r := NewRand(1)

	for i := 0; i < 200; i++ {
		ct := r.ClockTime()
		parts := strings.Split(ct, ":")
		if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
			t.Fatalf("malformed clock time %q", ct)
		}
		hour, err := strconv.Atoi(parts[0])
		if err != nil || hour < 6 || hour > 22 {
			t.Fatalf("clock time %q has hour outside [06, 22]", ct)
		}
		minute, err := strconv.Atoi(parts[1])
		if err != nil || minute < 0 || minute > 59 {
			t.Fatalf("clock time %q has invalid minute", ct)
		}
	}
}

func TestChoices_DistinctElements(t *testing.T) {
	r := NewRand(1)
	pool := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	for i := 0; i < 100; i++ {
		picked := Choices(r, pool, 4)
		if len(picked) != 4 {
			t.Fatalf("Choices returned %d elements, want 4", len(picked))
		}
		seen := map[string]bool{}
		for _, p := range picked {
			if seen[p] {
				t.Fatalf("duplicate element %q in %v", p, picked)
			}
			seen[p] = true
		}
	}
}

func TestChoices_ClampsToPoolSize(t *testing.T) {
	r := NewRand(1)
	pool := []string{"a", "b", "c"}

	picked := Choices(r, pool, 10)
	if len(picked) != 3 {
		t.Errorf("Choices returned %d elements, want 3", len(picked))
	}
}

func TestChoices_DoesNotMutatePool(t *testing.T) {
	r := NewRand(1)
	pool := []string{"a", "b", "c", "d"}

	Choices(r, pool, 2)
	want := []string{"a", "b", "c", "d"}
	for i := range pool {
		if pool[i] != want[i] {
			t.Fatalf("pool mutated: %v", pool)
		}
	}
}

func TestNewRand_Reproducible(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 50; i++ {
		if av, bv := a.IntBetween(0, 1000), b.IntBetween(0, 1000); av != bv {
			t.Fatalf("same seed diverged at draw %d: %d != %d", i, av, bv)
		}
	}
}
