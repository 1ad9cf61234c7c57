package disjointset

import (
	"testing"
)

func TestEmptySet(t *testing.T) {
	if _, err := New(0); err != EmptySetError {
		t.Errorf("expected EmptySetError, got %v", err)
	}
}

func TestUnionFind(t *testing.T) {
	set, err := New(10)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if set.Count() != 10 {
		t.Errorf("count %d is not expected", set.Count())
	}

	merged, _ := set.Union(1, 2)
	if !merged {
		t.Errorf("first union did not merge")
	}
	set.Union(2, 3)
	set.Union(5, 6)

	if connected, _ := set.Connected(1, 3); !connected {
		t.Errorf("1 and 3 should be connected")
	}
	if connected, _ := set.Connected(1, 5); connected {
		t.Errorf("1 and 5 should not be connected")
	}
	if set.Count() != 7 {
		t.Errorf("count %d is not expected", set.Count())
	}

	merged, _ = set.Union(3, 1)
	if merged {
		t.Errorf("repeated union reported a merge")
	}
	if set.Count() != 7 {
		t.Errorf("count %d changed by repeated union", set.Count())
	}
}

func TestOutOfRange(t *testing.T) {
	set, _ := New(3)
	if _, err := set.Find(3); err != OutOfRangeError {
		t.Errorf("expected OutOfRangeError, got %v", err)
	}
	if _, err := set.Union(-1, 0); err != OutOfRangeError {
		t.Errorf("expected OutOfRangeError, got %v", err)
	}
	if _, err := set.Connected(0, 5); err != OutOfRangeError {
		t.Errorf("expected OutOfRangeError, got %v", err)
	}
}

func TestFindRepresentativeStable(t *testing.T) {
	set, _ := New(100)
	for i := 1; i < 100; i++ {
		set.Union(i-1, i)
	}
	root, _ := set.Find(0)
	for i := 1; i < 100; i++ {
		if r, _ := set.Find(i); r != root {
			t.Errorf("element %d has representative %d, expected %d", i, r, root)
		}
	}
	if set.Count() != 1 {
		t.Errorf("count %d is not expected", set.Count())
	}
}
