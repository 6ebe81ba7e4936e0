package features

import (
	"reflect"
	"testing"
)

func TestIntersect_EmptyCollection(t *testing.T) {
	got := Intersect()
	if got.Len() != 0 {
		t.Errorf("expected empty set, got %v", got.Sorted())
	}
}

func TestIntersect_SingleSet(t *testing.T) {
	s := NewSet([]string{"a", "b", "c"})
	got := Intersect(s)
	if !reflect.DeepEqual(got.Sorted(), []string{"a", "b", "c"}) {
		t.Errorf("single set must intersect to itself, got %v", got.Sorted())
	}
}

func TestIntersect_FiveModelSets(t *testing.T) {
	sets := []Set{
		NewSet([]string{"A", "B", "C"}),
		NewSet([]string{"B", "C", "D"}),
		NewSet([]string{"B", "C"}),
		NewSet([]string{"B", "C", "E"}),
		NewSet([]string{"B", "C", "F"}),
	}
	got := Intersect(sets...)
	if !reflect.DeepEqual(got.Sorted(), []string{"B", "C"}) {
		t.Errorf("expected [B C], got %v", got.Sorted())
	}
}

func TestIntersect_CrossScenario(t *testing.T) {
	got := Intersect(
		NewSet([]string{"B", "C"}),
		NewSet([]string{"C", "D"}),
		NewSet([]string{"C"}),
	)
	if !reflect.DeepEqual(got.Sorted(), []string{"C"}) {
		t.Errorf("expected [C], got %v", got.Sorted())
	}
}

func TestIntersect_OrderIndependent(t *testing.T) {
	a := NewSet([]string{"x", "y", "z"})
	b := NewSet([]string{"y", "z", "w"})
	c := NewSet([]string{"z", "y"})

	perms := [][]Set{
		{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
	}
	want := Intersect(a, b, c).Sorted()
	for i, p := range perms {
		got := Intersect(p...).Sorted()
		if !reflect.DeepEqual(got, want) {
			t.Errorf("permutation %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestIntersect_EarlyExitSameResult(t *testing.T) {
	// A disjoint pair empties the accumulator; later sets must not matter.
	got := Intersect(
		NewSet([]string{"a"}),
		NewSet([]string{"b"}),
		NewSet([]string{"a", "b"}),
	)
	if got.Len() != 0 {
		t.Errorf("expected empty intersection, got %v", got.Sorted())
	}
}

func TestIntersect_DoesNotMutateInputs(t *testing.T) {
	a := NewSet([]string{"a", "b"})
	b := NewSet([]string{"b"})
	_ = Intersect(a, b)
	if a.Len() != 2 || !a.Contains("a") {
		t.Errorf("input set mutated: %v", a.Sorted())
	}
}

func TestNewSet_Deduplicates(t *testing.T) {
	s := NewSet([]string{"a", "a", "b"})
	if s.Len() != 2 {
		t.Errorf("expected 2 unique names, got %d", s.Len())
	}
}
