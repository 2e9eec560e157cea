package ordered_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/reoring/gostruct/ordered"
)

func TestSet_InsertionOrderPreserved(t *testing.T) {
	s := ordered.NewSet[string]()
	for _, v := range []string{"c", "a", "b"} {
		s.Add(v)
	}
	want := []string{"c", "a", "b"}
	if got := s.Values(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSet_ReAddIsFirstWriteWins(t *testing.T) {
	s := ordered.NewSet("a", "b", "c")
	s.Add("a")
	want := []string{"a", "b", "c"}
	if got := s.Values(); !slices.Equal(got, want) {
		t.Fatalf("re-adding must not reorder, expected %v, got %v", want, got)
	}
}

func TestSet_RemoveAndReAddAppends(t *testing.T) {
	s := ordered.NewSet("a", "b", "c")
	if !s.Discard("a") {
		t.Fatalf("discard of a present element must report true")
	}
	s.Add("a")
	want := []string{"b", "c", "a"}
	if got := s.Values(); !slices.Equal(got, want) {
		t.Fatalf("re-insertion must append, expected %v, got %v", want, got)
	}
}

func TestSet_RemovalKeepsSurvivorOrder(t *testing.T) {
	s := ordered.NewSet(1, 2, 3, 4)
	if err := s.Remove(2); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	want := []int{1, 3, 4}
	if got := s.Values(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSet_RemoveMissingFails(t *testing.T) {
	s := ordered.NewSet(1)
	err := s.Remove(9)
	if !errors.Is(err, ordered.ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
	if s.Discard(9) {
		t.Fatalf("discard of an absent element must report false")
	}
}

func TestSet_Pop(t *testing.T) {
	s := ordered.NewSet(1, 2, 3)
	if v, ok := s.Pop(true); !ok || v != 3 {
		t.Fatalf("expected to pop 3, got %v (%v)", v, ok)
	}
	if v, ok := s.Pop(false); !ok || v != 1 {
		t.Fatalf("expected to pop 1, got %v (%v)", v, ok)
	}
	if s.Len() != 1 {
		t.Fatalf("expected one survivor, got %d", s.Len())
	}
}

func TestSet_AlgebraOrders(t *testing.T) {
	a := ordered.NewSet(1, 2, 3)
	b := ordered.NewSet(3, 4, 5)

	if got := a.Union(b).Values(); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("union order wrong: %v", got)
	}
	if got := a.Intersection(b).Values(); !slices.Equal(got, []int{3}) {
		t.Fatalf("intersection wrong: %v", got)
	}
	if got := a.Difference(b).Values(); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("difference wrong: %v", got)
	}
	if got := a.SymmetricDifference(b).Values(); !slices.Equal(got, []int{1, 2, 4, 5}) {
		t.Fatalf("symmetric difference wrong: %v", got)
	}
	// The operands are untouched.
	if got := a.Values(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("lhs mutated: %v", got)
	}
}

func TestSet_InPlaceAlgebra(t *testing.T) {
	a := ordered.NewSet(1, 2, 3)
	a.IntersectionUpdate(ordered.NewSet(2, 3, 9))
	if got := a.Values(); !slices.Equal(got, []int{2, 3}) {
		t.Fatalf("intersection update wrong: %v", got)
	}
	a.DifferenceUpdate(ordered.NewSet(3))
	if got := a.Values(); !slices.Equal(got, []int{2}) {
		t.Fatalf("difference update wrong: %v", got)
	}
	a.SymmetricDifferenceUpdate(ordered.NewSet(2, 7))
	if got := a.Values(); !slices.Equal(got, []int{7}) {
		t.Fatalf("symmetric difference update wrong: %v", got)
	}
}

func TestSet_EqualIsStructural(t *testing.T) {
	a := ordered.NewSet(1, 2, 3)
	b := ordered.NewSet(3, 2, 1)
	if !a.Equal(b) {
		t.Fatalf("same element set must compare equal regardless of order")
	}
	if a.Equal(ordered.NewSet(1, 2)) {
		t.Fatalf("different sizes must not compare equal")
	}
	if a.Equal(nil) {
		t.Fatalf("nil operand must not compare equal")
	}
}

func TestSet_CopyIsIndependent(t *testing.T) {
	a := ordered.NewSet(1, 2)
	b := a.Copy()
	b.Add(3)
	if a.Len() != 2 || b.Len() != 3 {
		t.Fatalf("copy must be independent: %d vs %d", a.Len(), b.Len())
	}
}

func TestSetView_ReadsThrough(t *testing.T) {
	s := ordered.NewSet("a")
	v := ordered.NewSetView(s)
	s.Add("b")
	if v.Len() != 2 || !v.Contains("b") {
		t.Fatalf("view must observe underlying mutations")
	}
}

func TestExtendedSet_KeyedMembership(t *testing.T) {
	type decl struct {
		Name string
		Pos  int
	}
	s := ordered.NewExtendedSet(func(d decl) string { return d.Name })
	s.Add(decl{Name: "a", Pos: 1})
	s.Add(decl{Name: "a", Pos: 2}) // same slot, first write wins
	s.Add(decl{Name: "b", Pos: 3})

	if s.Len() != 2 {
		t.Fatalf("expected 2 slots, got %d", s.Len())
	}
	if !s.Contains(decl{Name: "a", Pos: 99}) {
		t.Fatalf("membership must consult the key only")
	}
	got, ok := s.Get("a")
	if !ok || got.Pos != 1 {
		t.Fatalf("first write must be retained, got %+v", got)
	}
	if err := s.Remove(decl{Name: "missing"}); !errors.Is(err, ordered.ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
}
