package ordered_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/reoring/gostruct/ordered"
)

func TestIndex_OverwriteKeepsPosition(t *testing.T) {
	ix := ordered.NewIndex[string, int]()
	ix.Set("a", 1)
	ix.Set("b", 2)
	ix.Set("a", 10) // replaced in place, not moved

	if got := ix.Keys(); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("overwrite must keep position, got %v", got)
	}
	if v, _ := ix.Get("a"); v != 10 {
		t.Fatalf("overwrite must accept the new value, got %v", v)
	}
}

func TestIndex_DeleteAndDiscard(t *testing.T) {
	ix := ordered.NewIndex[string, int]()
	ix.Set("a", 1)
	if err := ix.Delete("a"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := ix.Delete("a"); !errors.Is(err, ordered.ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
	if ix.Discard("a") {
		t.Fatalf("discard of an absent key must report false")
	}
}

func TestIndex_KeyDerivation(t *testing.T) {
	type sym struct {
		Name string
		Val  int
	}
	ix := ordered.NewKeyedIndex(func(s sym) string { return s.Name },
		sym{Name: "x", Val: 1})
	ix.Add(sym{Name: "y", Val: 2})

	got, ok := ix.Find(sym{Name: "y"})
	if !ok || got.Val != 2 {
		t.Fatalf("derived lookup failed: %+v (%v)", got, ok)
	}
	if got := ix.Keys(); !slices.Equal(got, []string{"x", "y"}) {
		t.Fatalf("unexpected key order: %v", got)
	}
}

func TestStrictIndex_DuplicateKeyRejected(t *testing.T) {
	ix := ordered.NewStrictIndex[string, int]()
	if err := ix.Set("k", 1); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	err := ix.Set("k", 2)
	if !errors.Is(err, ordered.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if v, _ := ix.Get("k"); v != 1 {
		t.Fatalf("first value must remain retrievable, got %v", v)
	}
}

func TestStrictIndex_DeleteThenReinsert(t *testing.T) {
	ix := ordered.NewStrictIndex[string, int]()
	_ = ix.Set("a", 1)
	_ = ix.Set("b", 2)
	if err := ix.Delete("a"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := ix.Set("a", 3); err != nil {
		t.Fatalf("reinsert after delete must succeed: %v", err)
	}
	if got := ix.Keys(); !slices.Equal(got, []string{"b", "a"}) {
		t.Fatalf("reinsertion must append, got %v", got)
	}
}

func TestIndex_ItemsIterationOrder(t *testing.T) {
	ix := ordered.NewIndex[string, int]()
	ix.Set("one", 1)
	ix.Set("two", 2)
	ix.Set("three", 3)

	var keys []string
	for k, v := range ix.Items() {
		keys = append(keys, k)
		if v == 2 {
			ix.Discard(k) // deleting the current entry mid-iteration is safe
		}
	}
	if !slices.Equal(keys, []string{"one", "two", "three"}) {
		t.Fatalf("unexpected iteration order: %v", keys)
	}
	if ix.Len() != 2 {
		t.Fatalf("expected 2 survivors, got %d", ix.Len())
	}
}
