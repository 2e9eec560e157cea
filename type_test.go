package gostruct_test

import (
	"slices"
	"testing"

	gostruct "github.com/reoring/gostruct"
)

func TestTypeBuilder_MergeMostDerivedWins(t *testing.T) {
	base := gostruct.NewType("Base").
		Field("name", gostruct.NewField(gostruct.T[int]())).
		MustBuild()
	mid := gostruct.NewType("Mid").
		Extend(base).
		Field("name", gostruct.NewField(gostruct.T[float64]())).
		MustBuild()
	leaf := gostruct.NewType("Leaf").
		Extend(mid).
		Field("name", gostruct.NewField(gostruct.T[string]())).
		MustBuild()

	f, ok := leaf.Field("name")
	if !ok {
		t.Fatalf("merged table must contain name")
	}
	if got := f.Types()[0]; got != gostruct.T[string]() {
		t.Fatalf("most-derived declaration must win, got %v", got)
	}
}

func TestTypeBuilder_SiblingTieLastListedWins(t *testing.T) {
	a := gostruct.NewType("A").
		Field("v", gostruct.NewField(gostruct.T[int]())).
		MustBuild()
	b := gostruct.NewType("B").
		Field("v", gostruct.NewField(gostruct.T[string]())).
		MustBuild()
	c := gostruct.NewType("C").Extend(a, b).MustBuild()

	f, _ := c.Field("v")
	if got := f.Types()[0]; got != gostruct.T[string]() {
		t.Fatalf("last-listed sibling must win, got %v", got)
	}
}

func TestTypeBuilder_FieldOrderIsDeclarationOrder(t *testing.T) {
	base := gostruct.NewType("Base").
		Field("a", gostruct.NewField(gostruct.T[int]())).
		Field("b", gostruct.NewField(gostruct.T[int]())).
		MustBuild()
	leaf := gostruct.NewType("Leaf").
		Extend(base).
		Field("c", gostruct.NewField(gostruct.T[int]())).
		Field("a", gostruct.NewField(gostruct.T[string]())).
		MustBuild()

	// A redeclared name keeps its first-declared position.
	want := []string{"a", "b", "c"}
	if got := leaf.FieldNames(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTypeBuilder_MergeIsStable(t *testing.T) {
	build := func() *gostruct.RecordType {
		base := gostruct.NewType("Base").
			Field("x", gostruct.NewField(gostruct.T[int]())).
			Field("y", gostruct.NewField(gostruct.T[int]())).
			MustBuild()
		return gostruct.NewType("Leaf").
			Extend(base).
			Field("z", gostruct.NewField(gostruct.T[int]())).
			MustBuild()
	}
	first, second := build(), build()
	if !slices.Equal(first.FieldNames(), second.FieldNames()) {
		t.Fatalf("re-deriving the merge must be stable: %v vs %v",
			first.FieldNames(), second.FieldNames())
	}
}

func TestTypeBuilder_DuplicateLocalFieldRejected(t *testing.T) {
	_, err := gostruct.NewType("Dup").
		Field("x", gostruct.NewField(gostruct.T[int]())).
		Field("x", gostruct.NewField(gostruct.T[string]())).
		Build()
	if err == nil {
		t.Fatalf("expected duplicate-key error, got nil")
	}
	iss, ok := gostruct.AsIssues(err)
	if !ok || iss[0].Code != gostruct.CodeDuplicateKey {
		t.Fatalf("expected %s issue, got %v", gostruct.CodeDuplicateKey, err)
	}
}

func TestTypeBuilder_CompactIsInherited(t *testing.T) {
	base := gostruct.NewType("Base").
		Field("x", gostruct.NewField(gostruct.T[int]()).Default(0)).
		Compact().
		MustBuild()
	leaf := gostruct.NewType("Leaf").Extend(base).MustBuild()
	if !leaf.IsCompact() {
		t.Fatalf("extending a compact type must yield a compact type")
	}
}

func TestRecordType_OwnVersusMergedFields(t *testing.T) {
	base := gostruct.NewType("Base").
		Field("x", gostruct.NewField(gostruct.T[int]())).
		MustBuild()
	leaf := gostruct.NewType("Leaf").
		Extend(base).
		Field("y", gostruct.NewField(gostruct.T[int]())).
		MustBuild()

	var own []string
	for name := range leaf.OwnFields() {
		own = append(own, name)
	}
	if !slices.Equal(own, []string{"y"}) {
		t.Fatalf("expected own fields [y], got %v", own)
	}
	if leaf.NumFields() != 2 {
		t.Fatalf("expected 2 merged fields, got %d", leaf.NumFields())
	}
}
