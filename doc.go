package gostruct

// Package gostruct provides:
//
// - Strictly typed, validated, inheritance-composable record types built
//   through an explicit TypeBuilder (Field/Extend/Compact/Build)
// - Field descriptors with accepted-type sets, literal or factory defaults,
//   required-field enforcement and opt-in coercion
// - A stable error model via Issues (path, code, message)
// - Ordered, uniqueness-enforcing containers under ordered/ and declarative
//   YAML type loading under decl/
//
// Design policy:
// - Keep only public APIs in the root package; containers, codecs and
//   loaders live in their own packages.
// - Every mutation either fully applies or leaves the target untouched.
// - The library is single-threaded; callers serialize concurrent access.
//
// Typical usage:
//
//	point := gostruct.NewType("Point").
//		Field("x", gostruct.NewField(gostruct.T[int]()).Coerce()).
//		Field("y", gostruct.NewField(gostruct.T[int]()).Default(0)).
//		Compact().
//		MustBuild()
//
//	p, err := point.New(map[string]any{"x": "4"})
