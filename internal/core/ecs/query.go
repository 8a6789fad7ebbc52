package ecs

// Queries and groups come in fixed arities, Find1..Find8 and
// NewGroup1..NewGroup8, each returning TupleN rows whose component pointers
// alias the Context's storage. Writes through a row are visible to every
// other reader immediately.
//
// Find scans the alive set on every call. A Group pays that scan once and is
// then maintained from events, so it suits queries run every frame.
//
// Neither may be iterated across an ApplyChanges call.

//go:generate go run ../../../cmd/ecsgen 8 query_gen.go
