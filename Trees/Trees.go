package Trees

// Set represents an ordered collection with no repeated values implemented
// using a search tree. Implementations here are iterative unless a receiver
// notes otherwise, and none of them are safe for concurrent use: callers
// sharing a Set across goroutines must provide their own mutual exclusion,
// including between mutations and read-only walks.
type Set[T any] interface {
	//Insert v. Returns true if v was already present, in which case the
	//set is unchanged; returns false if v was newly added.
	Insert(v T) bool
	//Delete v. Returns true if v was present and has been removed; returns
	//false if v was absent, in which case the set is unchanged.
	Delete(v T) bool
	//Has reports whether v is present. Prefer Has over Get for pure
	//membership checks.
	Has(v T) bool
	//Size of the set.
	Size() uint
	//Corrupt reports whether the structure violates the properties of the
	//specific implementation. This is a full structural audit intended for
	//tests and diagnostics, not for hot paths.
	Corrupt() bool
}
