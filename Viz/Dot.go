package Viz

import (
	"cmp"
	"fmt"
	"io"

	"github.com/g-m-twostay/go-avl/Trees"
	"golang.org/x/exp/constraints"
)

// Dot writes the tree as a Graphviz digraph: one statement per node labeled
// "value;balance" and one statement per parent→child link labeled with the
// child's direction (0 or 1). Node identifiers are the arena indexes, which
// are stable across rotations. This is diagnostic output for offline
// visualization, not a persisted format.
// The tree mustn't be modified during the walk.
func Dot[T cmp.Ordered, S constraints.Unsigned](w io.Writer, u *Trees.AVL[T, S]) error {
	if _, err := fmt.Fprintln(w, "digraph avl {"); err != nil {
		return err
	}
	var st []S
	if r := u.Root(); r != 0 {
		st = append(st, r)
	}
	for len(st) > 0 {
		i := st[len(st)-1]
		st = st[:len(st)-1]
		if _, err := fmt.Fprintf(w, "\tn%d [label=\"%v;%d\"]\n", i, *u.Value(i), u.Balance(i)); err != nil {
			return err
		}
		for d := 0; d < 2; d++ {
			if c := u.Child(i, d); c != 0 {
				if _, err := fmt.Fprintf(w, "\tn%d -> n%d [label=\"%d\"]\n", i, c, d); err != nil {
					return err
				}
				st = append(st, c)
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
