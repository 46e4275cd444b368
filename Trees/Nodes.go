package Trees

import (
	"fmt"
	"golang.org/x/exp/constraints"
)

// A node in the AVL tree, stored in the arena slice of the owning tree and
// addressed by its index there.
// The zero value is meaningful: both child slots absent, balance 0.
type info[S constraints.Unsigned] struct {
	c [2]S // child slots by direction; 0 means absent.
	b int8 // height(c[1])-height(c[0]), always in [-1,1].
}

// BadBalanceError is the panic payload used when a balance factor outside
// the three reachable values is observed during rebalancing. It means the
// tree is already corrupt; continuing would spread the corruption silently.
type BadBalanceError struct {
	At      uint
	Balance int8
}

func (e BadBalanceError) Error() string {
	return fmt.Sprintf("balance %d at node %d outside [-1,1]", e.Balance, e.At)
}

// addFree index once. Freed slots form an intrusive list through c[0].
func (u *AVL[T, S]) addFree(a S) {
	u.ifs[a].c[0] = u.free
	u.free = a
}

// popFree index once. Returns 0 when there's no free index.
func (u *AVL[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].c[0]
	return b
}

// single rotation of s with its child r=s.c[d], r leaning toward d. r's
// subtree on side 1-d moves into s's slot d, s becomes r's child on side
// 1-d, and both balances reset to 0. Returns the new subtree root; the
// caller reattaches it.
// Time: O(1); Space: O(1)
func (u *AVL[T, S]) single(s, r S, d int) S {
	u.ifs[s].c[d] = u.ifs[r].c[1-d]
	u.ifs[r].c[1-d] = s
	u.ifs[s].b, u.ifs[r].b = 0, 0
	return r
}

// double rotation of s with its child r=s.c[d], r leaning against d. r's
// child x on side 1-d becomes the subtree root with its own subtrees
// redistributed to r and s; the balances of s and r follow from x's
// balance before the rotation. Returns the new subtree root.
// Time: O(1); Space: O(1)
func (u *AVL[T, S]) double(s, r S, d int) S {
	x := u.ifs[r].c[1-d]
	xb := u.ifs[x].b
	u.ifs[r].c[1-d] = u.ifs[x].c[d]
	u.ifs[x].c[d] = r
	u.ifs[s].c[d] = u.ifs[x].c[1-d]
	u.ifs[x].c[1-d] = s
	switch a := int8(2*d - 1); xb {
	case a:
		u.ifs[s].b, u.ifs[r].b = -a, 0
	case 0:
		u.ifs[s].b, u.ifs[r].b = 0, 0
	default:
		u.ifs[s].b, u.ifs[r].b = 0, a
	}
	u.ifs[x].b = 0
	return x
}
