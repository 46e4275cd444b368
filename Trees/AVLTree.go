package Trees

import (
	"cmp"
	Go_AVL "github.com/g-m-twostay/go-avl"
	"golang.org/x/exp/constraints"
)

// AVL is a binary search tree with no repeated values. It maintains balance
// through rotations by keeping a height-difference factor in [-1,1] on every
// node, so its height D is always less than 1.45*log2(n+2).
// Nodes live in an arena slice and are addressed by indexes of type S; index
// 0 is a permanent head node that is never part of the set, and the real
// root hangs off the head's right child slot, so the empty tree is not a
// special case anywhere. Freed indexes are recycled through an intrusive
// free list before the arena grows.
// S shouldn't be any type that can overflow for the intended size of the
// tree; the ancestor stack used by BufferedDelete additionally packs a
// direction bit next to an index, so S must be wide enough for twice the
// node count.
// All mutations are iterative and single-threaded: concurrent calls, or a
// mutation concurrent with a walk, must be excluded by the caller.
type AVL[T cmp.Ordered, S constraints.Unsigned] struct {
	ifs  []info[S] // ifs[0] is the head; its c[1] is the root. vs[i-1] corresponds to ifs[i].
	vs   []T
	free S // beginning of the free-slot list; 0 when empty.
	sz   S
}

// New AVL tree with capacity for hint elements before the arena regrows.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *AVL[T, S] {
	return &AVL[T, S]{ifs: make([]info[S], 1, hint+1), vs: make([]T, 0, hint)}
}

// alloc a slot holding v, reusing a freed index when one exists.
func (u *AVL[T, S]) alloc(v T) S {
	if i := u.popFree(); i != 0 {
		u.ifs[i] = info[S]{}
		u.vs[i-1] = v
		return i
	}
	u.ifs = append(u.ifs, info[S]{})
	u.vs = append(u.vs, v)
	return S(len(u.ifs) - 1)
}

// Insert v into the set. Returns true if v was already present, in which
// case nothing changed; returns false if v was newly added.
// A single descent tracks s, the deepest node on the path with a nonzero
// balance, and t, s's parent: s is the only node that can need a rotation,
// everything below it on the path was perfectly balanced and merely tips
// toward the new leaf.
// Time: O(D); Space: O(1)
func (u *AVL[T, S]) Insert(v T) bool {
	var t S // parent of s; the head initially
	s := u.ifs[0].c[1]
	if s == 0 {
		u.ifs[0].c[1] = u.alloc(v)
		u.sz++
		return false
	}
	var q S
	for p := s; ; {
		cv := u.vs[p-1]
		if v == cv {
			return true
		}
		d := 0
		if v > cv {
			d = 1
		}
		if q = u.ifs[p].c[d]; q == 0 {
			q = u.alloc(v)
			u.ifs[p].c[d] = q
			break
		}
		if u.ifs[q].b != 0 {
			t, s = p, q
		}
		p = q
	}
	a, d := int8(-1), 0
	if v > u.vs[s-1] {
		a, d = 1, 1
	}
	r := u.ifs[s].c[d]
	for p := r; p != q; { // everything strictly below s was balance 0 and grew by one
		if v < u.vs[p-1] {
			u.ifs[p].b = -1
			p = u.ifs[p].c[0]
		} else {
			u.ifs[p].b = 1
			p = u.ifs[p].c[1]
		}
	}
	switch u.ifs[s].b {
	case 0: // s's subtree got taller but stays in range
		u.ifs[s].b = a
	case -a: // the new leaf went into the shorter side
		u.ifs[s].b = 0
	default: // it went into the taller side; rotate at s
		var nr S
		if u.ifs[r].b == a {
			nr = u.single(s, r, d)
		} else {
			nr = u.double(s, r, d)
		}
		if u.ifs[t].c[1] == s {
			u.ifs[t].c[1] = nr
		} else {
			u.ifs[t].c[0] = nr
		}
	}
	u.sz++
	return false
}

// Delete v from the set. Returns true if v was present and has been
// removed; returns false if v was absent, in which case nothing changed.
// It is a wrapper for BufferedDelete.
// Time: O(D)
func (u *AVL[T, S]) Delete(v T) bool {
	a, _ := u.BufferedDelete(v, nil)
	return a
}

// BufferedDelete is Delete taking a reusable ancestor stack, returned for
// the next call; pass nil or a previously returned buffer. Entries pack a
// node index and the descent direction as i<<1|d.
// The descent records every step taken; after splicing the node out (via
// its in-order successor when it has two children), the recorded path is
// unwound bottom-up, shrinking or rotating ancestors until one absorbs the
// height change.
// Time: O(D)
func (u *AVL[T, S]) BufferedDelete(v T, st []S) (bool, []S) {
	st = append(st[:0], 1) // the head entry; the root hangs off slot 1
	p := u.ifs[0].c[1]
	for p != 0 {
		cv := u.vs[p-1]
		if v == cv {
			break
		}
		d := 0
		if v > cv {
			d = 1
		}
		st = append(st, p<<1|S(d))
		p = u.ifs[p].c[d]
	}
	if p == 0 {
		return false, st
	}
	if l, r := u.ifs[p].c[0], u.ifs[p].c[1]; l != 0 && r != 0 {
		k := len(st)
		st = append(st, p<<1|1)
		sc := r
		for u.ifs[sc].c[0] != 0 {
			st = append(st, sc<<1)
			sc = u.ifs[sc].c[0]
		}
		if sc == r { // the successor keeps its own right subtree
			u.ifs[sc].c[0] = l
		} else {
			u.ifs[st[len(st)-1]>>1].c[0] = u.ifs[sc].c[1]
			u.ifs[sc].c = [2]S{l, r}
		}
		u.ifs[sc].b = u.ifs[p].b
		st[k] = sc<<1 | 1 // the successor now stands where p stood
		pe := st[k-1]
		u.ifs[pe>>1].c[pe&1] = sc
	} else {
		pe := st[len(st)-1]
		if l != 0 {
			u.ifs[pe>>1].c[pe&1] = l
		} else {
			u.ifs[pe>>1].c[pe&1] = r
		}
	}
	u.addFree(p)
	u.sz--
	for len(st) > 1 {
		e := st[len(st)-1]
		st = st[:len(st)-1]
		n, a := e>>1, int8(2*int8(e&1)-1) // a: the side that got shorter
		switch u.ifs[n].b {
		case a: // came off the taller side; this subtree shrank
			u.ifs[n].b = 0
		case 0: // was perfectly balanced; height unchanged
			u.ifs[n].b = -a
			return true, st
		case -a: // worsened an existing lean; rotate at n
			hd := int(e&1 ^ 1)
			r := u.ifs[n].c[hd]
			var nr S
			stop := false
			switch u.ifs[r].b {
			case -a: // leans away from the shortened side
				nr = u.single(n, r, hd)
			case a:
				nr = u.double(n, r, hd)
			case 0: // the one rotation that leaves the height unchanged
				nr = u.single(n, r, hd)
				u.ifs[n].b, u.ifs[r].b = -a, a
				stop = true
			default:
				panic(BadBalanceError{uint(r), u.ifs[r].b})
			}
			pe := st[len(st)-1]
			u.ifs[pe>>1].c[pe&1] = nr
			if stop {
				return true, st
			}
		default:
			panic(BadBalanceError{uint(n), u.ifs[n].b})
		}
	}
	return true, st
}

// Get the pointer to the element that's equal to v in the tree, nil if v
// isn't present.
// Time: O(D); Space: O(1)
func (u *AVL[T, S]) Get(v T) *T {
	for curI := u.ifs[0].c[1]; curI != 0; {
		if cv := u.vs[curI-1]; v < cv {
			curI = u.ifs[curI].c[0]
		} else if v > cv {
			curI = u.ifs[curI].c[1]
		} else {
			return &u.vs[curI-1]
		}
	}
	return nil
}

// Has [Set.Has]
// Time: O(D); Space: O(1)
func (u *AVL[T, S]) Has(v T) bool {
	for curI := u.ifs[0].c[1]; curI != 0; {
		if cv := u.vs[curI-1]; v < cv {
			curI = u.ifs[curI].c[0]
		} else if v > cv {
			curI = u.ifs[curI].c[1]
		} else {
			return true
		}
	}
	return false
}

// Minimum element of the set, nil if the set is empty.
// Time: O(D); Space: O(1)
func (u *AVL[T, S]) Minimum() *T {
	if curI := u.ifs[0].c[1]; curI != 0 {
		for u.ifs[curI].c[0] != 0 {
			curI = u.ifs[curI].c[0]
		}
		return &u.vs[curI-1]
	}
	return nil
}

// Maximum element of the set, nil if the set is empty.
// Time: O(D); Space: O(1)
func (u *AVL[T, S]) Maximum() *T {
	if curI := u.ifs[0].c[1]; curI != 0 {
		for u.ifs[curI].c[1] != 0 {
			curI = u.ifs[curI].c[1]
		}
		return &u.vs[curI-1]
	}
	return nil
}

// Predecessor of v. If strict is true, result<v if found; otherwise,
// result<=v.
// Time: O(D); Space: O(1)
func (u *AVL[T, S]) Predecessor(v T, strict bool) (p *T) {
	if curI := u.ifs[0].c[1]; strict {
		for curI != 0 {
			if v <= u.vs[curI-1] {
				curI = u.ifs[curI].c[0]
			} else {
				p = &u.vs[curI-1]
				curI = u.ifs[curI].c[1]
			}
		}
	} else {
		for curI != 0 {
			if v < u.vs[curI-1] {
				curI = u.ifs[curI].c[0]
			} else {
				p = &u.vs[curI-1]
				curI = u.ifs[curI].c[1]
			}
		}
	}
	return
}

// Successor of v. If strict is true, result>v if found; otherwise,
// result>=v.
// Time: O(D); Space: O(1)
func (u *AVL[T, S]) Successor(v T, strict bool) (p *T) {
	if curI := u.ifs[0].c[1]; strict {
		for curI != 0 {
			if v < u.vs[curI-1] {
				p = &u.vs[curI-1]
				curI = u.ifs[curI].c[0]
			} else {
				curI = u.ifs[curI].c[1]
			}
		}
	} else {
		for curI != 0 {
			if v > u.vs[curI-1] {
				curI = u.ifs[curI].c[1]
			} else {
				p = &u.vs[curI-1]
				curI = u.ifs[curI].c[0]
			}
		}
	}
	return
}

// InOrder traversal of the tree, calling f on each element until f returns
// false. st is a reusable stack buffer, returned for the next call; pass
// nil to allocate one. The walk is strictly read-only, so verification
// tooling may use it on a tree it doesn't own.
func (u *AVL[T, S]) InOrder(f func(*T) bool, st []S) []S {
	curI := u.ifs[0].c[1]
	for st = st[:0]; curI != 0; curI = u.ifs[curI].c[0] {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(&u.vs[curI-1]) {
			break
		}
		for curI = u.ifs[curI].c[1]; curI != 0; curI = u.ifs[curI].c[0] {
			st = append(st, curI)
		}
	}
	return st
}

// Size [Set.Size]
// Time: O(1); Space: O(1)
func (u *AVL[T, S]) Size() uint {
	return uint(u.sz)
}

// Clear the tree. Doesn't release the underlying arrays. O(1).
func (u *AVL[T, S]) Clear() {
	u.ifs = u.ifs[:1]
	u.vs = u.vs[:0]
	u.ifs[0] = info[S]{}
	u.free, u.sz = 0, 0
}

// Root index of the tree, 0 if the set is empty. Together with Value,
// Balance, and Child this is the read-only surface that external
// verification and visualization tooling walks.
func (u *AVL[T, S]) Root() S {
	return u.ifs[0].c[1]
}

// Value stored at node index i. i must be a live node index.
func (u *AVL[T, S]) Value(i S) *T {
	return &u.vs[i-1]
}

// Balance factor of node index i.
func (u *AVL[T, S]) Balance(i S) int8 {
	return u.ifs[i].b
}

// Child of node index i on side d (0 left, 1 right), 0 if absent.
func (u *AVL[T, S]) Child(i S, d int) S {
	return u.ifs[i].c[d]
}

// audit the subtree rooted at i recursively, marking visited indexes in
// seen. Returns the measured height, the node count, and whether every
// balance factor matches the measured heights with no index visited twice.
func (u *AVL[T, S]) audit(i S, seen Go_AVL.BitArray) (int, uint, bool) {
	if i == 0 {
		return 0, 0, true
	}
	if seen.Get(int(i)) {
		return 0, 0, false
	}
	seen.Up(int(i))
	lh, ln, lok := u.audit(u.ifs[i].c[0], seen)
	rh, rn, rok := u.audit(u.ifs[i].c[1], seen)
	if !lok || !rok || u.ifs[i].b < -1 || u.ifs[i].b > 1 || int(u.ifs[i].b) != rh-lh {
		return 0, 0, false
	}
	return max(lh, rh) + 1, ln + rn + 1, true
}

// Corrupt [Set.Corrupt]. Recursive.
// Recomputes every height from the leaves up, checks each balance factor
// against them, detects nodes reachable through two paths, compares the
// reachable count with Size, and checks strict ascending order.
// Time: O(n)
func (u *AVL[T, S]) Corrupt() bool {
	_, n, ok := u.audit(u.ifs[0].c[1], Go_AVL.NewBitArray(len(u.ifs)))
	if !ok || n != uint(u.sz) {
		return true
	}
	ordered := true
	var prev *T
	u.InOrder(func(v *T) bool {
		if prev != nil && *prev >= *v {
			ordered = false
			return false
		}
		prev = v
		return true
	}, nil)
	return !ordered
}
