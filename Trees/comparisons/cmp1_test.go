package comparisons

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/g-m-twostay/go-avl/Trees"
)

var rg = *rand.New(rand.NewSource(0))

const (
	cOpN      = 10000
	cValRange = 100
)

// replays the same random workload on the tree and on third-party ordered
// containers, comparing every return value and the final contents.
func TestCmpOrdered(t *testing.T) {
	tree := Trees.New[int, uint32](cValRange)
	ts := treeset.NewWithIntComparator()
	bt := btree.NewOrderedG[int](16)
	lt := llrb.New()
	for _i := 0; _i < cOpN; _i++ {
		k := rg.Intn(cValRange)
		if rg.Intn(2) == 0 {
			if in := tree.Insert(k); in != ts.Contains(k) {
				t.Fatalf("insert of key %v reported present=%v, want %v", k, in, ts.Contains(k))
			}
			ts.Add(k)
			bt.ReplaceOrInsert(k)
			lt.ReplaceOrInsert(llrb.Int(k))
		} else {
			if rm := tree.Delete(k); rm != ts.Contains(k) {
				t.Fatalf("delete of key %v returned %v, want %v", k, rm, ts.Contains(k))
			}
			ts.Remove(k)
			bt.Delete(k)
			lt.Delete(llrb.Int(k))
		}
		if tree.Corrupt() {
			t.Fatal("tree is corrupt")
		}
	}
	var got []int
	tree.InOrder(func(v *int) bool {
		got = append(got, *v)
		return true
	}, nil)
	want := make([]int, 0, ts.Size())
	ts.Each(func(_ int, value interface{}) {
		want = append(want, value.(int))
	})
	if !slices.Equal(got, want) {
		t.Log(got)
		t.Log(want)
		t.Fatal("contents diverged from treeset")
	}
	if bt.Len() != len(got) || lt.Len() != len(got) {
		t.Fatalf("sizes diverged: %d %d %d", len(got), bt.Len(), lt.Len())
	}
	bi := 0
	bt.Ascend(func(v int) bool {
		if got[bi] != v {
			t.Fatalf("key %v at %d diverged from btree's %v", got[bi], bi, v)
		}
		bi++
		return true
	})
}

// the hash maps play the reference-set role here: membership after every
// operation, then an exhaustive sweep of the key range.
func TestCmpHashed(t *testing.T) {
	tree := Trees.New[int, uint32](cValRange)
	hm := haxmap.New[int, struct{}]()
	cm := hashmap.New[int, struct{}]()
	for _i := 0; _i < cOpN; _i++ {
		k := rg.Intn(cValRange)
		if rg.Intn(2) == 0 {
			_, in := hm.Get(k)
			if tree.Insert(k) != in {
				t.Fatalf("insert of key %v reported present=%v, want %v", k, !in, in)
			}
			hm.Set(k, struct{}{})
			cm.Set(k, struct{}{})
		} else {
			_, in := hm.Get(k)
			if tree.Delete(k) != in {
				t.Fatalf("delete of key %v returned %v, want %v", k, !in, in)
			}
			hm.Del(k)
			cm.Del(k)
		}
		if tree.Corrupt() {
			t.Fatal("tree is corrupt")
		}
	}
	if int(hm.Len()) != int(tree.Size()) || cm.Len() != int(tree.Size()) {
		t.Fatalf("sizes diverged: %d %d %d", tree.Size(), hm.Len(), cm.Len())
	}
	for k := 0; k < cValRange; k++ {
		_, a := hm.Get(k)
		_, b := cm.Get(k)
		if c := tree.Has(k); a != c || b != c {
			t.Fatalf("membership of %v diverged: tree %v, haxmap %v, hashmap %v", k, c, a, b)
		}
	}
}

const benchmarkItemCount = 1 << 16

func benchKeys() []int {
	a := make([]int, benchmarkItemCount)
	for i := range a {
		a[i] = rg.Int()
	}
	return a
}

func BenchmarkInsertAVL(b *testing.B) {
	a := benchKeys()
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		tree := Trees.New[int, uint32](benchmarkItemCount)
		for _, v := range a {
			tree.Insert(v)
		}
	}
}

func BenchmarkInsertTreeSet(b *testing.B) {
	a := benchKeys()
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		ts := treeset.NewWithIntComparator()
		for _, v := range a {
			ts.Add(v)
		}
	}
}

func BenchmarkInsertBTree(b *testing.B) {
	a := benchKeys()
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		bt := btree.NewOrderedG[int](16)
		for _, v := range a {
			bt.ReplaceOrInsert(v)
		}
	}
}

func BenchmarkInsertLLRB(b *testing.B) {
	a := benchKeys()
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		lt := llrb.New()
		for _, v := range a {
			lt.ReplaceOrInsert(llrb.Int(v))
		}
	}
}

var sideEff bool

func BenchmarkHasAVL(b *testing.B) {
	a := benchKeys()
	tree := Trees.New[int, uint32](benchmarkItemCount)
	for _, v := range a {
		tree.Insert(v)
	}
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		for _, v := range a {
			sideEff = tree.Has(v)
		}
	}
}

func BenchmarkHasHaxMap(b *testing.B) {
	a := benchKeys()
	hm := haxmap.New[int, struct{}]()
	for _, v := range a {
		hm.Set(v, struct{}{})
	}
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		for _, v := range a {
			_, sideEff = hm.Get(v)
		}
	}
}

func BenchmarkHasHashMap(b *testing.B) {
	a := benchKeys()
	cm := hashmap.New[int, struct{}]()
	for _, v := range a {
		cm.Set(v, struct{}{})
	}
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		for _, v := range a {
			_, sideEff = cm.Get(v)
		}
	}
}
