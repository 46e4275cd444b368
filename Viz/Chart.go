package Viz

import (
	"cmp"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/g-m-twostay/go-avl/Trees"
	"golang.org/x/exp/constraints"
)

// Chart renders the tree as an interactive HTML tree diagram. Node labels
// match the dot export ("value;balance").
// The tree mustn't be modified during the walk.
func Chart[T cmp.Ordered, S constraints.Unsigned](w io.Writer, u *Trees.AVL[T, S], title string) error {
	g := charts.NewTree()
	g.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))
	root := opts.TreeData{Name: "empty"}
	if r := u.Root(); r != 0 {
		root = treeData(u, r)
	}
	g.AddSeries("avl", []opts.TreeData{root}, charts.WithTreeOpts(opts.TreeChart{
		Orient:           "TB",
		InitialTreeDepth: -1,
	}))
	return g.Render(w)
}

// treeData converts the subtree at index i recursively.
func treeData[T cmp.Ordered, S constraints.Unsigned](u *Trees.AVL[T, S], i S) opts.TreeData {
	td := opts.TreeData{Name: fmt.Sprintf("%v;%d", *u.Value(i), u.Balance(i))}
	for d := 0; d < 2; d++ {
		if c := u.Child(i, d); c != 0 {
			ch := treeData(u, c)
			td.Children = append(td.Children, &ch)
		}
	}
	return td
}
