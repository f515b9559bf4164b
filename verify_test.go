package rbtree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyDetectsCorruption(t *testing.T) {
	type Case struct {
		name    string
		corrupt func(tree *Tree, hs []Handle)
	}

	// 20 is the black root, 10 and 30 its red children, 5 a red leaf
	// after recoloring turns 10 and 30 black.
	cs := []Case{
		{"red root", func(tree *Tree, hs []Handle) {
			tree.nodes[tree.root].color = red
		}},
		{"red red", func(tree *Tree, hs []Handle) {
			tree.nodes[hs[1].index].color = red
		}},
		{"black height", func(tree *Tree, hs []Handle) {
			tree.nodes[hs[3].index].color = black
		}},
		{"order", func(tree *Tree, hs []Handle) {
			tree.nodes[hs[3].index].key = 25
		}},
		{"parent link", func(tree *Tree, hs []Handle) {
			tree.nodes[hs[3].index].parent = hs[2].index
		}},
		{"count", func(tree *Tree, hs []Handle) {
			tree.count++
		}},
	}

	for _, c := range cs {
		tree := New()
		hs := insertAll(t, tree, 20, 10, 30, 5)
		require.NoError(t, tree.Verify(), c.name)

		c.corrupt(tree, hs)
		err := tree.Verify()
		require.Error(t, err, c.name)
		require.True(t, errors.Is(err, ErrCorrupted), "%v: %v", c.name, err)
		t.Logf("%v: %v", c.name, err)
	}
}

func TestHeights(t *testing.T) {
	tree := New()
	insertAll(t, tree, 20, 10, 30, 5)
	require.Equal(t, 3, tree.Height())
	require.Equal(t, 2, tree.BlackHeight())

	tree.Destroy()
	require.Equal(t, 0, tree.Height())
	require.Equal(t, 0, tree.BlackHeight())
}
