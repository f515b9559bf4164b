package rbtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func printTree(t *testing.T, tree *Tree) {
	if h, found := tree.Max(); found {
		k, _ := tree.Key(h)
		t.Logf("max key: %v", k)
	}
	if h, found := tree.Min(); found {
		k, _ := tree.Key(h)
		t.Logf("min key: %v", k)
	}
	t.Logf("%v", tree)
}

func TestMinMax(t *testing.T) {
	tree := New()

	_, found := tree.Min()
	require.False(t, found)
	_, found = tree.Max()
	require.False(t, found)

	insertAll(t, tree, 1, 2, 3, 4, 5)
	printTree(t, tree)
	// RedBlackTree
	// │       ┌── 5(red)
	// │   ┌── 4(black)
	// │   │   └── 3(red)
	// └── 2(black)
	//     └── 1(black)

	h, found := tree.Min()
	require.True(t, found)
	k, err := tree.Key(h)
	require.NoError(t, err)
	require.Equal(t, 1, k)

	h, found = tree.Max()
	require.True(t, found)
	k, err = tree.Key(h)
	require.NoError(t, err)
	require.Equal(t, 5, k)
}

func TestMinMaxSingleNode(t *testing.T) {
	tree := New()
	h := insertAll(t, tree, 9)[0]

	lo, found := tree.Min()
	require.True(t, found)
	require.Equal(t, h, lo)
	hi, found := tree.Max()
	require.True(t, found)
	require.Equal(t, h, hi)
}

func TestRemoveMinMax(t *testing.T) {
	tree := New()
	insertAll(t, tree, 1, 2, 3, 4, 5)

	for _, c := range []struct {
		removeMin bool
		expected  Key
		remaining []Key
	}{
		{true, 1, []Key{2, 3, 4, 5}},
		{false, 5, []Key{2, 3, 4}},
		{true, 2, []Key{3, 4}},
		{false, 4, []Key{3}},
	} {
		var k Key
		var deleted bool
		if c.removeMin {
			k, deleted = tree.RemoveMin()
		} else {
			k, deleted = tree.RemoveMax()
		}
		require.True(t, deleted)
		require.Equal(t, c.expected, k)
		require.Equal(t, c.remaining, tree.Keys())
		require.NoError(t, tree.Verify())
	}
	printTree(t, tree)
	// max key: 3
	// min key: 3
	// RedBlackTree
	// └── 3(black)

	k, deleted := tree.RemoveMax()
	require.True(t, deleted)
	require.Equal(t, 3, k)
	_, deleted = tree.RemoveMin()
	require.False(t, deleted)
	_, deleted = tree.RemoveMax()
	require.False(t, deleted)
}
