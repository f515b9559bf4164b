package rbtree

import (
	"errors"
	"testing"

	"github.com/emirpasic/gods/containers"
	"github.com/stretchr/testify/require"
)

func insertAll(t testing.TB, tree *Tree, keys ...Key) []Handle {
	handles := make([]Handle, 0, len(keys))
	for _, k := range keys {
		h, err := tree.Insert(k)
		require.NoError(t, err)
		handles = append(handles, h)
	}
	return handles
}

func TestNewTreeIsEmpty(t *testing.T) {
	tree := New()

	require.True(t, tree.Empty())
	require.Equal(t, 0, tree.Len())
	require.Equal(t, 0, tree.Size())
	require.Equal(t, 0, tree.Height())
	require.NoError(t, tree.Verify())
	require.Empty(t, tree.Keys())

	var c containers.Container = tree
	require.Empty(t, c.Values())
}

func TestHandleAccessors(t *testing.T) {
	tree := New()
	h, err := tree.Insert(42)
	require.NoError(t, err)
	require.False(t, h.IsZero())
	require.True(t, tree.Valid(h))

	k, err := tree.Key(h)
	require.NoError(t, err)
	require.Equal(t, 42, k)

	_, err = tree.Key(Handle{})
	require.True(t, errors.Is(err, ErrInvalidHandle))
	require.True(t, Handle{}.IsZero())
}

func TestStaleHandleRejected(t *testing.T) {
	tree := New()
	hs := insertAll(t, tree, 1, 2, 3)

	require.NoError(t, tree.Erase(hs[1]))
	require.False(t, tree.Valid(hs[1]))
	require.True(t, errors.Is(tree.Erase(hs[1]), ErrInvalidHandle))

	// the released slot is reused, the old handle must still be refused
	h, err := tree.Insert(7)
	require.NoError(t, err)
	require.Equal(t, hs[1].index, h.index)
	require.NotEqual(t, hs[1].gen, h.gen)
	require.True(t, errors.Is(tree.Erase(hs[1]), ErrInvalidHandle))

	k, err := tree.Key(h)
	require.NoError(t, err)
	require.Equal(t, 7, k)
	require.Equal(t, []Key{1, 3, 7}, tree.Keys())
}

func TestForeignHandleRejected(t *testing.T) {
	a, b := New(), New()
	ha := insertAll(t, a, 1)[0]
	insertAll(t, b, 1)

	require.True(t, errors.Is(b.Erase(ha), ErrInvalidHandle))
	require.Equal(t, 1, b.Len())
	require.True(t, a.Valid(ha))
}

func TestMaxNodes(t *testing.T) {
	tree := NewWithOptions(&Options{MaxNodes: 3})
	hs := insertAll(t, tree, 3, 1, 2)

	_, err := tree.Insert(4)
	require.True(t, errors.Is(err, ErrAllocationFailed), "got %v", err)
	require.Equal(t, 3, tree.Len())
	require.NoError(t, tree.Verify())

	require.NoError(t, tree.Erase(hs[0]))
	_, err = tree.Insert(4)
	require.NoError(t, err)
	require.Equal(t, []Key{1, 2, 4}, tree.Keys())
}

func TestClear(t *testing.T) {
	tree := New()
	hs := insertAll(t, tree, 5, 3, 8, 1, 4)

	tree.Clear()
	require.True(t, tree.Empty())
	require.NoError(t, tree.Verify())
	for _, h := range hs {
		require.False(t, tree.Valid(h))
	}

	insertAll(t, tree, 2, 1)
	require.Equal(t, []Key{1, 2}, tree.Keys())
	require.NoError(t, tree.Verify())
}

func TestDestroy(t *testing.T) {
	tree := New()
	hs := insertAll(t, tree, 10, 20, 30)

	tree.Destroy()
	require.Equal(t, 0, tree.Len())
	require.True(t, errors.Is(tree.Erase(hs[0]), ErrDestroyed))
	_, err := tree.Insert(1)
	require.True(t, errors.Is(err, ErrDestroyed))
	_, err = tree.ToArray(make([]Key, 3))
	require.True(t, errors.Is(err, ErrDestroyed))

	_, found := tree.Find(10)
	require.False(t, found)
	_, found = tree.Min()
	require.False(t, found)

	// a second call on the cleared handle is harmless
	tree.Destroy()
	require.Equal(t, "RedBlackTree\n", tree.String())
}
