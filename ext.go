package rbtree

// RemoveMin removes the smallest key and returns it, with false if the tree
// is empty
func (t *Tree) RemoveMin() (key Key, deleted bool) {
	if t.destroyed || t.root == absent {
		return 0, false
	}
	i := t.minimum(t.root)
	key = t.nodes[i].key
	t.erase(i)
	return key, true
}

// RemoveMax removes the largest key and returns it, with false if the tree
// is empty
func (t *Tree) RemoveMax() (key Key, deleted bool) {
	if t.destroyed || t.root == absent {
		return 0, false
	}
	i := t.maximum(t.root)
	key = t.nodes[i].key
	t.erase(i)
	return key, true
}
