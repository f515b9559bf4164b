package rbtree

// Find returns a handle to a node holding key. The second value is false
// when no such node exists. With duplicates any one of them may be returned.
func (t *Tree) Find(key Key) (Handle, bool) {
	if t.destroyed {
		return Handle{}, false
	}
	n := t.nodes
	cur := t.root
	for cur != absent {
		switch {
		case key < n[cur].key:
			cur = n[cur].left
		case key > n[cur].key:
			cur = n[cur].right
		default:
			return t.handle(cur), true
		}
	}
	return Handle{}, false
}

// Contains reports whether key is in the tree.
func (t *Tree) Contains(key Key) bool {
	_, found := t.Find(key)
	return found
}

// Min returns a handle to the node with the smallest key, false if the
// tree is empty.
func (t *Tree) Min() (Handle, bool) {
	if t.destroyed || t.root == absent {
		return Handle{}, false
	}
	return t.handle(t.minimum(t.root)), true
}

// Max returns a handle to the node with the largest key, false if the tree
// is empty.
func (t *Tree) Max() (Handle, bool) {
	if t.destroyed || t.root == absent {
		return Handle{}, false
	}
	return t.handle(t.maximum(t.root)), true
}

func (t *Tree) minimum(i uint32) uint32 {
	for t.nodes[i].left != absent {
		i = t.nodes[i].left
	}
	return i
}

func (t *Tree) maximum(i uint32) uint32 {
	for t.nodes[i].right != absent {
		i = t.nodes[i].right
	}
	return i
}
