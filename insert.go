package rbtree

// Insert adds key to the tree and returns a handle to its node. Equal keys
// are allowed and are placed after the ones already present.
func (t *Tree) Insert(key Key) (Handle, error) {
	if t.destroyed {
		return Handle{}, ErrDestroyed
	}
	z, err := t.alloc(key)
	if err != nil {
		t.log.Warnf("insert of %v failed: %v", key, err)
		return Handle{}, err
	}

	// alloc may have grown the arena, take the slice after it.
	n := t.nodes
	parent := absent
	for cur := t.root; cur != absent; {
		parent = cur
		if key < n[cur].key {
			cur = n[cur].left
		} else {
			cur = n[cur].right
		}
	}

	n[z].parent = parent
	switch {
	case parent == absent:
		t.root = z
	case key < n[parent].key:
		n[parent].left = z
	default:
		n[parent].right = z
	}

	t.insertFixup(z)
	return t.handle(z), nil
}

func (t *Tree) insertFixup(z uint32) {
	n := t.nodes
	for t.colorOf(n[z].parent) == red {
		p := n[z].parent
		// p is red so it is not the root, g exists.
		g := n[p].parent
		if p == n[g].left {
			uncle := n[g].right
			if t.colorOf(uncle) == red {
				n[p].color = black
				n[uncle].color = black
				n[g].color = red
				z = g
				continue
			}
			if z == n[p].right {
				z = p
				t.rotateLeft(z)
				p = n[z].parent
			}
			n[p].color = black
			n[g].color = red
			t.rotateRight(g)
		} else {
			uncle := n[g].left
			if t.colorOf(uncle) == red {
				n[p].color = black
				n[uncle].color = black
				n[g].color = red
				z = g
				continue
			}
			if z == n[p].left {
				z = p
				t.rotateRight(z)
				p = n[z].parent
			}
			n[p].color = black
			n[g].color = red
			t.rotateLeft(g)
		}
	}
	n[t.root].color = black
}
