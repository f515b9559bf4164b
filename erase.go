package rbtree

// Erase removes the node h refers to. h and any other handle to the same
// node are invalid afterwards; handles to other nodes stay valid.
func (t *Tree) Erase(h Handle) error {
	z, err := t.resolve(h)
	if err != nil {
		return err
	}
	t.erase(z)
	return nil
}

func (t *Tree) erase(z uint32) {
	n := t.nodes
	removed := n[z].color

	// x moves into the vacated position and may be absent, so its parent
	// is tracked next to it.
	var x, xParent uint32
	switch {
	case n[z].left == absent:
		x, xParent = n[z].right, n[z].parent
		t.transplant(z, x)
	case n[z].right == absent:
		x, xParent = n[z].left, n[z].parent
		t.transplant(z, x)
	default:
		y := t.minimum(n[z].right)
		removed = n[y].color
		x = n[y].right
		if n[y].parent == z {
			xParent = y
		} else {
			xParent = n[y].parent
			t.transplant(y, x)
			n[y].right = n[z].right
			n[n[y].right].parent = y
		}
		t.transplant(z, y)
		n[y].left = n[z].left
		n[n[y].left].parent = y
		n[y].color = n[z].color
	}
	t.release(z)

	if removed == black {
		t.eraseFixup(x, xParent)
	}
}

// transplant puts v in u's slot under u's parent. v may be absent.
func (t *Tree) transplant(u, v uint32) {
	parent := t.nodes[u].parent
	t.replaceChild(parent, u, v)
	if v != absent {
		t.nodes[v].parent = parent
	}
}

// eraseFixup resolves the extra black carried by x, whose parent is given
// separately because x may be absent.
func (t *Tree) eraseFixup(x, parent uint32) {
	n := t.nodes
	for x != t.root && t.colorOf(x) == black {
		if x == n[parent].left {
			w := n[parent].right
			if t.colorOf(w) == red {
				n[w].color = black
				n[parent].color = red
				t.rotateLeft(parent)
				w = n[parent].right
			}
			if t.colorOf(n[w].left) == black && t.colorOf(n[w].right) == black {
				n[w].color = red
				x = parent
				parent = n[x].parent
				continue
			}
			if t.colorOf(n[w].right) == black {
				n[n[w].left].color = black
				n[w].color = red
				t.rotateRight(w)
				w = n[parent].right
			}
			n[w].color = n[parent].color
			n[parent].color = black
			n[n[w].right].color = black
			t.rotateLeft(parent)
			x = t.root
		} else {
			w := n[parent].left
			if t.colorOf(w) == red {
				n[w].color = black
				n[parent].color = red
				t.rotateRight(parent)
				w = n[parent].left
			}
			if t.colorOf(n[w].left) == black && t.colorOf(n[w].right) == black {
				n[w].color = red
				x = parent
				parent = n[x].parent
				continue
			}
			if t.colorOf(n[w].left) == black {
				n[n[w].right].color = black
				n[w].color = red
				t.rotateLeft(w)
				w = n[parent].left
			}
			n[w].color = n[parent].color
			n[parent].color = black
			n[n[w].left].color = black
			t.rotateRight(parent)
			x = t.root
		}
	}
	if x != absent {
		n[x].color = black
	}
}
