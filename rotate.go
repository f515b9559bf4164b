package rbtree

/*
    X                Y
  A   Y     =>     X   C
     B C          A B
*/
func (t *Tree) rotateLeft(x uint32) {
	n := t.nodes
	y := n[x].right
	doAssert(y != absent)

	// Move "B"
	n[x].right = n[y].left
	if n[y].left != absent {
		n[n[y].left].parent = x
	}

	n[y].parent = n[x].parent
	t.replaceChild(n[x].parent, x, y)
	n[y].left = x
	n[x].parent = y
}

/*
     Y           X
   X   C  =>   A   Y
  A B             B C
*/
func (t *Tree) rotateRight(y uint32) {
	n := t.nodes
	x := n[y].left
	doAssert(x != absent)

	// Move "B"
	n[y].left = n[x].right
	if n[x].right != absent {
		n[n[x].right].parent = y
	}

	n[x].parent = n[y].parent
	t.replaceChild(n[y].parent, y, x)
	n[x].right = y
	n[y].parent = x
}

// replaceChild points the slot of parent that held old at repl, or the root
// when parent is absent.
func (t *Tree) replaceChild(parent, old, repl uint32) {
	switch {
	case parent == absent:
		t.root = repl
	case t.nodes[parent].left == old:
		t.nodes[parent].left = repl
	default:
		t.nodes[parent].right = repl
	}
}
