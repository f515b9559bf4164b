package rbtree

import "fmt"

// Verify checks the red-black and ordering invariants of the whole tree
// together with parent links and the node count. It returns nil for a
// healthy tree and an error wrapping ErrCorrupted naming the first
// violation otherwise.
func (t *Tree) Verify() error {
	if t.destroyed {
		return nil
	}
	if t.root == absent {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree counts %d nodes", ErrCorrupted, t.count)
		}
		return nil
	}
	if t.nodes[t.root].parent != absent {
		return fmt.Errorf("%w: root %d has parent %d", ErrCorrupted, t.root, t.nodes[t.root].parent)
	}
	if t.nodes[t.root].color != black {
		return fmt.Errorf("%w: root %d is red", ErrCorrupted, t.root)
	}

	seen := 0
	var prev *Key
	var check func(i uint32) (int, error)
	check = func(i uint32) (int, error) {
		if i == absent {
			return 1, nil
		}
		n := &t.nodes[i]
		if !n.live {
			return 0, fmt.Errorf("%w: released node %d is linked", ErrCorrupted, i)
		}
		for _, c := range []uint32{n.left, n.right} {
			if c == absent {
				continue
			}
			if t.nodes[c].parent != i {
				return 0, fmt.Errorf("%w: node %d has parent %d, expected %d", ErrCorrupted, c, t.nodes[c].parent, i)
			}
			if n.color == red && t.nodes[c].color == red {
				return 0, fmt.Errorf("%w: red node %d has red child %d", ErrCorrupted, i, c)
			}
		}

		lh, err := check(n.left)
		if err != nil {
			return 0, err
		}
		if prev != nil && n.key < *prev {
			return 0, fmt.Errorf("%w: key %d of node %d follows %d", ErrCorrupted, n.key, i, *prev)
		}
		key := n.key
		prev = &key
		seen++
		rh, err := check(n.right)
		if err != nil {
			return 0, err
		}

		if lh != rh {
			return 0, fmt.Errorf("%w: node %d has black heights %d and %d", ErrCorrupted, i, lh, rh)
		}
		if n.color == black {
			lh++
		}
		return lh, nil
	}
	if _, err := check(t.root); err != nil {
		return err
	}
	if seen != t.count {
		return fmt.Errorf("%w: reached %d nodes, count is %d", ErrCorrupted, seen, t.count)
	}
	return nil
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	if t.destroyed {
		return 0
	}
	return t.height(t.root)
}

func (t *Tree) height(i uint32) int {
	if i == absent {
		return 0
	}
	l, r := t.height(t.nodes[i].left), t.height(t.nodes[i].right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// BlackHeight returns the number of black nodes on the leftmost
// root-to-leaf path, which equals every other path in a healthy tree.
func (t *Tree) BlackHeight() int {
	if t.destroyed {
		return 0
	}
	h := 0
	for i := t.root; i != absent; i = t.nodes[i].left {
		if t.nodes[i].color == black {
			h++
		}
	}
	return h
}
