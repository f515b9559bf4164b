package rbtree

import (
	"fmt"
	"strings"
)

// ToArray writes the keys in order into buf and returns how many were
// written. buf must have room for Len keys, otherwise nothing is written and
// ErrBufferTooSmall is returned.
func (t *Tree) ToArray(buf []Key) (int, error) {
	if t.destroyed {
		return 0, ErrDestroyed
	}
	if len(buf) < t.count {
		return 0, fmt.Errorf("%w: need %d slots, got %d", ErrBufferTooSmall, t.count, len(buf))
	}
	written := 0
	t.inorder(t.root, func(i uint32) {
		buf[written] = t.nodes[i].key
		written++
	})
	return written, nil
}

// Keys returns the keys in order.
func (t *Tree) Keys() []Key {
	keys := make([]Key, t.count)
	_, _ = t.ToArray(keys)
	return keys
}

// Values returns the keys in order, for containers.Container.
func (t *Tree) Values() []interface{} {
	values := make([]interface{}, 0, t.count)
	if t.destroyed {
		return values
	}
	t.inorder(t.root, func(i uint32) {
		values = append(values, t.nodes[i].key)
	})
	return values
}

func (t *Tree) inorder(i uint32, visit func(uint32)) {
	if i == absent {
		return
	}
	t.inorder(t.nodes[i].left, visit)
	visit(i)
	t.inorder(t.nodes[i].right, visit)
}

// String draws the tree sideways, largest keys on top.
//
//	RedBlackTree
//	│   ┌── 30(black)
//	└── 20(black)
//	    └── 10(black)
func (t *Tree) String() string {
	var b strings.Builder
	b.WriteString("RedBlackTree\n")
	if !t.destroyed && t.root != absent {
		t.output(t.root, "", true, &b)
	}
	return b.String()
}

func (t *Tree) output(i uint32, prefix string, isTail bool, b *strings.Builder) {
	n := &t.nodes[i]
	if n.right != absent {
		newPrefix := prefix
		if isTail {
			newPrefix += "│   "
		} else {
			newPrefix += "    "
		}
		t.output(n.right, newPrefix, false, b)
	}
	b.WriteString(prefix)
	if isTail {
		b.WriteString("└── ")
	} else {
		b.WriteString("┌── ")
	}
	fmt.Fprintf(b, "%v(%v)\n", n.key, n.color)
	if n.left != absent {
		newPrefix := prefix
		if isTail {
			newPrefix += "    "
		} else {
			newPrefix += "│   "
		}
		t.output(n.left, newPrefix, true, b)
	}
}
