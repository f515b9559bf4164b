package rbtree

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/emirpasic/gods/containers"
	"github.com/sirupsen/logrus"
)

// Key is the ordered value stored in each node.
type Key = int

type color bool

const (
	red   color = false
	black color = true
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

const (
	// absent is the arena index meaning "no child" or "no parent".
	// Slot 0 is reserved and never written, so its links are always
	// absent. Its color must be read through colorOf.
	absent uint32 = 0

	maxArenaLen = math.MaxUint32
)

type node struct {
	key                 Key
	parent, left, right uint32
	color               color
	gen                 uint32
	live                bool
}

// Handle refers to one node of one tree. The zero Handle is never valid.
//
// A handle stays valid until its node is erased or the tree is cleared or
// destroyed; after that every operation taking it reports ErrInvalidHandle.
type Handle struct {
	tree  uint64
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h == Handle{}
}

// Options specifies options to be used when instantiating a tree
type Options struct {
	// MaxNodes caps the number of live nodes, 0 means no cap.
	MaxNodes int
	// Logger defaults to Log.
	Logger *logrus.Logger
}

// Tree is a red-black tree of int keys. Nodes live in an arena owned by the
// tree and are addressed by index; duplicates are kept in insertion order.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	id      uint64
	options *Options
	log     *logrus.Entry

	nodes []node
	free  []uint32
	root  uint32
	count int

	destroyed bool
}

var _ containers.Container = (*Tree)(nil)

var treeIDs uint64

// New creates an empty tree.
func New() *Tree {
	return NewWithOptions(nil)
}

// NewWithOptions creates an empty tree configured by opts; nil means defaults.
func NewWithOptions(opts *Options) *Tree {
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = Log
	}
	id := atomic.AddUint64(&treeIDs, 1)
	return &Tree{
		id:      id,
		options: opts,
		log:     logger.WithFields(logrus.Fields{"component": "rbtree", "tree": id}),
		nodes:   make([]node, 1),
		root:    absent,
	}
}

// Destroy releases every node and the arena. The tree must not be used
// afterwards; mutating calls return ErrDestroyed. Calling Destroy again is
// a no-op.
func (t *Tree) Destroy() {
	if t.destroyed {
		return
	}
	released := t.releaseSubtree(t.root, false)
	t.log.Debugf("tree destroyed, %v nodes released", released)
	t.nodes, t.free = nil, nil
	t.root, t.count = absent, 0
	t.destroyed = true
}

// Clear removes all nodes. Outstanding handles become invalid.
func (t *Tree) Clear() {
	if t.destroyed {
		return
	}
	released := t.releaseSubtree(t.root, true)
	t.root = absent
	t.log.Debugf("tree cleared, %v nodes released", released)
}

// Len returns the number of keys in the tree.
func (t *Tree) Len() int {
	return t.count
}

// Size is Len, for containers.Container.
func (t *Tree) Size() int {
	return t.count
}

// Empty reports whether the tree holds no keys.
func (t *Tree) Empty() bool {
	return t.count == 0
}

// Key returns the key held by the node h refers to.
func (t *Tree) Key(h Handle) (Key, error) {
	i, err := t.resolve(h)
	if err != nil {
		return 0, err
	}
	return t.nodes[i].key, nil
}

// Valid reports whether h refers to a live node of this tree.
func (t *Tree) Valid(h Handle) bool {
	_, err := t.resolve(h)
	return err == nil
}

func (t *Tree) resolve(h Handle) (uint32, error) {
	if t.destroyed {
		return absent, ErrDestroyed
	}
	if h.tree != t.id || h.index == absent || int(h.index) >= len(t.nodes) {
		t.log.Debugf("rejected handle %+v", h)
		return absent, ErrInvalidHandle
	}
	n := &t.nodes[h.index]
	if !n.live || n.gen != h.gen {
		t.log.Debugf("rejected stale handle %+v, slot generation %v", h, n.gen)
		return absent, ErrInvalidHandle
	}
	return h.index, nil
}

func (t *Tree) handle(i uint32) Handle {
	return Handle{tree: t.id, index: i, gen: t.nodes[i].gen}
}

// alloc returns a red node holding key with absent links. Released slots
// are reused before the arena grows.
func (t *Tree) alloc(key Key) (uint32, error) {
	if limit := t.options.MaxNodes; limit > 0 && t.count >= limit {
		return absent, fmt.Errorf("%w: tree already holds %d of %d nodes", ErrAllocationFailed, t.count, limit)
	}
	var i uint32
	if n := len(t.free); n > 0 {
		i = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		if uint64(len(t.nodes)) >= maxArenaLen {
			return absent, fmt.Errorf("%w: arena holds %d slots", ErrAllocationFailed, len(t.nodes))
		}
		t.nodes = append(t.nodes, node{})
		i = uint32(len(t.nodes) - 1)
	}
	n := &t.nodes[i]
	doAssert(!n.live)
	gen := n.gen
	*n = node{key: key, color: red, gen: gen, live: true}
	t.count++
	return i, nil
}

// release returns slot i to the free-list. Bumping the generation is what
// invalidates handles to it.
func (t *Tree) release(i uint32) {
	doAssert(i != absent && t.nodes[i].live)
	gen := t.nodes[i].gen + 1
	t.nodes[i] = node{gen: gen}
	t.free = append(t.free, i)
	t.count--
}

// releaseSubtree frees the subtree at i in post-order. With reuse unset the
// slots are only marked dead since the arena is about to be dropped.
func (t *Tree) releaseSubtree(i uint32, reuse bool) int {
	if i == absent {
		return 0
	}
	n := t.releaseSubtree(t.nodes[i].left, reuse) + t.releaseSubtree(t.nodes[i].right, reuse)
	if reuse {
		t.release(i)
	} else {
		t.nodes[i].live = false
		t.count--
	}
	return n + 1
}

func (t *Tree) colorOf(i uint32) color {
	if i == absent {
		return black
	}
	return t.nodes[i].color
}
