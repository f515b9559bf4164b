package rbtree

import "errors"

var (
	// ErrAllocationFailed is returned by Insert when no node can be allocated,
	// either because Options.MaxNodes was reached or the arena is exhausted.
	ErrAllocationFailed = errors.New("rbtree: node allocation failed")

	// ErrInvalidHandle is returned when a handle is zero, was released by an
	// earlier erase, or belongs to another tree.
	ErrInvalidHandle = errors.New("rbtree: invalid node handle")

	// ErrBufferTooSmall is returned by ToArray when the buffer cannot hold
	// every key of the tree.
	ErrBufferTooSmall = errors.New("rbtree: buffer too small")

	// ErrDestroyed is returned by operations on a destroyed tree.
	ErrDestroyed = errors.New("rbtree: tree destroyed")

	// ErrCorrupted is wrapped by Verify when an invariant does not hold.
	ErrCorrupted = errors.New("rbtree: invariant violated")
)
