// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package avl implements a height-balanced binary search tree.
//
// Every node caches the height of its subtree. Insert and Delete descend
// recursively and, while the recursion unwinds, recompute heights and
// rotate any node whose balance factor left the range [-1, 1]. Rotations
// return the new local subtree root to the caller, so no node keeps a
// reference to its parent.
package avl

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/cybrota/trees/internal/walk"
	"github.com/cybrota/trees/tree"
)

var _ tree.Tree[int] = (*Tree[int])(nil)

// Tree is an AVL tree. The zero value is an empty tree ready to use.
// A Tree is not safe for concurrent use.
type Tree[K cmp.Ordered] struct {
	root *node[K]
	size int

	// rebalances counts nodes that needed at least one rotation.
	rebalances int
}

// New returns a tree holding keys. Duplicates are skipped.
func New[K cmp.Ordered](keys ...K) *Tree[K] {
	t := &Tree[K]{}
	for _, k := range keys {
		_ = t.Insert(k)
	}
	return t
}

func getHeight[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return tree.EmptyHeight
	}
	return n.height
}

func updateHeight[K cmp.Ordered](n *node[K]) {
	n.height = max(getHeight(n.left), getHeight(n.right)) + 1
}

func balanceFactor[K cmp.Ordered](n *node[K]) int {
	if n == nil {
		return 0
	}
	return getHeight(n.left) - getHeight(n.right)
}

/*
rotateLeft lifts the right child of n:

	  n                p
	 / \              / \
	A   p     →      n   C
	   / \          / \
	  B   C        A   B
*/
func rotateLeft[K cmp.Ordered](n *node[K]) *node[K] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	updateHeight(n)
	updateHeight(pivot)
	return pivot
}

/*
rotateRight lifts the left child of n:

	    n            p
	   / \          / \
	  p   C   →    A   n
	 / \              / \
	A   B            B   C
*/
func rotateRight[K cmp.Ordered](n *node[K]) *node[K] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	updateHeight(n)
	updateHeight(pivot)
	return pivot
}

// rebalance refreshes the height of n and restores |bf| <= 1 with a single
// or double rotation. It returns the root of the subtree.
func (t *Tree[K]) rebalance(n *node[K]) *node[K] {
	updateHeight(n)

	switch bf := balanceFactor(n); {
	case bf > 1:
		t.rebalances++
		if balanceFactor(n.left) < 0 {
			// Left-Right case
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case bf < -1:
		t.rebalances++
		if balanceFactor(n.right) > 0 {
			// Right-Left case
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}
	return n
}

// Insert adds key. At most one node on the path is rotated: after that
// rotation the subtree has its pre-insert height again, so every ancestor
// above it is already balanced.
func (t *Tree[K]) Insert(key K) error {
	root, err := t.insertRecursive(t.root, key)
	if err != nil {
		return err
	}
	t.root = root
	t.size++
	return nil
}

func (t *Tree[K]) insertRecursive(n *node[K], key K) (*node[K], error) {
	if n == nil {
		return &node[K]{key: key}, nil
	}

	var err error
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left, err = t.insertRecursive(n.left, key)
	case c > 0:
		n.right, err = t.insertRecursive(n.right, key)
	default:
		return n, fmt.Errorf("insert %v: %w", key, tree.ErrKeyAlreadyExists)
	}
	if err != nil {
		return n, err
	}
	return t.rebalance(n), nil
}

// Delete removes key. Unlike Insert, every ancestor on the way back up may
// need its own rotation.
func (t *Tree[K]) Delete(key K) error {
	root, err := t.deleteRecursive(t.root, key)
	if err != nil {
		return err
	}
	t.root = root
	t.size--
	return nil
}

func (t *Tree[K]) deleteRecursive(n *node[K], key K) (*node[K], error) {
	if n == nil {
		return nil, fmt.Errorf("delete %v: %w", key, tree.ErrKeyNotFound)
	}

	var err error
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left, err = t.deleteRecursive(n.left, key)
	case c > 0:
		n.right, err = t.deleteRecursive(n.right, key)
	default:
		if n.left == nil {
			return n.right, nil
		}
		if n.right == nil {
			return n.left, nil
		}
		pivot := walk.Leftmost(n.right)
		n.key = pivot.key
		n.right, err = t.deleteRecursive(n.right, pivot.key)
	}
	if err != nil {
		return n, err
	}
	return t.rebalance(n), nil
}

func (t *Tree[K]) Contains(key K) bool {
	return walk.Find(t.root, key) != nil
}

func (t *Tree[K]) Min() (K, bool) {
	if n := walk.Leftmost(t.root); n != nil {
		return n.key, true
	}
	var zero K
	return zero, false
}

func (t *Tree[K]) Max() (K, bool) {
	if n := walk.Rightmost(t.root); n != nil {
		return n.key, true
	}
	var zero K
	return zero, false
}

// Height returns the cached height of the root in O(1).
func (t *Tree[K]) Height() int { return getHeight(t.root) }

func (t *Tree[K]) IsEmpty() bool { return t.root == nil }
func (t *Tree[K]) Len() int { return t.size }
func (t *Tree[K]) CountLeaves() int { return walk.CountLeaves(t.root) }

func (t *Tree[K]) InOrder() iter.Seq[K] { return walk.InOrder[K](t.root) }
func (t *Tree[K]) PreOrder() iter.Seq[K] { return walk.PreOrder[K](t.root) }
func (t *Tree[K]) PostOrder() iter.Seq[K] { return walk.PostOrder[K](t.root) }

// Keys returns the keys in ascending order.
func (t *Tree[K]) Keys() []K { return slices.Collect(t.InOrder()) }

func (t *Tree[K]) PrintInOrder(w io.Writer) error {
	return walk.Fprint(w, t.InOrder())
}

func (t *Tree[K]) Clear() {
	t.root = nil
	t.size = 0
}

// Verify checks key order, the cached size, that every cached height
// matches the real one, and that every balance factor is within [-1, 1].
func (t *Tree[K]) Verify() error {
	if err := walk.CheckOrder[K](t.root); err != nil {
		return err
	}
	if n := walk.Size(t.root); n != t.size {
		return fmt.Errorf("size mismatch: counted %d nodes, cached %d", n, t.size)
	}
	_, err := checkBalance(t.root)
	return err
}

func checkBalance[K cmp.Ordered](n *node[K]) (int, error) {
	if n == nil {
		return tree.EmptyHeight, nil
	}
	lh, err := checkBalance(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := checkBalance(n.right)
	if err != nil {
		return 0, err
	}
	h := max(lh, rh) + 1
	if n.height != h {
		return 0, fmt.Errorf("node %v caches height %d, real height %d", n.key, n.height, h)
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		return 0, fmt.Errorf("node %v has balance factor %d", n.key, bf)
	}
	return h, nil
}
