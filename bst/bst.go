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

// Package bst implements an unbalanced binary search tree.
//
// Nothing is rebalanced, so ascending or descending insertion orders
// degrade the tree into a chain of height n-1. It is the baseline the avl
// and rbt packages are measured against.
package bst

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

// Tree is an unbalanced binary search tree. The zero value is an empty
// tree ready to use. A Tree is not safe for concurrent use.
type Tree[K cmp.Ordered] struct {
	root *node[K]
	size int
}

// New returns a tree holding keys. Duplicates are skipped.
func New[K cmp.Ordered](keys ...K) *Tree[K] {
	t := &Tree[K]{}
	for _, k := range keys {
		_ = t.Insert(k)
	}
	return t
}

// Insert adds key as a new leaf.
func (t *Tree[K]) Insert(key K) error {
	if t.root == nil {
		t.root = &node[K]{key: key}
		t.size++
		return nil
	}
	if err := t.insertNode(t.root, key); err != nil {
		return err
	}
	t.size++
	return nil
}

func (t *Tree[K]) insertNode(current *node[K], key K) error {
	switch c := cmp.Compare(key, current.key); {
	case c < 0:
		if current.left == nil {
			current.left = &node[K]{key: key}
			return nil
		}
		return t.insertNode(current.left, key)
	case c > 0:
		if current.right == nil {
			current.right = &node[K]{key: key}
			return nil
		}
		return t.insertNode(current.right, key)
	default:
		return fmt.Errorf("insert %v: %w", key, tree.ErrKeyAlreadyExists)
	}
}

// Delete removes key. A node with two children takes the key of its
// in-order successor, which is then removed from the right subtree.
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
		successor := walk.Leftmost(n.right)
		n.key = successor.key
		n.right, err = t.deleteRecursive(n.right, successor.key)
	}
	return n, err
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

// Height walks the whole tree; nothing is cached.
func (t *Tree[K]) Height() int { return walk.Height(t.root) }

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

// Clear drops every node.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.size = 0
}

// Verify checks key order and the cached size.
func (t *Tree[K]) Verify() error {
	if err := walk.CheckOrder[K](t.root); err != nil {
		return err
	}
	if n := walk.Size(t.root); n != t.size {
		return fmt.Errorf("size mismatch: counted %d nodes, cached %d", n, t.size)
	}
	return nil
}
