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

// Package rbt implements a Red-Black Tree.
//
// Nodes hold no parent pointer. Insert and Delete recurse down to the edit
// point and repair colors while the recursion unwinds: each level inspects
// its own children (and grandchildren) and returns the new root of its
// subtree, so the fixup cases of the classic parent-pointer algorithm are
// all resolved from the grandparent's point of view.
//
// The tree satisfies, between calls:
//  1. The root is black.
//  2. A red node has no red child.
//  3. Every path from a node down to an empty subtree crosses the same
//     number of black nodes.
package rbt

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

// Tree is a Red-Black Tree. The zero value is an empty tree ready to use.
// A Tree is not safe for concurrent use.
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

// Insert adds key as a red leaf and then repairs any red-red edge on the
// way back to the root.
func (t *Tree[K]) Insert(key K) error {
	root, err := t.insert(t.root, key)
	if err != nil {
		return err
	}
	root.color = black
	t.root = root
	t.size++
	return nil
}

func (t *Tree[K]) insert(h *node[K], key K) (*node[K], error) {
	if h == nil {
		return &node[K]{key: key, color: red}, nil
	}

	var err error
	switch c := cmp.Compare(key, h.key); {
	case c < 0:
		if h.left, err = t.insert(h.left, key); err != nil {
			return h, err
		}
		return fixInsertLeft(h), nil
	case c > 0:
		if h.right, err = t.insert(h.right, key); err != nil {
			return h, err
		}
		return fixInsertRight(h), nil
	default:
		return h, fmt.Errorf("insert %v: %w", key, tree.ErrKeyAlreadyExists)
	}
}

// fixInsertLeft resolves a red-red edge between g.left and one of its
// children. g is black whenever such an edge exists.
func fixInsertLeft[K cmp.Ordered](g *node[K]) *node[K] {
	p := g.left
	if !isRed(p) || (!isRed(p.left) && !isRed(p.right)) {
		return g
	}

	if u := g.right; isRed(u) {
		// Red uncle: push the blackness down. g may now clash with its own
		// parent, which is handled one level up.
		p.color = black
		u.color = black
		g.color = red
		return g
	}

	if isRed(p.right) {
		// Inner grandchild: turn it into the outer case.
		g.left = rotateLeft(p)
	}
	top := rotateRight(g)
	top.color = black
	g.color = red
	return top
}

// fixInsertRight mirrors fixInsertLeft.
func fixInsertRight[K cmp.Ordered](g *node[K]) *node[K] {
	p := g.right
	if !isRed(p) || (!isRed(p.left) && !isRed(p.right)) {
		return g
	}

	if u := g.left; isRed(u) {
		p.color = black
		u.color = black
		g.color = red
		return g
	}

	if isRed(p.left) {
		g.right = rotateRight(p)
	}
	top := rotateLeft(g)
	top.color = black
	g.color = red
	return top
}

// Delete removes key. When the node physically spliced out is black, the
// subtree that lost it is one black short ("double black") and the
// deficiency is pushed up until a sibling absorbs it or the root is
// reached.
func (t *Tree[K]) Delete(key K) error {
	root, _, err := t.delete(t.root, key)
	if err != nil {
		return err
	}
	if root != nil {
		root.color = black
	}
	t.root = root
	t.size--
	return nil
}

// delete returns the new subtree root and whether its black-height dropped
// by one.
func (t *Tree[K]) delete(h *node[K], key K) (*node[K], bool, error) {
	if h == nil {
		return nil, false, fmt.Errorf("delete %v: %w", key, tree.ErrKeyNotFound)
	}

	switch c := cmp.Compare(key, h.key); {
	case c < 0:
		left, short, err := t.delete(h.left, key)
		if err != nil {
			return h, false, err
		}
		h.left = left
		if short {
			h, short = fixDeleteLeft(h)
		}
		return h, short, nil
	case c > 0:
		right, short, err := t.delete(h.right, key)
		if err != nil {
			return h, false, err
		}
		h.right = right
		if short {
			h, short = fixDeleteRight(h)
		}
		return h, short, nil
	}

	if h.left != nil && h.right != nil {
		// The successor has no left child, so removing it falls into the
		// zero-or-one child case below.
		successor := walk.Leftmost(h.right)
		h.key = successor.key
		right, short, err := t.delete(h.right, successor.key)
		if err != nil {
			return h, false, err
		}
		h.right = right
		if short {
			h, short = fixDeleteRight(h)
		}
		return h, short, nil
	}

	child := h.left
	if child == nil {
		child = h.right
	}
	if h.color == red {
		return child, false, nil
	}
	if isRed(child) {
		child.color = black
		return child, false, nil
	}
	return child, true, nil
}

// fixDeleteLeft handles a left subtree of p that is one black short.
// It returns the new subtree root and whether the whole subtree is now
// short, in which case the caller continues one level up.
func fixDeleteLeft[K cmp.Ordered](p *node[K]) (*node[K], bool) {
	s := p.right

	if isRed(s) {
		// Red sibling: rotate so the deficient side gets a black sibling
		// under a red parent, then retry there. A red parent always
		// absorbs the deficiency, so this recursion is one level deep.
		top := rotateLeft(p)
		top.color = black
		p.color = red
		var short bool
		top.left, short = fixDeleteLeft(p)
		return top, short
	}

	if !isRed(s.left) && !isRed(s.right) {
		s.color = red
		if p.color == red {
			p.color = black
			return p, false
		}
		return p, true
	}

	if !isRed(s.right) {
		// Only the inner nephew is red: rotate it to the outside.
		p.right = rotateRight(s)
		p.right.color = black
		s.color = red
	}

	top := rotateLeft(p)
	top.color = p.color
	p.color = black
	top.right.color = black
	return top, false
}

// fixDeleteRight mirrors fixDeleteLeft.
func fixDeleteRight[K cmp.Ordered](p *node[K]) (*node[K], bool) {
	s := p.left

	if isRed(s) {
		top := rotateRight(p)
		top.color = black
		p.color = red
		var short bool
		top.right, short = fixDeleteRight(p)
		return top, short
	}

	if !isRed(s.left) && !isRed(s.right) {
		s.color = red
		if p.color == red {
			p.color = black
			return p, false
		}
		return p, true
	}

	if !isRed(s.left) {
		p.left = rotateLeft(s)
		p.left.color = black
		s.color = red
	}

	top := rotateRight(p)
	top.color = p.color
	p.color = black
	top.left.color = black
	return top, false
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

// Height walks the tree. It is at most 2*log2(n+1).
func (t *Tree[K]) Height() int { return walk.Height(t.root) }

// BlackHeight returns the number of black nodes on any path from the root
// down to an empty subtree, root included. It is 0 for an empty tree.
func (t *Tree[K]) BlackHeight() int {
	bh := 0
	for n := t.root; n != nil; n = n.left {
		if n.color == black {
			bh++
		}
	}
	return bh
}

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

// Verify validates key order, the cached size and the Red-Black
// properties listed in the package documentation.
func (t *Tree[K]) Verify() error {
	if err := walk.CheckOrder[K](t.root); err != nil {
		return err
	}
	if n := walk.Size(t.root); n != t.size {
		return fmt.Errorf("size mismatch: counted %d nodes, cached %d", n, t.size)
	}
	if isRed(t.root) {
		return fmt.Errorf("root %v is red", t.root.key)
	}
	_, err := checkSubtreeProperties(t.root)
	return err
}

// checkSubtreeProperties returns the black-height of n counting the empty
// subtrees as one.
func checkSubtreeProperties[K cmp.Ordered](n *node[K]) (int, error) {
	if n == nil {
		return 1, nil
	}

	if n.color == red && (isRed(n.left) || isRed(n.right)) {
		return 0, fmt.Errorf("red node %v has a red child", n.key)
	}

	leftCount, err := checkSubtreeProperties(n.left)
	if err != nil {
		return 0, err
	}
	rightCount, err := checkSubtreeProperties(n.right)
	if err != nil {
		return 0, err
	}
	if leftCount != rightCount {
		return 0, fmt.Errorf("node %v: black-height %d on the left, %d on the right", n.key, leftCount, rightCount)
	}

	if n.color == black {
		leftCount++
	}
	return leftCount, nil
}
