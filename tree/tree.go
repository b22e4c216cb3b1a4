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

// Package tree holds the operation contract shared by the bst, avl and rbt
// packages, together with the errors they report.
//
// Each variant is a self-contained package with its own node type. The Tree
// interface exists for callers that pick a variant at run time (a shell, a
// benchmark); the variants never call each other through it.
package tree

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
)

// EmptyHeight is the height reported by an empty tree. A single node has
// height 0.
const EmptyHeight = -1

var (
	ErrKeyAlreadyExists = errors.New("key already exists")
	ErrKeyNotFound      = errors.New("key not found")
	ErrEmptyTree        = errors.New("tree is empty")
	ErrUnknownVariant   = errors.New("unknown tree variant")
)

// Tree is the public surface every variant implements.
type Tree[K cmp.Ordered] interface {
	// Insert adds key. It returns an error wrapping ErrKeyAlreadyExists
	// and leaves the tree untouched when key is present.
	Insert(key K) error

	// Delete removes key. It returns an error wrapping ErrKeyNotFound
	// and leaves the tree untouched when key is absent.
	Delete(key K) error

	Contains(key K) bool

	// Min and Max report false on an empty tree.
	Min() (K, bool)
	Max() (K, bool)

	// Height counts edges on the longest root-to-leaf path, EmptyHeight
	// for an empty tree.
	Height() int

	IsEmpty() bool
	Len() int
	CountLeaves() int

	InOrder() iter.Seq[K]
	PreOrder() iter.Seq[K]
	PostOrder() iter.Seq[K]
	Keys() []K

	// PrintInOrder writes the keys in ascending order, space separated.
	PrintInOrder(w io.Writer) error

	Clear()

	// Verify checks the variant's structural invariants. A non-nil result
	// is a bug in the tree, not a condition callers are expected to handle.
	Verify() error
}

// Equal reports whether a and b hold the same keys. The trees may be of
// different variants; only the in-order sequence is compared.
func Equal[K cmp.Ordered](a, b Tree[K]) bool {
	if a.Len() != b.Len() {
		return false
	}
	next, stop := iter.Pull(b.InOrder())
	defer stop()
	for k := range a.InOrder() {
		other, ok := next()
		if !ok || other != k {
			return false
		}
	}
	_, more := next()
	return !more
}

// Variant names one of the three tree implementations.
type Variant int

const (
	BST Variant = iota
	AVL
	RBT
)

// Variants lists every variant in display order.
var Variants = []Variant{BST, AVL, RBT}

func (v Variant) String() string {
	switch v {
	case BST:
		return "bst"
	case AVL:
		return "avl"
	case RBT:
		return "rbt"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Title is the human readable name of the variant.
func (v Variant) Title() string {
	switch v {
	case BST:
		return "Binary Search Tree"
	case AVL:
		return "AVL Tree"
	case RBT:
		return "Red-Black Tree"
	}
	return v.String()
}

// ParseVariant accepts "bst", "avl" or "rbt" in any case.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bst":
		return BST, nil
	case "avl":
		return AVL, nil
	case "rbt", "rb", "redblack":
		return RBT, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownVariant)
}
