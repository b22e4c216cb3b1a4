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

// Package walk implements the read-only queries shared by every tree
// variant. The functions are generic over the node type, so each variant
// keeps its own node shape and metadata.
package walk

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"iter"
)

// Node is a binary tree node. The zero value of N is the empty subtree and
// Children is never called on it.
type Node[N any] interface {
	comparable
	Children() (left, right N)
}

// KeyedNode is a Node that carries a key.
type KeyedNode[K any, N any] interface {
	Node[N]
	Key() K
}

// Height returns the number of edges on the longest path from n down to a
// leaf, or -1 when n is empty.
func Height[N Node[N]](n N) int {
	var zero N
	if n == zero {
		return -1
	}
	l, r := n.Children()
	return 1 + max(Height(l), Height(r))
}

// CountLeaves returns the number of nodes below n (inclusive) that have no
// children.
func CountLeaves[N Node[N]](n N) int {
	var zero N
	if n == zero {
		return 0
	}
	l, r := n.Children()
	if l == zero && r == zero {
		return 1
	}
	return CountLeaves(l) + CountLeaves(r)
}

// Size returns the number of nodes in the subtree rooted at n.
func Size[N Node[N]](n N) int {
	var zero N
	if n == zero {
		return 0
	}
	l, r := n.Children()
	return 1 + Size(l) + Size(r)
}

// Leftmost returns the node holding the smallest key, or the zero N.
func Leftmost[N Node[N]](n N) N {
	var zero N
	if n == zero {
		return zero
	}
	for {
		l, _ := n.Children()
		if l == zero {
			return n
		}
		n = l
	}
}

// Rightmost returns the node holding the largest key, or the zero N.
func Rightmost[N Node[N]](n N) N {
	var zero N
	if n == zero {
		return zero
	}
	for {
		_, r := n.Children()
		if r == zero {
			return n
		}
		n = r
	}
}

// Find descends from n looking for key. It returns the zero N when key is
// absent.
func Find[K cmp.Ordered, N KeyedNode[K, N]](n N, key K) N {
	var zero N
	for n != zero {
		l, r := n.Children()
		switch c := cmp.Compare(key, n.Key()); {
		case c < 0:
			n = l
		case c > 0:
			n = r
		default:
			return n
		}
	}
	return zero
}

// InOrder yields keys left-root-right, which is ascending for any
// BST-ordered tree.
func InOrder[K any, N KeyedNode[K, N]](root N) iter.Seq[K] {
	return func(yield func(K) bool) {
		var zero N
		var stack []N
		current := root
		for current != zero || len(stack) > 0 {
			for current != zero {
				stack = append(stack, current)
				current, _ = current.Children()
			}

			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(current.Key()) {
				return
			}

			_, current = current.Children()
		}
	}
}

// PreOrder yields keys root-left-right.
func PreOrder[K any, N KeyedNode[K, N]](root N) iter.Seq[K] {
	return func(yield func(K) bool) {
		var zero N
		if root == zero {
			return
		}
		stack := []N{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.Key()) {
				return
			}
			l, r := n.Children()
			if r != zero {
				stack = append(stack, r)
			}
			if l != zero {
				stack = append(stack, l)
			}
		}
	}
}

// PostOrder yields keys left-right-root.
func PostOrder[K any, N KeyedNode[K, N]](root N) iter.Seq[K] {
	return func(yield func(K) bool) {
		var zero N
		var stack []N
		var last N
		current := root
		for current != zero || len(stack) > 0 {
			for current != zero {
				stack = append(stack, current)
				current, _ = current.Children()
			}

			top := stack[len(stack)-1]
			_, r := top.Children()
			if r != zero && r != last {
				current = r
				continue
			}

			stack = stack[:len(stack)-1]
			if !yield(top.Key()) {
				return
			}
			last = top
		}
	}
}

// CheckOrder verifies that every key in a left subtree is smaller, and
// every key in a right subtree larger, than the key of their ancestor.
func CheckOrder[K cmp.Ordered, N KeyedNode[K, N]](root N) error {
	var prev K
	first := true
	for k := range InOrder[K](root) {
		if !first && cmp.Compare(prev, k) >= 0 {
			return fmt.Errorf("order violated: %v is not less than %v", prev, k)
		}
		prev, first = k, false
	}
	return nil
}

// Fprint writes the keys of seq to w separated by single spaces and
// terminated by a newline.
func Fprint[K any](w io.Writer, seq iter.Seq[K]) error {
	bw := bufio.NewWriter(w)
	sep := ""
	for k := range seq {
		if _, err := fmt.Fprintf(bw, "%s%v", sep, k); err != nil {
			return err
		}
		sep = " "
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
