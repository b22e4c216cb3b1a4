package bst

import "cmp"

// node is one element of the tree. Its subtrees are owned exclusively by it.
type node[K cmp.Ordered] struct {
	key         K
	left, right *node[K]
}

func (n *node[K]) Key() K { return n.key }
func (n *node[K]) Children() (*node[K], *node[K]) { return n.left, n.right }
