package avl

import "cmp"

type node[K cmp.Ordered] struct {
	key         K
	height      int // cached; a leaf is 0
	left, right *node[K]
}

func (n *node[K]) Key() K { return n.key }
func (n *node[K]) Children() (*node[K], *node[K]) { return n.left, n.right }
