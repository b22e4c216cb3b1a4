package rbt

import "cmp"

type color bool

const (
	red   color = true
	black color = false
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

type node[K cmp.Ordered] struct {
	key         K
	color       color
	left, right *node[K]
}

func (n *node[K]) Key() K { return n.key }
func (n *node[K]) Children() (*node[K], *node[K]) { return n.left, n.right }

// isRed treats the empty subtree as black.
func isRed[K cmp.Ordered](n *node[K]) bool {
	return n != nil && n.color == red
}

/*
rotateLeft lifts the right child of x. Colors are left to the caller.

	  x                y
	 / \              / \
	A   y     →      x   C
	   / \          / \
	  B   C        A   B
*/
func rotateLeft[K cmp.Ordered](x *node[K]) *node[K] {
	y := x.right
	x.right = y.left
	y.left = x
	return y
}

/*
rotateRight lifts the left child of y. Colors are left to the caller.

	    y            x
	   / \          / \
	  x   C   →    A   y
	 / \              / \
	A   B            B   C
*/
func rotateRight[K cmp.Ordered](y *node[K]) *node[K] {
	x := y.left
	y.left = x.right
	x.right = y
	return x
}
