package walk

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testNode struct {
	key         int
	left, right *testNode
}

func (n *testNode) Key() int { return n.key }
func (n *testNode) Children() (*testNode, *testNode) { return n.left, n.right }

func leaf(k int) *testNode { return &testNode{key: k} }

// sample builds
//
//	      5
//	    /   \
//	   3     8
//	  / \   / \
//	 1   4 7   9
func sample() *testNode {
	return &testNode{
		key:   5,
		left:  &testNode{key: 3, left: leaf(1), right: leaf(4)},
		right: &testNode{key: 8, left: leaf(7), right: leaf(9)},
	}
}

func TestQueries(t *testing.T) {
	tests := []struct {
		name      string
		root      *testNode
		height    int
		leaves    int
		size      int
		inorder   []int
		preorder  []int
		postorder []int
	}{
		{
			name:   "Empty",
			root:   nil,
			height: -1,
		},
		{
			name:      "Single",
			root:      leaf(1),
			height:    0,
			leaves:    1,
			size:      1,
			inorder:   []int{1},
			preorder:  []int{1},
			postorder: []int{1},
		},
		{
			name:      "Chain",
			root:      &testNode{key: 1, right: &testNode{key: 2, right: leaf(3)}},
			height:    2,
			leaves:    1,
			size:      3,
			inorder:   []int{1, 2, 3},
			preorder:  []int{1, 2, 3},
			postorder: []int{3, 2, 1},
		},
		{
			name:      "Perfect",
			root:      sample(),
			height:    2,
			leaves:    4,
			size:      7,
			inorder:   []int{1, 3, 4, 5, 7, 8, 9},
			preorder:  []int{5, 3, 1, 4, 8, 7, 9},
			postorder: []int{1, 4, 3, 7, 9, 8, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.height, Height(tt.root))
			assert.Equal(t, tt.leaves, CountLeaves(tt.root))
			assert.Equal(t, tt.size, Size(tt.root))
			assert.Equal(t, tt.inorder, slices.Collect(InOrder[int](tt.root)))
			assert.Equal(t, tt.preorder, slices.Collect(PreOrder[int](tt.root)))
			assert.Equal(t, tt.postorder, slices.Collect(PostOrder[int](tt.root)))
			assert.NoError(t, CheckOrder[int](tt.root))
		})
	}
}

func TestLeftmostRightmost(t *testing.T) {
	root := sample()
	assert.Equal(t, 1, Leftmost(root).Key())
	assert.Equal(t, 9, Rightmost(root).Key())
	assert.Nil(t, Leftmost[*testNode](nil))
	assert.Nil(t, Rightmost[*testNode](nil))
}

func TestFind(t *testing.T) {
	root := sample()
	for _, k := range []int{1, 3, 4, 5, 7, 8, 9} {
		n := Find(root, k)
		require.NotNil(t, n, "key %d", k)
		assert.Equal(t, k, n.Key())
	}
	for _, k := range []int{0, 2, 6, 10} {
		assert.Nil(t, Find(root, k), "key %d", k)
	}
}

func TestCheckOrderDetectsViolation(t *testing.T) {
	root := sample()
	// 6 sits in the left subtree of 5.
	root.left.right.key = 6
	assert.Error(t, CheckOrder[int](root))
}

func TestEarlyStop(t *testing.T) {
	var got []int
	for k := range InOrder[int](sample()) {
		if k > 4 {
			break
		}
		got = append(got, k)
	}
	assert.Equal(t, []int{1, 3, 4}, got)

	got = got[:0]
	for k := range PostOrder[int](sample()) {
		got = append(got, k)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 4}, got)
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, InOrder[int](sample())))
	assert.Equal(t, "1 3 4 5 7 8 9\n", buf.String())

	buf.Reset()
	require.NoError(t, Fprint(&buf, InOrder[int]((*testNode)(nil))))
	assert.Equal(t, "\n", buf.String())
}
