package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The tree from the worked example:
//
//	        1
//	      /   \
//	     2     5
//	    / \
//	   3   4
//	      /
//	     6
func newExampleTree() *Node[int] {
	return NewNode(1,
		NewNode(2,
			Leaf(3),
			NewNode(4, Leaf(6), nil),
		),
		Leaf(5),
	)
}

func TestSize(t *testing.T) {
	tests := []struct {
		name string
		root *Node[int]
		want int
	}{
		{
			name: "nil",
			root: nil,
			want: 0,
		},
		{
			name: "one",
			root: Leaf(1),
			want: 1,
		},
		{
			name: "left only",
			root: NewNode(2, Leaf(1), nil),
			want: 2,
		},
		{
			name: "right only",
			root: NewNode(1, nil, Leaf(2)),
			want: 2,
		},
		{
			name: "example",
			root: newExampleTree(),
			want: 6,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Size(tt.root))
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "((3 2 (6 4 _)) 1 5)", newExampleTree().String())
	assert.Equal(t, "7", Leaf(7).String())
	assert.Equal(t, "_", (*Node[int])(nil).String())
}
