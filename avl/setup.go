// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbst/counter"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	leftRotations  counter.Counter // keep first for 64 bit alignment
	rightRotations counter.Counter
	root           *Node
	count          int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Rotations - number of single left and right rotations performed
// since the tree was created, a double rotation counts as one of each
func (tree *Tree) Rotations() (uint64, uint64) {
	return tree.leftRotations.Uint64(), tree.rightRotations.Uint64()
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		if p.left != nil {
			nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
		}
		if p.right != nil {
			nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node) Balance() int {
	return p.balance
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left child of a node
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right child of a node
func (p *Node) Right() *Node {
	return p.right
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
