// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (tree *Node) Next() *Node {
	if tree.right != nil {
		return tree.right.first()
	}
	up := tree.up
	for up != nil && tree == up.right {
		tree = up
		up = up.up
	}
	return up
}

// Prev - given a node, return its in-order predecessor or nil if no
// more nodes
//
// this is the maximum of the left sub-tree if there is one, otherwise
// the nearest ancestor that has the node in its right sub-tree
func (tree *Node) Prev() *Node {
	if tree.left != nil {
		return tree.left.last()
	}
	up := tree.up
	for up != nil && tree == up.left {
		tree = up
		up = up.up
	}
	return up
}
