// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
//
// Compare returns -1, 0 or +1 when the item is less than, equal to or
// greater than the argument
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left    *Node       // left sub-tree
	right   *Node       // right sub-tree
	up      *Node       // points to parent node
	key     Item        // key part for ordering
	value   interface{} // value part for data storage
	balance int         // -1, 0, +1 at rest; ±2 only during rebalance
}

// allocate a new leaf node below the parent
func newNode(key Item, value interface{}, up *Node) *Node {
	return &Node{
		up:      up,
		key:     key,
		value:   value,
		balance: 0,
	}
}

// release a node that has been unlinked from the tree
//
// all fields are cleared so a stale reference held by a caller
// cannot reach back into the tree
func freeNode(node *Node) {
	node.up = nil
	node.left = nil
	node.right = nil
	node.key = nil
	node.value = nil
	node.balance = 0
}
