// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbst/fault"
)

// single left rotation at x, returns the new sub-tree root
//
//	    x                 y
//	   / \               / \
//	  a   y     →       x   c
//	     / \           / \
//	    b   c         a   b
func (tree *Tree) rotateLeft(x *Node) *Node {
	y := x.right
	if nil == y {
		fault.Panicf("avl: rotate left at: %v without right child", x.key)
	}
	b := y.left

	// move y up above x
	y.up = x.up
	tree.replaceChild(x.up, x, y)

	y.left = x
	x.up = y

	// attach b under x
	x.right = b
	if nil != b {
		b.up = x
	}

	// new balances from the old ones only, x must be done first
	xb := x.balance
	yb := y.balance
	x.balance = xb - 1 - max(0, yb)
	y.balance = yb - 1 + min(0, x.balance)

	tree.leftRotations.Increment()
	return y
}

// single right rotation at x, returns the new sub-tree root
//
//	      x             y
//	     / \           / \
//	    y   c   →     a   x
//	   / \               / \
//	  a   b             b   c
func (tree *Tree) rotateRight(x *Node) *Node {
	y := x.left
	if nil == y {
		fault.Panicf("avl: rotate right at: %v without left child", x.key)
	}
	b := y.right

	// move y up above x
	y.up = x.up
	tree.replaceChild(x.up, x, y)

	y.right = x
	x.up = y

	// attach b under x
	x.left = b
	if nil != b {
		b.up = x
	}

	// new balances from the old ones only, x must be done first
	xb := x.balance
	yb := y.balance
	x.balance = xb + 1 - min(0, yb)
	y.balance = yb + 1 + max(0, x.balance)

	tree.rightRotations.Increment()
	return y
}

// repair a node whose balance has reached ±2 using a single or a
// double rotation, returns the new sub-tree root
func (tree *Tree) rebalance(p *Node) *Node {
	switch p.balance {
	case +2: // right is higher
		if p.right.balance < 0 {
			tree.rotateRight(p.right) // right-left
		}
		return tree.rotateLeft(p)
	case -2: // left is higher
		if p.left.balance > 0 {
			tree.rotateLeft(p.left) // left-right
		}
		return tree.rotateRight(p)
	default:
		fault.Panicf("avl: rebalance at: %v with balance: %d", p.key, p.balance)
	}
	return p
}

func max(a int, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a int, b int) int {
	if a < b {
		return a
	}
	return b
}
