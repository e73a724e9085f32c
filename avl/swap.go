// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// exchange the tree positions of two nodes
//
// only the up/left/right links (and the root) change, the key, value
// and balance stay with the node
func (tree *Tree) swapPositions(n1 *Node, n2 *Node) {
	if n1 == n2 {
		return
	}

	// when adjacent ensure n1 is the upper node
	if n1.up == n2 {
		n1, n2 = n2, n1
	}

	up1, left1, right1 := n1.up, n1.left, n1.right
	up2, left2, right2 := n2.up, n2.left, n2.right

	// parents' child links
	if nil != up1 && up1 == up2 {
		up1.left, up1.right = up1.right, up1.left
	} else {
		tree.replaceChild(up1, n1, n2)
		if up2 != n1 {
			tree.replaceChild(up2, n2, n1)
		}
	}

	// n2 moves up into the position of n1
	n2.up = up1
	switch n2 {
	case left1:
		n2.left = n1
		n2.right = right1
	case right1:
		n2.left = left1
		n2.right = n1
	default:
		n2.left = left1
		n2.right = right1
	}

	// n1 moves into the position of n2
	if up2 == n1 {
		n1.up = n2
	} else {
		n1.up = up2
	}
	n1.left = left2
	n1.right = right2

	// children's up links
	for _, c := range []*Node{n2.left, n2.right} {
		if nil != c {
			c.up = n2
		}
	}
	for _, c := range []*Node{n1.left, n1.right} {
		if nil != c {
			c.up = n1
		}
	}
}

// point the parent (or the root) at a replacement child
func (tree *Tree) replaceChild(up *Node, old *Node, replacement *Node) {
	switch {
	case nil == up:
		tree.root = replacement
	case old == up.left:
		up.left = replacement
	default:
		up.right = replacement
	}
}

// swap two nodes, including their balance factors
func (tree *Tree) nodeSwap(n1 *Node, n2 *Node) {
	tree.swapPositions(n1, n2)
	n1.balance, n2.balance = n2.balance, n1.balance
}
