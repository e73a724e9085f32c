// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific item from the tree
//
// returns the value that was stored and true, or nil and false if the
// key was not present
func (tree *Tree) Remove(key Item) (interface{}, bool) {
	q := tree.findNode(key)
	if nil == q {
		return nil, false
	}

	// two children: take the predecessor's place so that q has at
	// most one child
	if nil != q.left && nil != q.right {
		tree.nodeSwap(q, q.Prev())
	}

	up := q.up
	child := q.left
	if nil == child {
		child = q.right
	}
	if nil != child {
		child.up = up
	}

	delta := 0
	switch {
	case nil == up:
		tree.root = child
	case q == up.left:
		up.left = child
		delta = +1 // left sub-tree has shrunk
	default:
		up.right = child
		delta = -1 // right sub-tree has shrunk
	}

	value := q.value
	freeNode(q)
	tree.count -= 1

	tree.removeBalance(up, delta)
	return value, true
}

// internal: walk up from the parent of a removed node
//
// unlike insert this may need a rotation at every level
func (tree *Tree) removeBalance(p *Node, delta int) {
	for nil != p {
		p.balance += delta

		switch p.balance {
		case -1, +1: // height unchanged
			return
		case 0: // height decreased by one
		default:
			p = tree.rebalance(p)
			if 0 != p.balance {
				return
			}
		}

		up := p.up
		if nil == up {
			return
		}
		if p == up.left {
			delta = +1
		} else {
			delta = -1
		}
		p = up
	}
}
