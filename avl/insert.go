// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the value
// of an existing key
//
// returns true if a node was added
func (tree *Tree) Insert(key Item, value interface{}) bool {
	if nil == tree.root {
		tree.root = newNode(key, value, nil)
		tree.count += 1
		return true
	}

	var up *Node
	p := tree.root
	side := 0
	for nil != p {
		up = p
		side = p.key.Compare(key)
		switch side {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default: // existing key: no change to shape
			p.value = value
			return false
		}
	}

	n := newNode(key, value, up)
	if +1 == side {
		up.left = n
	} else {
		up.right = n
	}
	tree.count += 1

	tree.insertBalance(n)
	return true
}

// internal: walk up from a new leaf adjusting balances
//
// stops when a sub-tree height is unchanged or after one rebalance
func (tree *Tree) insertBalance(child *Node) {
	for p := child.up; nil != p; child, p = p, p.up {
		if child == p.left {
			p.balance -= 1
		} else {
			p.balance += 1
		}

		switch p.balance {
		case 0:
			return
		case -1, +1:
			continue
		default:
			tree.rebalance(p)
			return
		}
	}
}
