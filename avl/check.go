// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avlbst/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return nil == checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) error {
	if nil == p {
		return nil
	}
	if p.up != up {
		return fmt.Errorf("%w: at node: %v", fault.ErrParentLink, p.key)
	}
	if err := checkup(p.left, p); nil != err {
		return err
	}
	return checkup(p.right, p)
}

// Check - verify the complete tree
//
// the up pointers, strictly increasing key order, each stored balance
// against the actual sub-tree heights, the at rest balance range and
// the node count
func (tree *Tree) Check() error {
	if err := checkup(tree.root, nil); nil != err {
		return err
	}

	c := checker{}
	if _, err := c.walk(tree.root); nil != err {
		return err
	}
	if c.count != tree.count {
		return fmt.Errorf("%w: actual: %d  expected: %d", fault.ErrCountMismatch, c.count, tree.count)
	}
	return nil
}

// Height - number of levels in the tree, zero if empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

func height(p *Node) int {
	if nil == p {
		return 0
	}
	return 1 + max(height(p.left), height(p.right))
}

type checker struct {
	previous *Node
	count    int
}

// in-order walk returning the height of the sub-tree
func (c *checker) walk(p *Node) (int, error) {
	if nil == p {
		return 0, nil
	}

	lh, err := c.walk(p.left)
	if nil != err {
		return 0, err
	}

	if nil != c.previous && c.previous.key.Compare(p.key) >= 0 {
		return 0, fmt.Errorf("%w: %v is not before: %v", fault.ErrKeyOrder, c.previous.key, p.key)
	}
	c.previous = p
	c.count += 1

	rh, err := c.walk(p.right)
	if nil != err {
		return 0, err
	}

	if rh-lh != p.balance {
		return 0, fmt.Errorf("%w: at node: %v  stored: %d  actual: %d", fault.ErrBalanceMismatch, p.key, p.balance, rh-lh)
	}
	if p.balance < -1 || p.balance > 1 {
		return 0, fmt.Errorf("%w: at node: %v  balance: %d", fault.ErrBalanceRange, p.key, p.balance)
	}
	return 1 + max(lh, rh), nil
}
