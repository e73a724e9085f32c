// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// EqualLeafDepth - true if all leaves of the tree are at the same depth
func (tree *Tree) EqualLeafDepth() bool {
	return EqualLeafDepth(tree.root)
}

// EqualLeafDepth - true if every leaf below root is at the same depth,
// an empty tree counts as equal
func EqualLeafDepth(root *Node) bool {
	_, ok := leafDepth(root)
	return ok
}

// internal: common leaf depth of a sub-tree counted in nodes
//
// ok is false as soon as two leaves at different depths are seen
func leafDepth(p *Node) (depth int, ok bool) {
	if nil == p {
		return 0, true
	}

	switch {
	case nil == p.left && nil == p.right:
		return 1, true
	case nil == p.left:
		depth, ok = leafDepth(p.right)
	case nil == p.right:
		depth, ok = leafDepth(p.left)
	default:
		ld, lok := leafDepth(p.left)
		if !lok {
			return 0, false
		}
		rd, rok := leafDepth(p.right)
		if !rok || ld != rd {
			return 0, false
		}
		depth, ok = ld, true
	}
	if !ok {
		return 0, false
	}
	return depth + 1, true
}
