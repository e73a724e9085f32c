// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with parent pointers, built as
// a balancing layer over a plain ordered binary tree
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The ordered layer provides the node links, key search, the
// in-order predecessor and a position swap that exchanges the links
// of two nodes.  The balancing layer keeps a balance factor of
// height(right) - height(left) in each node and repairs it with
// rotations after every insert and remove.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.  Remove does not copy
// data between nodes, a node with two children is swapped with its
// predecessor first, so every node other than the removed one keeps
// its address.
package avl
