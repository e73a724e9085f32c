// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/bitmark-inc/avlbst/avl"
)

//go:generate mockgen -source=store.go -destination=mocks/store.go -package=mocks

// Store - the tree operations used by the script runner and the
// workload generator
type Store interface {
	Insert(key avl.Item, value interface{}) bool
	Remove(key avl.Item) (interface{}, bool)
	Get(key avl.Item) (interface{}, error)
	Count() int
	Check() error
	EqualLeafDepth() bool
	Print(w io.Writer, printData bool) int
}

// StoreFactory - create a new empty store
type StoreFactory func() Store

// the normal factory
func newTreeStore() Store {
	return avl.New()
}
