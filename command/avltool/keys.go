// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avlbst/avl"
	"github.com/bitmark-inc/avlbst/fault"
)

// the supported key types
const (
	keyTypeInteger = "integer"
	keyTypeString  = "string"
)

type integerKey int64

func (k integerKey) Compare(x interface{}) int {
	j := x.(integerKey)
	switch {
	case k < j:
		return -1
	case k > j:
		return +1
	default:
		return 0
	}
}

func (k integerKey) String() string {
	return strconv.FormatInt(int64(k), 10)
}

type stringKey string

func (k stringKey) Compare(x interface{}) int {
	return strings.Compare(string(k), string(x.(stringKey)))
}

func (k stringKey) String() string {
	return string(k)
}

// KeyParser - convert script text into a key
type KeyParser func(s string) (avl.Item, error)

// select the key parser for the configured key type
func newKeyParser(keyType string) (KeyParser, error) {
	switch strings.ToLower(keyType) {
	case keyTypeInteger:
		return parseIntegerKey, nil
	case keyTypeString:
		return parseStringKey, nil
	default:
		return nil, fmt.Errorf("key type: %q  error: %w", keyType, fault.ErrInvalidKeyType)
	}
}

func parseIntegerKey(s string) (avl.Item, error) {
	n, err := strconv.ParseInt(s, 0, 64)
	if nil != err {
		return nil, fmt.Errorf("key: %q  error: %w", s, fault.ErrInvalidKey)
	}
	return integerKey(n), nil
}

func parseStringKey(s string) (avl.Item, error) {
	if "" == s {
		return nil, fault.ErrMissingKey
	}
	return stringKey(s), nil
}
