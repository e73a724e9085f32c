// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrBalanceMismatch       = InvalidError("balance does not match sub-tree heights")
	ErrBalanceRange          = InvalidError("balance is out of range")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrCountMismatch         = InvalidError("node count mismatch")
	ErrInvalidKey            = InvalidError("invalid key")
	ErrInvalidKeyType        = InvalidError("invalid key type")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidWorkload       = InvalidError("invalid workload")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrKeyOrder              = InvalidError("keys are not in order")
	ErrMissingKey            = InvalidError("missing key")
	ErrMissingScript         = InvalidError("missing script file")
	ErrNotADirectory         = InvalidError("not a directory")
	ErrNotPlainFileName      = InvalidError("not a plain file name")
	ErrParentLink            = InvalidError("parent link is inconsistent")
	ErrScriptFileNotFound    = NotFoundError("script file not found")
	ErrScriptRemoved         = ProcessError("script file was removed")
	ErrTooManyArguments      = InvalidError("too many arguments")
	ErrUnknownStatement      = InvalidError("unknown statement")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, including wrapped errors
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
