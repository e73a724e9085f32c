// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlbst/avl"
	"github.com/bitmark-inc/avlbst/fault"
)

const (
	scriptLoggerPrefix = "script"
)

// script statements
const (
	statementInsert     = "insert"
	statementRemove     = "remove"
	statementGet        = "get"
	statementCheck      = "check"
	statementPrint      = "print"
	statementEqualPaths = "equal-paths"
	statementCount      = "count"
	statementClear      = "clear"
)

// ScriptRunner - execute tree scripts against a store
type ScriptRunner struct {
	log         *logger.L
	newStore    StoreFactory
	store       Store
	parseKey    KeyParser
	out         io.Writer
	printValues bool
}

// create a runner, every script starts with a fresh store
func newScriptRunner(log *logger.L, newStore StoreFactory, parseKey KeyParser, out io.Writer, printValues bool) *ScriptRunner {
	return &ScriptRunner{
		log:         log,
		newStore:    newStore,
		parseKey:    parseKey,
		out:         out,
		printValues: printValues,
	}
}

// RunFile - open and run a script file on a fresh store
func (r *ScriptRunner) RunFile(fileName string) error {
	f, err := os.Open(fileName)
	if os.IsNotExist(err) {
		return fmt.Errorf("script: %q  error: %w", fileName, fault.ErrScriptFileNotFound)
	}
	if nil != err {
		return err
	}
	defer f.Close()

	return r.Run(fileName, f)
}

// Run - execute statements from a reader on a fresh store
//
// stops at the first failing statement, the error carries the
// name and line number
func (r *ScriptRunner) Run(name string, rd io.Reader) error {
	r.store = r.newStore()
	r.log.Infof("run: %s", name)

	scanner := bufio.NewScanner(rd)
	lineNumber := 0
	statements := 0
	for scanner.Scan() {
		lineNumber += 1

		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if 0 == len(fields) {
			continue
		}

		statements += 1
		if err := r.execute(fields); nil != err {
			r.log.Errorf("%s:%d: %q  error: %s", name, lineNumber, line, err)
			return fmt.Errorf("%s:%d: %w", name, lineNumber, err)
		}
	}
	if err := scanner.Err(); nil != err {
		return err
	}

	r.log.Infof("finished: %s  statements: %d  count: %d", name, statements, r.store.Count())
	return nil
}

// execute a single statement
func (r *ScriptRunner) execute(fields []string) error {
	statement := strings.ToLower(fields[0])
	arguments := fields[1:]

	switch statement {

	case statementInsert:
		if 0 == len(arguments) {
			return fault.ErrMissingKey
		}
		key, err := r.parseKey(arguments[0])
		if nil != err {
			return err
		}
		value := arguments[0]
		if len(arguments) > 1 {
			value = strings.Join(arguments[1:], " ")
		}
		added := r.store.Insert(key, value)
		r.log.Debugf("insert: %v  added: %t", key, added)

	case statementRemove:
		key, err := r.singleKey(arguments)
		if nil != err {
			return err
		}
		value, found := r.store.Remove(key)
		r.log.Debugf("remove: %v  found: %t  value: %v", key, found, value)

	case statementGet:
		key, err := r.singleKey(arguments)
		if nil != err {
			return err
		}
		value, err := r.store.Get(key)
		if fault.IsErrNotFound(err) {
			fmt.Fprintf(r.out, "%v: not found\n", key)
			return nil
		}
		if nil != err {
			return err
		}
		fmt.Fprintf(r.out, "%v → %v\n", key, value)

	case statementCheck:
		if len(arguments) > 0 {
			return fault.ErrTooManyArguments
		}
		if err := r.store.Check(); nil != err {
			return err
		}
		fmt.Fprintf(r.out, "check: ok\n")

	case statementPrint:
		if len(arguments) > 0 {
			return fault.ErrTooManyArguments
		}
		if 0 == r.store.Print(r.out, r.printValues) {
			fmt.Fprintf(r.out, "(empty)\n")
		}

	case statementEqualPaths:
		if len(arguments) > 0 {
			return fault.ErrTooManyArguments
		}
		fmt.Fprintf(r.out, "equal-paths: %t\n", r.store.EqualLeafDepth())

	case statementCount:
		if len(arguments) > 0 {
			return fault.ErrTooManyArguments
		}
		fmt.Fprintf(r.out, "count: %d\n", r.store.Count())

	case statementClear:
		if len(arguments) > 0 {
			return fault.ErrTooManyArguments
		}
		r.store = r.newStore()

	default:
		return fmt.Errorf("statement: %q  error: %w", statement, fault.ErrUnknownStatement)
	}
	return nil
}

// statements that take exactly one key
func (r *ScriptRunner) singleKey(arguments []string) (avl.Item, error) {
	switch len(arguments) {
	case 0:
		return nil, fault.ErrMissingKey
	case 1:
		return r.parseKey(arguments[0])
	default:
		return nil, fault.ErrTooManyArguments
	}
}
