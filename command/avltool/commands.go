// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlbst/fault"
)

// setup command handler
//
// commands that do not need the configuration file, returns false
// if the command must be passed on to processConfigCommand
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {

	case "run", "workload", "watch":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  run SCRIPT...                       - run each script on an empty tree\n")
		fmt.Printf("  workload                            - random inserts and removes from the configuration\n")
		fmt.Printf("  watch SCRIPT                        - run the script again every time it is saved\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}
	return true
}

// configuration command handler
//
// commands that need the configuration, the error is returned to be
// reported by the caller
func processConfigCommand(log *logger.L, conf *Configuration, arguments []string, out io.Writer, stop <-chan os.Signal) error {

	parseKey, err := newKeyParser(conf.KeyType)
	if nil != err {
		return err
	}

	command := arguments[0]
	arguments = arguments[1:]

	switch command {

	case "run":
		if 0 == len(arguments) {
			return fault.ErrMissingScript
		}
		runner := newScriptRunner(logger.New(scriptLoggerPrefix), newTreeStore, parseKey, out, conf.PrintValues)
		for _, fileName := range arguments {
			if err := runner.RunFile(fileName); nil != err {
				return err
			}
		}

	case "workload":
		if 0 != len(arguments) {
			return fault.ErrTooManyArguments
		}
		store := newTreeStore()
		stats, err := runWorkload(logger.New(workloadLoggerPrefix), store, parseKey, conf.Workload)
		if nil != err {
			return err
		}
		stats.print(out, store)

	case "watch":
		switch len(arguments) {
		case 0:
			return fault.ErrMissingScript
		case 1:
		default:
			return fault.ErrTooManyArguments
		}
		fileName := arguments[0]

		channel := newWatcherChannel()
		watcher, err := newFileWatcher(fileName, logger.New(watcherLoggerPrefix), channel)
		if nil != err {
			return err
		}
		if err := watcher.Start(); nil != err {
			return err
		}
		defer watcher.Stop()

		runner := newScriptRunner(logger.New(scriptLoggerPrefix), newTreeStore, parseKey, out, conf.PrintValues)
		return watchLoop(log, runner, fileName, channel, stop, out)

	default:
		return fmt.Errorf("command: %q  error: %w", command, fault.ErrUnknownStatement)
	}

	return nil
}

// run the script, then again on every change notification
//
// a failing script is reported and the loop waits for the next
// change, removal of the script or a signal ends the loop
func watchLoop(log *logger.L, runner *ScriptRunner, fileName string, channel WatcherChannel, stop <-chan os.Signal, out io.Writer) error {
	for {
		if err := runner.RunFile(fileName); nil != err {
			log.Warnf("script: %s  error: %s", fileName, err)
			fmt.Fprintf(out, "error: %s\n", err)
		}

		select {
		case <-channel.change:
			log.Infof("script: %s changed", fileName)
		case <-channel.remove:
			log.Infof("script: %s removed", fileName)
			return fmt.Errorf("script: %q  error: %w", fileName, fault.ErrScriptRemoved)
		case sig := <-stop:
			log.Infof("received signal: %v", sig)
			return nil
		}
	}
}
