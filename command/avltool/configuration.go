// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlbst/configuration"
	"github.com/bitmark-inc/avlbst/fault"
	"github.com/bitmark-inc/avlbst/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file
	defaultKeyType       = keyTypeInteger

	defaultLogDirectory = "log"
	defaultLogFile      = "avltool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultSeed          = 1
	defaultOperations    = 10000
	defaultKeyRange      = 1000
	defaultRemovePercent = 40
	defaultCheckEvery    = 100

	defaultLogLevel = "info"
)

// Configuration - the decoded configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	KeyType       string               `gluamapper:"key_type" json:"key_type"`
	PrintValues   bool                 `gluamapper:"print_values" json:"print_values"`
	Workload      WorkloadType         `gluamapper:"workload" json:"workload"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		KeyType:       defaultKeyType,
		PrintValues:   true,

		Workload: WorkloadType{
			Seed:          defaultSeed,
			Operations:    defaultOperations,
			KeyRange:      defaultKeyRange,
			RemovePercent: defaultRemovePercent,
			CheckEvery:    defaultCheckEvery,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: defaultLogLevel,
			},
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.KeyType = strings.ToLower(options.KeyType)
	if _, err := newKeyParser(options.KeyType); nil != err {
		return nil, err
	}

	if err := options.Workload.validate(); nil != err {
		return nil, fmt.Errorf("workload: %+v  error: %w", options.Workload, err)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q  error: %w", options.DataDirectory, fault.ErrNotADirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q  error: %w", options.DataDirectory, fault.ErrNotADirectory)
	}

	// log file must be a simple name, it goes in the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("file: %q  error: %w", options.Logging.File, fault.ErrNotPlainFileName)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
