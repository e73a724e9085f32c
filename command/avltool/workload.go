// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlbst/counter"
	"github.com/bitmark-inc/avlbst/fault"
)

const (
	workloadLoggerPrefix = "workload"
)

// WorkloadType - parameters for a random insert/remove run
type WorkloadType struct {
	Seed          int64 `gluamapper:"seed" json:"seed"`
	Operations    int   `gluamapper:"operations" json:"operations"`
	KeyRange      int   `gluamapper:"key_range" json:"key_range"`
	RemovePercent int   `gluamapper:"remove_percent" json:"remove_percent"`
	CheckEvery    int   `gluamapper:"check_every" json:"check_every"`
}

// WorkloadStatistics - totals from a workload run
type WorkloadStatistics struct {
	Inserts counter.Counter
	Updates counter.Counter
	Removes counter.Counter
	Misses  counter.Counter
	Checks  counter.Counter
}

func (w WorkloadType) validate() error {
	if w.Operations < 0 || w.KeyRange <= 0 || w.CheckEvery < 0 {
		return fault.ErrInvalidWorkload
	}
	if w.RemovePercent < 0 || w.RemovePercent > 100 {
		return fault.ErrInvalidWorkload
	}
	return nil
}

// runWorkload - apply a seeded random sequence of inserts and removes
//
// the store is checked every CheckEvery operations and once more at
// the end, the first failing check stops the run
func runWorkload(log *logger.L, store Store, parseKey KeyParser, w WorkloadType) (*WorkloadStatistics, error) {
	if err := w.validate(); nil != err {
		return nil, err
	}

	log.Infof("workload: %+v", w)

	stats := &WorkloadStatistics{}
	rng := rand.New(rand.NewSource(w.Seed))

	for i := 1; i <= w.Operations; i += 1 {
		key, err := parseKey(strconv.Itoa(rng.Intn(w.KeyRange)))
		if nil != err {
			return stats, err
		}

		if rng.Intn(100) < w.RemovePercent {
			if _, found := store.Remove(key); found {
				stats.Removes.Increment()
			} else {
				stats.Misses.Increment()
			}
		} else {
			if store.Insert(key, i) {
				stats.Inserts.Increment()
			} else {
				stats.Updates.Increment()
			}
		}

		if w.CheckEvery > 0 && 0 == i%w.CheckEvery {
			stats.Checks.Increment()
			if err := store.Check(); nil != err {
				log.Errorf("operation: %d  check error: %s", i, err)
				return stats, fmt.Errorf("operation: %d: %w", i, err)
			}
		}
	}

	stats.Checks.Increment()
	if err := store.Check(); nil != err {
		log.Errorf("final check error: %s", err)
		return stats, err
	}

	log.Infof("inserts: %d  updates: %d  removes: %d  misses: %d  count: %d",
		stats.Inserts.Uint64(),
		stats.Updates.Uint64(),
		stats.Removes.Uint64(),
		stats.Misses.Uint64(),
		store.Count(),
	)
	return stats, nil
}

// write a summary of the run
func (stats *WorkloadStatistics) print(w io.Writer, store Store) {
	fmt.Fprintf(w, "inserts:     %d\n", stats.Inserts.Uint64())
	fmt.Fprintf(w, "updates:     %d\n", stats.Updates.Uint64())
	fmt.Fprintf(w, "removes:     %d\n", stats.Removes.Uint64())
	fmt.Fprintf(w, "misses:      %d\n", stats.Misses.Uint64())
	fmt.Fprintf(w, "checks:      %d\n", stats.Checks.Uint64())
	fmt.Fprintf(w, "count:       %d\n", store.Count())
	fmt.Fprintf(w, "equal-paths: %t\n", store.EqualLeafDepth())
}
