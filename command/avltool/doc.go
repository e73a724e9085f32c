// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Exercise program for the balanced tree
//
// This program runs statement scripts against an empty tree, applies
// a random insert and remove workload checking the tree as it goes,
// or watches a script file and runs it again whenever it is saved.
//
// A sample configuration file:
//
//   return {
//     data_directory = ".",
//     key_type = "integer",
//     print_values = true,
//     workload = {
//       seed = 1,
//       operations = 10000,
//       key_range = 1000,
//       remove_percent = 40,
//       check_every = 100,
//     },
//     logging = {
//       directory = "log",
//       file = "avltool.log",
//       size = 1048576,
//       count = 10,
//       console = false,
//       levels = {
//         DEFAULT = "info",
//       },
//     },
//   }
package main
