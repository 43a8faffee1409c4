// SPDX-License-Identifier: MIT
// Copyright (c) 2026 txtzip

// Command lzjsc is a CLI front end for the lzjs dispatcher: compress,
// decompress, or round-trip one or more files (or stdin).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
