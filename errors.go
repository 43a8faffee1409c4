// SPDX-License-Identifier: MIT
// Copyright (c) 2026 txtzip

package lzjs

import "errors"

// Sentinel errors for the handful of genuine programmer-error paths. The
// public compress/decompress/base64 surface never returns BUDGET_EXCEEDED
// (§7): it is caught internally and turned into a dispatcher fallback. The
// only errors that surface are ErrUnsupportedEncoding from Compress and
// CompressToBase64, and an invalid-base64 error from DecompressFromBase64.
var (
	// errBudgetExceeded is the internal BUDGET_EXCEEDED signal (§7a). It is
	// returned only by the unexported compress helpers and is always
	// intercepted by the dispatcher, which falls back to the next
	// algorithm (or to the N passthrough tag).
	errBudgetExceeded = errors.New("lzjs: compression budget exceeded")

	// ErrInvalidCodeRange is returned when an LZW codeStart/codeMax pair
	// leaves no room for dictionary codes (codeMax <= codeStart).
	ErrInvalidCodeRange = errors.New("lzjs: codeMax must be greater than codeStart")

	// ErrUnsupportedEncoding is returned when DispatchOptions.Encoding is
	// set to anything other than the one supported value "utf-8" (§6).
	ErrUnsupportedEncoding = errors.New("lzjs: encoding must be \"utf-8\"")
)
