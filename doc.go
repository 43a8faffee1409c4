// SPDX-License-Identifier: MIT
// Copyright (c) 2026 txtzip

/*
Package lzjs implements a text-in/text-out compression codec for arbitrary
Basic Multilingual Plane strings. It combines a sliding-window LZSS variant,
an LZW variant, and a heuristic dispatcher that picks whichever wins on a
given input, falling back to a no-compression passthrough when neither does.

Every compressed payload begins with a one-character tag identifying the
algorithm that produced it: S for LZSS, W for LZW over the raw ASCII input,
U for LZW over a UTF-8 transcode of the input, or N for passthrough.

# Compress and Decompress

	out, err := lzjs.Compress(input, nil)
	back := lzjs.Decompress(out)

Compress always succeeds unless DispatchOptions.Encoding is set to something
other than "utf-8"; Decompress is permissive and returns its input
unchanged if the leading tag is not recognized.

# Base64

	packed, err := lzjs.CompressToBase64(input, nil)
	back, err := lzjs.DecompressFromBase64(packed)

# Budgets

CompressOptions.MaxBytes bounds how many bytes a single algorithm may spend;
exceeding it makes that algorithm fail soft so the dispatcher can fall back
rather than return an error. The public Compress/CompressToBase64 entry
points use the input's own UTF-8 byte length as an implicit budget,
matching the dispatcher contract in §4.5, unless DispatchOptions.MaxBytes
is set to a positive value, which replaces it.
*/
package lzjs
