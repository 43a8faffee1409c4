// SPDX-License-Identifier: MIT
// Copyright (c) 2026 txtzip

package lzjs

// prelude is the fixed 1024-code-point sliding-window seed shared by the
// LZSS compressor and decompressor (§3 "Sliding window"). Both sides build
// it from the same deterministic construction, so a match encoded against
// the seed on one side always decodes against the identical seed on the
// other.
var prelude = buildPrelude()

// descLetters is the lowercase run z,y,x,...,q (letter index 25 down to 16)
// used as the second half of every prelude chunk.
var descLetters = buildDescLetters()

func buildDescLetters() []rune {
	const from, to = 25, 16 // z down to q, inclusive
	letters := make([]rune, 0, from-to+1)
	for li := from; li >= to; li-- {
		letters = append(letters, rune('a'+li))
	}
	return letters
}

// buildPrelude lays down " c c2" chunks (c ascending a..z, c2 descending
// z..q) until windowMax code points have nearly accumulated, then left-pads
// the remainder with spaces so the total is exactly windowMax long. The pad
// reserve is fixed at 16 so the prelude always begins with 16 literal space
// characters, a property both sides can check cheaply (§8).
func buildPrelude() []rune {
	const padReserve = 16
	target := windowMax - padReserve

	body := make([]rune, 0, target)
outer:
	for c := rune('a'); c <= 'z'; c++ {
		for _, c2 := range descLetters {
			if len(body)+4 > target {
				break outer
			}
			body = append(body, ' ', c, ' ', c2)
		}
	}

	out := make([]rune, 0, windowMax)
	for i := len(body); i < target; i++ {
		out = append(out, ' ')
	}
	for i := 0; i < padReserve; i++ {
		out = append(out, ' ')
	}
	out = append(out, body...)
	return out
}
