// SPDX-License-Identifier: MIT
// Copyright (c) 2026 txtzip

package lzjs

// lzssCompressor holds state for one LZSS compress call: the prelude-primed
// input, the read cursor, the page-coalescing state, and the emitted
// alphabet-index output (§3 "LZSS compressor state").
type lzssCompressor struct {
	data      []rune // prelude + input, never mutated after init
	offset    int    // read cursor into data
	lastIndex int    // -1, or the index-region opcode of the most recent literal
	out       []rune // emitted alphabet characters
	maxBytes  int    // 0 = unbounded; every emitted alphabet char costs exactly 1 byte
}

// compressLZSS runs the LZSS compressor over units and returns the emitted
// string, or errBudgetExceeded if opts.MaxBytes is set and exceeded.
func compressLZSS(units []rune, opts *CompressOptions) (string, error) {
	c := &lzssCompressor{
		lastIndex: -1,
	}
	c.data = make([]rune, 0, windowMax+len(units))
	c.data = append(c.data, prelude...)
	c.data = append(c.data, units...)
	c.offset = windowMax

	if opts != nil {
		c.maxBytes = opts.MaxBytes
	}

	if err := c.run(); err != nil {
		return "", err
	}

	out := string(c.out)
	if opts != nil {
		if opts.OnData != nil {
			opts.OnData(out)
		}
		if opts.OnEnd != nil {
			opts.OnEnd()
		}
	}
	return out, nil
}

func (c *lzssCompressor) run() error {
	for c.offset < len(c.data) {
		length, distance, ok := findLongestMatch(c.data, c.offset)
		if ok {
			c.emitMatch(length, distance)
			c.offset += length
			c.lastIndex = -1
		} else {
			c.emitLiteral(c.data[c.offset])
			c.offset++
		}

		if c.maxBytes > 0 && len(c.out) > c.maxBytes {
			return errBudgetExceeded
		}
	}
	return nil
}

// emit appends the alphabet character at index idx to the output.
func (c *lzssCompressor) emit(idx int) {
	c.out = append(c.out, alphabet[idx])
}

// emitLiteral encodes one code point as a LITERAL token (§4.2), coalescing
// consecutive literals on the same "page" into a single payload symbol.
func (c *lzssCompressor) emitLiteral(cp rune) {
	v := int(cp)

	if v < latinBufferMax {
		c1 := v % unicodeCharMax
		c2 := v / unicodeCharMax
		index := latinIndex + c2

		if c.lastIndex != index {
			c.emit(index - latinIndexStart)
		}
		c.emit(c1)
		c.lastIndex = index
		return
	}

	c2 := v / unicodeBufferMax
	c1 := v % unicodeBufferMax
	c3 := c1 % unicodeCharMax
	c4 := c1 / unicodeCharMax
	index := unicodeIndex + c2

	if c.lastIndex != index {
		c.emit(charStart)
		c.emit(index - alphabetLen)
	}
	c.emit(c3)
	c.emit(c4)
	c.lastIndex = index
}

// emitMatch encodes a back-reference of the given length and distance
// (§4.2 MATCH emission). length is always >= 2 and distance is always in
// [1, windowBufferMax], guaranteed by findLongestMatch.
func (c *lzssCompressor) emitMatch(length, distance int) {
	c1 := distance % bufferMax
	c2 := distance / bufferMax

	if length == 2 {
		c.emit(compressFixedStart + c2)
		c.emit(c1)
		return
	}

	c.emit(compressStart + c2)
	c.emit(c1)
	c.emit(length)
}

// findLongestMatch searches data[offset-windowBufferMax:offset] for the
// longest run that also matches data[offset:], allowing the match to
// extend past offset via self-overlap (classic LZ77 run-length coding,
// §9 "Run-length via self-overlap"). Ties are broken toward the smallest
// distance (the most recent occurrence). This is the simplified
// longest-match rule §4.2 explicitly sanctions ("Implementations may adopt
// the simpler rule: accept any length >= 2").
func findLongestMatch(data []rune, offset int) (length, distance int, ok bool) {
	winStart := offset - windowBufferMax
	if winStart < 0 {
		winStart = 0
	}

	maxLen := bufferMax
	if remaining := len(data) - offset; remaining < maxLen {
		maxLen = remaining
	}
	if maxLen < 2 {
		return 0, 0, false
	}

	bestLen := 0
	bestDist := 0

	for start := winStart; start < offset; start++ {
		l := 0
		for l < maxLen && data[start+l] == data[offset+l] {
			l++
		}

		if l < 2 {
			continue
		}

		dist := offset - start
		if l > bestLen || (l == bestLen && dist < bestDist) {
			bestLen = l
			bestDist = dist
		}
	}

	if bestLen < 2 {
		return 0, 0, false
	}
	return bestLen, bestDist, true
}
