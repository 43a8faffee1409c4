// SPDX-License-Identifier: MIT
// Copyright (c) 2026 txtzip

package lzjs

// decompressLZSS reverses compressLZSS (§4.3). Input symbols not in the
// alphabet are silently skipped, which lets a caller wrap a payload in line
// breaks (§9 "Permissive decode"); space and tab are alphabet members and
// are decoded as symbols, not skipped. Truncated multi-symbol
// opcodes simply stop producing output; no error is ever returned, per §7.
func decompressLZSS(compressed []rune) []rune {
	out := make([]rune, len(prelude), len(prelude)+len(compressed))
	copy(out, prelude)

	pageIndex := -1 // nullable "index" state; -1 means unset
	unicodeMode := false

	i := 0
	next := func() (int, bool) {
		for i < len(compressed) {
			s, isMember := alphabetIndex[compressed[i]]
			i++
			if isMember {
				return s, true
			}
		}
		return 0, false
	}

	for {
		s, okSym := next()
		if !okSym {
			break
		}

		switch {
		case s < decodeMax:
			if !unicodeMode {
				if pageIndex < 0 {
					break
				}
				out = append(out, rune(pageIndex*unicodeCharMax+s))
				break
			}
			c3, ok := next()
			if !ok {
				return finalizeLZSS(out)
			}
			if pageIndex < 0 {
				break
			}
			out = append(out, rune(c3*unicodeCharMax+s+unicodeBufferMax*pageIndex))

		case s >= decodeMax && s < latinDecodeMax:
			pageIndex = s - decodeMax
			unicodeMode = false

		case s == charStart:
			c2, ok := next()
			if !ok {
				return finalizeLZSS(out)
			}
			pageIndex = c2 - 5
			unicodeMode = true

		case s >= compressStart && s < compressIndex:
			b, ok := next()
			if !ok {
				return finalizeLZSS(out)
			}

			var length, pos int
			if s < compressFixedStart {
				ln, ok := next()
				if !ok {
					return finalizeLZSS(out)
				}
				length = ln
				pos = (s-compressStart)*bufferMax + b
			} else {
				length = 2
				pos = (s-compressFixedStart)*bufferMax + b
			}

			out = appendBackRef(out, pos, length)
			pageIndex = -1

		default:
			// Reserved/unused region: never emitted by the compressor,
			// ignored here so a malformed stream cannot desynchronize
			// the whole decode.
		}
	}

	return finalizeLZSS(out)
}

// appendBackRef implements the §4.3 / §9 run-length-via-self-overlap copy:
// take the last windowBufferMax code points of out, then the last pos of
// those, then repeat that pos-length tail until it reaches length
// characters (truncating to exactly length), and append the result.
func appendBackRef(out []rune, pos, length int) []rune {
	tail := out
	if len(tail) > windowBufferMax {
		tail = tail[len(tail)-windowBufferMax:]
	}
	if pos > len(tail) {
		pos = len(tail)
	}
	sub := tail[len(tail)-pos:]
	if pos == 0 {
		return out
	}

	result := make([]rune, length)
	for i := 0; i < length; i++ {
		result[i] = sub[i%pos]
	}
	return append(out, result...)
}

// finalizeLZSS drops the windowMax-length prelude and returns the rest.
func finalizeLZSS(out []rune) []rune {
	if len(out) < windowMax {
		return nil
	}
	return out[windowMax:]
}
