// SPDX-License-Identifier: MIT
// Copyright (c) 2026 txtzip

package lzjs

import "strings"

// lzwEncode implements the classic string-keyed LZW variant of §4.4: codes
// are emitted as single runes whose numeric value is the dictionary code,
// not as a variable-bit-width bitstream. opts.CodeStart/CodeMax bound the
// dictionary; maxBytes (0 = unbounded) charges 1 byte per literal
// character emitted and codeBytes (2 until code reaches 0x800, else 3) per
// dictionary code, matching §4.4's byte-budget rule.
func lzwEncode(units []rune, opts LZWOptions, maxBytes int) (string, error) {
	if len(units) == 0 {
		return "", nil
	}

	dict := make(map[string]rune)
	code := rune(opts.CodeStart + 1)

	var out strings.Builder
	byteCount := 0

	charge := func(n int) error {
		byteCount += n
		if maxBytes > 0 && byteCount > maxBytes {
			return errBudgetExceeded
		}
		return nil
	}

	emit := func(w string) error {
		if r := []rune(w); len(r) == 1 {
			out.WriteRune(r[0])
			return charge(1)
		}
		c, ok := dict[w]
		if !ok {
			// Unreachable for a well-formed run: every multi-character w
			// was built from a dictionary hit, so it is already keyed.
			return nil
		}
		codeBytes := 2
		if int(c) >= 0x800 {
			codeBytes = 3
		}
		out.WriteRune(c)
		return charge(codeBytes)
	}

	w := string(units[0])
	for _, r := range units[1:] {
		wc := w + string(r)
		if _, ok := dict[wc]; ok {
			w = wc
			continue
		}

		if err := emit(w); err != nil {
			return "", err
		}

		if int(code) <= opts.CodeMax {
			dict[wc] = code
			code++
		}
		w = string(r)
	}

	if err := emit(w); err != nil {
		return "", err
	}

	return out.String(), nil
}

// lzwDecode reverses lzwEncode. codeMax here is the LZW-internal cap
// distinguishing literal code points from dictionary codes (== the
// configured codeStart, per §4.4's note); it is never grown during decode.
func lzwDecode(units []rune, opts LZWOptions) []rune {
	if len(units) == 0 {
		return nil
	}

	dict := make(map[rune]string)
	code := rune(opts.CodeStart + 1)
	innerMax := rune(opts.CodeStart)

	out := make([]rune, 0, len(units))
	prev := string(units[0])
	out = append(out, units[0])

	for _, c := range units[1:] {
		var buffer string
		switch {
		case c <= innerMax:
			buffer = string(c)
		case dict[c] != "":
			buffer = dict[c]
		default:
			buffer = prev + string([]rune(prev)[0])
		}

		out = append(out, []rune(buffer)...)

		ch := []rune(buffer)[0]
		dict[code] = prev + string(ch)
		code++
		prev = buffer
	}

	return out
}
