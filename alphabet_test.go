package lzjs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphabet_ExcludesControlAndBackslash(t *testing.T) {
	banned := []rune{0x08, 0x0A, 0x0B, 0x0C, 0x0D, 0x5C}
	for _, b := range banned {
		_, ok := alphabetIndex[b]
		assert.False(t, ok, "alphabet must not contain %q", b)
	}
	for _, c := range alphabet {
		assert.Less(t, int(c), 0x7F)
	}
}

func TestAlphabet_DerivedConstants(t *testing.T) {
	assert.Equal(t, 121, len(alphabet))
	assert.Equal(t, 59, tableDiff)
	assert.Equal(t, 120, bufferMax)
	assert.Equal(t, 1024, windowMax)
	assert.Equal(t, 304, windowBufferMax)
	assert.Equal(t, 11, latinCharMax)
	assert.Equal(t, 132, latinBufferMax)
	assert.Equal(t, 40, unicodeCharMax)
	assert.Equal(t, 1640, unicodeBufferMax)
}

func TestPrelude_IsWindowMaxLong(t *testing.T) {
	assert.Len(t, prelude, windowMax)
}

func TestPrelude_FirstSixteenCharsAreSpaces(t *testing.T) {
	for i := 0; i < 16; i++ {
		assert.Equal(t, ' ', prelude[i], "prelude[%d]", i)
	}
}

func TestPrelude_IsDeterministicAcrossBuilds(t *testing.T) {
	assert.Equal(t, prelude, buildPrelude())
}
