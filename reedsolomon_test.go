package qrcode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReedSolomonComputeDivisor(t *testing.T) {
	var generator []byte

	generator = reedSolomonComputeDivisor(1)
	assert.True(t, generator[0] == 0x01)

	generator = reedSolomonComputeDivisor(2)
	assert.True(t, generator[0] == 0x03)
	assert.True(t, generator[1] == 0x02)

	generator = reedSolomonComputeDivisor(5)
	assert.True(t, generator[0] == 0x1F)
	assert.True(t, generator[1] == 0xC6)
	assert.True(t, generator[2] == 0x3F)
	assert.True(t, generator[3] == 0x93)
	assert.True(t, generator[4] == 0x74)

	generator = reedSolomonComputeDivisor(30)
	assert.True(t, generator[0] == 0xD4)
	assert.True(t, generator[1] == 0xF6)
	assert.True(t, generator[5] == 0xC0)
	assert.True(t, generator[12] == 0x16)
	assert.True(t, generator[13] == 0xD9)
	assert.True(t, generator[20] == 0x12)
	assert.True(t, generator[27] == 0x6A)
	assert.True(t, generator[29] == 0x96)
}

func TestReedSolomonComputeRemainder(t *testing.T) {
	{
		data := []byte{0}
		generator := reedSolomonComputeDivisor(3)
		remainder := reedSolomonComputeRemainder(data, generator)
		assert.Equal(t, 3, len(remainder))
		for i := 0; i < 3; i++ {
			assert.Equal(t, byte(0), remainder[i])
		}
	}
	{
		data := []byte{0, 1}
		generator := reedSolomonComputeDivisor(3)
		remainder := reedSolomonComputeRemainder(data, generator)
		assert.Equal(t, 3, len(remainder))
		for i := 0; i < 3; i++ {
			assert.Equal(t, generator[i], remainder[i])
		}
	}
	{
		data := []byte{0x03, 0x3A, 0x60, 0x12, 0xC7}
		generator := reedSolomonComputeDivisor(5)
		remainder := reedSolomonComputeRemainder(data, generator)
		assert.Equal(t, 5, len(remainder))
		expected := []byte{0xCB, 0x36, 0x16, 0xFA, 0x9D}
		for i := 0; i < 3; i++ {
			assert.Equal(t, expected[i], remainder[i])
		}
	}
}

func TestReedSolomonMultiply(t *testing.T) {
	cases := [][3]byte{
		{0x00, 0x00, 0x00},
		{0x01, 0x01, 0x01},
		{0x02, 0x02, 0x04},
		{0x00, 0x6E, 0x00},
		{0xB2, 0xDD, 0xE6},
		{0x41, 0x11, 0x25},
		{0xB0, 0x1F, 0x11},
		{0x05, 0x75, 0xBC},
		{0x52, 0xB5, 0xAE},
		{0xA8, 0x20, 0xA4},
		{0x0E, 0x44, 0x9F},
		{0xD4, 0x13, 0xA0},
		{0x31, 0x10, 0x37},
		{0x6C, 0x58, 0xCB},
		{0xB6, 0x75, 0x3E},
		{0xFF, 0xFF, 0xE2},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestReedSolomonMultiply %v", tc), func(t *testing.T) {
			assert.Equal(t, tc[2], reedSolomonMultiply(tc[0], tc[1]))
		})
	}
}

func TestReedSolomonDivisorsCachedForEveryDegree(t *testing.T) {
	// init already populated the cache for every distinct ECC-per-block
	// degree named in the version table; this confirms none was missed.
	for v := MinVersion; v <= MaxVersion; v++ {
		for i := 0; i < 4; i++ {
			degree := versionTable[v][i].ECCSymbolsPerBlock
			_, ok := reedSolomonDivisors[degree]
			assert.True(t, ok, "missing divisor for degree %d", degree)
		}
	}
}
