package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddECCAndInterleaveLength(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		for _, ecc := range []ECCLevel{Low, Medium, Quartile, High} {
			rec, err := lookupVersion(v, ecc)
			assert.NoError(t, err)

			data := make([]byte, rec.DataBits/8)
			result := addECCAndInterleave(data, rec)
			assert.Equal(t, numRawModules[v]/8, len(result))
		}
	}
}

func TestAddECCAndInterleaveSingleBlock(t *testing.T) {
	// Version 1-L has a single block, so interleaving is just data followed
	// by its own Reed-Solomon remainder.
	rec, err := lookupVersion(1, Low)
	assert.NoError(t, err)

	data := make([]byte, rec.DataBits/8)
	for i := range data {
		data[i] = byte(i)
	}
	result := addECCAndInterleave(data, rec)

	assert.Equal(t, data, result[:len(data)])
	ecc := reedSolomonComputeRemainder(data, reedSolomonDivisors[rec.ECCSymbolsPerBlock])
	assert.Equal(t, ecc, result[len(data):])
}
