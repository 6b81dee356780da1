package qrcode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawFunctionPatterns(t *testing.T) {
	for version := MinVersion; version <= MaxVersion; version++ {
		t.Run(fmt.Sprintf("v%d", version), func(t *testing.T) {
			q := newQRCode(version, Medium)
			q.drawFunctionPatterns()

			hasDark, hasLight := false, false
			for y := 0; y < q.Size; y++ {
				for x := 0; x < q.Size; x++ {
					if q.At(y, x) {
						hasDark = true
					} else {
						hasLight = true
					}
				}
			}
			assert.True(t, hasDark)
			assert.True(t, hasLight)
		})
	}
}

func TestDrawFormatBitsRoundTrips(t *testing.T) {
	// The two copies of the format word must always agree once written.
	for _, ecc := range []ECCLevel{Low, Medium, Quartile, High} {
		for m := Mask0; m <= Mask7; m++ {
			q := newQRCode(1, ecc)
			q.drawFunctionPatterns()
			q.drawFormatBits(m)

			var copyA, copyB int
			for i := 0; i <= 5; i++ {
				copyA |= bToInt(q.At(i, 8)) << i
			}
			copyA |= bToInt(q.At(7, 8)) << 6
			copyA |= bToInt(q.At(8, 8)) << 7
			copyA |= bToInt(q.At(8, 7)) << 8
			for i := 9; i < 15; i++ {
				copyA |= bToInt(q.At(8, 14-i)) << i
			}

			for i := 0; i < 8; i++ {
				copyB |= bToInt(q.At(8, q.Size-1-i)) << i
			}
			for i := 8; i < 15; i++ {
				copyB |= bToInt(q.At(q.Size-15+i, 8)) << i
			}

			assert.Equal(t, copyA, copyB)
		}
	}
}

func TestDrawVersionInfoOnlyAboveVersion6(t *testing.T) {
	q6 := newQRCode(6, Low)
	q6.drawFunctionPatterns()
	q7 := newQRCode(7, Low)
	q7.drawFunctionPatterns()

	// Version 7 reserves a 6x3 block near the bottom-left finder pattern
	// that version 6 leaves untouched.
	assert.False(t, q6.IsFunction(q6.Size-9, 2))
	assert.True(t, q7.IsFunction(q7.Size-9, 2))
}
