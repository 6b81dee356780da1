package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskValidate(t *testing.T) {
	assert.NoError(t, Mask0.validate())
	assert.NoError(t, Mask7.validate())
	assert.Error(t, Mask(8).validate())
	assert.Error(t, Mask(-2).validate())
}

func TestMaskInvertIsDeterministic(t *testing.T) {
	for m := Mask0; m <= Mask7; m++ {
		for row := 0; row < 10; row++ {
			for col := 0; col < 10; col++ {
				assert.Equal(t, m.invert(row, col), m.invert(row, col))
			}
		}
	}
}

// Mask 4 is the pattern the source this package was distilled from computed
// with floating-point division, which gives a different answer wherever
// row/2 or col/3 is not a whole number and floor division would invert the
// module, as at (1, 0): Go's integer floor division does not have that bug.
func TestMask4UsesFloorDivision(t *testing.T) {
	assert.True(t, Mask4.invert(0, 0))
	assert.True(t, Mask4.invert(1, 0))
	assert.False(t, Mask4.invert(2, 0))
	assert.False(t, Mask4.invert(1, 3))
}
