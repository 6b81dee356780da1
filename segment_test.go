package qrcode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAlphanumeric(t *testing.T) {
	cases := []struct {
		answer bool
		text   string
	}{
		{true, ""},
		{true, "0"},
		{true, "A"},
		{false, "a"},
		{true, " "},
		{true, "."},
		{true, "*"},
		{false, ","},
		{false, "|"},
		{false, "@"},
		{true, "XYZ"},
		{false, "XYZ!"},
		{true, "79068"},
		{true, "+123 ABC$"},
		{false, "\x01"},
		{false, "\x7F"},
		{false, "\x80"},
		{false, "\xC0"},
		{false, "\xFF"},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestIsAlphanumeric %v", tc), func(t *testing.T) {
			assert.Equal(t, tc.answer, alphanumericRegexp.MatchString(tc.text))
		})
	}
}

func TestIsNumeric(t *testing.T) {
	cases := []struct {
		answer bool
		text   string
	}{
		{true, ""},
		{true, "0"},
		{false, "A"},
		{false, "a"},
		{false, " "},
		{false, "."},
		{false, "*"},
		{true, "79068"},
		{false, "+123 ABC$"},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestIsNumeric %v", tc), func(t *testing.T) {
			assert.Equal(t, tc.answer, numericRegexp.MatchString(tc.text))
		})
	}
}

func TestMakeBytes(t *testing.T) {
	{
		seg := MakeBytes([]byte{})
		assert.Equal(t, Byte, seg.Mode)
		assert.Equal(t, 0, seg.NumChars)
		assert.Equal(t, 0, len(seg.Data))
	}
	{
		seg := MakeBytes([]byte{0x00})
		assert.Equal(t, Byte, seg.Mode)
		assert.Equal(t, 1, seg.NumChars)
		assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, []byte(seg.Data))
	}
	{
		seg := MakeBytes([]byte{0xEF, 0xBB, 0xBF})
		assert.Equal(t, Byte, seg.Mode)
		assert.Equal(t, 3, seg.NumChars)
		assert.Equal(t, 24, len(seg.Data))
	}
}

func TestMakeNumeric(t *testing.T) {
	cases := []struct {
		text      string
		length    int
		bitLength int
		bytes     []byte
	}{
		{"", 0, 0, []byte{}},
		{"9", 1, 4, []byte{0x1, 0x0, 0x0, 0x1}},
		{"81", 2, 7, []byte{0x1, 0x0, 0x1, 0x0, 0x0, 0x0, 0x1}},
		{"673", 3, 10, []byte{0x1, 0x0, 0x1, 0x0, 0x1, 0x0, 0x0, 0x0, 0x0, 0x1}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestMakeNumeric %v", tc), func(t *testing.T) {
			seg := MakeNumeric(tc.text)
			assert.Equal(t, Numeric, seg.Mode)
			assert.Equal(t, tc.length, seg.NumChars)
			assert.Equal(t, tc.bitLength, len(seg.Data))
			assert.Equal(t, tc.bytes, []byte(seg.Data))
		})
	}
}

func TestMakeAlphanumeric(t *testing.T) {
	cases := []struct {
		text      string
		length    int
		bitLength int
		bytes     []byte
	}{
		{"", 0, 0, []byte{}},
		{"A", 1, 6, []byte{0x0, 0x0, 0x1, 0x0, 0x1, 0x0}},
		{"%:", 2, 11, []byte{0x1, 0x1, 0x0, 0x1, 0x1, 0x0, 0x1, 0x1, 0x0, 0x1, 0x0}},
		{"Q R", 3, 17, []byte{0x1, 0x0, 0x0, 0x1, 0x0, 0x1, 0x1, 0x0, 0x1, 0x1, 0x0, 0x0, 0x1, 0x1, 0x0, 0x1, 0x1}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestMakeAlphanumeric %v", tc), func(t *testing.T) {
			seg := MakeAlphanumeric(tc.text)
			assert.Equal(t, Alphanumeric, seg.Mode)
			assert.Equal(t, tc.length, seg.NumChars)
			assert.Equal(t, tc.bitLength, len(seg.Data))
			assert.Equal(t, tc.bytes, []byte(seg.Data))
		})
	}
}

func TestGetTotalBits(t *testing.T) {
	assert.Equal(t, 0, getTotalBits([]*Segment{}, 1))
	assert.Equal(t, 0, getTotalBits([]*Segment{}, 40))

	segs := []*Segment{{Mode: Byte, NumChars: 3, Data: make([]byte, 24)}}
	assert.Equal(t, 36, getTotalBits(segs, 2))
	assert.Equal(t, 44, getTotalBits(segs, 10))
	assert.Equal(t, 44, getTotalBits(segs, 30))

	overflow := []*Segment{{Mode: Byte, NumChars: 4093, Data: make([]byte, 32744)}}
	assert.Equal(t, -1, getTotalBits(overflow, 1))
	assert.Equal(t, 32764, getTotalBits(overflow, 10))
	assert.Equal(t, 32764, getTotalBits(overflow, 27))
}

func TestMakeSegments(t *testing.T) {
	assert.Equal(t, []*Segment{}, MakeSegments(""))
	assert.Equal(t, Numeric, MakeSegments("12345")[0].Mode)
	assert.Equal(t, Alphanumeric, MakeSegments("HELLO WORLD")[0].Mode)
	assert.Equal(t, Byte, MakeSegments("hello, world!")[0].Mode)
}
