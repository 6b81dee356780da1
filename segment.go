/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcode

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Segment is a single mode-tagged chunk of a QR code's data. Encode builds a
// single Byte segment internally; MakeNumeric/MakeAlphanumeric/MakeBytes are
// exposed for callers who want to build segments (and call EncodeSegments)
// directly.
type Segment struct {
	Mode            // The mode of this segment (numeric, alphanumeric, or byte).
	NumChars int    // The length of this segment's unencoded data.
	Data     []byte // The encoded data for this segment, one bit per byte element.
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	alphanumericRegexp = regexp.MustCompile(`^[A-Z0-9 $%*+./:-]*$`)
	numericRegexp      = regexp.MustCompile(`^[0-9]*$`)
)

// getTotalBits returns the number of bits segs occupies (mode indicator +
// character count + payload, for every segment) at the given version, or -1
// if any segment's character count overflows its count field at that
// version.
func getTotalBits(segs []*Segment, version Version) int {
	result := int64(0)
	for _, seg := range segs {
		ccBits := seg.Mode.numCharCountBits(version)
		if seg.NumChars >= 1<<ccBits {
			return -1
		}

		result += int64(4 + int(ccBits) + len(seg.Data))
		if result > math.MaxInt32 {
			return -1
		}
	}

	return int(result)
}

// MakeAlphanumeric creates an alphanumeric segment from the given text
// (uppercase letters, digits, and the symbols space $ % * + - . / :).
func MakeAlphanumeric(text string) *Segment {
	if !alphanumericRegexp.MatchString(text) {
		panic("string contains non-alphanumeric characters")
	}

	bb := make(bitBuffer, 0, len(text)*5+(len(text)+1)/2)
	var i int
	for i = 0; i <= len(text)-2; i += 2 { // Process groups of 2 characters.
		temp := strings.Index(alphanumericCharset, text[i:i+1]) * 45
		temp += strings.Index(alphanumericCharset, text[i+1:i+2])
		bb.appendBits(temp, 11)
	}

	if i < len(text) { // 1 character remaining.
		bb.appendBits(strings.Index(alphanumericCharset, text[i:i+1]), 6)
	}

	return &Segment{
		Mode:     Alphanumeric,
		NumChars: len(text),
		Data:     bb,
	}
}

// MakeBytes encodes a byte slice into a Segment of type Byte.
func MakeBytes(data []byte) *Segment {
	bb := make(bitBuffer, 0, len(data)*8)
	for _, b := range data {
		bb.appendBits(int(b), 8)
	}

	return &Segment{
		Mode:     Byte,
		NumChars: len(data),
		Data:     bb,
	}
}

// MakeNumeric creates a numeric segment from the given digit string.
func MakeNumeric(digits string) *Segment {
	if !numericRegexp.MatchString(digits) {
		panic("string contains non-numeric characters")
	}

	bb := make(bitBuffer, 0, len(digits)*3+(len(digits)+2)/3)
	for i := 0; i < len(digits); {
		n := minInt(len(digits)-i, 3)
		d, _ := strconv.Atoi(digits[i : i+n]) // Safe: numericRegexp already confirmed digits-only.
		bb.appendBits(d, int8(n*3+1))
		i += n
	}

	return &Segment{
		Mode:     Numeric,
		NumChars: len(digits),
		Data:     bb,
	}
}

// MakeSegments builds a single segment from text (none for empty text),
// selecting numeric, alphanumeric, or byte mode, whichever the text
// qualifies for, preferring the most compact representation. This is a convenience for EncodeSegments
// callers; Encode (the required byte-mode entry point) never calls it.
func MakeSegments(text string) []*Segment {
	if len(text) == 0 {
		return []*Segment{}
	}

	if numericRegexp.MatchString(text) {
		return []*Segment{MakeNumeric(text)}
	}

	if alphanumericRegexp.MatchString(text) {
		return []*Segment{MakeAlphanumeric(text)}
	}

	return []*Segment{MakeBytes([]byte(text))}
}
