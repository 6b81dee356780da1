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
 *
 * Modeled after https://github.com/nayuki/QR-Code-generator.
 */

package qrcode

// padCodewords alternates between these two bytes (ISO/IEC 18004 §7.4.10)
// once the terminator and bit-padding are in place, until the data
// codeword capacity is reached.
const (
	padCodewordA = 0xEC
	padCodewordB = 0x11
)

// assemble builds the bit stream for segs at (version, rec.ECC): mode
// indicator, character count indicator, and payload for every segment, a
// terminator of up to 4 zero bits, zero-bit padding out to a byte boundary,
// and alternating pad codewords up to the version's full data-codeword
// capacity. It never grows the version to fit; a payload that overflows
// rec's capacity is reported as *CapacityExceededError; it is the caller's
// responsibility (EncodeAuto) to pick a version big enough first.
func assemble(segs []*Segment, version Version, rec VersionRecord) ([]byte, error) {
	totalBits := getTotalBits(segs, version)
	if totalBits < 0 || totalBits > rec.DataBits {
		payloadBits := 0
		for _, seg := range segs {
			payloadBits += 4 + int(seg.Mode.numCharCountBits(version)) + len(seg.Data)
		}
		return nil, &CapacityExceededError{
			Version:       version,
			ECC:           rec.ECC,
			PayloadBytes:  (payloadBits + 7) / 8,
			CapacityBytes: rec.DataBits / 8,
		}
	}

	var bb bitBuffer
	for _, seg := range segs {
		bb.appendBits(int(seg.Mode.modeBits), 4)
		bb.appendBits(seg.NumChars, seg.Mode.numCharCountBits(version))
		bb = append(bb, seg.Data...)
	}

	bb.appendBits(0, int8(minInt(4, rec.DataBits-len(bb))))     // Terminator.
	bb.appendBits(0, int8((8-len(bb)%8)%8))                     // Pad to a byte boundary.
	if len(bb)%8 != 0 {
		panic("bit buffer not byte aligned after padding")
	}

	dataCodewords := rec.DataBits / 8
	for padByte := padCodewordA; len(bb) < dataCodewords*8; padByte ^= padCodewordA ^ padCodewordB {
		bb.appendBits(padByte, 8)
	}

	data := make([]byte, dataCodewords)
	for i := range data {
		var b byte
		for j := 0; j < 8; j++ {
			b = b<<1 | bb[i*8+j]
		}
		data[i] = b
	}
	return data, nil
}
