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

// Package qrcode encodes byte payloads into QR Code symbols conforming to
// ISO/IEC 18004: bit-stream assembly, Reed-Solomon error correction,
// interleaving, and module-matrix composition. Image rasterization, CLI
// front-ends and persistence of the version parameter table are deliberately
// left to collaborators (see qrimage and cmd/qrencode).
package qrcode

import "fmt"

// Version is a QR code version number, in the range [MinVersion, MaxVersion].
type Version int

// The minimum and maximum QR code versions. Version 1 is a 21x21 symbol;
// version 40 is a 177x177 symbol.
const (
	MinVersion = Version(1)
	MaxVersion = Version(40)
)

func (v Version) size() int { return int(v)*4 + 17 }

func (v Version) validate() error {
	if v < MinVersion || v > MaxVersion {
		return &UnsupportedVersionError{Version: v}
	}
	return nil
}

// ECCLevel is the error correction level used by a QR code. Higher levels
// trade data capacity for resilience against damage.
type ECCLevel int8

// The four error correction levels defined by ISO/IEC 18004.
const (
	Low      ECCLevel = iota // Recovers approximately 7% of data.
	Medium                   // Recovers approximately 15% of data.
	Quartile                 // Recovers approximately 25% of data.
	High                     // Recovers approximately 30% of data.
)

func (e ECCLevel) String() string {
	switch e {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return fmt.Sprintf("ECCLevel(%d)", int8(e))
	}
}

// formatBits is the 2-bit code used inside the 5-bit format word. Note that
// this is not the same ordering as the ECCLevel enum itself (ISO/IEC 18004
// Table 25: L=01, M=00, Q=11, H=10).
func (e ECCLevel) formatBits() int {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("unknown error correction level")
	}
}

func (e ECCLevel) validate() error {
	if e < Low || e > High {
		return fmt.Errorf("qrcode: invalid error correction level %d", int8(e))
	}
	return nil
}

func eccLevelFromRune(r byte) (ECCLevel, bool) {
	switch r {
	case 'L':
		return Low, true
	case 'M':
		return Medium, true
	case 'Q':
		return Quartile, true
	case 'H':
		return High, true
	default:
		return 0, false
	}
}

func bToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func getBitAsBool(x, i int) bool {
	return x>>i&1 == 1
}

func abs(a int) int {
	if a >= 0 {
		return a
	}
	return -a
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
