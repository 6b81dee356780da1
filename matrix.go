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

import (
	"fmt"
	"math"
	"strings"
)

// cell is one module, fused into a single 2-bit value: bit 0 is the module's
// colour (1 = dark), bit 1 marks the module as a function pattern or
// format/version reservation rather than data. This is the "single grid of a
// 2-bit cell" representation the data model explicitly allows in place of
// two parallel bit grids.
type cell uint8

const (
	cellDark     cell = 1 << 0
	cellReserved cell = 1 << 1
)

func (c cell) dark() bool     { return c&cellDark != 0 }
func (c cell) reserved() bool { return c&cellReserved != 0 }

// QRCode is a fully composed QR code symbol: version, error correction
// level, mask, and the resulting module matrix. Values are produced by
// Encode/EncodeAuto and are immutable once returned.
type QRCode struct {
	Version
	ECCLevel
	Mask
	Size int

	grid [][]cell
}

// penalty weights from ISO/IEC 18004 Annex, used only by the optional
// penalty-score mask evaluation (EncodeAuto unless WithMask names a mask).
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

func newQRCode(version Version, ecc ECCLevel) *QRCode {
	size := version.size()
	q := &QRCode{
		Version:  version,
		ECCLevel: ecc,
		Size:     size,
		grid:     make([][]cell, size),
	}
	for i := range q.grid {
		q.grid[i] = make([]cell, size)
	}
	return q
}

// At reports the colour of the module at (row, col): true is dark.
func (q *QRCode) At(row, col int) bool {
	return q.grid[row][col].dark()
}

// IsFunction reports whether (row, col) belongs to a function pattern or a
// format/version reservation rather than the data area.
func (q *QRCode) IsFunction(row, col int) bool {
	return q.grid[row][col].reserved()
}

func (q *QRCode) setFunctionModule(row, col int, dark bool) {
	v := cellReserved
	if dark {
		v |= cellDark
	}
	q.grid[row][col] = v
}

func (q *QRCode) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "QRCode(version=%d, ecc=%s, mask=%d, size=%d)\n", q.Version, q.ECCLevel, q.Mask, q.Size)
	for y := 0; y < q.Size; y++ {
		for x := 0; x < q.Size; x++ {
			if q.At(y, x) {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// drawFunctionPatterns draws every non-data module: timing patterns, the
// three finder patterns, alignment patterns, the version information, and
// the format information area (written with a placeholder mask, so its final
// values come later).
func (q *QRCode) drawFunctionPatterns() {
	for i := 0; i < q.Size; i++ {
		q.setFunctionModule(6, i, i%2 == 0)
		q.setFunctionModule(i, 6, i%2 == 0)
	}

	q.drawFinderPattern(3, 3)
	q.drawFinderPattern(q.Size-4, 3)
	q.drawFinderPattern(3, q.Size-4)

	align := alignmentPatternPositions(q.Version)
	numAlign := len(align)
	for i := 0; i < numAlign; i++ {
		for j := 0; j < numAlign; j++ {
			if i == 0 && j == 0 || i == 0 && j == numAlign-1 || i == numAlign-1 && j == 0 {
				continue // The three corners overlap the finder patterns.
			}
			q.drawAlignmentPattern(align[i], align[j])
		}
	}

	q.drawFormatBits(Mask0) // Placeholder; overwritten with the true mask after masking.
	q.drawVersionInfo()
}

// drawFinderPattern draws a 9x9 finder pattern (the 7x7 square plus its
// one-module light separator), with the 7x7 square centred at (x, y).
func (q *QRCode) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			dist := maxInt(abs(dx), abs(dy))
			xx, yy := x+dx, y+dy
			if 0 <= xx && xx < q.Size && 0 <= yy && yy < q.Size {
				q.setFunctionModule(yy, xx, dist != 2 && dist != 4)
			}
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern centred at (x, y), but
// only over modules not already reserved, so it never overwrites a finder
// pattern or timing pattern it happens to be adjacent to.
func (q *QRCode) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			r, c := y+dy, x+dx
			if q.grid[r][c].reserved() {
				continue
			}
			q.setFunctionModule(r, c, maxInt(abs(dx), abs(dy)) != 1)
		}
	}
}

// drawCodewords places the interleaved codeword stream into every unreserved
// module, in the zig-zag order ISO/IEC 18004 specifies: two-column strips
// scanned from the right edge, alternating direction each strip, skipping
// the vertical timing column. It is written as nested loops over the strip
// (right), the row within the strip, and the strip's two columns, with the
// scan direction held in upward; the column-6 skip and the strip-turn are one
// statement each.
func (q *QRCode) drawCodewords(data []byte) {
	if len(data) != numRawModules[q.Version]/8 {
		panic("incorrect codeword stream length")
	}

	bitIndex := 0
	totalBits := len(data) * 8

	for right := q.Size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5 // The vertical timing column is never part of a strip.
		}
		upward := (right+1)&2 == 0

		for step := 0; step < q.Size; step++ {
			row := step
			if upward {
				row = q.Size - 1 - step
			}

			for _, col := range [2]int{right, right - 1} {
				if q.grid[row][col].reserved() {
					continue
				}
				if bitIndex < totalBits {
					if getBitAsBool(int(data[bitIndex>>3]), 7-(bitIndex&7)) {
						q.grid[row][col] |= cellDark
					}
					bitIndex++
				}
				// Remainder bits (0-7) are left as their zero-initialised,
				// light value; they are never reserved and never written.
			}
		}
	}

	if bitIndex != totalBits {
		panic("codeword stream was not fully consumed")
	}
}

// applyMask XORs every unreserved module's colour with the given mask's
// predicate. Applying the same mask twice is the identity (an involution),
// since XOR with the same boolean twice cancels out.
func (q *QRCode) applyMask(m Mask) {
	for y := 0; y < q.Size; y++ {
		for x := 0; x < q.Size; x++ {
			if q.grid[y][x].reserved() {
				continue
			}
			if m.invert(y, x) {
				q.grid[y][x] ^= cellDark
			}
		}
	}
}

// drawFormatBits computes the 15-bit BCH(15,5) format word for (ECCLevel,
// mask) and writes both redundant copies.
func (q *QRCode) drawFormatBits(m Mask) {
	data := q.ECCLevel.formatBits()<<3 | int(m)
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ rem>>9*0x537
	}
	bits := data<<10 | rem ^ 0x5412
	if bits>>15 != 0 {
		panic("format word overflowed 15 bits")
	}

	// Copy A, most significant bit first: row 8 columns 0-5,7,8, then
	// column 8 rows 7,5..0.
	for i := 0; i <= 5; i++ {
		q.setFunctionModule(i, 8, getBitAsBool(bits, i))
	}
	q.setFunctionModule(7, 8, getBitAsBool(bits, 6))
	q.setFunctionModule(8, 8, getBitAsBool(bits, 7))
	q.setFunctionModule(8, 7, getBitAsBool(bits, 8))
	for i := 9; i < 15; i++ {
		q.setFunctionModule(8, 14-i, getBitAsBool(bits, i))
	}

	// Copy B, most significant bit first: column 8 rows N-1..N-7, then row 8
	// columns N-8..N-1.
	for i := 0; i < 8; i++ {
		q.setFunctionModule(8, q.Size-1-i, getBitAsBool(bits, i))
	}
	for i := 8; i < 15; i++ {
		q.setFunctionModule(q.Size-15+i, 8, getBitAsBool(bits, i))
	}

	q.setFunctionModule(q.Size-8, 8, true) // The dark module is always dark.
}

// drawVersionInfo computes the 18-bit BCH(18,6) version word and writes both
// redundant 6x3 blocks. A no-op below version 7, which carries no version
// information.
func (q *QRCode) drawVersionInfo() {
	if q.Version < 7 {
		return
	}

	rem := int(q.Version)
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ rem>>11*0x1F25
	}
	bits := int(q.Version)<<12 | rem
	if bits>>18 != 0 {
		panic("version word overflowed 18 bits")
	}

	for i := 0; i < 18; i++ {
		bit := getBitAsBool(bits, i)
		a := q.Size - 11 + i%3
		b := i / 3
		q.setFunctionModule(a, b, bit)
		q.setFunctionModule(b, a, bit)
	}
}

// alignmentPatternPositions returns the ascending list of alignment pattern
// centre coordinates for version, used on both axes as a Cartesian product.
// It is computed directly (the ISO/IEC 18004 Annex E algorithm) rather than
// read back out of the embedded table, so the Matrix Composer never depends
// on CSV parsing having run. checkVersionTable does not compare the embedded
// Alignment column with this function's output;
// TestEmbeddedAlignmentColumnMatchesComputed does.
func alignmentPatternPositions(version Version) []int {
	if version == 1 {
		return nil
	}

	numAlign := int(version)/7 + 2
	var step int
	if version == 32 {
		step = 26 // ISO/IEC 18004 special-cases version 32.
	} else {
		step = (int(version)*4 + numAlign*2 + 1) / (numAlign*2 - 2) * 2
	}

	result := make([]int, numAlign)
	result[0] = 6
	for i, pos := len(result)-1, int(version)*4+17-7; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}
	return result
}

// finderPenaltyAddHistory and friends implement the ISO/IEC 18004 Annex
// penalty score, used only by EncodeAuto's optional mask selection; Encode's
// required path never calls getPenaltyScore.

func (q *QRCode) finderPenaltyAddHistory(currentRunLength int, runHistory *[7]int) {
	if runHistory[0] == 0 {
		currentRunLength += q.Size
	}
	copy(runHistory[1:], runHistory[0:])
	runHistory[0] = currentRunLength
}

func (q *QRCode) finderPenaltyCountPatterns(runHistory *[7]int) int {
	n := runHistory[1]
	if n > q.Size*3 {
		panic("bad run history")
	}
	core := n > 0 && runHistory[2] == n && runHistory[3] == n*3 && runHistory[4] == n && runHistory[5] == n
	return bToInt(core && runHistory[0] >= n*4 && runHistory[6] >= n) + bToInt(core && runHistory[6] >= n*4 && runHistory[0] >= n)
}

func (q *QRCode) finderPenaltyTerminateAndCount(runDark bool, runLength int, runHistory *[7]int) int {
	if runDark {
		q.finderPenaltyAddHistory(runLength, runHistory)
		runLength = 0
	}
	runLength += q.Size
	q.finderPenaltyAddHistory(runLength, runHistory)
	return q.finderPenaltyCountPatterns(runHistory)
}

func (q *QRCode) getPenaltyScore() int {
	result := 0

	for y := 0; y < q.Size; y++ {
		runDark := false
		runX := 0
		var runHistory [7]int
		for x := 0; x < q.Size; x++ {
			if q.At(y, x) == runDark {
				runX++
				if runX == 5 {
					result += penaltyN1
				} else if runX > 5 {
					result++
				}
			} else {
				q.finderPenaltyAddHistory(runX, &runHistory)
				if !runDark {
					result += q.finderPenaltyCountPatterns(&runHistory) * penaltyN3
				}
				runDark = q.At(y, x)
				runX = 1
			}
		}
		result += q.finderPenaltyTerminateAndCount(runDark, runX, &runHistory) * penaltyN3
	}

	for x := 0; x < q.Size; x++ {
		runDark := false
		runY := 0
		var runHistory [7]int
		for y := 0; y < q.Size; y++ {
			if q.At(y, x) == runDark {
				runY++
				if runY == 5 {
					result += penaltyN1
				} else if runY > 5 {
					result++
				}
			} else {
				q.finderPenaltyAddHistory(runY, &runHistory)
				if !runDark {
					result += q.finderPenaltyCountPatterns(&runHistory) * penaltyN3
				}
				runDark = q.At(y, x)
				runY = 1
			}
		}
		result += q.finderPenaltyTerminateAndCount(runDark, runY, &runHistory) * penaltyN3
	}

	for y := 0; y < q.Size-1; y++ {
		for x := 0; x < q.Size-1; x++ {
			c := q.At(y, x)
			if c == q.At(y, x+1) && c == q.At(y+1, x) && c == q.At(y+1, x+1) {
				result += penaltyN2
			}
		}
	}

	dark := 0
	for y := 0; y < q.Size; y++ {
		for x := 0; x < q.Size; x++ {
			if q.At(y, x) {
				dark++
			}
		}
	}
	total := q.Size * q.Size
	k := (abs(dark*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

// handleConstructorMasking applies mask (or, if autoMask, the mask with the
// lowest penalty score) and writes the final format bits.
func (q *QRCode) handleConstructorMasking(m Mask) Mask {
	if m == autoMask {
		minPenalty := math.MaxInt32
		for i := Mask0; i <= Mask7; i++ {
			q.applyMask(i)
			q.drawFormatBits(i)
			penalty := q.getPenaltyScore()
			if penalty < minPenalty {
				m = i
				minPenalty = penalty
			}
			q.applyMask(i) // Undo: XOR is its own inverse.
		}
	}

	q.applyMask(m)
	q.drawFormatBits(m)
	return m
}
