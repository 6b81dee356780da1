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

// addECCAndInterleave splits data into rec.Blocks groups (the last
// rawCodewords%rec.Blocks of them one codeword longer than the rest, per
// ISO/IEC 18004 Table 9 — no separate table column is needed for this since
// the split is a pure function of (rawCodewords, blocks)), computes each
// group's Reed-Solomon ECC codewords, and interleaves first the data groups
// then the ECC groups column-major, exactly as Annex J specifies. Remainder
// bits are not appended here: drawCodewords stops after the last interleaved
// codeword and leaves the remaining (already light) modules untouched, which
// is equivalent to appending 0-7 zero bits.
func addECCAndInterleave(data []byte, rec VersionRecord) []byte {
	rawCodewords := numRawModules[rec.Version] / 8
	numBlocks := rec.Blocks
	blockECCLen := rec.ECCSymbolsPerBlock
	numShortBlocks := numBlocks - rawCodewords%numBlocks
	shortBlockLen := rawCodewords/numBlocks - blockECCLen

	divisor := reedSolomonDivisors[blockECCLen]

	blocks := make([][]byte, numBlocks)
	ecc := make([][]byte, numBlocks)
	k := 0
	for i := 0; i < numBlocks; i++ {
		dataLen := shortBlockLen
		if i >= numShortBlocks {
			dataLen++
		}
		blocks[i] = data[k : k+dataLen]
		k += dataLen
		ecc[i] = reedSolomonComputeRemainder(blocks[i], divisor)
	}

	result := make([]byte, 0, rawCodewords)
	for i := 0; i <= shortBlockLen; i++ {
		for j, block := range blocks {
			// The short blocks don't have a byte at index shortBlockLen.
			if i != shortBlockLen || j >= numShortBlocks {
				result = append(result, block[i])
			}
		}
	}
	for i := 0; i < blockECCLen; i++ {
		for _, e := range ecc {
			result = append(result, e[i])
		}
	}

	if len(result) != rawCodewords {
		panic("interleaving produced the wrong codeword count")
	}
	return result
}
