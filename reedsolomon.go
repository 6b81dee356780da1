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

// Reed-Solomon error correction over GF(256), primitive polynomial
// x^8+x^4+x^3+x^2+1 (0x11D), generator element 2. reedSolomonDivisors caches
// one generator polynomial per distinct ECC-codewords-per-block degree seen
// in the version table; it is populated once, from init, and is read-only
// afterward (spec's initialisation-once cache requirement).
var reedSolomonDivisors = make(map[int][]byte)

// populateReedSolomonDivisors fills reedSolomonDivisors from the version
// table. It is called explicitly from versiontable.go's init, after
// loadVersionTable/checkVersionTable have already succeeded, rather than
// being its own init function here: Go runs a package's init functions in
// file-presentation order, and cmd/go presents files in lexical filename
// order, so "reedsolomon.go"'s init would run before "versiontable.go"'s —
// before versionTable held anything but zero values.
func populateReedSolomonDivisors() {
	for v := MinVersion; v <= MaxVersion; v++ {
		for i := 0; i < 4; i++ {
			degree := versionTable[v][i].ECCSymbolsPerBlock
			if _, ok := reedSolomonDivisors[degree]; !ok {
				reedSolomonDivisors[degree] = reedSolomonComputeDivisor(degree)
			}
		}
	}
}

// reedSolomonComputeDivisor builds the Reed-Solomon generator polynomial of
// the given degree. Coefficients are stored highest-to-lowest power,
// excluding the implicit leading x^degree term: the polynomial
// x^3 + 255x^2 + 8x + 93 is stored as []byte{255, 8, 93}.
func reedSolomonComputeDivisor(degree int) []byte {
	if degree < 1 || degree > 255 {
		panic("degree out of range")
	}

	result := make([]byte, degree)
	result[degree-1] = 1 // Start with the monomial x^0.

	// Compute the product (x - r^0)(x - r^1)...(x - r^(degree-1)), dropping
	// the leading x^degree term (always 1). r = 0x02 generates GF(2^8/0x11D).
	root := byte(1)
	for i := 0; i < degree; i++ {
		for j := 0; j < len(result); j++ {
			result[j] = reedSolomonMultiply(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = reedSolomonMultiply(root, 0x02)
	}

	return result
}

// reedSolomonMultiply returns the product of x and y in GF(2^8/0x11D), via
// Russian peasant multiplication with reduction on overflow.
func reedSolomonMultiply(x, y byte) byte {
	z := 0
	for i := 7; i >= 0; i-- {
		z = z<<1 ^ z>>7*0x11D
		z ^= int(y >> i & 1 * x)
	}
	return byte(z)
}

// reedSolomonComputeRemainder returns the ECC codewords for data under the
// given generator polynomial: the remainder of dividing data*x^deg(divisor)
// by divisor, computed with a shift register so data is never explicitly
// padded.
func reedSolomonComputeRemainder(data, divisor []byte) []byte {
	result := make([]byte, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result[0:], result[1:])
		result[len(result)-1] = 0
		for i := 0; i < len(result); i++ {
			result[i] ^= reedSolomonMultiply(divisor[i], factor)
		}
	}
	return result
}
