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

// Encode builds a QR code symbol from data in byte mode, at exactly the
// given version, error correction level, and mask. It never changes
// version, promotes the error correction level, or picks a mask on data's
// behalf; a payload that does not fit returns *CapacityExceededError.
func Encode(data []byte, version Version, ecc ECCLevel, mask Mask) (*QRCode, error) {
	return EncodeSegments([]*Segment{MakeBytes(data)}, version, ecc, mask)
}

// EncodeSegments is Encode generalised to an arbitrary, caller-built list of
// segments (see MakeNumeric, MakeAlphanumeric, MakeBytes, MakeSegments),
// still at a fixed version/ECC/mask.
func EncodeSegments(segs []*Segment, version Version, ecc ECCLevel, mask Mask) (*QRCode, error) {
	if err := version.validate(); err != nil {
		return nil, err
	}
	if err := ecc.validate(); err != nil {
		return nil, err
	}
	if err := mask.validate(); err != nil {
		return nil, err
	}

	rec, err := lookupVersion(version, ecc)
	if err != nil {
		return nil, err
	}
	data, err := assemble(segs, version, rec)
	if err != nil {
		return nil, err
	}
	return buildQRCode(version, ecc, mask, data, rec), nil
}

// EncodeAuto is a convenience layer over Encode: it chooses the smallest
// version in [opts' min, max] that fits segs at ecc, optionally boosts ecc
// within that version (WithBoostECL), and by default chooses the
// lowest-penalty mask rather than requiring the caller to name one
// (WithMask overrides this). It is never used internally by Encode.
func EncodeAuto(data []byte, ecc ECCLevel, opts ...Option) (*QRCode, error) {
	return EncodeSegmentsAuto([]*Segment{MakeBytes(data)}, ecc, opts...)
}

// EncodeSegmentsAuto is EncodeAuto generalised to caller-built segments.
func EncodeSegmentsAuto(segs []*Segment, ecc ECCLevel, opts ...Option) (*QRCode, error) {
	if err := ecc.validate(); err != nil {
		return nil, err
	}

	a := newAutoEncoder()
	for _, opt := range opts {
		opt(a)
	}
	if err := a.minVersion.validate(); err != nil {
		return nil, err
	}
	if err := a.maxVersion.validate(); err != nil {
		return nil, err
	}
	if a.mask != autoMask {
		if err := a.mask.validate(); err != nil {
			return nil, err
		}
	}

	var version Version
	var rec VersionRecord
	fits := false
	for version = a.minVersion; version <= a.maxVersion; version++ {
		r, err := lookupVersion(version, ecc)
		if err != nil {
			return nil, err
		}
		if bits := getTotalBits(segs, version); bits >= 0 && bits <= r.DataBits {
			rec = r
			fits = true
			break
		}
	}
	if !fits {
		return nil, &CapacityExceededError{
			Version:       a.maxVersion,
			ECC:           ecc,
			PayloadBytes:  -1,
			CapacityBytes: 0,
		}
	}

	if a.boostECL {
		for candidate := ecc + 1; candidate <= High; candidate++ {
			r, err := lookupVersion(version, candidate)
			if err != nil {
				return nil, err
			}
			if getTotalBits(segs, version) > r.DataBits {
				break
			}
			ecc, rec = candidate, r
		}
	}

	data, err := assemble(segs, version, rec)
	if err != nil {
		return nil, err
	}
	return buildQRCode(version, ecc, a.mask, data, rec), nil
}

// buildQRCode runs the Matrix Composer over already-assembled data
// codewords: function patterns, ECC generation and interleaving, data
// placement, masking, and format/version information.
func buildQRCode(version Version, ecc ECCLevel, mask Mask, data []byte, rec VersionRecord) *QRCode {
	q := newQRCode(version, ecc)
	q.drawFunctionPatterns()
	allCodewords := addECCAndInterleave(data, rec)
	q.drawCodewords(allCodewords)
	q.Mask = q.handleConstructorMasking(mask)
	return q
}
