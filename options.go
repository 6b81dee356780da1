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

// Option configures EncodeAuto. It never affects Encode, which always takes
// a fixed version, ECC level, and mask.
type Option func(*autoEncoder)

type autoEncoder struct {
	boostECL   bool
	mask       Mask
	minVersion Version
	maxVersion Version
}

func newAutoEncoder() *autoEncoder {
	return &autoEncoder{
		mask:       autoMask,
		minVersion: MinVersion,
		maxVersion: MaxVersion,
	}
}

// WithMask fixes the mask EncodeAuto uses, instead of the default of
// choosing the lowest-penalty mask automatically.
func WithMask(mask Mask) Option {
	return func(a *autoEncoder) { a.mask = mask }
}

// WithAutoMask restores automatic, lowest-penalty mask selection. It exists
// for callers who built an autoEncoder from an Option set that already named
// a fixed mask and want to undo that; EncodeAuto selects automatically by
// default without it.
func WithAutoMask() Option {
	return func(a *autoEncoder) { a.mask = autoMask }
}

// WithBoostECL causes EncodeAuto, once it has picked the smallest version
// that fits the payload, to raise the error correction level as far as that
// same version still allows.
func WithBoostECL(boost bool) Option {
	return func(a *autoEncoder) { a.boostECL = boost }
}

// WithMinVersion sets the lowest version EncodeAuto will consider.
func WithMinVersion(version Version) Option {
	return func(a *autoEncoder) { a.minVersion = version }
}

// WithMaxVersion sets the highest version EncodeAuto will consider.
func WithMaxVersion(version Version) Option {
	return func(a *autoEncoder) { a.maxVersion = version }
}
