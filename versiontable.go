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
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// versionTableCSV is the static version parameter table described in the
// system's external interfaces: one row per (version, error correction
// level), columns version, errorCorrection, size, dataBits, numeric,
// alphanumeric, binary, alignment, eccSymbolsPerBlock, blocks. It is compiled
// into the binary with go:embed so loading it costs no file I/O and happens
// exactly once, at init, rather than being re-parsed on every encode.
//
//go:embed version_table.csv
var versionTableCSV string

// VersionRecord is one row of the version parameter table: everything the
// encoding pipeline needs to know about a single (version, ECC level) pair.
type VersionRecord struct {
	Version            Version
	ECC                ECCLevel
	Size               int   // Module dimension (N).
	DataBits           int   // Data-codeword capacity in bits (before mode/count overhead).
	Numeric            int   // Max character count, numeric mode.
	Alphanumeric       int   // Max character count, alphanumeric mode.
	Binary             int   // Max payload byte count, byte mode.
	Alignment          []int // Alignment pattern centre coordinates (Cartesian product with itself).
	ECCSymbolsPerBlock int   // C: ECC codewords produced per block.
	Blocks             int   // B: number of ECC blocks.
}

var (
	versionTable    [MaxVersion + 1][4]VersionRecord
	numRawModules   [MaxVersion + 1]int
	versionTableErr error
)

func init() {
	if err := loadVersionTable(); err != nil {
		versionTableErr = err
	}
	for v := MinVersion; v <= MaxVersion; v++ {
		numRawModules[v] = computeNumRawDataModules(v)
	}
	if versionTableErr == nil {
		versionTableErr = checkVersionTable()
	}
	if versionTableErr == nil {
		populateReedSolomonDivisors()
	}
}

func eccIndex(e ECCLevel) int {
	return int(e)
}

func loadVersionTable() error {
	r := csv.NewReader(strings.NewReader(versionTableCSV))
	rows, err := r.ReadAll()
	if err != nil {
		return &TableError{Reason: fmt.Sprintf("cannot parse embedded version table: %v", err)}
	}
	if len(rows) == 0 {
		return &TableError{Reason: "embedded version table is empty"}
	}

	header := rows[0]
	want := []string{"version", "errorCorrection", "size", "dataBits", "numeric", "alphanumeric", "binary", "alignment", "eccSymbolsPerBlock", "blocks"}
	if len(header) != len(want) {
		return &TableError{Reason: "embedded version table has the wrong column count"}
	}
	for i, col := range want {
		if header[i] != col {
			return &TableError{Reason: fmt.Sprintf("embedded version table column %d is %q, want %q", i, header[i], col)}
		}
	}

	for _, row := range rows[1:] {
		rec, err := parseVersionRow(row)
		if err != nil {
			return err
		}
		versionTable[rec.Version][eccIndex(rec.ECC)] = rec
	}

	return nil
}

func parseVersionRow(row []string) (VersionRecord, error) {
	if len(row) != 10 {
		return VersionRecord{}, &TableError{Reason: fmt.Sprintf("malformed row %q: want 10 columns", strings.Join(row, ","))}
	}

	atoi := func(s string) (int, error) { return strconv.Atoi(s) }

	version, err := atoi(row[0])
	if err != nil {
		return VersionRecord{}, &TableError{Reason: fmt.Sprintf("bad version %q: %v", row[0], err)}
	}
	ecc, ok := eccLevelFromRune(row[1][0])
	if len(row[1]) != 1 || !ok {
		return VersionRecord{}, &TableError{Reason: fmt.Sprintf("bad error correction level %q", row[1])}
	}
	size, err := atoi(row[2])
	if err != nil {
		return VersionRecord{}, &TableError{Reason: fmt.Sprintf("bad size %q: %v", row[2], err)}
	}
	dataBits, err := atoi(row[3])
	if err != nil {
		return VersionRecord{}, &TableError{Reason: fmt.Sprintf("bad dataBits %q: %v", row[3], err)}
	}
	numeric, err := atoi(row[4])
	if err != nil {
		return VersionRecord{}, &TableError{Reason: fmt.Sprintf("bad numeric %q: %v", row[4], err)}
	}
	alphanumeric, err := atoi(row[5])
	if err != nil {
		return VersionRecord{}, &TableError{Reason: fmt.Sprintf("bad alphanumeric %q: %v", row[5], err)}
	}
	binary, err := atoi(row[6])
	if err != nil {
		return VersionRecord{}, &TableError{Reason: fmt.Sprintf("bad binary %q: %v", row[6], err)}
	}
	var alignment []int
	if row[7] != "" {
		for _, part := range strings.Split(row[7], ",") {
			pos, err := atoi(part)
			if err != nil {
				return VersionRecord{}, &TableError{Reason: fmt.Sprintf("bad alignment coordinate %q: %v", part, err)}
			}
			alignment = append(alignment, pos)
		}
	}
	eccSymbolsPerBlock, err := atoi(row[8])
	if err != nil {
		return VersionRecord{}, &TableError{Reason: fmt.Sprintf("bad eccSymbolsPerBlock %q: %v", row[8], err)}
	}
	blocks, err := atoi(row[9])
	if err != nil {
		return VersionRecord{}, &TableError{Reason: fmt.Sprintf("bad blocks %q: %v", row[9], err)}
	}

	return VersionRecord{
		Version:            Version(version),
		ECC:                ecc,
		Size:               size,
		DataBits:           dataBits,
		Numeric:            numeric,
		Alphanumeric:       alphanumeric,
		Binary:             binary,
		Alignment:          alignment,
		ECCSymbolsPerBlock: eccSymbolsPerBlock,
		Blocks:             blocks,
	}, nil
}

// checkVersionTable cross-checks every embedded row against the raw-module
// count this package derives independently from the ISO/IEC 18004 formula
// (computeNumRawDataModules), so a corrupted or hand-edited CSV is caught as
// a TableError instead of silently producing a malformed symbol.
func checkVersionTable() error {
	for v := MinVersion; v <= MaxVersion; v++ {
		for i := 0; i < 4; i++ {
			rec := versionTable[v][i]
			want := numRawModules[v]/8 - rec.ECCSymbolsPerBlock*rec.Blocks
			if rec.DataBits != want*8 {
				return &TableError{Reason: fmt.Sprintf("version %d level %s: dataBits=%d inconsistent with raw module count (want %d)", v, rec.ECC, rec.DataBits, want*8)}
			}
		}
	}
	return nil
}

// lookupVersion returns the version table row for (version, ecc), or an
// error if the version is out of range or the embedded table failed its
// self-check.
func lookupVersion(version Version, ecc ECCLevel) (VersionRecord, error) {
	if versionTableErr != nil {
		return VersionRecord{}, versionTableErr
	}
	if err := version.validate(); err != nil {
		return VersionRecord{}, err
	}
	return versionTable[version][eccIndex(ecc)], nil
}

// computeNumRawDataModules returns the number of data bits (including
// remainder bits) a symbol of this version can hold once every function
// pattern, format/version reservation, and alignment pattern has been
// excluded. Ported directly from the teacher's numRawDataModules formula.
func computeNumRawDataModules(v Version) int {
	result := (16*int(v)+128)*int(v) + 64
	if v >= 2 {
		numAlign := int(v)/7 + 2
		result -= (25*numAlign-10)*numAlign - 55
		if v >= 7 {
			result -= 36
		}
	}
	if result < 208 || result > 29648 {
		panic("numRawDataModules miscalculated")
	}
	return result
}
