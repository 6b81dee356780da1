package qrcode

import "fmt"

// CapacityExceededError is returned when a payload does not fit the byte-mode
// data capacity of the requested (version, ECC level) pair.
type CapacityExceededError struct {
	Version       Version
	ECC           ECCLevel
	PayloadBytes  int
	CapacityBytes int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("qrcode: payload of %d bytes exceeds capacity of %d bytes for version %d level %s",
		e.PayloadBytes, e.CapacityBytes, e.Version, e.ECC)
}

// UnsupportedVersionError is returned when a requested version falls outside
// [MinVersion, MaxVersion] or has no matching version table row.
type UnsupportedVersionError struct {
	Version Version
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("qrcode: unsupported version %d (valid range is %d..%d)", e.Version, MinVersion, MaxVersion)
}

// InvalidMaskError is returned when a mask index falls outside [0, 7].
type InvalidMaskError struct {
	Mask Mask
}

func (e *InvalidMaskError) Error() string {
	return fmt.Sprintf("qrcode: invalid mask %d (valid range is 0..7)", int8(e.Mask))
}

// TableError is returned if the embedded version parameter table fails its
// self-consistency check at init. It should never occur outside of a broken
// build of this package; it exists so malformed-table is a reportable error
// kind rather than a panic, per the error taxonomy this package exposes.
type TableError struct {
	Reason string
}

func (e *TableError) Error() string {
	return fmt.Sprintf("qrcode: version table error: %s", e.Reason)
}
