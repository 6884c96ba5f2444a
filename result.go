// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package i2cscan

// GeneralCall is the reserved broadcast address. It is never probed since
// 0-length and 0-address reads are rejected by the controller.
const GeneralCall uint16 = 0x00

// MaxAddr is the highest 7-bit device address.
const MaxAddr uint16 = 0x7F

// Status is the probe outcome for a single address.
type Status uint8

const (
	// NotApplicable marks reserved slots that are never probed.
	NotApplicable Status = iota
	// Absent means no device acknowledged the address.
	Absent
	// Present means a 1-byte read transaction completed at the address.
	Present
)

// Result holds the outcome of one full scan pass, one slot per 7-bit
// address.
type Result struct {
	status [MaxAddr + 1]Status
}

func newResult() *Result {
	r := &Result{}
	for addr := GeneralCall + 1; addr <= MaxAddr; addr++ {
		r.status[addr] = Absent
	}
	return r
}

// Status returns the recorded outcome for addr. Addresses outside the
// 7-bit range report NotApplicable.
func (r *Result) Status(addr uint16) Status {
	if addr > MaxAddr {
		return NotApplicable
	}
	return r.status[addr]
}

// Detected returns the addresses recorded as Present, in ascending order.
func (r *Result) Detected() []uint16 {
	var out []uint16
	for addr := uint16(0); addr <= MaxAddr; addr++ {
		if r.status[addr] == Present {
			out = append(out, addr)
		}
	}
	return out
}

// Equal reports whether both results recorded the same outcome at every
// address.
func (r *Result) Equal(o *Result) bool {
	return r.status == o.status
}
