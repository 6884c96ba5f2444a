// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package i2cscan

import (
	"context"
	"fmt"
	"io"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

// Opts holds the configuration options for a scan pass.
type Opts struct {
	// Speed is the bus clock applied before probing.
	Speed Speed
	// Timeout bounds a single probe transaction. It is forwarded to the bus
	// driver when the driver exposes SetTimeout; otherwise the driver's own
	// default bound applies. 0 leaves the driver untouched either way.
	Timeout time.Duration
}

// DefaultOpts holds the default configuration options for a scan pass.
var DefaultOpts = Opts{
	Speed:   Standard,
	Timeout: 100 * time.Millisecond,
}

// Dev is an open, configured I²C controller ready to be scanned.
//
// The controller has exactly one borrower: use a Dev from one goroutine at
// a time.
type Dev struct {
	bus  i2c.Bus
	opts Opts
}

// timeoutSetter is implemented by buses that support a per-transaction
// timeout.
type timeoutSetter interface {
	SetTimeout(d time.Duration) error
}

// New returns a Dev probing b after applying the requested clock speed and
// timeout. The opts can be nil.
func New(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if err := b.SetSpeed(opts.Speed.Frequency()); err != nil {
		return nil, &ConfigError{Setting: "speed " + opts.Speed.String(), Err: err}
	}
	if ts, ok := b.(timeoutSetter); ok && opts.Timeout > 0 {
		if err := ts.SetTimeout(opts.Timeout); err != nil {
			return nil, &ConfigError{Setting: "timeout " + opts.Timeout.String(), Err: err}
		}
	}
	return &Dev{bus: b, opts: *opts}, nil
}

// Open claims the I²C controller registered under name ("" for the first
// available one) and configures it like New. When configuration fails
// after a successful claim, the controller is released before returning,
// so a successful Open is the only path that leaves a handle for the
// caller to Close.
func Open(name string, opts *Opts) (*Dev, error) {
	bus, err := i2creg.Open(name)
	if err != nil {
		return nil, &OpenError{Bus: name, Err: err}
	}
	d, err := New(bus, opts)
	if err != nil {
		_ = bus.Close()
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("i2cscan: %s", d.bus)
}

// Probe attempts a 1-byte read from addr and reports whether the transfer
// completed. The reply byte is discarded; only the acknowledgment matters.
// The general call address and addresses above MaxAddr are never
// transacted and always report false.
func (d *Dev) Probe(addr uint16) bool {
	if addr == GeneralCall || addr > MaxAddr {
		return false
	}
	var reply [1]byte
	return d.bus.Tx(addr, nil, reply[:]) == nil
}

// Scan probes every 7-bit address in ascending order and records the
// outcome per address. A probe failure marks the address Absent and never
// stops the sweep. A canceled ctx stops the sweep early; slots not reached
// stay Absent.
func (d *Dev) Scan(ctx context.Context) *Result {
	r := newResult()
	for addr := GeneralCall + 1; addr <= MaxAddr; addr++ {
		if ctx.Err() != nil {
			break
		}
		if d.Probe(addr) {
			r.status[addr] = Present
		}
	}
	return r
}

// Close releases the underlying controller if the bus supports it. It must
// be called exactly once per successful Open.
func (d *Dev) Close() error {
	if c, ok := d.bus.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

var _ fmt.Stringer = &Dev{}
