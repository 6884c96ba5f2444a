// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package i2cscan

import "periph.io/x/conn/v3/physic"

// Speed is an I²C bus clock preset.
type Speed physic.Frequency

const (
	// Standard is standard mode, 100kHz.
	Standard Speed = Speed(100 * physic.KiloHertz)
	// Fast is fast mode, 400kHz.
	Fast Speed = Speed(400 * physic.KiloHertz)
	// FastPlus is fast-plus mode, 1MHz.
	FastPlus Speed = Speed(physic.MegaHertz)
)

// Frequency returns the preset as a physic.Frequency.
func (s Speed) Frequency() physic.Frequency {
	return physic.Frequency(s)
}

func (s Speed) String() string {
	return s.Frequency().String()
}
