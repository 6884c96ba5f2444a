// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package i2cscan probes an I²C bus for devices that acknowledge their
// address.
//
// A probe is a single 1-byte read transaction. A completed transfer means
// something on the bus acknowledged the address; it does not identify the
// device, and devices that reject reads while accepting writes show up as
// absent. This is the usual bring-up heuristic, kept as-is.
package i2cscan
