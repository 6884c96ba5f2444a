//go:build standardonly
// +build standardonly

// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import "github.com/GermanBionicSystems/i2cscan"

// Restricted build for buses that only tolerate standard mode.
var scanSpeeds = []i2cscan.Speed{
	i2cscan.Standard,
}
