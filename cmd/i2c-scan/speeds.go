//go:build !standardonly
// +build !standardonly

// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import "github.com/GermanBionicSystems/i2cscan"

// Fastest first. Each entry is an independent scan pass.
var scanSpeeds = []i2cscan.Speed{
	i2cscan.FastPlus,
	i2cscan.Fast,
	i2cscan.Standard,
}
