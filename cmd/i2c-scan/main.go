// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// i2c-scan probes the first available I²C bus and prints a presence grid,
// once per configured bus speed.
//
// It takes no arguments. Failures are logged to stderr and the process
// always exits 0: the output is advisory, not a health check.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GermanBionicSystems/i2cscan"
	"github.com/GermanBionicSystems/i2cscan/termgrid"
	"github.com/mattn/go-isatty"
	"periph.io/x/host/v3"
)

// busTimeout bounds a single probe transaction.
const busTimeout = 100 * time.Millisecond

// performScan runs one open/configure/scan/close cycle at the given speed.
// The controller is released on every path, including configuration
// failures (Open releases it itself before reporting those).
func performScan(ctx context.Context, g *termgrid.Grid, speed i2cscan.Speed) {
	fmt.Printf("---- I2C scan at %s\n", speed)
	dev, err := i2cscan.Open("", &i2cscan.Opts{Speed: speed, Timeout: busTimeout})
	if err != nil {
		log.Printf("ERROR: %v", err)
		return
	}
	defer dev.Close()

	result := dev.Scan(ctx)
	if err := g.Render(result); err != nil {
		log.Printf("ERROR: writing grid: %v", err)
		return
	}
	if err := g.Summary(result); err != nil {
		log.Printf("ERROR: writing summary: %v", err)
	}
}

func main() {
	if _, err := host.Init(); err != nil {
		log.Printf("ERROR: initializing host drivers: %v", err)
		return
	}

	// The termination request is only ever written from signal delivery and
	// polled between passes; the in-progress pass still renders whatever it
	// recorded.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g := termgrid.New(&termgrid.Opts{Color: isatty.IsTerminal(os.Stdout.Fd())})
	for _, speed := range scanSpeeds {
		if ctx.Err() != nil {
			break
		}
		performScan(ctx, g, speed)
	}
}
