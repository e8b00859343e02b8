//go:build windows

package main

import "os"

// Windows only delivers os.Interrupt to console programs.
var shutdownSignals = []os.Signal{os.Interrupt}
