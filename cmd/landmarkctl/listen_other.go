//go:build !linux

package main

import (
	"fmt"
	"io"
)

func runListen(_ []string, _, stderr io.Writer) int {
	fmt.Fprintf(stderr, "Error: listen reads Linux input devices and is not available on this platform\n")
	return 1
}
