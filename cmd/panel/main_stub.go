//go:build !rp2040

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "panel must be built with tinygo for an rp2040 target")
	os.Exit(1)
}
