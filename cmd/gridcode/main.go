// Command gridcode turns rectangles given on the command line into
// matplotlib subplot2grid code or a grid-map image, without a window.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
