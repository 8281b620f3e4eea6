// Pronghorn - heuristic prompt scoring and rewriting
package main

import (
	"os"

	"github.com/HartBrook/pronghorn/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
