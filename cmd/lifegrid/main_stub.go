//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	cfg := parseFlags()
	if !cfg.Console {
		fmt.Fprintln(os.Stderr, "The GUI build of lifegrid requires the ebiten build tag.")
		fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/lifegrid`, or pass --console for the terminal UI.")
		os.Exit(2)
	}
	runConsole(cfg)
}
