//go:build !sdl

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "raycast-sdl needs SDL2 and the sdl build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags sdl ./cmd/raycast-sdl` or build with `-tags sdl`.")
	os.Exit(2)
}
