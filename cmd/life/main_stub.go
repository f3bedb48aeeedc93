//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of lifegrid requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/life` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For the browser: GOOS=js GOARCH=wasm go build -tags ebiten -o life.wasm ./cmd/life")
	fmt.Fprintln(os.Stderr, "Without a window, use ./cmd/life-headless.")
	os.Exit(2)
}
