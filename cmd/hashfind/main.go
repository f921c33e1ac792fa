package main

import (
	"fmt"
	"os"

	"github.com/lth/hashfind/cmd/hashfind/app"
)

func main() {
	if err := app.New().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
