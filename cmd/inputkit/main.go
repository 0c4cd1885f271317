package main

import (
	"os"

	"github.com/dmitrymomot/inputkit/cmd/inputkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
