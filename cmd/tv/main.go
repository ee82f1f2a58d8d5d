package main

import (
	"os"

	"github.com/alexhallam/tv/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
