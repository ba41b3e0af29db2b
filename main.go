package main

import (
	"os"

	"github.com/adsun-ai/adsun/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
