package main

import (
	"os"

	"github.com/cpslab/papersite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
