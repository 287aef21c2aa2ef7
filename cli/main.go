package main

import (
	"os"

	"github.com/snowball-go/snowballc/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
