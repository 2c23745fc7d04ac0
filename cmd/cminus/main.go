package main

import (
	"os"

	"github.com/cwbudde/go-cminus/cmd/cminus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
