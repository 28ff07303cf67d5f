package main

import (
	"fmt"
	"os"

	"github.com/figlight/figlight/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "figlight: %v\n", err)
		os.Exit(1)
	}
}
