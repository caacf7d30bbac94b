package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand(&app{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
