package main

import (
	"fmt"
	"os"

	"twitchy/internal/errors"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		var exit exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
