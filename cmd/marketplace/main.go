package main

import (
	"fmt"
	"os"

	"marketplace/cmd/marketplace/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", commands.Describe(err))
		os.Exit(1)
	}
}
