package main

import (
	"fmt"
	"os"

	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
