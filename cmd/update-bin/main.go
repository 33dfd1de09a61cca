// cmd/update-bin/main.go
package main

import (
	"fmt"
	"os"

	"github.com/bin-tools/update-bin/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
