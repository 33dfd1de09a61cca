// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("update-bin version %s\n", version)
		fmt.Println("Update a binary with the package manager that installed it")
	},
}
