// internal/cli/list.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bin-tools/update-bin/pkg/manager"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported package managers",
	Long:  `List the supported package managers, which of them are installed, and the ownership probe order.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	u, err := newUpdater()
	if err != nil {
		return err
	}

	priority, err := config.PriorityKinds()
	if err != nil {
		return err
	}
	if len(priority) == 0 {
		priority = manager.DefaultPriority
	}

	fmt.Printf("Supported package managers (probe order):\n")
	for _, kind := range priority {
		m, ok := u.Registry().Get(kind)
		if !ok {
			continue
		}
		marker := " "
		if m.Available() {
			marker = "*"
		}
		fmt.Printf("  %s %s\n", marker, kind)
	}
	fmt.Printf("\n* = installed on this machine\n")

	return nil
}
