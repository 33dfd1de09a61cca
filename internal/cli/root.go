// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	updatebin "github.com/bin-tools/update-bin"
	"github.com/bin-tools/update-bin/pkg/core"
)

var (
	cfgFile  string
	debug    bool
	plain    bool
	infoOnly bool
	config   *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "update-bin <binary>",
	Short: "Update a binary with the package manager that installed it",
	Long: `update-bin - update a binary to its latest version using the
package manager that originally installed it.

The binary's provenance is detected from its location on PATH and the
installed managers' own records, then the native update command of the
owning manager (homebrew, bun, cargo, pnpm, npm or yarn) is run.`,
	Version:       version,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runUpdate,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/update-bin/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "disable styled subprocess output")
	rootCmd.Flags().BoolVar(&infoOnly, "info", false, "display package name and package manager instead of updating")

	// Add commands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if debug {
		config.Debug = true
	}
	if plain {
		config.Plain = true
	}
}

func newUpdater() (*updatebin.Updater, error) {
	priority, err := config.PriorityKinds()
	if err != nil {
		return nil, err
	}
	return updatebin.New(&updatebin.Options{
		Priority: priority,
		Debug:    config.Debug,
		Plain:    config.Plain,
	}), nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	bin := args[0]

	u, err := newUpdater()
	if err != nil {
		return err
	}

	res, err := u.Resolve(ctx, bin)
	if err != nil {
		return err
	}

	if infoOnly {
		fmt.Printf("Package name: %s\n", res.Package)
		fmt.Printf("Package manager: %s\n", res.Manager.Kind())
		return nil
	}

	oldVersion := u.InstalledVersion(ctx, res)
	fmt.Printf("Current version: %s\n", oldVersion)
	fmt.Printf("Updating %s with %s\n", res.Package, res.Manager.Kind())

	if err := u.Update(ctx, res); err != nil {
		return fmt.Errorf("updating %s with %s: %w", res.Package, res.Manager.Kind(), err)
	}

	newVersion := u.InstalledVersion(ctx, res)
	if newVersion != oldVersion && newVersion != "unknown" {
		fmt.Printf("Updated to version: %s\n", newVersion)
		color.Green("✓ Successfully updated %s from %s to %s", res.Package, oldVersion, newVersion)
	} else {
		fmt.Printf("%s is already up to date (%s)\n", res.Package, oldVersion)
	}

	return nil
}
