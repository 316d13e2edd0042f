// Package cli provides the command-line interface for the NRU simulator.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

func newRootCommand() (*cobra.Command, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}
	cfg, err := defaultConfig()
	if err != nil {
		return nil, err
	}
	root := &cobra.Command{
		Use:   "nrusim",
		Short: "nrusim replays synthetic memory traffic through NRU page replacement.",
		Long: `nrusim replays synthetic memory traffic through NRU page replacement. ` +
			`Flag defaults may be set with NRUSIM_* environment variables, ` +
			`or in a .env file in the working directory.`,
		SilenceUsage: true,
	}
	root.AddCommand(newRunCommand(cfg))
	return root, nil
}

// Execute runs the root command and exits the process.
// Exit handlers, such as trace flushes, run before exiting.
func Execute() {
	root, err := newRootCommand()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		atexit.Exit(1)
	}
	if err := root.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
