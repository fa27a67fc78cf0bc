package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootOptions carries the persistent flag values shared by subcommands.
type rootOptions struct {
	ConfigPath string
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Portfolio — synthetic insurance book generation and analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Path to config file (optional)")

	// Subcommands
	cmd.AddCommand(
		newRunCmd(opts),
		newReportCmd(opts),
		newRunsCmd(opts),
		newConfigCmd(),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("portfolio (dev)")
		},
	})

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
