package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/portfolio/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Generate or validate configuration files",
	}

	var output string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if err := cfg.SaveToFile(output); err != nil {
				return err
			}
			fmt.Printf("Created default configuration: %s\n", output)
			fmt.Println("\nEdit the file and run with:")
			fmt.Printf("  portfolio run --config %s\n", output)
			return nil
		},
	}
	initCmd.Flags().StringVar(&output, "output", "portfolio.yaml", "output config file path")

	var configPath string
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config flag is required")
			}
			cfg, err := config.LoadFromFile(configPath)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			fmt.Printf("Configuration valid: %s\n", configPath)
			fmt.Printf("  Policies: %d (seed %d)\n", cfg.Generator.NumPolicies, cfg.Generator.Seed)
			fmt.Printf("  Database: %s\n", cfg.Store.DBPath)
			fmt.Printf("  Output:   %s (charts: %v)\n", cfg.Output.Dir, cfg.Output.Charts)
			return nil
		},
	}
	validateCmd.Flags().StringVar(&configPath, "config", "", "path to config file")

	cmd.AddCommand(initCmd, validateCmd)
	return cmd
}
