package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/portfolio/config"
	"github.com/rustyeddy/portfolio/pipeline"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var (
		dbPath   string
		outDir   string
		seed     uint64
		policies int
		noCharts bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a synthetic book, aggregate it, and export reports and charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			// Flags override the config file only when set.
			if cmd.Flags().Changed("db") {
				cfg.Store.DBPath = dbPath
			}
			if cmd.Flags().Changed("out") {
				cfg.Output.Dir = outDir
			}
			if cmd.Flags().Changed("seed") {
				cfg.Generator.Seed = seed
			}
			if cmd.Flags().Changed("policies") {
				cfg.Generator.NumPolicies = policies
			}
			if noCharts {
				cfg.Output.Charts = false
			}

			run, err := pipeline.New(cfg)
			if err != nil {
				return err
			}
			defer run.Close()

			fmt.Printf("Run %s: generating %d policies (seed %d)\n",
				run.ID, cfg.Generator.NumPolicies, cfg.Generator.Seed)

			res, err := run.Execute(cmd.Context())
			if err != nil {
				return err
			}

			printResult(res)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (overrides config)")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory for CSVs and charts (overrides config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (overrides config)")
	cmd.Flags().IntVar(&policies, "policies", 0, "Number of policies to generate (overrides config)")
	cmd.Flags().BoolVar(&noCharts, "no-charts", false, "Skip chart rendering")

	return cmd
}

func loadConfig(opts *rootOptions) (*config.Config, error) {
	if opts.ConfigPath == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(opts.ConfigPath)
}

func printResult(res pipeline.Result) {
	fmt.Printf("\nBook written to %s\n", res.DBPath)
	fmt.Printf("  Policies:      %d\n", res.Summary.TotalPolicies)
	fmt.Printf("  Claim records: %d\n", res.Summary.TotalClaimsRecords)
	fmt.Printf("  Claims amount: %.2f\n", res.Summary.TotalClaimsAmount)
	fmt.Printf("  Premiums:      %.2f\n", res.Summary.TotalPremiums)
	if res.Summary.AverageLossRatioOverall.Valid {
		fmt.Printf("  Loss ratio:    %.4f\n", res.Summary.AverageLossRatioOverall.Float64)
	} else {
		fmt.Printf("  Loss ratio:    undefined (no premium)\n")
	}

	fmt.Println("\nArtifacts:")
	for _, p := range res.CSVFiles {
		fmt.Printf("  %s\n", p)
	}
	for _, p := range res.ChartFiles {
		fmt.Printf("  %s\n", p)
	}
	if res.SummaryPath != "" {
		fmt.Printf("  %s\n", res.SummaryPath)
	}
}
