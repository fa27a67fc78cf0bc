package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/portfolio/pipeline"
)

func newReportCmd(opts *rootOptions) *cobra.Command {
	var (
		dbPath string
		outDir string
		topN   int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Re-run aggregation and exports over an existing book",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("db") {
				cfg.Store.DBPath = dbPath
			}
			if cmd.Flags().Changed("out") {
				cfg.Output.Dir = outDir
			}
			if cmd.Flags().Changed("top") {
				cfg.Reports.TopPolicies = topN
			}
			// Never replace the book we are reporting over.
			cfg.Store.Replace = false

			run, err := pipeline.New(cfg)
			if err != nil {
				return err
			}
			defer run.Close()

			res, err := run.Aggregate(cmd.Context())
			if err != nil {
				return err
			}

			if res.Summary.TotalPolicies == 0 {
				fmt.Printf("Warning: %s holds no policies\n", cfg.Store.DBPath)
			}
			printResult(res)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (overrides config)")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory for CSVs and charts (overrides config)")
	cmd.Flags().IntVar(&topN, "top", 10, "Number of top policies to export")

	return cmd
}
