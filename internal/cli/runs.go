package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/portfolio/store"
)

func newRunsCmd(opts *rootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded pipeline runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("db") {
				cfg.Store.DBPath = dbPath
			}

			s, err := store.Open(cfg.Store.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer s.Close()

			runs, err := s.ListRuns()
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Println("No runs recorded.")
				return nil
			}

			for _, r := range runs {
				ratio := "undefined"
				if r.LossRatio.Valid {
					ratio = fmt.Sprintf("%.4f", r.LossRatio.Float64)
				}
				fmt.Printf("%s  %s  seed=%d  policies=%d  claims=%d  loss_ratio=%s\n",
					r.RunID, r.Created.Format("2006-01-02 15:04:05"),
					r.Seed, r.NumPolicies, r.NumClaims, ratio)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (overrides config)")

	return cmd
}
