// pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rustyeddy/portfolio/charts"
	"github.com/rustyeddy/portfolio/config"
	"github.com/rustyeddy/portfolio/gen"
	"github.com/rustyeddy/portfolio/pkg/id"
	"github.com/rustyeddy/portfolio/report"
	"github.com/rustyeddy/portfolio/store"
)

// Run owns everything one pipeline invocation touches: the parameters,
// the seeded generator, and the open store. Build one with New, drive it
// with Execute or Aggregate, then Close it.
type Run struct {
	Config *config.Config

	ID      string
	Started time.Time

	store *store.Store
	gen   *gen.Generator
}

// Result reports what a run produced.
type Result struct {
	RunID       string
	NumPolicies int
	NumClaims   int

	Summary     report.Summary
	Percentiles report.Percentiles

	DBPath      string
	SummaryPath string
	CSVFiles    []string
	ChartFiles  []string
}

// New validates cfg, prepares the database file and output directory, and
// opens the store. With Store.Replace set, an existing database file is
// removed first so the run starts from an empty book.
func New(cfg *config.Config) (*Run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Store.Replace {
		if err := os.Remove(cfg.Store.DBPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("remove existing db: %w", err)
		}
	}
	if dir := filepath.Dir(cfg.Store.DBPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	s, err := store.Open(cfg.Store.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return &Run{
		Config:  cfg,
		ID:      id.New(),
		Started: time.Now().UTC(),
		store:   s,
		gen:     gen.New(cfg.Generator),
	}, nil
}

// Execute runs the whole pipeline in order: generate and commit policies,
// generate and commit claims, aggregate, export, render charts, and
// record the run. Stages run strictly sequentially.
func (r *Run) Execute(ctx context.Context) (Result, error) {
	policies := r.gen.Policies()
	if err := r.store.InsertPolicies(ctx, policies); err != nil {
		return Result{}, fmt.Errorf("insert policies: %w", err)
	}

	claims := r.gen.Claims(policies)
	if err := r.store.InsertClaims(ctx, claims); err != nil {
		return Result{}, fmt.Errorf("insert claims: %w", err)
	}

	res, err := r.Aggregate(ctx)
	if err != nil {
		return Result{}, err
	}
	res.NumPolicies = len(policies)
	res.NumClaims = len(claims)

	err = r.store.RecordRun(ctx, store.RunRecord{
		RunID:         r.ID,
		Created:       r.Started,
		Seed:          r.Config.Generator.Seed,
		NumPolicies:   len(policies),
		NumClaims:     len(claims),
		TotalPremiums: res.Summary.TotalPremiums,
		TotalClaims:   res.Summary.TotalClaimsAmount,
		LossRatio:     res.Summary.AverageLossRatioOverall,
		OutputDir:     r.Config.Output.Dir,
	})
	if err != nil {
		return Result{}, fmt.Errorf("record run: %w", err)
	}

	return res, nil
}

// Aggregate computes the six report views over whatever the store holds,
// exports the CSV set, renders charts when enabled, and writes the run
// summary text file. It does not touch the Policies or Claims tables.
func (r *Run) Aggregate(ctx context.Context) (Result, error) {
	_ = ctx

	out := r.Config.Output.Dir
	res := Result{
		RunID:  r.ID,
		DBPath: r.Config.Store.DBPath,
	}

	lossRows, err := r.store.LossByCarType()
	if err != nil {
		return Result{}, fmt.Errorf("loss by car type: %w", err)
	}
	ageRows, err := r.store.AgeGroupStats()
	if err != nil {
		return Result{}, fmt.Errorf("age group stats: %w", err)
	}
	topRows, err := r.store.TopPolicies(r.Config.Reports.TopPolicies)
	if err != nil {
		return Result{}, fmt.Errorf("top policies: %w", err)
	}
	mixRows, err := r.store.PortfolioMix()
	if err != nil {
		return Result{}, fmt.Errorf("portfolio mix: %w", err)
	}
	perPolicy, err := r.store.PerPolicy()
	if err != nil {
		return Result{}, fmt.Errorf("per policy: %w", err)
	}
	res.Summary, err = r.store.Summary()
	if err != nil {
		return Result{}, fmt.Errorf("summary: %w", err)
	}
	res.Percentiles = report.ClaimPercentiles(perPolicy)

	exports := []struct {
		file  string
		write func(string) error
	}{
		{report.LossByCarFile, func(p string) error { return report.WriteCarTypeLossCSV(p, lossRows) }},
		{report.AgeGroupFile, func(p string) error { return report.WriteAgeGroupCSV(p, ageRows) }},
		{report.TopPoliciesFile, func(p string) error { return report.WritePolicyRollupCSV(p, topRows) }},
		{report.PortfolioMixFile, func(p string) error { return report.WriteMixCSV(p, mixRows) }},
		{report.PerPolicyFile, func(p string) error { return report.WritePolicyRollupCSV(p, perPolicy) }},
		{report.SummaryFile, func(p string) error { return report.WriteSummaryCSV(p, res.Summary) }},
	}
	for _, e := range exports {
		path := filepath.Join(out, e.file)
		if err := e.write(path); err != nil {
			return Result{}, fmt.Errorf("export %s: %w", e.file, err)
		}
		res.CSVFiles = append(res.CSVFiles, path)
	}

	if r.Config.Output.Charts {
		figures := []struct {
			file   string
			render func(string) error
		}{
			{charts.LossRatioFile, func(p string) error { return charts.LossRatioBar(p, lossRows) }},
			{charts.AvgClaimsFile, func(p string) error { return charts.AvgClaimsLine(p, ageRows) }},
			{charts.MixFile, func(p string) error { return charts.MixPie(p, mixRows) }},
			{charts.HistogramFile, func(p string) error { return charts.ClaimsHistogram(p, perPolicy) }},
			{charts.ScatterFile, func(p string) error { return charts.PremiumScatter(p, perPolicy) }},
		}
		for _, fig := range figures {
			path := filepath.Join(out, fig.file)
			if err := fig.render(path); err != nil {
				return Result{}, err
			}
			res.ChartFiles = append(res.ChartFiles, path)
		}
	}

	res.SummaryPath = filepath.Join(out, report.SummaryTextFile)
	rpt := report.RunReport{
		RunID:       r.ID,
		Created:     r.Started,
		Seed:        r.Config.Generator.Seed,
		DBPath:      r.Config.Store.DBPath,
		OutputDir:   out,
		Summary:     res.Summary,
		Percentiles: res.Percentiles,
		CSVFiles:    res.CSVFiles,
		ChartFiles:  res.ChartFiles,
	}
	if err := rpt.WriteFile(res.SummaryPath); err != nil {
		return Result{}, fmt.Errorf("write run summary: %w", err)
	}

	return res, nil
}

// Store exposes the open store for read-side callers like the runs CLI.
func (r *Run) Store() *store.Store {
	return r.store
}

// Close releases the store handle.
func (r *Run) Close() error {
	return r.store.Close()
}
