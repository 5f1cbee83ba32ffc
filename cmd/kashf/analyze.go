package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kashf-app/kashf/internal/domain/analysis"
	"github.com/kashf-app/kashf/internal/domain/insights"
	"github.com/kashf-app/kashf/pkg/cron"
)

var (
	analyzeWorkers int
	analyzeReport  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <statement.pdf>...",
	Short: "Extract, classify, and summarize statement transactions",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVarP(&analyzeWorkers, "workers", "w", 0, "Max statements analyzed concurrently (default from KASHF_MAX_WORKERS)")
	analyzeCmd.Flags().BoolVarP(&analyzeReport, "report", "r", false, "Print a plain-text category report instead of JSON")
}

// analysisOutput is the JSON envelope written to stdout.
type analysisOutput struct {
	Result   *analysis.Result   `json:"result"`
	Metrics  insights.Metrics   `json:"metrics"`
	Insights []insights.Insight `json:"insights"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	scheduler := cron.NewScheduler(app.store, app.cfg.Learner.FlushSchedule, app.logger)
	if err := scheduler.Start(); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	defer func() { <-scheduler.Stop().Done() }()

	workers := analyzeWorkers
	if workers < 1 {
		workers = app.cfg.Runtime.MaxWorkers
	}

	res, err := app.analyzer.AnalyzeMany(cmd.Context(), args, workers)
	if err != nil {
		return err
	}

	if analyzeReport {
		stats := insights.CategoryStatistics(res.Expenses.Buckets())
		fmt.Fprintln(os.Stdout, insights.FormatReport(stats))
		return nil
	}

	metrics := insights.ComputeMetrics(res)
	out := analysisOutput{
		Result:   res,
		Metrics:  metrics,
		Insights: insights.Generate(res, metrics),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
