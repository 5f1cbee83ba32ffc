package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kashf-app/kashf/internal/domain/analysis"
	"github.com/kashf-app/kashf/internal/domain/categorization"
	"github.com/kashf-app/kashf/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "kashf",
	Short:         "Analyze Arabic bank statement PDFs",
	Long:          `kashf extracts transactions from Saudi bank statement PDFs, classifies them into an Arabic expense taxonomy, and reports totals, category breakdowns, and saving insights.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(categoriesCmd)
}

// app bundles the wired-up services the subcommands share.
type app struct {
	cfg        *config.Config
	logger     *slog.Logger
	store      *categorization.PatternStore
	classifier *categorization.Classifier
	analyzer   *analysis.Analyzer
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Runtime.SlogLevel(),
	}))

	store := categorization.NewPatternStore(cfg.Learner.PatternStorePath, logger)
	classifier := categorization.NewClassifier(
		categorization.DefaultTaxonomy(),
		categorization.NewMerchantIndex(categorization.DefaultMerchants()),
		store,
		categorization.ScoreConfig{
			Threshold:      cfg.Classifier.ScoreThreshold,
			FuzzyThreshold: cfg.Classifier.FuzzyThreshold,
		},
		logger,
	)

	return &app{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		classifier: classifier,
		analyzer:   analysis.NewAnalyzer(classifier, logger),
	}, nil
}
