package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kashf-app/kashf/internal/domain/bank"
	"github.com/kashf-app/kashf/internal/domain/categorization"
)

var classifyBank string

var classifyCmd = &cobra.Command{
	Use:   "classify <description>",
	Short: "Classify a single transaction description",
	Args:  cobra.ExactArgs(1),
	RunE:  runClassify,
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyBank, "bank", "b", "", "Statement bank for bank-specific overrides (rajhi, ahli)")
}

func runClassify(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	description := args[0]
	category := app.classifier.Classify(description, parseBank(classifyBank))

	// Classification feeds the learner, so persist what it picked up.
	if err := app.store.Flush(); err != nil {
		app.logger.Warn("pattern store flush failed", "error", err)
	}

	out := struct {
		Description   string `json:"description"`
		Main          string `json:"main"`
		Sub           string `json:"sub"`
		Label         string `json:"label"`
		PaymentMethod string `json:"payment_method,omitempty"`
	}{
		Description:   description,
		Main:          category.Main,
		Sub:           category.Sub,
		Label:         category.Label(),
		PaymentMethod: categorization.ExtractPaymentMethod(description),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}

func parseBank(name string) bank.Type {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rajhi", "alrajhi", "al-rajhi", "الراجحي":
		return bank.Rajhi
	case "ahli", "alahli", "al-ahli", "snb", "الأهلي", "الاهلي":
		return bank.Ahli
	default:
		return bank.Unknown
	}
}
