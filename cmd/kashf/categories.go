package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kashf-app/kashf/internal/domain/categorization"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the expense taxonomy",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func runCategories(cmd *cobra.Command, args []string) error {
	taxonomy := categorization.DefaultTaxonomy()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, main := range taxonomy.Categories {
		fmt.Fprintf(w, "%s\n", main.Name)
		for _, sub := range main.Subs {
			fmt.Fprintf(w, "  %s\t%d keywords\n", sub.Name, len(sub.Keywords))
		}
	}
	return w.Flush()
}
