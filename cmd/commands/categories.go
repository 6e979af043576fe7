package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/gcodeview/internal/cli"
	"github.com/pluqqy/gcodeview/pkg/extractor"
	"github.com/pluqqy/gcodeview/pkg/models"
)

// NewCategoriesCommand creates the categories command
func NewCategoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the setting categories and the keywords routing into them",
		Long: `List every category in display order with the keywords that route
a setting into it.

A setting goes to the first category, by priority, whose keyword appears
in its lower-cased key. Settings matching no keyword are Uncategorized.`,
		Args: cobra.NoArgs,
		RunE: runCategories,
	}

	return cmd
}

func runCategories(cmd *cobra.Command, args []string) error {
	rules := extractor.DefaultRules()

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("CATEGORY", "PRIORITY", "KEYWORDS")

	for _, c := range models.Categories {
		priority, keywords := "-", "(none)"
		if c == models.CategoryUncategorized {
			keywords = "(fallback)"
		}
		for i, rule := range rules {
			if rule.Category == c {
				priority = strconv.Itoa(i + 1)
				keywords = strings.Join(rule.Keywords, ", ")
				break
			}
		}
		table.Row(string(c), priority, keywords)
	}

	table.Flush()
	return nil
}
