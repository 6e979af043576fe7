package cli

import (
	"fmt"
	"strings"

	"github.com/pluqqy/gcodeview/pkg/models"
	"github.com/pluqqy/gcodeview/pkg/report"
)

// ValidateOutputFormat validates an output format string
func ValidateOutputFormat(format string) error {
	_, err := report.ParseFormat(format)
	return err
}

// ParseCategories converts category names to categories, rejecting unknown names
func ParseCategories(names []string) ([]models.Category, error) {
	var cats []models.Category
	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			c, ok := models.ParseCategory(part)
			if !ok {
				return nil, fmt.Errorf("unknown category: %s (valid: %s)", part, categoryNames())
			}
			cats = append(cats, c)
		}
	}
	return cats, nil
}

func categoryNames() string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
