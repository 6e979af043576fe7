package extractor

import (
	"strings"

	"github.com/pluqqy/gcodeview/pkg/models"
)

// Rule routes a key to Category when the lower-cased key contains any of Keywords
type Rule struct {
	Category models.Category
	Keywords []string
}

// Matches reports whether the lower-cased key contains one of the rule's keywords
func (r Rule) Matches(lowerKey string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowerKey, kw) {
			return true
		}
	}
	return false
}

// Rules is a priority-ordered classification table. The first matching rule wins.
type Rules []Rule

// DefaultRules returns the built-in classification table.
// Slicer Info has no rule and therefore never receives settings.
func DefaultRules() Rules {
	return Rules{
		{Category: models.CategoryTemperature, Keywords: []string{"temperature", "bed"}},
		{Category: models.CategorySupport, Keywords: []string{"support"}},
		{Category: models.CategoryFilament, Keywords: []string{"filament"}},
		{Category: models.CategoryExtrusionWidths, Keywords: []string{"extrusion"}},
		{Category: models.CategoryMotion, Keywords: []string{"motion"}},
		{Category: models.CategoryCooling, Keywords: []string{"cooling"}},
		{Category: models.CategoryRetraction, Keywords: []string{"retraction"}},
		{Category: models.CategorySpeed, Keywords: []string{"speed"}},
		{Category: models.CategoryWalls, Keywords: []string{"wall"}},
		{Category: models.CategoryInfill, Keywords: []string{"infill"}},
		{Category: models.CategoryBuildPlate, Keywords: []string{"build plate"}},
	}
}

// Classify returns the category of the first rule matching key, or Uncategorized
func (rs Rules) Classify(key string) models.Category {
	lower := strings.ToLower(key)
	for _, r := range rs {
		if r.Matches(lower) {
			return r.Category
		}
	}
	return models.CategoryUncategorized
}
