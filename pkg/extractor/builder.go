package extractor

import "github.com/pluqqy/gcodeview/pkg/models"

// orderedSettings keeps first-insertion order while letting later values
// overwrite earlier ones.
type orderedSettings struct {
	index    map[string]int
	settings []models.Setting
}

func (o *orderedSettings) set(key, value string) {
	if i, ok := o.index[key]; ok {
		o.settings[i].Value = value
		return
	}
	o.index[key] = len(o.settings)
	o.settings = append(o.settings, models.Setting{Key: key, Value: value})
}

// builder holds every category while a report is assembled
type builder struct {
	sections map[models.Category]*orderedSettings
}

func newBuilder() *builder {
	b := &builder{sections: make(map[models.Category]*orderedSettings, len(models.Categories))}
	for _, c := range models.Categories {
		b.sections[c] = &orderedSettings{index: make(map[string]int)}
	}
	return b
}

// Add stores key/value under c. Categories outside the fixed set fall back to Uncategorized.
func (b *builder) Add(c models.Category, key, value string) {
	sec, ok := b.sections[c]
	if !ok {
		sec = b.sections[models.CategoryUncategorized]
	}
	sec.set(key, value)
}

// Report copies the non-empty categories in display order
func (b *builder) Report() *models.Report {
	report := &models.Report{}
	for _, c := range models.Categories {
		sec := b.sections[c]
		if len(sec.settings) == 0 {
			continue
		}
		settings := make([]models.Setting, len(sec.settings))
		copy(settings, sec.settings)
		report.Sections = append(report.Sections, models.Section{Category: c, Settings: settings})
	}
	return report
}
