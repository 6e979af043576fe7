package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() *Report {
	return &Report{
		Source: "benchy.gcode",
		Sections: []Section{
			{Category: CategoryTemperature, Settings: []Setting{
				{Key: "nozzle_temperature", Value: "215"},
				{Key: "bed_temperature", Value: "60"},
			}},
			{Category: CategoryInfill, Settings: []Setting{
				{Key: "sparse_infill_density", Value: "15%"},
			}},
		},
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
		ok    bool
	}{
		{"Temperature", CategoryTemperature, true},
		{"  build plate ", CategoryBuildPlate, true},
		{"MOTION SETTINGS", CategoryMotion, true},
		{"slicer info", CategorySlicerInfo, true},
		{"motion", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseCategory(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoriesOrder(t *testing.T) {
	require.Len(t, Categories, 13)
	assert.Equal(t, CategoryTemperature, Categories[0])
	assert.Equal(t, CategorySlicerInfo, Categories[11])
	assert.Equal(t, CategoryUncategorized, Categories[12])
}

func TestReportAccessors(t *testing.T) {
	r := sampleReport()

	assert.Equal(t, 3, r.Len())
	assert.False(t, r.IsEmpty())
	assert.Equal(t, []Category{CategoryTemperature, CategoryInfill}, r.Categories())

	v, ok := r.Lookup(CategoryTemperature, "bed_temperature")
	assert.True(t, ok)
	assert.Equal(t, "60", v)

	_, ok = r.Lookup(CategoryWalls, "wall_loops")
	assert.False(t, ok)
	_, ok = r.Lookup(CategoryInfill, "bed_temperature")
	assert.False(t, ok)
}

func TestNilReport(t *testing.T) {
	var r *Report
	assert.True(t, r.IsEmpty())
	assert.Equal(t, 0, r.Len())
	assert.Nil(t, r.Categories())
	_, ok := r.Section(CategoryTemperature)
	assert.False(t, ok)
}

func TestReportFilter(t *testing.T) {
	r := sampleReport()

	filtered := r.Filter(CategoryInfill, CategoryWalls)
	assert.Equal(t, "benchy.gcode", filtered.Source)
	assert.Equal(t, []Category{CategoryInfill}, filtered.Categories())
	assert.Equal(t, 3, r.Len(), "filter must not modify the original")

	assert.True(t, r.Filter().IsEmpty())
}

func TestReportMarshalJSON(t *testing.T) {
	data, err := json.Marshal(sampleReport())
	require.NoError(t, err)
	assert.Equal(t,
		`{"Temperature":{"nozzle_temperature":"215","bed_temperature":"60"},"Infill":{"sparse_infill_density":"15%"}}`,
		string(data))

	data, err = json.Marshal(&Report{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestReportMarshalJSONEscapes(t *testing.T) {
	r := &Report{Sections: []Section{{Category: CategoryUncategorized, Settings: []Setting{
		{Key: "start_gcode", Value: "G28 \"home\"\nG1 Z5"},
	}}}}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "G28 \"home\"\nG1 Z5", decoded["Uncategorized"]["start_gcode"])
}

func TestReportMarshalYAML(t *testing.T) {
	data, err := yaml.Marshal(sampleReport())
	require.NoError(t, err)

	expected := "Temperature:\n" +
		"    nozzle_temperature: \"215\"\n" +
		"    bed_temperature: \"60\"\n" +
		"Infill:\n" +
		"    sparse_infill_density: 15%\n"
	assert.Equal(t, expected, string(data))
}
