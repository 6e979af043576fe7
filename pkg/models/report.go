package models

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category is one of the fixed buckets a setting is routed into
type Category string

const (
	CategoryTemperature     Category = "Temperature"
	CategorySupport         Category = "Support"
	CategoryFilament        Category = "Filament"
	CategoryExtrusionWidths Category = "Extrusion Widths"
	CategoryMotion          Category = "Motion Settings"
	CategoryCooling         Category = "Cooling"
	CategoryRetraction      Category = "Retraction"
	CategorySpeed           Category = "Speed"
	CategoryWalls           Category = "Walls"
	CategoryInfill          Category = "Infill"
	CategoryBuildPlate      Category = "Build Plate"
	CategorySlicerInfo      Category = "Slicer Info"
	CategoryUncategorized   Category = "Uncategorized"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryTemperature,
	CategorySupport,
	CategoryFilament,
	CategoryExtrusionWidths,
	CategoryMotion,
	CategoryCooling,
	CategoryRetraction,
	CategorySpeed,
	CategoryWalls,
	CategoryInfill,
	CategoryBuildPlate,
	CategorySlicerInfo,
	CategoryUncategorized,
}

// ParseCategory matches a category by its display name, ignoring case
func ParseCategory(name string) (Category, bool) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(name)) {
			return c, true
		}
	}
	return "", false
}

// Setting is a single key/value pair taken from a slicer comment
type Setting struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Section holds the settings of one category in first-seen order
type Section struct {
	Category Category
	Settings []Setting
}

// Get returns the value stored for key
func (s Section) Get(key string) (string, bool) {
	for _, setting := range s.Settings {
		if setting.Key == key {
			return setting.Value, true
		}
	}
	return "", false
}

// Report is the result of one extraction. Only categories holding at least
// one setting appear in Sections, always in Categories order.
type Report struct {
	Source   string
	Sections []Section
}

// Section returns the section for a category if it is active
func (r *Report) Section(c Category) (Section, bool) {
	if r == nil {
		return Section{}, false
	}
	for _, sec := range r.Sections {
		if sec.Category == c {
			return sec, true
		}
	}
	return Section{}, false
}

// Lookup returns the value of key within category c
func (r *Report) Lookup(c Category, key string) (string, bool) {
	sec, ok := r.Section(c)
	if !ok {
		return "", false
	}
	return sec.Get(key)
}

// Categories returns the active categories in order
func (r *Report) Categories() []Category {
	if r == nil {
		return nil
	}
	cats := make([]Category, 0, len(r.Sections))
	for _, sec := range r.Sections {
		cats = append(cats, sec.Category)
	}
	return cats
}

// Len returns the total number of settings across all sections
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, sec := range r.Sections {
		n += len(sec.Settings)
	}
	return n
}

// IsEmpty reports whether no category is active
func (r *Report) IsEmpty() bool {
	return r == nil || len(r.Sections) == 0
}

// Filter returns a copy holding only the given categories
func (r *Report) Filter(cats ...Category) *Report {
	out := &Report{Source: r.Source}
	for _, sec := range r.Sections {
		for _, c := range cats {
			if sec.Category == c {
				out.Sections = append(out.Sections, sec)
				break
			}
		}
	}
	return out
}

// MarshalYAML encodes the report as nested mappings, keeping section and key order
func (r *Report) MarshalYAML() (interface{}, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, sec := range r.Sections {
		settings := &yaml.Node{Kind: yaml.MappingNode}
		for _, s := range sec.Settings {
			settings.Content = append(settings.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Key},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Value},
			)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(sec.Category)},
			settings,
		)
	}
	return root, nil
}

// MarshalJSON encodes the report as nested objects, keeping section and key order
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sec := range r.Sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, string(sec.Category)); err != nil {
			return nil, err
		}
		buf.WriteString(":{")
		for j, s := range sec.Settings {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(&buf, s.Key); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			if err := writeJSONString(&buf, s.Value); err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
