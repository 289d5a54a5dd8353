package emission

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Factors converts one unit of usage into kilograms of CO₂-equivalent.
// Gas is metered as kWh of town gas, matching the electricity unit.
type Factors struct {
	Electricity float64 `yaml:"electricity_kg_per_kwh"`
	Water       float64 `yaml:"water_kg_per_m3"`
	Gas         float64 `yaml:"gas_kg_per_kwh"`
}

// Singapore grid/utility factors, the built-in default region.
var defaultFactors = Factors{
	Electricity: 0.4057,
	Water:       0.419,
	Gas:         0.1837,
}

// Table is a region-keyed emission-factor lookup. It is immutable after
// construction and shared by reference across concurrent pipeline runs.
type Table struct {
	defaultRegion string
	regions       map[string]Factors
}

// DefaultTable returns the built-in table (SG only).
func DefaultTable() *Table {
	return &Table{
		defaultRegion: "SG",
		regions:       map[string]Factors{"SG": defaultFactors},
	}
}

type tableFile struct {
	DefaultRegion string             `yaml:"default_region"`
	Regions       map[string]Factors `yaml:"regions"`
}

// LoadTable reads a YAML factor table from path.
func LoadTable(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read factors file: %w", err)
	}
	var tf tableFile
	if err := yaml.Unmarshal(raw, &tf); err != nil {
		return nil, fmt.Errorf("parse factors file: %w", err)
	}
	if len(tf.Regions) == 0 {
		return nil, fmt.Errorf("factors file %s defines no regions", path)
	}
	for region, f := range tf.Regions {
		if f.Electricity < 0 || f.Water < 0 || f.Gas < 0 {
			return nil, fmt.Errorf("region %s has a negative factor", region)
		}
	}
	if tf.DefaultRegion == "" {
		return nil, fmt.Errorf("factors file %s missing default_region", path)
	}
	if _, ok := tf.Regions[tf.DefaultRegion]; !ok {
		return nil, fmt.Errorf("default_region %s not present in regions", tf.DefaultRegion)
	}
	return &Table{defaultRegion: tf.DefaultRegion, regions: tf.Regions}, nil
}

// ForRegion returns the factors for region, falling back to the default
// region when the key is unknown.
func (t *Table) ForRegion(region string) Factors {
	if f, ok := t.regions[strings.ToUpper(strings.TrimSpace(region))]; ok {
		return f
	}
	return t.regions[t.defaultRegion]
}

// DefaultRegion returns the table's fallback region code.
func (t *Table) DefaultRegion() string {
	return t.defaultRegion
}
