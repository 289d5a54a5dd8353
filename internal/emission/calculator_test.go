package emission

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func fptr(v float64) *float64 { return &v }

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCalculateSingaporeElectricity(t *testing.T) {
	c := NewCalculator(nil)

	r := c.Calculate("SG", fptr(100), nil, nil)
	if !approx(r.Electricity, 40.57) {
		t.Errorf("electricity carbon = %v, want 40.57", r.Electricity)
	}
	if r.Water != 0 || r.Gas != 0 {
		t.Errorf("absent utilities contributed: water=%v gas=%v", r.Water, r.Gas)
	}
	if !approx(r.Total, 40.57) {
		t.Errorf("total = %v, want 40.57", r.Total)
	}
}

func TestCalculateCombinations(t *testing.T) {
	c := NewCalculator(nil)

	tests := []struct {
		name        string
		elec, water *float64
		gas         *float64
	}{
		{"all present", fptr(320.5), fptr(15.2), fptr(42)},
		{"electricity only", fptr(320.5), nil, nil},
		{"water only", nil, fptr(15.2), nil},
		{"gas only", nil, nil, fptr(42)},
		{"water and gas", nil, fptr(15.2), fptr(42)},
		{"all absent", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := c.Calculate("SG", tt.elec, tt.water, tt.gas)
			if !approx(r.Total, r.Electricity+r.Water+r.Gas) {
				t.Errorf("total %v is not the sum of components %v+%v+%v",
					r.Total, r.Electricity, r.Water, r.Gas)
			}
			if tt.elec == nil && r.Electricity != 0 {
				t.Errorf("electricity carbon = %v for absent usage", r.Electricity)
			}
			if tt.water == nil && r.Water != 0 {
				t.Errorf("water carbon = %v for absent usage", r.Water)
			}
			if tt.gas == nil && r.Gas != 0 {
				t.Errorf("gas carbon = %v for absent usage", r.Gas)
			}
		})
	}
}

func TestCalculateZeroUsageIsNotAbsent(t *testing.T) {
	c := NewCalculator(nil)

	r := c.Calculate("SG", fptr(0), nil, nil)
	if r.Total != 0 || r.Electricity != 0 {
		t.Errorf("zero usage produced carbon: %+v", r)
	}
}

func TestCalculateUnknownRegionFallsBack(t *testing.T) {
	c := NewCalculator(nil)

	want := c.Calculate("SG", fptr(100), fptr(10), fptr(5))
	got := c.Calculate("ZZ", fptr(100), fptr(10), fptr(5))
	if got != want {
		t.Errorf("unknown region result %+v != default region result %+v", got, want)
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	c := NewCalculator(nil)

	first := c.Calculate("SG", fptr(123.4), fptr(5.6), fptr(7.8))
	for i := 0; i < 5; i++ {
		if r := c.Calculate("SG", fptr(123.4), fptr(5.6), fptr(7.8)); r != first {
			t.Fatalf("run %d gave %+v, first run gave %+v", i, r, first)
		}
	}
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "factors.yaml")
	content := `default_region: SG
regions:
  SG:
    electricity_kg_per_kwh: 0.4057
    water_kg_per_m3: 0.419
    gas_kg_per_kwh: 0.1837
  GB:
    electricity_kg_per_kwh: 0.207
    water_kg_per_m3: 0.344
    gas_kg_per_kwh: 0.183
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if table.DefaultRegion() != "SG" {
		t.Errorf("default region = %s", table.DefaultRegion())
	}
	if f := table.ForRegion("gb"); f.Electricity != 0.207 {
		t.Errorf("GB electricity factor = %v, want 0.207", f.Electricity)
	}
	if f := table.ForRegion("FR"); f.Electricity != 0.4057 {
		t.Errorf("unknown region did not fall back to SG: %v", f.Electricity)
	}
}

func TestLoadTableErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"no regions", "default_region: SG\n"},
		{"missing default", "regions:\n  SG:\n    electricity_kg_per_kwh: 0.4\n"},
		{"default not defined", "default_region: GB\nregions:\n  SG:\n    electricity_kg_per_kwh: 0.4\n"},
		{"negative factor", "default_region: SG\nregions:\n  SG:\n    electricity_kg_per_kwh: -1\n"},
		{"malformed yaml", "regions: [not: a map\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadTable(path); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, err := LoadTable(filepath.Join(dir, "does-not-exist.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
