package emission

// Result itemizes the carbon attributed to each utility, in kg CO₂e.
// Total is always the exact sum of the three components.
type Result struct {
	Electricity float64 `json:"electricity_carbon"`
	Water       float64 `json:"water_carbon"`
	Gas         float64 `json:"gas_carbon"`
	Total       float64 `json:"total_carbon"`
}

// Calculator maps usage quantities to emissions using a region factor table.
// Calculate is a pure function: no side effects, identical inputs give
// identical outputs.
type Calculator struct {
	table *Table
}

func NewCalculator(table *Table) *Calculator {
	if table == nil {
		table = DefaultTable()
	}
	return &Calculator{table: table}
}

// Calculate converts the present usage quantities for the given region.
// An absent quantity contributes zero.
func (c *Calculator) Calculate(region string, electricityKWh, waterM3, gasKWh *float64) Result {
	f := c.table.ForRegion(region)
	var r Result
	if electricityKWh != nil {
		r.Electricity = *electricityKWh * f.Electricity
	}
	if waterM3 != nil {
		r.Water = *waterM3 * f.Water
	}
	if gasKWh != nil {
		r.Gas = *gasKWh * f.Gas
	}
	r.Total = r.Electricity + r.Water + r.Gas
	return r
}
