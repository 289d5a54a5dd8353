package parse

import (
	"testing"
	"time"
)

func fixedNowParser() *Parser {
	p := NewParser(nil)
	p.now = func() time.Time {
		return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	}
	return p
}

func TestParseTypicalBill(t *testing.T) {
	p := fixedNowParser()

	text := "SP Group electricity bill. Consumption 100 kwh. Billing period Jan–Feb. Account 12345."
	f := p.Parse(text)

	if f.Electricity == nil || *f.Electricity != 100 {
		t.Fatalf("electricity = %v, want 100", f.Electricity)
	}
	if f.PeriodStart == nil || f.PeriodEnd == nil {
		t.Fatal("billing period not extracted")
	}
	wantStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	if !f.PeriodStart.Equal(wantStart) || !f.PeriodEnd.Equal(wantEnd) {
		t.Errorf("period = %v..%v, want %v..%v", f.PeriodStart, f.PeriodEnd, wantStart, wantEnd)
	}
	if f.RawText != text {
		t.Error("raw text not preserved")
	}
}

func TestParseAllThreeUtilities(t *testing.T) {
	p := fixedNowParser()

	text := "Billing period 2024-01-01 to 2024-01-31\n" +
		"Electricity: 320.5 kWh\n" +
		"Water: 15.2 m3\n" +
		"Town gas consumption: 42 kWh"
	f := p.Parse(text)

	if f.Electricity == nil || *f.Electricity != 320.5 {
		t.Errorf("electricity = %v, want 320.5", f.Electricity)
	}
	if f.Water == nil || *f.Water != 15.2 {
		t.Errorf("water = %v, want 15.2", f.Water)
	}
	if f.Gas == nil || *f.Gas != 42 {
		t.Errorf("gas = %v, want 42", f.Gas)
	}
	if f.PeriodStart == nil || !f.PeriodStart.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("period start = %v, want 2024-01-01", f.PeriodStart)
	}
	if f.PeriodEnd == nil || !f.PeriodEnd.Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("period end = %v, want 2024-01-31", f.PeriodEnd)
	}
}

func TestParseDateLayouts(t *testing.T) {
	p := fixedNowParser()

	tests := []struct {
		name  string
		text  string
		start time.Time
		end   time.Time
	}{
		{
			name:  "numeric day first",
			text:  "Period: 01/01/2024 - 31/01/2024",
			start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "textual",
			text:  "For usage from 1 Jan 2024 to 31 Jan 2024",
			start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "month names assume current year",
			text:  "Billing period Mar to Apr",
			start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := p.Parse(tt.text)
			if f.PeriodStart == nil || f.PeriodEnd == nil {
				t.Fatalf("period not extracted from %q", tt.text)
			}
			if !f.PeriodStart.Equal(tt.start) {
				t.Errorf("start = %v, want %v", f.PeriodStart, tt.start)
			}
			if !f.PeriodEnd.Equal(tt.end) {
				t.Errorf("end = %v, want %v", f.PeriodEnd, tt.end)
			}
		})
	}
}

func TestParseInvertedRangeDiscarded(t *testing.T) {
	p := fixedNowParser()

	for _, text := range []string{
		"Period: 31/01/2024 to 01/01/2024",
		"Billing period Oct to Feb",
	} {
		f := p.Parse(text)
		if f.PeriodStart != nil || f.PeriodEnd != nil {
			t.Errorf("Parse(%q) accepted an inverted range: %v..%v", text, f.PeriodStart, f.PeriodEnd)
		}
	}
}

func TestParsePartialExtraction(t *testing.T) {
	p := fixedNowParser()

	f := p.Parse("Water consumption: 18 m³ for the month")
	if f.Water == nil || *f.Water != 18 {
		t.Fatalf("water = %v, want 18", f.Water)
	}
	if f.Electricity != nil || f.Gas != nil {
		t.Errorf("unexpected fields: electricity=%v gas=%v", f.Electricity, f.Gas)
	}
	if f.PeriodStart != nil {
		t.Errorf("unexpected period start %v", f.PeriodStart)
	}
}

func TestParseGasNotMistakenForElectricity(t *testing.T) {
	p := fixedNowParser()

	f := p.Parse("Gas usage 42 kWh. Water 10 m3.")
	if f.Gas == nil || *f.Gas != 42 {
		t.Fatalf("gas = %v, want 42", f.Gas)
	}
	if f.Electricity != nil {
		t.Errorf("gas reading misattributed to electricity: %v", *f.Electricity)
	}
	if f.Water == nil || *f.Water != 10 {
		t.Errorf("water = %v, want 10", f.Water)
	}
}

func TestParseWaterWithoutUnit(t *testing.T) {
	p := fixedNowParser()

	f := p.Parse("Water usage: 18 for the month")
	if f.Water == nil || *f.Water != 18 {
		t.Fatalf("water = %v, want 18", f.Water)
	}

	// Numbers near "water" that are not quantities must not be picked up.
	f = p.Parse("Water account number 12345678")
	if f.Water != nil {
		t.Errorf("account number read as water usage: %v", *f.Water)
	}
}

func TestParseGasWithoutUnit(t *testing.T) {
	p := fixedNowParser()

	f := p.Parse("Gas usage: 42 this month")
	if f.Gas == nil || *f.Gas != 42 {
		t.Fatalf("gas = %v, want 42", f.Gas)
	}

	f = p.Parse("Gas account no. 883")
	if f.Gas != nil {
		t.Errorf("account number read as gas usage: %v", *f.Gas)
	}
}

func TestParseThousandsSeparator(t *testing.T) {
	p := fixedNowParser()

	f := p.Parse("Electricity consumption 1,234 kWh this period")
	if f.Electricity == nil || *f.Electricity != 1234 {
		t.Fatalf("electricity = %v, want 1234", f.Electricity)
	}
}

func TestParseNeverFails(t *testing.T) {
	p := fixedNowParser()

	for _, text := range []string{
		"",
		"   \n\t ",
		"lorem ipsum dolor sit amet %%% ### 🔥",
		"kWh m3 gas water electricity with no numbers at all",
	} {
		f := p.Parse(text)
		if f.RawText != text {
			t.Errorf("Parse(%q) lost raw text", text)
		}
		if f.Electricity != nil || f.Water != nil || f.Gas != nil {
			t.Errorf("Parse(%q) invented usage values", text)
		}
	}
}
