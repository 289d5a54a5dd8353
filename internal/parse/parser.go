package parse

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Fields is the best-effort extraction from a utility bill. Every field is
// independently optional; RawText is always carried through for audit and
// later re-parsing.
type Fields struct {
	PeriodStart *time.Time `json:"period_start,omitempty"`
	PeriodEnd   *time.Time `json:"period_end,omitempty"`
	Electricity *float64   `json:"electricity_usage,omitempty"` // kWh
	Water       *float64   `json:"water_usage,omitempty"`       // m³
	Gas         *float64   `json:"gas_usage,omitempty"`         // kWh
	RawText     string     `json:"raw_text"`
}

var (
	// Date ranges, most specific first.
	reNumericRange = regexp.MustCompile(`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\s*(?:-|–|—|to|through)\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`)
	reISORange     = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})\s*(?:-|–|—|to|through)\s*(\d{4}-\d{2}-\d{2})`)
	reTextRange    = regexp.MustCompile(`(?i)(\d{1,2}\s+[a-z]{3,9}\.?\s+\d{4})\s*(?:-|–|—|to|through)\s*(\d{1,2}\s+[a-z]{3,9}\.?\s+\d{4})`)
	reMonthRange   = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s*(?:-|–|—|to)\s*(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\b`)

	// Usage quantities, unit-anchored.
	reElectricityLabeled = regexp.MustCompile(`(?i)(?:electricity|electrical|power|energy)[^\d\n]{0,40}(\d[\d,]*(?:\.\d+)?)\s*kwh\b`)
	reKWh                = regexp.MustCompile(`(?i)(\d[\d,]*(?:\.\d+)?)\s*kwh\b`)
	// No trailing \b after m³: it is a non-word rune, so a word boundary
	// never follows it.
	reWaterUnit    = regexp.MustCompile(`(?i)(\d[\d,]*(?:\.\d+)?)\s*(?:m³|m3\b|cu\s*m\b|cubic\s*met(?:er|re)s?\b)`)
	// Unitless fallback needs a usage word, or account/invoice numbers near
	// "water" would be read as quantities.
	reWaterLabeled = regexp.MustCompile(`(?i)water\s+(?:consumption|usage)\s*:?\s*(\d[\d,]*(?:\.\d+)?)`)
	reGasLabeled   = regexp.MustCompile(`(?i)gas[^\d\n]{0,40}(\d[\d,]*(?:\.\d+)?)\s*(?:kwh|units?)\b`)
	reGasWorded    = regexp.MustCompile(`(?i)gas\s+(?:consumption|usage|supply)\s*:?\s*(\d[\d,]*(?:\.\d+)?)`)
	reGasSuffixed  = regexp.MustCompile(`(?i)(\d[\d,]*(?:\.\d+)?)\s*kwh\s*(?:of\s*)?gas\b`)
)

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Parser extracts billing-period dates and per-utility quantities from text
// already gated as a utility bill. It never returns an error: fields it cannot
// locate stay nil, since downstream manual correction is always possible.
type Parser struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger, now: time.Now}
}

// Parse applies the ordered heuristics. Safe for concurrent use.
func (p *Parser) Parse(text string) Fields {
	f := Fields{RawText: text}
	if strings.TrimSpace(text) == "" {
		return f
	}

	f.PeriodStart, f.PeriodEnd = p.parsePeriod(text)
	f.Gas = p.parseGas(text)
	f.Electricity = p.parseElectricity(text)
	f.Water = p.parseWater(text)

	p.logger.Debug("parse.bill_fields",
		"has_period", f.PeriodStart != nil,
		"has_electricity", f.Electricity != nil,
		"has_water", f.Water != nil,
		"has_gas", f.Gas != nil,
	)
	return f
}

func (p *Parser) parsePeriod(text string) (*time.Time, *time.Time) {
	type rangeMatch struct {
		re      *regexp.Regexp
		layouts []string
	}
	exact := []rangeMatch{
		{reISORange, []string{"2006-01-02"}},
		{reNumericRange, []string{"2/1/2006", "2/1/06", "2-1-2006", "2-1-06"}},
		{reTextRange, []string{"2 Jan 2006", "2 January 2006", "2 Jan. 2006"}},
	}
	for _, rm := range exact {
		m := rm.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		start, ok1 := parseDate(m[1], rm.layouts)
		end, ok2 := parseDate(m[2], rm.layouts)
		if ok1 && ok2 && !start.After(end) {
			return &start, &end
		}
	}

	// Calendar-month mention, e.g. "Jan–Feb". The bill rarely carries a year
	// here, so the current year is assumed.
	if m := reMonthRange.FindStringSubmatch(text); m != nil {
		year := p.now().Year()
		start := time.Date(year, months[strings.ToLower(m[1])], 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(year, months[strings.ToLower(m[2])], 1, 0, 0, 0, 0, time.UTC)
		if !start.After(end) {
			return &start, &end
		}
	}
	return nil, nil
}

func parseDate(s string, layouts []string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (p *Parser) parseElectricity(text string) *float64 {
	if m := reElectricityLabeled.FindStringSubmatch(text); m != nil {
		return parseAmount(m[1])
	}
	// Fall back to any kWh quantity that is not a gas reading.
	for _, loc := range reKWh.FindAllStringSubmatchIndex(text, -1) {
		if nearGas(text, loc[0], loc[1]) {
			continue
		}
		return parseAmount(text[loc[2]:loc[3]])
	}
	return nil
}

func (p *Parser) parseWater(text string) *float64 {
	if m := reWaterUnit.FindStringSubmatch(text); m != nil {
		return parseAmount(m[1])
	}
	if m := reWaterLabeled.FindStringSubmatch(text); m != nil {
		return parseAmount(m[1])
	}
	return nil
}

func (p *Parser) parseGas(text string) *float64 {
	if m := reGasSuffixed.FindStringSubmatch(text); m != nil {
		return parseAmount(m[1])
	}
	if m := reGasLabeled.FindStringSubmatch(text); m != nil {
		return parseAmount(m[1])
	}
	if m := reGasWorded.FindStringSubmatch(text); m != nil {
		return parseAmount(m[1])
	}
	return nil
}

// nearGas reports whether the window around [start,end) mentions gas, which
// disqualifies a bare kWh quantity from being read as electricity.
func nearGas(text string, start, end int) bool {
	lo := start - 24
	if lo < 0 {
		lo = 0
	}
	hi := end + 12
	if hi > len(text) {
		hi = len(text)
	}
	return strings.Contains(strings.ToLower(text[lo:hi]), "gas")
}

func parseAmount(s string) *float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return nil
	}
	return &v
}
