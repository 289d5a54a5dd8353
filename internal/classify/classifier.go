package classify

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/ecotrack-app/carbon-tracker/constants"
)

const (
	keywordPoints = 1
	patternPoints = 2
	// minScore is the minimum score a category needs before it is considered
	// a match at all.
	minScore = 3
	// confidence is score scaled by this multiplier, capped at 100.
	confidenceMultiplier = 10
)

// Verdict is the classifier's decision for one document.
type Verdict struct {
	DocumentType    constants.DocumentType `json:"document_type"`
	Confidence      int                    `json:"confidence"` // 0..100
	MatchedKeywords []string               `json:"matched_keywords"`
	Diagnostic      string                 `json:"diagnostic,omitempty"` // set whenever the document is not a utility bill
}

type pattern struct {
	name string
	re   *regexp.Regexp
}

type rule struct {
	docType  constants.DocumentType
	keywords []string
	patterns []pattern
}

// rules is read-only after init and shared by all concurrent classifications.
// Order matters: it is the tie-break among non-bill categories.
var rules = []rule{
	{
		docType: constants.DocTypeUtilityBill,
		keywords: []string{
			"electricity", "utility", "utilities", "kwh", "water", "gas",
			"meter", "billing period", "tariff", "consumption", "usage",
			"sp group", "sp services", "power supply", "town gas",
		},
		patterns: []pattern{
			{"kwh-quantity", regexp.MustCompile(`(?i)\b\d[\d,]*(?:\.\d+)?\s*kwh\b`)},
			{"water-quantity", regexp.MustCompile(`(?i)\b\d[\d,]*(?:\.\d+)?\s*(?:m³|m3\b|cu\s*m\b|cubic\s*met(?:er|re)s?\b)`)},
			{"meter-reading", regexp.MustCompile(`(?i)\bmeter\s*(?:no\.?|number|reading)\b`)},
		},
	},
	{
		docType: constants.DocTypeFlightTicket,
		keywords: []string{
			"boarding pass", "flight", "airline", "gate", "seat",
			"departure", "arrival", "passenger", "airport", "terminal",
			"boarding time", "cabin",
		},
		patterns: []pattern{
			{"flight-number", regexp.MustCompile(`(?i)\b(?:flight|flt)\s*(?:no\.?|number)?\s*:?\s*[a-z]{2}\s?\d{2,4}\b`)},
			{"seat-assignment", regexp.MustCompile(`(?i)\bseat\s*:?\s*\d{1,2}[a-k]\b`)},
		},
	},
	{
		docType: constants.DocTypeReceipt,
		keywords: []string{
			"receipt", "cashier", "change due", "subtotal", "thank you",
			"cash", "visa", "mastercard", "store", "qty",
		},
		patterns: []pattern{
			{"line-total", regexp.MustCompile(`(?i)\btotal\s*:?\s*\$?\s*\d[\d,]*\.\d{2}\b`)},
			{"change-amount", regexp.MustCompile(`(?i)\bchange\s*:?\s*\$?\s*\d[\d,]*\.\d{2}\b`)},
		},
	},
	{
		docType: constants.DocTypeInvoice,
		keywords: []string{
			"invoice", "bill to", "payment terms", "due date",
			"purchase order", "amount due", "remittance", "net 30",
		},
		patterns: []pattern{
			{"invoice-number", regexp.MustCompile(`(?i)\binvoice\s*(?:no\.?|number|#)\s*:?\s*[\w-]+`)},
			{"po-number", regexp.MustCompile(`(?i)\b(?:po|p\.o\.)\s*(?:no\.?|number|#)\s*:?\s*[\w-]+`)},
		},
	},
}

// Classifier scores extracted text against the category rule table. It holds
// no mutable state and is safe for concurrent use.
type Classifier struct {
	logger *slog.Logger
}

func NewClassifier(logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{logger: logger}
}

type score struct {
	points  int
	matched []string
}

// Classify returns the best-matching document category for text.
// The utility-bill category wins whenever it clears the minimum score, so a
// bill that shares vocabulary with an invoice is still treated as a bill.
func (c *Classifier) Classify(text string) Verdict {
	if strings.TrimSpace(text) == "" {
		return Verdict{
			DocumentType:    constants.DocTypeUnknown,
			Confidence:      0,
			MatchedKeywords: []string{},
			Diagnostic:      "OCR text is empty",
		}
	}

	lower := strings.ToLower(text)
	scores := make([]score, len(rules))
	for i, r := range rules {
		scores[i] = scoreRule(r, lower, text)
	}

	// Utility-bill priority: rules[0].
	if scores[0].points >= minScore {
		v := Verdict{
			DocumentType:    constants.DocTypeUtilityBill,
			Confidence:      confidence(scores[0].points),
			MatchedKeywords: scores[0].matched,
		}
		c.logger.Debug("classify.utility_bill", "score", scores[0].points, "matched", len(v.MatchedKeywords))
		return v
	}

	// Otherwise highest score wins; ties resolved by rule order.
	best := -1
	for i := 1; i < len(rules); i++ {
		if scores[i].points < minScore {
			continue
		}
		if best == -1 || scores[i].points > scores[best].points {
			best = i
		}
	}
	if best == -1 {
		c.logger.Debug("classify.unknown", "text_bytes", len(text))
		return Verdict{
			DocumentType:    constants.DocTypeUnknown,
			Confidence:      0,
			MatchedKeywords: []string{},
			Diagnostic:      "Unable to identify document type",
		}
	}

	dt := rules[best].docType
	v := Verdict{
		DocumentType:    dt,
		Confidence:      confidence(scores[best].points),
		MatchedKeywords: scores[best].matched,
		Diagnostic:      fmt.Sprintf("document looks like a %s, not a utility bill", dt.Label()),
	}
	c.logger.Debug("classify.rejected", "document_type", string(dt), "score", scores[best].points)
	return v
}

func scoreRule(r rule, lower, original string) score {
	s := score{matched: []string{}}
	for _, kw := range r.keywords {
		if strings.Contains(lower, kw) {
			s.points += keywordPoints
			s.matched = append(s.matched, kw)
		}
	}
	for _, p := range r.patterns {
		if p.re.MatchString(original) {
			s.points += patternPoints
			s.matched = append(s.matched, p.name)
		}
	}
	return s
}

func confidence(points int) int {
	c := points * confidenceMultiplier
	if c > 100 {
		c = 100
	}
	return c
}
