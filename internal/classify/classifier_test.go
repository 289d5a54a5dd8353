package classify

import (
	"testing"

	"github.com/ecotrack-app/carbon-tracker/constants"
)

func TestClassifyEmptyText(t *testing.T) {
	c := NewClassifier(nil)

	for _, text := range []string{"", "   ", "\n\t  \n"} {
		v := c.Classify(text)
		if v.DocumentType != constants.DocTypeUnknown {
			t.Errorf("Classify(%q) type = %s, want UNKNOWN", text, v.DocumentType)
		}
		if v.Diagnostic != "OCR text is empty" {
			t.Errorf("Classify(%q) diagnostic = %q", text, v.Diagnostic)
		}
		if len(v.MatchedKeywords) != 0 {
			t.Errorf("Classify(%q) matched %v, want none", text, v.MatchedKeywords)
		}
		if v.Confidence != 0 {
			t.Errorf("Classify(%q) confidence = %d, want 0", text, v.Confidence)
		}
	}
}

func TestClassifyUtilityBill(t *testing.T) {
	c := NewClassifier(nil)

	text := "Your electricity consumption for this billing period was 100 kWh."
	v := c.Classify(text)
	if v.DocumentType != constants.DocTypeUtilityBill {
		t.Fatalf("type = %s, want UTILITY_BILL", v.DocumentType)
	}
	if v.Confidence < 30 {
		t.Errorf("confidence = %d, want >= 30", v.Confidence)
	}
	if len(v.MatchedKeywords) == 0 {
		t.Error("matched keywords empty")
	}
	if v.Diagnostic != "" {
		t.Errorf("diagnostic = %q, want empty for a bill", v.Diagnostic)
	}
}

func TestClassifyUtilityBillPriorityOverInvoice(t *testing.T) {
	c := NewClassifier(nil)

	// Shares invoice vocabulary but carries enough utility-specific signal.
	text := "Invoice. Amount due by due date 15/02/2024. Electricity consumption 250 kWh. Water usage 12 m3. Tariff: standard."
	v := c.Classify(text)
	if v.DocumentType != constants.DocTypeUtilityBill {
		t.Fatalf("type = %s, want UTILITY_BILL despite invoice terms", v.DocumentType)
	}
}

func TestClassifyFlightTicket(t *testing.T) {
	c := NewClassifier(nil)

	text := "BOARDING PASS\nPassenger: TAN WEI MING\nFlight SQ 318\nGate B12 Seat 32A\nDeparture 09:30 Terminal 3\nAmount due: 0.00"
	v := c.Classify(text)
	if v.DocumentType != constants.DocTypeFlightTicket {
		t.Fatalf("type = %s, want FLIGHT_TICKET", v.DocumentType)
	}
	if v.Diagnostic == "" {
		t.Error("non-bill verdict must carry a diagnostic")
	}
}

func TestClassifyReceipt(t *testing.T) {
	c := NewClassifier(nil)

	text := "RECEIPT\nCold Storage\nQty 2 Milk 5.80\nSubtotal: 5.80\nTotal: 6.20\nCash 10.00 Change: 3.80\nThank you, please come again"
	v := c.Classify(text)
	if v.DocumentType != constants.DocTypeReceipt {
		t.Fatalf("type = %s, want RECEIPT", v.DocumentType)
	}
}

func TestClassifyInvoice(t *testing.T) {
	c := NewClassifier(nil)

	text := "TAX INVOICE\nInvoice No: INV-2024-0042\nBill To: Acme Pte Ltd\nPayment Terms: Net 30\nAmount Due: 1,200.00\nDue Date: 30/09/2024"
	v := c.Classify(text)
	if v.DocumentType != constants.DocTypeInvoice {
		t.Fatalf("type = %s, want INVOICE", v.DocumentType)
	}
}

func TestClassifyUnknown(t *testing.T) {
	c := NewClassifier(nil)

	v := c.Classify("the quick brown fox jumps over the lazy dog")
	if v.DocumentType != constants.DocTypeUnknown {
		t.Fatalf("type = %s, want UNKNOWN", v.DocumentType)
	}
	if v.Diagnostic != "Unable to identify document type" {
		t.Errorf("diagnostic = %q", v.Diagnostic)
	}
}

func TestClassifyEndToEndSample(t *testing.T) {
	c := NewClassifier(nil)

	text := "SP Group electricity bill. Consumption 100 kwh. Billing period Jan–Feb. Account 12345."
	v := c.Classify(text)
	if v.DocumentType != constants.DocTypeUtilityBill {
		t.Fatalf("type = %s, want UTILITY_BILL", v.DocumentType)
	}
	if v.Confidence < 30 {
		t.Errorf("confidence = %d, want >= 30", v.Confidence)
	}
}
