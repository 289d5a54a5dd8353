package constants

// DocumentType is the canonical classifier verdict for an uploaded document.
type DocumentType string

// Stable values (store these exact strings in DB).
const (
	DocTypeUnknown      DocumentType = "UNKNOWN"
	DocTypeUtilityBill  DocumentType = "UTILITY_BILL"
	DocTypeFlightTicket DocumentType = "FLIGHT_TICKET"
	DocTypeReceipt      DocumentType = "RECEIPT"
	DocTypeInvoice      DocumentType = "INVOICE"
)

// Label returns a human-readable name for diagnostics.
func (t DocumentType) Label() string {
	switch t {
	case DocTypeUtilityBill:
		return "utility bill"
	case DocTypeFlightTicket:
		return "flight ticket"
	case DocTypeReceipt:
		return "purchase receipt"
	case DocTypeInvoice:
		return "invoice"
	default:
		return "unknown document"
	}
}
