package entities

import "fmt"

// Document number prefixes, one per numbered collection.
const (
	PrefixRequisition = "PR"
	PrefixOrder       = "PO"
	PrefixReceipt     = "GR"
	PrefixInvoice     = "INV"
)

// FormatDocNumber renders the human-readable business identifier for a
// document, e.g. FormatDocNumber("PO", 1) == "PO-00001". Sequence values
// come from the sequences table and are assigned once, never reused.
func FormatDocNumber(prefix string, seq int) string {
	return fmt.Sprintf("%s-%05d", prefix, seq)
}
