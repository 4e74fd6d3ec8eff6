package entities

// LineItem is a (item, quantity, unit price, total) tuple embedded in
// requisitions, orders, receipts and invoices. ItemName is a snapshot taken
// at document creation; it is not kept in sync with later item renames.
//
// UnitPrice is whatever the caller supplied, which allows price overrides at
// order time; it is not re-derived from the item's catalog price.
type LineItem struct {
	ItemID    string  `json:"item_id"`
	ItemName  string  `json:"item_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// PriceLineItems recomputes every line total as quantity * unit_price.
// Caller-supplied totals are discarded; documents never trust them.
func PriceLineItems(items []LineItem) []LineItem {
	priced := make([]LineItem, len(items))
	for i, it := range items {
		it.Total = float64(it.Quantity) * it.UnitPrice
		priced[i] = it
	}
	return priced
}

// DocumentTotal sums the line totals. An empty list totals zero.
func DocumentTotal(items []LineItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Total
	}
	return total
}
