package entities

import "time"

const (
	SupplierStatusActive = "active"

	DefaultSupplierRating = 5.0
)

// Supplier is a vendor master record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Purchase orders snapshot the supplier name at creation time; renaming a
// supplier does not rewrite historical documents.
type Supplier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	Country   string    `json:"country,omitempty"`
	TaxID     string    `json:"tax_id,omitempty"`
	Rating    float64   `json:"rating"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
