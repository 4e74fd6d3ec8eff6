package response

import (
	"time"

	"procurehub/internal/domain/entities"
)

type SupplierResponse struct {
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

func FromSupplier(s entities.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		City:      s.City,
		Country:   s.Country,
		TaxID:     s.TaxID,
		Rating:    s.Rating,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
	}
}

func FromSuppliers(suppliers []entities.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		out[i] = FromSupplier(s)
	}
	return out
}
