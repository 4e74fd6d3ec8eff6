package request

import "procurehub/internal/domain/entities"

// SupplierRequest is the payload for both supplier creation and update;
// rating and status are server-managed and not accepted from callers.
type SupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
	TaxID   string `json:"tax_id"`
}

func (r SupplierRequest) ToSupplier() entities.Supplier {
	return entities.Supplier{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		City:    r.City,
		Country: r.Country,
		TaxID:   r.TaxID,
	}
}
