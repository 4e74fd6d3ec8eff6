package interfaces

import "procurehub/internal/domain/entities"

// IPORenderer renders a fully-resolved purchase order and its supplier into
// a downloadable document.
type IPORenderer interface {
	Render(po entities.PurchaseOrder, supplier entities.Supplier) ([]byte, error)
}
