package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"procurehub/internal/domain/entities"
	"procurehub/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

var _ interfaces.IPORenderer = (*PurchaseOrderRenderer)(nil)

// PurchaseOrderRenderer produces the printable A4 rendition of a purchase
// order that purchasers send to the vendor.
type PurchaseOrderRenderer struct{}

func NewPurchaseOrderRenderer() *PurchaseOrderRenderer {
	return &PurchaseOrderRenderer{}
}

func (r *PurchaseOrderRenderer) Render(po entities.PurchaseOrder, supplier entities.Supplier) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 10, "PURCHASE ORDER", "", 1, "C", false, 0, "")
	doc.Ln(5)

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(0, 6, "PO Number: "+po.PONumber, "", 1, "", false, 0, "")
	doc.CellFormat(0, 6, "Date: "+po.CreatedAt.Format("2006-01-02"), "", 1, "", false, 0, "")
	doc.CellFormat(0, 6, "Status: "+strings.ToUpper(string(po.Status)), "", 1, "", false, 0, "")
	doc.Ln(5)

	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 8, "VENDOR DETAILS", "", 1, "", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, "Name: "+supplier.Name, "", 1, "", false, 0, "")
	if supplier.Address != "" {
		doc.CellFormat(0, 6, "Address: "+supplier.Address, "", 1, "", false, 0, "")
	}
	if supplier.Email != "" {
		doc.CellFormat(0, 6, "Email: "+supplier.Email, "", 1, "", false, 0, "")
	}
	if supplier.Phone != "" {
		doc.CellFormat(0, 6, "Phone: "+supplier.Phone, "", 1, "", false, 0, "")
	}
	doc.Ln(5)

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(80, 8, "Item", "1", 0, "C", false, 0, "")
	doc.CellFormat(30, 8, "Quantity", "1", 0, "C", false, 0, "")
	doc.CellFormat(40, 8, "Unit Price", "1", 0, "C", false, 0, "")
	doc.CellFormat(40, 8, "Total", "1", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 9)
	for _, item := range po.Items {
		doc.CellFormat(80, 7, truncate(item.ItemName, 30), "1", 0, "", false, 0, "")
		doc.CellFormat(30, 7, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
		doc.CellFormat(40, 7, fmt.Sprintf("$%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		doc.CellFormat(40, 7, fmt.Sprintf("$%.2f", item.Total), "1", 1, "R", false, 0, "")
	}

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(150, 8, "TOTAL", "1", 0, "R", false, 0, "")
	doc.CellFormat(40, 8, fmt.Sprintf("$%.2f", po.TotalAmount), "1", 1, "R", false, 0, "")

	if po.Notes != "" {
		doc.Ln(5)
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(0, 6, "Notes:", "", 1, "", false, 0, "")
		doc.SetFont("Helvetica", "", 9)
		doc.MultiCell(0, 5, po.Notes, "", "", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
