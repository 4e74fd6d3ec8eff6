package pdf

import (
	"bytes"
	"testing"
	"time"

	"procurehub/internal/domain/entities"
)

func TestRenderProducesPDF(t *testing.T) {
	po := entities.PurchaseOrder{
		ID:       "po-1",
		PONumber: "PO-00001",
		Items: []entities.LineItem{
			{ItemID: "item-1", ItemName: "Industrial bearing with a very long catalog name", Quantity: 4, UnitPrice: 25.5, Total: 102},
		},
		TotalAmount: 102,
		Status:      entities.ApprovalStatusApproved,
		Notes:       "Deliver to dock 3.\nCall ahead.",
		CreatedAt:   time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
	}
	supplier := entities.Supplier{
		ID:      "sup-1",
		Name:    "Acme Industrial",
		Email:   "sales@acme.test",
		Phone:   "+1 555 0100",
		Address: "12 Foundry Rd",
	}

	out, err := NewPurchaseOrderRenderer().Render(po, supplier)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(out) == 0 {
		t.Fatal("Render() returned empty document")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("Render() output does not start with %%PDF header: %q", out[:8])
	}
}

func TestRenderWithoutOptionalSections(t *testing.T) {
	po := entities.PurchaseOrder{
		ID:        "po-2",
		PONumber:  "PO-00002",
		Status:    entities.ApprovalStatusDraft,
		CreatedAt: time.Now().UTC(),
	}

	out, err := NewPurchaseOrderRenderer().Render(po, entities.Supplier{Name: "Bare Vendor"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("Render() output is not a PDF document")
	}
}
