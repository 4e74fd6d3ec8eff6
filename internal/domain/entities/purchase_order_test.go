package entities

import (
	"testing"
	"time"
)

func TestPurchaseOrder_RequiredApprovalLevels(t *testing.T) {
	cases := []struct {
		name   string
		total  float64
		levels int
	}{
		{name: "small order", total: 7.5, levels: 1},
		{name: "exactly at threshold", total: 10000.00, levels: 1},
		{name: "one cent above threshold", total: 10000.01, levels: 2},
		{name: "large order", total: 250000, levels: 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			po := PurchaseOrder{TotalAmount: tc.total}
			if got := po.RequiredApprovalLevels(); got != tc.levels {
				t.Fatalf("expected %d levels, got %d", tc.levels, got)
			}
		})
	}
}

func TestPurchaseOrder_RecordApproval(t *testing.T) {
	now := time.Now().UTC()

	t.Run("single level approves immediately", func(t *testing.T) {
		po := PurchaseOrder{TotalAmount: 10000, Status: ApprovalStatusDraft}
		got := po.RecordApproval("u-1", now)
		if got.Status != ApprovalStatusApproved {
			t.Fatalf("expected approved, got %s", got.Status)
		}
		if got.ApprovalLevel != 1 || len(got.ApprovedBy) != 1 || got.ApprovedBy[0] != "u-1" {
			t.Fatalf("unexpected approval state: %+v", got)
		}
		if !got.UpdatedAt.Equal(now) {
			t.Fatalf("expected updated_at refresh")
		}
	})

	t.Run("two levels stay pending after first approval", func(t *testing.T) {
		po := PurchaseOrder{TotalAmount: 10000.01, Status: ApprovalStatusDraft}
		first := po.RecordApproval("u-1", now)
		if first.Status != ApprovalStatusPending {
			t.Fatalf("expected pending, got %s", first.Status)
		}
		second := first.RecordApproval("u-2", now)
		if second.Status != ApprovalStatusApproved {
			t.Fatalf("expected approved, got %s", second.Status)
		}
		if second.ApprovalLevel != 2 || len(second.ApprovedBy) != 2 {
			t.Fatalf("unexpected approval state: %+v", second)
		}
	})

	t.Run("duplicate approver still counts", func(t *testing.T) {
		po := PurchaseOrder{TotalAmount: 20000}
		got := po.RecordApproval("u-1", now).RecordApproval("u-1", now)
		if got.Status != ApprovalStatusApproved {
			t.Fatalf("expected approved, got %s", got.Status)
		}
		if got.ApprovedBy[0] != "u-1" || got.ApprovedBy[1] != "u-1" {
			t.Fatalf("unexpected approvers: %v", got.ApprovedBy)
		}
	})

	t.Run("does not share the approver slice with the receiver", func(t *testing.T) {
		po := PurchaseOrder{TotalAmount: 20000, ApprovedBy: []string{"u-1"}, ApprovalLevel: 1}
		got := po.RecordApproval("u-2", now)
		if len(po.ApprovedBy) != 1 {
			t.Fatalf("receiver mutated: %v", po.ApprovedBy)
		}
		if len(got.ApprovedBy) != 2 {
			t.Fatalf("unexpected approvers: %v", got.ApprovedBy)
		}
	})
}

func TestFormatDocNumber(t *testing.T) {
	if got := FormatDocNumber(PrefixRequisition, 1); got != "PR-00001" {
		t.Fatalf("expected PR-00001, got %s", got)
	}
	if got := FormatDocNumber(PrefixInvoice, 123456); got != "INV-123456" {
		t.Fatalf("expected INV-123456, got %s", got)
	}
}

func TestItem_LowStock(t *testing.T) {
	if !(Item{Quantity: 10, ReorderLevel: 10}).LowStock() {
		t.Fatalf("boundary must be inclusive")
	}
	if (Item{Quantity: 11, ReorderLevel: 10}).LowStock() {
		t.Fatalf("above reorder level is not low stock")
	}
}
