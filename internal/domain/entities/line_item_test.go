package entities

import "testing"

func TestPriceLineItems(t *testing.T) {
	t.Run("recomputes totals and ignores caller totals", func(t *testing.T) {
		priced := PriceLineItems([]LineItem{
			{ItemID: "i-1", Quantity: 3, UnitPrice: 2.50, Total: 999},
			{ItemID: "i-2", Quantity: 2, UnitPrice: 10},
		})
		if priced[0].Total != 7.5 {
			t.Fatalf("expected 7.5, got %v", priced[0].Total)
		}
		if priced[1].Total != 20 {
			t.Fatalf("expected 20, got %v", priced[1].Total)
		}
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		in := []LineItem{{Quantity: 1, UnitPrice: 5, Total: 0}}
		_ = PriceLineItems(in)
		if in[0].Total != 0 {
			t.Fatalf("input mutated: %v", in[0].Total)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		if got := PriceLineItems(nil); len(got) != 0 {
			t.Fatalf("expected empty, got %v", got)
		}
	})
}

func TestDocumentTotal(t *testing.T) {
	t.Run("sums line totals", func(t *testing.T) {
		total := DocumentTotal([]LineItem{{Total: 7.5}, {Total: 20}, {Total: 0.25}})
		if total != 27.75 {
			t.Fatalf("expected 27.75, got %v", total)
		}
	})

	t.Run("empty list totals zero", func(t *testing.T) {
		if total := DocumentTotal(nil); total != 0 {
			t.Fatalf("expected 0, got %v", total)
		}
	})
}
