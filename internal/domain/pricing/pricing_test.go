package pricing

import (
	"math"
	"testing"

	"atelier_auto/internal/domain/entities"
)

func intPtr(v int) *int { return &v }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestItemTotal(t *testing.T) {
	t.Run("part is unit price times quantity", func(t *testing.T) {
		it := entities.LineItem{Kind: entities.ItemKindPart, UnitPrice: 45.50, Quantity: intPtr(3)}
		if got := ItemTotal(it); !almostEqual(got, 136.50) {
			t.Fatalf("expected 136.50, got %v", got)
		}
	})

	t.Run("flat labor is the unit price alone", func(t *testing.T) {
		it := entities.LineItem{Kind: entities.ItemKindLabor, UnitPrice: 250}
		if got := ItemTotal(it); !almostEqual(got, 250) {
			t.Fatalf("expected 250, got %v", got)
		}
	})

	t.Run("time-based labor with discount", func(t *testing.T) {
		it := entities.LineItem{
			Kind:            entities.ItemKindLabor,
			UnitPrice:       100,
			Quantity:        intPtr(90),
			CalculateByTime: true,
			Discount:        intPtr(10),
		}
		// 100/h x 1.5h x 0.9
		if got := ItemTotal(it); !almostEqual(got, 135) {
			t.Fatalf("expected 135, got %v", got)
		}
	})

	t.Run("time-based labor without minutes falls back to flat", func(t *testing.T) {
		it := entities.LineItem{Kind: entities.ItemKindLabor, UnitPrice: 80, CalculateByTime: true}
		if got := ItemTotal(it); !almostEqual(got, 80) {
			t.Fatalf("expected 80, got %v", got)
		}
	})

	t.Run("flat labor with discount", func(t *testing.T) {
		it := entities.LineItem{Kind: entities.ItemKindLabor, UnitPrice: 200, Discount: intPtr(25)}
		if got := ItemTotal(it); !almostEqual(got, 150) {
			t.Fatalf("expected 150, got %v", got)
		}
	})

	t.Run("upcoming is always zero", func(t *testing.T) {
		it := entities.LineItem{
			Kind:      entities.ItemKindUpcoming,
			UnitPrice: 999,
			Quantity:  intPtr(10),
			Discount:  intPtr(50),
		}
		if got := ItemTotal(it); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})
}

func TestAggregates(t *testing.T) {
	items := []entities.LineItem{
		{Kind: entities.ItemKindPart, UnitPrice: 50, Quantity: intPtr(2)},
		{Kind: entities.ItemKindLabor, UnitPrice: 50},
		{Kind: entities.ItemKindUpcoming, UnitPrice: 999},
	}

	sub := Subtotal(items)
	if !almostEqual(sub, 150) {
		t.Fatalf("expected subtotal 150, got %v", sub)
	}
	tax := VAT(sub)
	if !almostEqual(tax, 15) {
		t.Fatalf("expected VAT 15, got %v", tax)
	}
	if got := GrandTotal(sub, tax); !almostEqual(got, 165) {
		t.Fatalf("expected grand total 165, got %v", got)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.004, 1.00},
		{1.006, 1.01},
		{136.499999999, 136.50},
		{-2.346, -2.35},
		{0, 0},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestRoundingOnlyAtBoundary(t *testing.T) {
	// Many small rows whose individually rounded totals would drift from
	// the full-precision sum.
	var items []entities.LineItem
	for i := 0; i < 100; i++ {
		items = append(items, entities.LineItem{Kind: entities.ItemKindPart, UnitPrice: 0.015, Quantity: intPtr(1)})
	}
	if got := Round2(Subtotal(items)); got != 1.50 {
		t.Fatalf("expected 1.50, got %v", got)
	}
}
