package request

import (
	"testing"

	"atelier_auto/internal/domain/entities"
)

func TestCreateEstimateRequest_ResolveType(t *testing.T) {
	tests := []struct {
		raw  string
		want entities.EstimateType
	}{
		{"insurance", entities.EstimateTypeInsurance},
		{"  Individual ", entities.EstimateTypeIndividual},
		{"INSURANCE", entities.EstimateTypeInsurance},
	}

	for _, tt := range tests {
		r := CreateEstimateRequest{Type: tt.raw}
		if got := r.ResolveType(); got != tt.want {
			t.Errorf("ResolveType(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestStatusRequest_ResolveStatus(t *testing.T) {
	r := StatusRequest{Status: " Refused "}
	if got := r.ResolveStatus(); got != entities.EstimateStatusRefused {
		t.Errorf("ResolveStatus() = %q, want %q", got, entities.EstimateStatusRefused)
	}
}

func TestReplaceItemsRequest_ToEntities(t *testing.T) {
	qty := 2
	discount := 10

	t.Run("upcoming items lose pricing fields", func(t *testing.T) {
		r := ReplaceItemsRequest{Items: []LineItemRequest{
			{ID: " u-1 ", Kind: " Upcoming ", Designation: "<p>Tyres</p>", UnitPrice: 99.5, Quantity: &qty, CalculateByTime: true, Discount: &discount, Position: 1},
		}}

		items := r.ToEntities()
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		it := items[0]
		if it.ID != "u-1" || it.Kind != entities.ItemKindUpcoming {
			t.Fatalf("id/kind not normalized: %+v", it)
		}
		if it.UnitPrice != 0 || it.Quantity != nil || it.CalculateByTime || it.Discount != nil {
			t.Fatalf("pricing fields leaked into upcoming item: %+v", it)
		}
	})

	t.Run("priced items pass through untouched", func(t *testing.T) {
		r := ReplaceItemsRequest{Items: []LineItemRequest{
			{ID: "p-1", Kind: "part", Designation: "<p>Filter</p>", UnitPrice: 45.5, Quantity: &qty, Position: 1},
			{ID: "l-1", Kind: "labor", Designation: "<p>Service</p>", UnitPrice: 100, Quantity: &qty, CalculateByTime: true, Discount: &discount, Position: 2},
		}}

		items := r.ToEntities()
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if items[0].UnitPrice != 45.5 || items[0].Quantity == nil || *items[0].Quantity != 2 {
			t.Errorf("part fields altered: %+v", items[0])
		}
		if !items[1].CalculateByTime || items[1].Discount == nil || *items[1].Discount != 10 {
			t.Errorf("labor fields altered: %+v", items[1])
		}
	})

	t.Run("empty array maps to empty slice", func(t *testing.T) {
		r := ReplaceItemsRequest{Items: []LineItemRequest{}}
		items := r.ToEntities()
		if items == nil || len(items) != 0 {
			t.Fatalf("expected empty non-nil slice, got %v", items)
		}
	})
}

func TestDocumentRequest_Snapshots(t *testing.T) {
	r := DocumentRequest{
		Vehicle: VehicleSnapshotRequest{Registration: "VD 123 456", Brand: "Audi", Model: "A4", VIN: "WAUZZZ", Mileage: 84200},
		Client:  ClientSnapshotRequest{Name: "Jean Dupont", Address: "Rue du Lac 3", City: "Lausanne", Phone: "+41 21 000 00 00", Email: "jean@example.ch"},
	}

	v := r.ToVehicleSnapshot()
	if v.Registration != "VD 123 456" || v.Brand != "Audi" || v.Mileage != 84200 {
		t.Errorf("vehicle snapshot mismatch: %+v", v)
	}

	c := r.ToClientSnapshot()
	if c.Name != "Jean Dupont" || c.City != "Lausanne" || c.Email != "jean@example.ch" {
		t.Errorf("client snapshot mismatch: %+v", c)
	}
}
