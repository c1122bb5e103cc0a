package request

import (
	"strings"

	"atelier_auto/internal/domain/entities"
)

// CreateEstimateRequest converts an intervention into a fresh, empty
// estimate.
type CreateEstimateRequest struct {
	InterventionID string `json:"intervention_id" binding:"required"`
	Type           string `json:"type" binding:"required"`
	ClaimNumber    string `json:"claim_number"`
}

func (r CreateEstimateRequest) ResolveType() entities.EstimateType {
	return entities.EstimateType(strings.ToLower(strings.TrimSpace(r.Type)))
}

// LineItemRequest mirrors the persisted line item record. Item ids and
// positions are computed client-side; the server checks, never assigns.
type LineItemRequest struct {
	ID              string  `json:"id" binding:"required"`
	Kind            string  `json:"kind" binding:"required"`
	Designation     string  `json:"designation" binding:"required"`
	Description     string  `json:"description"`
	UnitPrice       float64 `json:"unitPrice"`
	Quantity        *int    `json:"quantity"`
	CalculateByTime bool    `json:"calculateByTime"`
	Discount        *int    `json:"discount"`
	Position        int     `json:"position" binding:"required"`
}

// ReplaceItemsRequest carries the editor's full next-state array. An empty
// array is valid and clears the estimate.
type ReplaceItemsRequest struct {
	Items []LineItemRequest `json:"items" binding:"required"`
}

// ToEntities maps the payload onto domain items, normalizing per kind:
// upcoming rows are placeholders and never carry pricing fields, whatever
// the client sent.
func (r ReplaceItemsRequest) ToEntities() []entities.LineItem {
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		e := entities.LineItem{
			ID:              strings.TrimSpace(it.ID),
			Kind:            entities.ItemKind(strings.ToLower(strings.TrimSpace(it.Kind))),
			Designation:     it.Designation,
			Description:     it.Description,
			UnitPrice:       it.UnitPrice,
			Quantity:        it.Quantity,
			CalculateByTime: it.CalculateByTime,
			Discount:        it.Discount,
			Position:        it.Position,
		}
		if e.Kind == entities.ItemKindUpcoming {
			e.UnitPrice = 0
			e.Quantity = nil
			e.CalculateByTime = false
			e.Discount = nil
		}
		items = append(items, e)
	}
	return items
}

type ClaimNumberRequest struct {
	ClaimNumber string `json:"claim_number" binding:"required"`
}

type StatusRequest struct {
	Status        string `json:"status" binding:"required"`
	RefusalReason string `json:"refusal_reason"`
}

func (r StatusRequest) ResolveStatus() entities.EstimateStatus {
	return entities.EstimateStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

// DocumentRequest carries the read-only vehicle/client snapshot the caller
// supplies for rendering. The estimate service does not own those records.
type DocumentRequest struct {
	Vehicle VehicleSnapshotRequest `json:"vehicle" binding:"required"`
	Client  ClientSnapshotRequest  `json:"client" binding:"required"`
}

type VehicleSnapshotRequest struct {
	Registration string `json:"registration" binding:"required"`
	Brand        string `json:"brand" binding:"required"`
	Model        string `json:"model" binding:"required"`
	VIN          string `json:"vin"`
	Mileage      int    `json:"mileage"`
}

type ClientSnapshotRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func (r DocumentRequest) ToVehicleSnapshot() entities.VehicleSnapshot {
	return entities.VehicleSnapshot{
		Registration: r.Vehicle.Registration,
		Brand:        r.Vehicle.Brand,
		Model:        r.Vehicle.Model,
		VIN:          r.Vehicle.VIN,
		Mileage:      r.Vehicle.Mileage,
	}
}

func (r DocumentRequest) ToClientSnapshot() entities.ClientSnapshot {
	return entities.ClientSnapshot{
		Name:    r.Client.Name,
		Address: r.Client.Address,
		City:    r.Client.City,
		Phone:   r.Client.Phone,
		Email:   r.Client.Email,
	}
}
