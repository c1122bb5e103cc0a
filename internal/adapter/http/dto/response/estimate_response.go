package response

import (
	"time"

	"atelier_auto/internal/domain/entities"
	"atelier_auto/internal/domain/pricing"
)

type LineItemResponse struct {
	ID              string  `json:"id"`
	Kind            string  `json:"kind"`
	Designation     string  `json:"designation"`
	Description     string  `json:"description,omitempty"`
	UnitPrice       float64 `json:"unitPrice"`
	Quantity        *int    `json:"quantity,omitempty"`
	CalculateByTime bool    `json:"calculateByTime,omitempty"`
	Discount        *int    `json:"discount,omitempty"`
	Position        int     `json:"position"`
	Total           float64 `json:"total"`
}

// TotalsResponse carries the aggregate figures, rounded once for display.
type TotalsResponse struct {
	Subtotal   float64 `json:"subtotal"`
	VAT        float64 `json:"vat"`
	GrandTotal float64 `json:"grand_total"`
	Currency   string  `json:"currency"`
}

type EstimateResponse struct {
	ID             string             `json:"id"`
	InterventionID string             `json:"intervention_id"`
	Type           string             `json:"type"`
	Status         string             `json:"status"`
	ClaimNumber    *string            `json:"claim_number,omitempty"`
	RefusalReason  *string            `json:"refusal_reason,omitempty"`
	Trashed        bool               `json:"trashed"`
	Items          []LineItemResponse `json:"items"`
	Totals         TotalsResponse     `json:"totals"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	items := make([]LineItemResponse, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, LineItemResponse{
			ID:              it.ID,
			Kind:            string(it.Kind),
			Designation:     it.Designation,
			Description:     it.Description,
			UnitPrice:       it.UnitPrice,
			Quantity:        it.Quantity,
			CalculateByTime: it.CalculateByTime,
			Discount:        it.Discount,
			Position:        it.Position,
			Total:           pricing.Round2(pricing.ItemTotal(it)),
		})
	}

	subtotal := pricing.Subtotal(e.Items)
	vat := pricing.VAT(subtotal)
	return EstimateResponse{
		ID:             e.ID,
		InterventionID: e.InterventionID,
		Type:           string(e.Type),
		Status:         string(e.Status),
		ClaimNumber:    e.ClaimNumber,
		RefusalReason:  e.RefusalReason,
		Trashed:        e.Trashed,
		Items:          items,
		Totals: TotalsResponse{
			Subtotal:   pricing.Round2(subtotal),
			VAT:        pricing.Round2(vat),
			GrandTotal: pricing.Round2(pricing.GrandTotal(subtotal, vat)),
			Currency:   "CHF",
		},
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
