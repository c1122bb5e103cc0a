package entities

import "time"

// EstimateStatus represents the lifecycle of an estimate (devis).
//
// Domain notes:
//   - Status transitions are driven by the garage back office and the
//     client portal; the exact transition rules live there, not here.
//   - Any item-level edit resets the status to draft so an already
//     accepted quote must be re-reviewed after changes.
//
//go:generate stringer -type=EstimateStatus

type EstimateStatus string

const (
	EstimateStatusDraft        EstimateStatus = "draft"
	EstimateStatusTodo         EstimateStatus = "todo"
	EstimateStatusPending      EstimateStatus = "pending"
	EstimateStatusAccepted     EstimateStatus = "accepted"
	EstimateStatusSentToGarage EstimateStatus = "sent_to_garage"
	EstimateStatusFinished     EstimateStatus = "finished"
	EstimateStatusRefused      EstimateStatus = "refused"
)

// EstimateType distinguishes who the quote is addressed to.

type EstimateType string

const (
	EstimateTypeIndividual EstimateType = "individual"
	EstimateTypeInsurance  EstimateType = "insurance"
)

// Estimate is the quote aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - estimates table, PK: id (metadata below)
//   - estimate_items table, PK: estimate_id, SK: item id (the rows)
//
// Items are owned exclusively by their estimate and are only ever written
// as a whole list (delete-all/insert-all); there is no partial item update.
//
// Monetary representation:
//   - UnitPrice and all totals are CHF, full float64 precision internally,
//     rounded to 2 digits at the presentation boundary only.
type Estimate struct {
	ID             string         `json:"id"`
	InterventionID string         `json:"intervention_id"`
	Type           EstimateType   `json:"type"`
	Status         EstimateStatus `json:"status"`
	ClaimNumber    *string        `json:"claim_number,omitempty"`
	RefusalReason  *string        `json:"refusal_reason,omitempty"`
	Trashed        bool           `json:"trashed"`
	Items          []LineItem     `json:"items"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// VehicleSnapshot is the read-only vehicle context a rendered document
// carries. Supplied by the caller, never persisted here.
type VehicleSnapshot struct {
	Registration string `json:"registration"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	VIN          string `json:"vin,omitempty"`
	Mileage      int    `json:"mileage,omitempty"`
}

// ClientSnapshot is the read-only client context for a rendered document.
type ClientSnapshot struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}
