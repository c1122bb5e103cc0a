package interfaces

import (
	"context"

	"atelier_auto/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// Item lists are written atomically as a whole (delete-all/insert-all):
// ReplaceItems is the only write path for line items and also resets the
// estimate status to draft. Concurrent replaces race at the whole-array
// level, last write wins.
//
// Not-found is reported as a zero-value Estimate with a nil error.

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ReplaceItems(ctx context.Context, id string, items []entities.LineItem) (entities.Estimate, error)
	SetClaimNumber(ctx context.Context, id string, claimNumber string) (entities.Estimate, error)
	SetStatus(ctx context.Context, id string, status entities.EstimateStatus, refusalReason *string) (entities.Estimate, error)
	SetTrashed(ctx context.Context, id string, trashed bool) (entities.Estimate, error)
}
