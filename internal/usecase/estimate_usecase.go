package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"atelier_auto/internal/domain/entities"
	"atelier_auto/internal/domain/ordering"
	"atelier_auto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound      = errors.New("estimate not found")
	ErrInvalidEstimateID     = errors.New("invalid estimate id")
	ErrInvalidInterventionID = errors.New("invalid intervention_id")
	ErrInvalidEstimateType   = errors.New("invalid estimate type")
	ErrInvalidStatus         = errors.New("invalid estimate status")
	ErrInvalidLineItem       = errors.New("invalid line item")
	ErrInvalidItemPositions  = errors.New("item positions violate partition ordering")
	ErrNotInsuranceEstimate  = errors.New("estimate is not an insurance estimate")
	ErrInvalidClaimNumber    = errors.New("invalid claim number")
	ErrEstimateTrashed       = errors.New("estimate is trashed")
)

// IEstimateUseCase exposes the estimate aggregate operations.
//
// Line items have exactly one mutation surface: ReplaceItems takes the full
// next-state array the editor computed (through the ordering package) and
// persists it atomically. There is no partial item update; this keeps the
// client and the store from ever disagreeing on positions.

type IEstimateUseCase interface {
	CreateFromIntervention(ctx context.Context, interventionID string, estimateType entities.EstimateType, claimNumber string) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ReplaceItems(ctx context.Context, id string, items []entities.LineItem) (entities.Estimate, error)
	SetClaimNumber(ctx context.Context, id string, claimNumber string) (entities.Estimate, error)
	SetStatus(ctx context.Context, id string, status entities.EstimateStatus, refusalReason string) (entities.Estimate, error)
	Trash(ctx context.Context, id string) (entities.Estimate, error)
	Restore(ctx context.Context, id string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo interfaces.IEstimateRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo}
}

func (u *EstimateUseCase) CreateFromIntervention(ctx context.Context, interventionID string, estimateType entities.EstimateType, claimNumber string) (entities.Estimate, error) {
	interventionID = strings.TrimSpace(interventionID)
	if interventionID == "" {
		return entities.Estimate{}, ErrInvalidInterventionID
	}
	if estimateType != entities.EstimateTypeIndividual && estimateType != entities.EstimateTypeInsurance {
		return entities.Estimate{}, ErrInvalidEstimateType
	}
	claimNumber = strings.TrimSpace(claimNumber)
	if claimNumber != "" && estimateType != entities.EstimateTypeInsurance {
		return entities.Estimate{}, ErrNotInsuranceEstimate
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:             uuid.NewString(),
		InterventionID: interventionID,
		Type:           estimateType,
		Status:         entities.EstimateStatusDraft,
		Items:          []entities.LineItem{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if claimNumber != "" {
		e.ClaimNumber = &claimNumber
	}
	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

// ReplaceItems persists the editor's full next-state array. The array must
// already satisfy the partition ordering invariant; a violation is a caller
// bug and fails loudly here instead of being repaired.
//
// On success the store resets the status to draft: any item edit forces a
// re-review of the quote before it can be accepted again.
func (u *EstimateUseCase) ReplaceItems(ctx context.Context, id string, items []entities.LineItem) (entities.Estimate, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.Trashed {
		return entities.Estimate{}, ErrEstimateTrashed
	}

	for _, it := range items {
		if err := it.Validate(); err != nil {
			return entities.Estimate{}, fmt.Errorf("%w: %s: %v", ErrInvalidLineItem, it.ID, err)
		}
	}
	if err := ordering.Validate(items); err != nil {
		return entities.Estimate{}, fmt.Errorf("%w: %v", ErrInvalidItemPositions, err)
	}

	updated, err := u.repo.ReplaceItems(ctx, id, ordering.SortDisplay(items))
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

func (u *EstimateUseCase) SetClaimNumber(ctx context.Context, id string, claimNumber string) (entities.Estimate, error) {
	claimNumber = strings.TrimSpace(claimNumber)
	if claimNumber == "" {
		return entities.Estimate{}, ErrInvalidClaimNumber
	}

	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.Type != entities.EstimateTypeInsurance {
		return entities.Estimate{}, ErrNotInsuranceEstimate
	}

	return u.repo.SetClaimNumber(ctx, id, claimNumber)
}

// SetStatus applies a status chosen by the caller. Allowed transitions are
// business rules of the back office and the client portal, not enforced
// here. A refusal reason is only kept alongside the refused status.
func (u *EstimateUseCase) SetStatus(ctx context.Context, id string, status entities.EstimateStatus, refusalReason string) (entities.Estimate, error) {
	if !validStatus(status) {
		return entities.Estimate{}, ErrInvalidStatus
	}

	if _, err := u.load(ctx, id); err != nil {
		return entities.Estimate{}, err
	}

	var reason *string
	if status == entities.EstimateStatusRefused {
		if r := strings.TrimSpace(refusalReason); r != "" {
			reason = &r
		}
	}
	return u.repo.SetStatus(ctx, id, status, reason)
}

func (u *EstimateUseCase) Trash(ctx context.Context, id string) (entities.Estimate, error) {
	return u.setTrashed(ctx, id, true)
}

func (u *EstimateUseCase) Restore(ctx context.Context, id string) (entities.Estimate, error) {
	return u.setTrashed(ctx, id, false)
}

func (u *EstimateUseCase) setTrashed(ctx context.Context, id string, trashed bool) (entities.Estimate, error) {
	if _, err := u.load(ctx, id); err != nil {
		return entities.Estimate{}, err
	}
	return u.repo.SetTrashed(ctx, id, trashed)
}

func (u *EstimateUseCase) load(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func validStatus(s entities.EstimateStatus) bool {
	switch s {
	case entities.EstimateStatusDraft,
		entities.EstimateStatusTodo,
		entities.EstimateStatusPending,
		entities.EstimateStatusAccepted,
		entities.EstimateStatusSentToGarage,
		entities.EstimateStatusFinished,
		entities.EstimateStatusRefused:
		return true
	}
	return false
}
