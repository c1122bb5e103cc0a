package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"atelier_auto/internal/domain/entities"
	"atelier_auto/internal/usecase/interfaces"
)

var (
	ErrRendererNotConfigured = errors.New("document renderer not configured")
	ErrLetterheadUnavailable = errors.New("letterhead asset unavailable")
	ErrRenderFailed          = errors.New("document render failed")
)

// IDocumentUseCase produces the client-facing PDF for an estimate.
//
// Rendering is a pure function of the estimate's current items plus the
// caller-supplied vehicle/client snapshot, so it can be re-invoked on every
// item change to drive a live preview; a newer call supersedes any older
// in-flight one and the caller just drops the stale bytes.

type IDocumentUseCase interface {
	RenderEstimate(ctx context.Context, id string, vehicle entities.VehicleSnapshot, client entities.ClientSnapshot) ([]byte, error)
}

type DocumentUseCase struct {
	estimateRepo interfaces.IEstimateRepository
	renderer     interfaces.IDocumentRenderer
	letterhead   interfaces.ILetterheadProvider
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(estimateRepo interfaces.IEstimateRepository, renderer interfaces.IDocumentRenderer, letterhead interfaces.ILetterheadProvider) *DocumentUseCase {
	return &DocumentUseCase{estimateRepo: estimateRepo, renderer: renderer, letterhead: letterhead}
}

func (u *DocumentUseCase) RenderEstimate(ctx context.Context, id string, vehicle entities.VehicleSnapshot, client entities.ClientSnapshot) ([]byte, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidEstimateID
	}
	if u.renderer == nil || u.letterhead == nil {
		return nil, ErrRendererNotConfigured
	}

	e, err := u.estimateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.ID == "" {
		return nil, ErrEstimateNotFound
	}
	if e.Trashed {
		return nil, ErrEstimateTrashed
	}

	// Required asset: rendering never proceeds with a missing letterhead.
	logo, err := u.letterhead.Letterhead()
	if err != nil {
		log.Printf("[document][usecase] letterhead load failed estimate_id=%s err=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrLetterheadUnavailable, err)
	}

	doc, err := u.renderer.Render(e, vehicle, client, logo)
	if err != nil {
		log.Printf("[document][usecase] render failed estimate_id=%s err=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return doc, nil
}
