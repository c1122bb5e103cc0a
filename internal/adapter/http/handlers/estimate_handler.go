package handlers

import (
	"errors"
	"net/http"

	request "atelier_auto/internal/adapter/http/dto/request"
	response "atelier_auto/internal/adapter/http/dto/response"
	"atelier_auto/internal/usecase"
	"atelier_auto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for estimates.
//
// Item mutations go through exactly one endpoint, the whole-list replace:
// the editor computes the full next-state array (positions included) and
// submits it; a failed save is retried by resubmitting the same array.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate converts an intervention into a new empty estimate.
//
//	@Summary  Create an estimate from an intervention
//	@Tags     estimates
//	@Accept   json
//	@Produce  json
//	@Param    payload body request.CreateEstimateRequest true "Intervention conversion"
//	@Success  201 {object} response.EstimateResponse
//	@Failure  400 {object} pkg.HTTPError
//	@Router   /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.CreateFromIntervention(c.Request.Context(), payload.InterventionID, payload.ResolveType(), payload.ClaimNumber)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// GetEstimate loads an estimate with its items and computed totals.
//
//	@Summary  Get an estimate
//	@Tags     estimates
//	@Produce  json
//	@Param    id path string true "Estimate id"
//	@Success  200 {object} response.EstimateResponse
//	@Failure  404 {object} pkg.HTTPError
//	@Router   /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ReplaceItems persists the editor's full next-state item array. The store
// resets the status to draft on success.
//
//	@Summary  Replace the full line item list
//	@Tags     estimates
//	@Accept   json
//	@Produce  json
//	@Param    id path string true "Estimate id"
//	@Param    payload body request.ReplaceItemsRequest true "Full next-state item array"
//	@Success  200 {object} response.EstimateResponse
//	@Failure  400 {object} pkg.HTTPError
//	@Failure  404 {object} pkg.HTTPError
//	@Failure  422 {object} pkg.HTTPError
//	@Router   /estimates/{id}/items [put]
func (h *EstimateHandler) ReplaceItems(c *gin.Context) {
	var payload request.ReplaceItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.ReplaceItems(c.Request.Context(), c.Param("id"), payload.ToEntities())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// SetClaimNumber updates the insurance claim number.
//
//	@Summary  Set the insurance claim number
//	@Tags     estimates
//	@Accept   json
//	@Produce  json
//	@Param    id path string true "Estimate id"
//	@Param    payload body request.ClaimNumberRequest true "Claim number"
//	@Success  200 {object} response.EstimateResponse
//	@Failure  400 {object} pkg.HTTPError
//	@Failure  404 {object} pkg.HTTPError
//	@Router   /estimates/{id}/claim-number [patch]
func (h *EstimateHandler) SetClaimNumber(c *gin.Context) {
	var payload request.ClaimNumberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.SetClaimNumber(c.Request.Context(), c.Param("id"), payload.ClaimNumber)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// SetStatus applies a caller-chosen status; transition rules live with the
// caller.
//
//	@Summary  Set the estimate status
//	@Tags     estimates
//	@Accept   json
//	@Produce  json
//	@Param    id path string true "Estimate id"
//	@Param    payload body request.StatusRequest true "Status, with optional refusal reason"
//	@Success  200 {object} response.EstimateResponse
//	@Failure  400 {object} pkg.HTTPError
//	@Failure  404 {object} pkg.HTTPError
//	@Router   /estimates/{id}/status [patch]
func (h *EstimateHandler) SetStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus(), payload.RefusalReason)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// TrashEstimate soft-deletes an estimate. Nothing is ever hard-deleted.
//
//	@Summary  Move an estimate to the trash
//	@Tags     estimates
//	@Produce  json
//	@Param    id path string true "Estimate id"
//	@Success  200 {object} response.EstimateResponse
//	@Failure  404 {object} pkg.HTTPError
//	@Router   /estimates/{id} [delete]
func (h *EstimateHandler) TrashEstimate(c *gin.Context) {
	estimate, err := h.usecase.Trash(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// RestoreEstimate brings a trashed estimate back.
//
//	@Summary  Restore a trashed estimate
//	@Tags     estimates
//	@Produce  json
//	@Param    id path string true "Estimate id"
//	@Success  200 {object} response.EstimateResponse
//	@Failure  404 {object} pkg.HTTPError
//	@Router   /estimates/{id}/restore [patch]
func (h *EstimateHandler) RestoreEstimate(c *gin.Context) {
	estimate, err := h.usecase.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidInterventionID),
		errors.Is(err, usecase.ErrInvalidEstimateType),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidClaimNumber),
		errors.Is(err, usecase.ErrInvalidLineItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidItemPositions):
		return pkg.NewDomainErrorSimple("INVALID_ITEM_POSITIONS", "Item positions violate partition ordering", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNotInsuranceEstimate):
		return pkg.NewDomainErrorSimple("NOT_INSURANCE_ESTIMATE", "Claim numbers apply to insurance estimates only", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateTrashed):
		return pkg.NewDomainErrorSimple("ESTIMATE_TRASHED", "Estimate is in the trash", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
