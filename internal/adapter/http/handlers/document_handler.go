package handlers

import (
	"errors"
	"net/http"

	request "atelier_auto/internal/adapter/http/dto/request"
	"atelier_auto/internal/usecase"
	"atelier_auto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDocumentPayload = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_INPUT", "Invalid document payload", http.StatusBadRequest)
)

// DocumentHandler renders the client-facing estimate PDF.

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// RenderEstimateDocument produces the PDF for an estimate. The body
// supplies the vehicle/client snapshot; those records live in another
// service and are passed through read-only.
//
//	@Summary  Render the estimate PDF
//	@Tags     documents
//	@Accept   json
//	@Produce  application/pdf
//	@Param    id path string true "Estimate id"
//	@Param    payload body request.DocumentRequest true "Vehicle and client snapshot"
//	@Success  200 {file} binary
//	@Failure  400 {object} pkg.HTTPError
//	@Failure  404 {object} pkg.HTTPError
//	@Failure  500 {object} pkg.HTTPError
//	@Router   /estimates/{id}/document [post]
func (h *DocumentHandler) RenderEstimateDocument(c *gin.Context) {
	var payload request.DocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	doc, err := h.usecase.RenderEstimate(c.Request.Context(), c.Param("id"), payload.ToVehicleSnapshot(), payload.ToClientSnapshot())
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Data(http.StatusOK, "application/pdf", doc)
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateTrashed):
		return pkg.NewDomainErrorSimple("ESTIMATE_TRASHED", "Estimate is in the trash", http.StatusConflict)
	case errors.Is(err, usecase.ErrLetterheadUnavailable):
		return pkg.NewDomainError("DOCUMENT_ASSET_MISSING", "A required document asset is unavailable", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
