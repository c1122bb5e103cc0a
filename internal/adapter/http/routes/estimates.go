package routes

import (
	"atelier_auto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, documentHandler *handlers.DocumentHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		// The one item mutation endpoint: whole-list replace.
		estimates.PUT("/:id/items", estimateHandler.ReplaceItems)
		estimates.PATCH("/:id/claim-number", estimateHandler.SetClaimNumber)
		estimates.PATCH("/:id/status", estimateHandler.SetStatus)
		estimates.DELETE("/:id", estimateHandler.TrashEstimate)
		estimates.PATCH("/:id/restore", estimateHandler.RestoreEstimate)

		estimates.POST("/:id/document", documentHandler.RenderEstimateDocument)
	}
}
