package routes

import (
	"rfq_console/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRFQs         = "/rfqs/:rfq_id"
	PathRawMaterials = "/raw-materials"
)

func addCompositionRoutes(rg *gin.RouterGroup, h *handlers.CompositionHandler) {
	rfq := rg.Group(PathRFQs)
	{
		rfq.POST("/workspace", h.OpenWorkspace)
		rfq.GET("/workspace", h.GetWorkspace)
		rfq.POST("/workspace/refresh", h.RefreshWorkspace)

		rfq.POST("/skus/:sku_id/editor", h.OpenEditor)
		rfq.PATCH("/editor/draft", h.UpdateDraft)
		rfq.POST("/editor/save", h.SaveDraft)
		rfq.DELETE("/editor", h.CloseEditor)

		rfq.DELETE("/skus/:sku_id/products/:index", h.RemoveProduct)
		rfq.PUT("/overhead", h.SetOverhead)
		rfq.GET("/cost-sheet", h.CostSheet)
	}
}

func addRawMaterialRoutes(rg *gin.RouterGroup, h *handlers.RawMaterialHandler) {
	rg.GET(PathRawMaterials, h.List)
}
