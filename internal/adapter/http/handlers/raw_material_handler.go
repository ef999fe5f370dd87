package handlers

import (
	"net/http"

	"rfq_console/internal/adapter/http/dto/response"
	"rfq_console/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RawMaterialHandler lists the raw material catalog for editor pickers.
type RawMaterialHandler struct {
	catalog usecase.IRawMaterialCatalog
}

func NewRawMaterialHandler(catalog usecase.IRawMaterialCatalog) *RawMaterialHandler {
	return &RawMaterialHandler{catalog: catalog}
}

func (h *RawMaterialHandler) List(c *gin.Context) {
	items, err := h.catalog.List(c.Request.Context())
	if err != nil {
		writeError(c, mapCompositionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRawMaterials(items))
}
