package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"rfq_console/internal/adapter/http/dto/request"
	"rfq_console/internal/adapter/http/dto/response"
	"rfq_console/internal/adapter/http/middleware"
	"rfq_console/internal/domain/entities"
	"rfq_console/internal/usecase"
	"rfq_console/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization is required", http.StatusUnauthorized)
)

// backendError matches failures reported by the RFQ backend.
type backendError interface {
	error
	NotFound() bool
}

// CompositionHandler serves the SKU table, product editors and factory
// overhead of an RFQ workspace.
type CompositionHandler struct {
	usecase usecase.ICompositionUseCase
}

func NewCompositionHandler(uc usecase.ICompositionUseCase) *CompositionHandler {
	return &CompositionHandler{usecase: uc}
}

func (h *CompositionHandler) OpenWorkspace(c *gin.Context) {
	sess, rfqID, ok := sessionAndRFQ(c)
	if !ok {
		return
	}
	var payload request.OpenWorkspaceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.OpenWorkspace(c.Request.Context(), sess, payload.ToRFQ(rfqID))
	h.respond(c, view, err)
}

func (h *CompositionHandler) GetWorkspace(c *gin.Context) {
	sess, rfqID, ok := sessionAndRFQ(c)
	if !ok {
		return
	}
	view, err := h.usecase.GetWorkspace(c.Request.Context(), sess, rfqID)
	h.respond(c, view, err)
}

func (h *CompositionHandler) RefreshWorkspace(c *gin.Context) {
	sess, rfqID, ok := sessionAndRFQ(c)
	if !ok {
		return
	}
	view, err := h.usecase.RefreshWorkspace(c.Request.Context(), sess, rfqID)
	h.respond(c, view, err)
}

func (h *CompositionHandler) OpenEditor(c *gin.Context) {
	sess, rfqID, ok := sessionAndRFQ(c)
	if !ok {
		return
	}
	skuID, ok := pathID(c, "sku_id")
	if !ok {
		return
	}
	var payload request.OpenEditorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.OpenEditor(c.Request.Context(), sess, rfqID, skuID, entities.EditorKind(payload.Kind), payload.ResolveIndex())
	h.respond(c, view, err)
}

func (h *CompositionHandler) UpdateDraft(c *gin.Context) {
	sess, rfqID, ok := sessionAndRFQ(c)
	if !ok {
		return
	}
	var payload request.DraftPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.UpdateDraft(c.Request.Context(), sess, rfqID, payload.ToPatch())
	h.respond(c, view, err)
}

func (h *CompositionHandler) SaveDraft(c *gin.Context) {
	sess, rfqID, ok := sessionAndRFQ(c)
	if !ok {
		return
	}
	view, err := h.usecase.SaveDraft(c.Request.Context(), sess, rfqID)
	h.respond(c, view, err)
}

func (h *CompositionHandler) CloseEditor(c *gin.Context) {
	sess, rfqID, ok := sessionAndRFQ(c)
	if !ok {
		return
	}
	view, err := h.usecase.CloseEditor(c.Request.Context(), sess, rfqID)
	h.respond(c, view, err)
}

// RemoveProduct deletes the product at :index of the list named by the scope
// query parameter (all, component or bom; all when omitted).
func (h *CompositionHandler) RemoveProduct(c *gin.Context) {
	sess, rfqID, ok := sessionAndRFQ(c)
	if !ok {
		return
	}
	skuID, ok := pathID(c, "sku_id")
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		writeError(c, errInvalidRequest)
		return
	}
	scope := usecase.ProductScope(c.DefaultQuery("scope", string(usecase.ProductScopeAll)))

	view, err := h.usecase.RemoveProduct(c.Request.Context(), sess, rfqID, skuID, scope, index)
	h.respond(c, view, err)
}

func (h *CompositionHandler) SetOverhead(c *gin.Context) {
	sess, rfqID, ok := sessionAndRFQ(c)
	if !ok {
		return
	}
	var payload request.OverheadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.SetOverhead(c.Request.Context(), sess, rfqID, payload.ResolvePercentage())
	h.respond(c, view, err)
}

// CostSheet downloads the SKU table as an xlsx workbook. The optional version
// query parameter selects a published version of the RFQ.
func (h *CompositionHandler) CostSheet(c *gin.Context) {
	sess, rfqID, ok := sessionAndRFQ(c)
	if !ok {
		return
	}
	version := 0
	if v := c.Query("version"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(c, errInvalidRequest)
			return
		}
		version = n
	}

	data, err := h.usecase.CostSheet(c.Request.Context(), sess, rfqID, version)
	if err != nil {
		writeError(c, mapCompositionError(err))
		return
	}
	filename := fmt.Sprintf("rfq-%d-cost-sheet.xlsx", rfqID)
	if version > 0 {
		filename = fmt.Sprintf("rfq-%d-v%d-cost-sheet.xlsx", rfqID, version)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *CompositionHandler) respond(c *gin.Context, view usecase.WorkspaceView, err error) {
	if err != nil {
		appErr := mapCompositionError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			zap.L().Error("[composition][handler] request failed", zap.String("path", c.FullPath()), zap.Error(err))
		}
		writeError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkspaceView(view))
}

func sessionAndRFQ(c *gin.Context) (entities.Session, int64, bool) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		writeError(c, errUnauthorized)
		return entities.Session{}, 0, false
	}
	rfqID, ok := pathID(c, "rfq_id")
	if !ok {
		return entities.Session{}, 0, false
	}
	return sess, rfqID, true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, errInvalidRequest)
		return 0, false
	}
	return id, true
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCompositionError(err error) *pkg.AppError {
	var verr *usecase.DraftValidationError
	var serr *usecase.OverheadStepError
	var berr backendError

	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainErrorSimple("INVALID_DRAFT", usecase.UserMessage(err), http.StatusUnprocessableEntity).WithDetails(verr.Errors)
	case errors.As(err, &serr) && serr.Partial():
		return pkg.NewDomainError("OVERHEAD_PARTIALLY_APPLIED", usecase.UserMessage(err), err, http.StatusBadGateway)
	case errors.As(err, &serr):
		return pkg.NewDomainError("OVERHEAD_NOT_SAVED", usecase.UserMessage(err), err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrInvalidSession):
		return errUnauthorized
	case errors.Is(err, usecase.ErrInvalidRFQID), errors.Is(err, usecase.ErrInvalidSKUID),
		errors.Is(err, usecase.ErrInvalidEditorKind), errors.Is(err, usecase.ErrInvalidScope),
		errors.Is(err, usecase.ErrNotBOMDraft):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOverheadRequired), errors.Is(err, usecase.ErrOverheadInvalid):
		return pkg.NewDomainErrorSimple("INVALID_OVERHEAD", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrActionNotAllowed):
		return pkg.NewDomainErrorSimple("ACTION_NOT_ALLOWED", err.Error(), http.StatusForbidden)
	case errors.Is(err, usecase.ErrWorkspaceNotFound):
		return pkg.NewDomainErrorSimple("WORKSPACE_NOT_FOUND", "Workspace not found, open the RFQ first", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSKUNotFound):
		return pkg.NewDomainErrorSimple("SKU_NOT_FOUND", "SKU not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBusy):
		return pkg.NewDomainErrorSimple("BUSY", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrStaleProductState):
		return pkg.NewDomainErrorSimple("STALE_STATE", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrEditorNotOpen), errors.Is(err, usecase.ErrEditorReadOnly):
		return pkg.NewDomainErrorSimple("EDITOR_STATE", err.Error(), http.StatusConflict)
	case errors.As(err, &berr) && berr.NotFound():
		return pkg.NewDomainError("BACKEND_NOT_FOUND", berr.Error(), err, http.StatusNotFound)
	case errors.As(err, &berr):
		return pkg.NewDomainError("BACKEND_ERROR", berr.Error(), err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
