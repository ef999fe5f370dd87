package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rfq_console/internal/adapter/http/handlers/mocks"
	"rfq_console/internal/adapter/http/middleware"
	"rfq_console/internal/domain/entities"
	"rfq_console/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var testSession = entities.Session{UserID: "u-1", RoleID: 3}

type stubBackendError struct {
	status int
}

func (e stubBackendError) Error() string  { return "backend said no" }
func (e stubBackendError) NotFound() bool { return e.status == http.StatusNotFound }

func newTestRouter(h *CompositionHandler, withSession bool) *gin.Engine {
	r := gin.New()
	if withSession {
		r.Use(func(c *gin.Context) {
			middleware.SetSession(c, testSession)
			c.Next()
		})
	}
	v1 := r.Group("/v1")
	v1.POST("/rfqs/:rfq_id/workspace", h.OpenWorkspace)
	v1.GET("/rfqs/:rfq_id/workspace", h.GetWorkspace)
	v1.POST("/rfqs/:rfq_id/skus/:sku_id/editor", h.OpenEditor)
	v1.PATCH("/rfqs/:rfq_id/editor/draft", h.UpdateDraft)
	v1.POST("/rfqs/:rfq_id/editor/save", h.SaveDraft)
	v1.DELETE("/rfqs/:rfq_id/skus/:sku_id/products/:index", h.RemoveProduct)
	v1.PUT("/rfqs/:rfq_id/overhead", h.SetOverhead)
	v1.GET("/rfqs/:rfq_id/cost-sheet", h.CostSheet)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleView() usecase.WorkspaceView {
	return usecase.WorkspaceView{
		Workspace: entities.Workspace{
			ID:     "u-1#10",
			UserID: "u-1",
			RFQ:    entities.RFQ{ID: 10, Stage: 2},
			SKUs:   []entities.SKU{{ID: 100, Name: "SKU-A"}},
			Editor: entities.ClosedEditor(),
		},
		Columns: []entities.Column{entities.ColumnSKUName},
	}
}

func TestCompositionHandler_OpenWorkspace(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompositionUseCase(ctrl)
		r := newTestRouter(NewCompositionHandler(uc), false)

		w := doJSON(r, http.MethodPost, "/v1/rfqs/10/workspace", `{"stage":2}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid rfq id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompositionUseCase(ctrl)
		r := newTestRouter(NewCompositionHandler(uc), true)

		w := doJSON(r, http.MethodPost, "/v1/rfqs/abc/workspace", `{"stage":2}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompositionUseCase(ctrl)
		r := newTestRouter(NewCompositionHandler(uc), true)

		w := doJSON(r, http.MethodPost, "/v1/rfqs/10/workspace", `{"name":"x"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("backend failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompositionUseCase(ctrl)
		r := newTestRouter(NewCompositionHandler(uc), true)

		uc.EXPECT().OpenWorkspace(gomock.Any(), testSession, entities.RFQ{ID: 10, Stage: 2}).
			Return(usecase.WorkspaceView{}, stubBackendError{status: http.StatusInternalServerError})

		w := doJSON(r, http.MethodPost, "/v1/rfqs/10/workspace", `{"stage":2}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompositionUseCase(ctrl)
		r := newTestRouter(NewCompositionHandler(uc), true)

		uc.EXPECT().OpenWorkspace(gomock.Any(), testSession, entities.RFQ{ID: 10, Name: "Brackets", Stage: 2, Version: 1}).
			Return(sampleView(), nil)

		w := doJSON(r, http.MethodPost, "/v1/rfqs/10/workspace", `{"name":"Brackets","stage":2,"version":1}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["id"] != "u-1#10" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestCompositionHandler_GetWorkspace_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICompositionUseCase(ctrl)
	r := newTestRouter(NewCompositionHandler(uc), true)

	uc.EXPECT().GetWorkspace(gomock.Any(), testSession, int64(10)).Return(usecase.WorkspaceView{}, usecase.ErrWorkspaceNotFound)

	w := doJSON(r, http.MethodGet, "/v1/rfqs/10/workspace", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCompositionHandler_OpenEditor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("new entry when index omitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompositionUseCase(ctrl)
		r := newTestRouter(NewCompositionHandler(uc), true)

		uc.EXPECT().OpenEditor(gomock.Any(), testSession, int64(10), int64(100), entities.EditorKindComponent, -1).Return(sampleView(), nil)

		w := doJSON(r, http.MethodPost, "/v1/rfqs/10/skus/100/editor", `{"kind":"component"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompositionUseCase(ctrl)
		r := newTestRouter(NewCompositionHandler(uc), true)

		uc.EXPECT().OpenEditor(gomock.Any(), testSession, int64(10), int64(100), entities.EditorKindBOM, 1).Return(usecase.WorkspaceView{}, usecase.ErrActionNotAllowed)

		w := doJSON(r, http.MethodPost, "/v1/rfqs/10/skus/100/editor", `{"kind":"bom","index":1}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("busy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompositionUseCase(ctrl)
		r := newTestRouter(NewCompositionHandler(uc), true)

		uc.EXPECT().OpenEditor(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.WorkspaceView{}, usecase.ErrBusy)

		w := doJSON(r, http.MethodPost, "/v1/rfqs/10/skus/100/editor", `{"kind":"component"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestCompositionHandler_SaveDraft_ValidationDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICompositionUseCase(ctrl)
	r := newTestRouter(NewCompositionHandler(uc), true)

	verr := &usecase.DraftValidationError{Errors: entities.FieldErrors{"quantity": "Quantity is required"}}
	uc.EXPECT().SaveDraft(gomock.Any(), testSession, int64(10)).Return(usecase.WorkspaceView{}, verr)

	w := doJSON(r, http.MethodPost, "/v1/rfqs/10/editor/save", "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	var body struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Code != "INVALID_DRAFT" || body.Details["quantity"] != "Quantity is required" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestCompositionHandler_UpdateDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICompositionUseCase(ctrl)
	r := newTestRouter(NewCompositionHandler(uc), true)

	uc.EXPECT().UpdateDraft(gomock.Any(), testSession, int64(10), gomock.Any()).
		DoAndReturn(func(_ any, _ entities.Session, _ int64, p usecase.DraftPatch) (usecase.WorkspaceView, error) {
			if p.Name == nil || *p.Name != "Bracket" || p.Quantity == nil || *p.Quantity != "2" {
				t.Fatalf("unexpected patch: %+v", p)
			}
			return sampleView(), nil
		})

	w := doJSON(r, http.MethodPatch, "/v1/rfqs/10/editor/draft", `{"product_name":"Bracket","quantity":2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCompositionHandler_RemoveProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompositionUseCase(ctrl)
		r := newTestRouter(NewCompositionHandler(uc), true)

		w := doJSON(r, http.MethodDelete, "/v1/rfqs/10/skus/100/products/-1", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("default scope is all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompositionUseCase(ctrl)
		r := newTestRouter(NewCompositionHandler(uc), true)

		uc.EXPECT().RemoveProduct(gomock.Any(), testSession, int64(10), int64(100), usecase.ProductScopeAll, 2).Return(sampleView(), nil)

		w := doJSON(r, http.MethodDelete, "/v1/rfqs/10/skus/100/products/2", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("stale state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompositionUseCase(ctrl)
		r := newTestRouter(NewCompositionHandler(uc), true)

		uc.EXPECT().RemoveProduct(gomock.Any(), testSession, int64(10), int64(100), usecase.ProductScopeBOM, 0).Return(usecase.WorkspaceView{}, usecase.ErrStaleProductState)

		w := doJSON(r, http.MethodDelete, "/v1/rfqs/10/skus/100/products/0?scope=bom", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestCompositionHandler_SetOverhead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("percentage as number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompositionUseCase(ctrl)
		r := newTestRouter(NewCompositionHandler(uc), true)

		uc.EXPECT().SetOverhead(gomock.Any(), testSession, int64(10), "12.5").Return(sampleView(), nil)

		w := doJSON(r, http.MethodPut, "/v1/rfqs/10/overhead", `{"factory_overhead_perc":12.5}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("blank percentage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompositionUseCase(ctrl)
		r := newTestRouter(NewCompositionHandler(uc), true)

		uc.EXPECT().SetOverhead(gomock.Any(), testSession, int64(10), "").Return(usecase.WorkspaceView{}, usecase.ErrOverheadRequired)

		w := doJSON(r, http.MethodPut, "/v1/rfqs/10/overhead", `{"factory_overhead_perc":"  "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("partial failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompositionUseCase(ctrl)
		r := newTestRouter(NewCompositionHandler(uc), true)

		stepErr := &usecase.OverheadStepError{Step: usecase.OverheadStepCalculate, Err: errors.New("timeout")}
		uc.EXPECT().SetOverhead(gomock.Any(), testSession, int64(10), "12.5").Return(usecase.WorkspaceView{}, stepErr)

		w := doJSON(r, http.MethodPut, "/v1/rfqs/10/overhead", `{"factory_overhead_perc":"12.5"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "OVERHEAD_PARTIALLY_APPLIED" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestCompositionHandler_CostSheet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompositionUseCase(ctrl)
		r := newTestRouter(NewCompositionHandler(uc), true)

		w := doJSON(r, http.MethodGet, "/v1/rfqs/10/cost-sheet?version=x", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("download", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompositionUseCase(ctrl)
		r := newTestRouter(NewCompositionHandler(uc), true)

		uc.EXPECT().CostSheet(gomock.Any(), testSession, int64(10), 3).Return([]byte("xlsx"), nil)

		w := doJSON(r, http.MethodGet, "/v1/rfqs/10/cost-sheet?version=3", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
			t.Fatalf("unexpected content type %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="rfq-10-v3-cost-sheet.xlsx"` {
			t.Fatalf("unexpected disposition %q", cd)
		}
	})
}

func TestMapCompositionError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{usecase.ErrInvalidSession, http.StatusUnauthorized},
		{usecase.ErrInvalidScope, http.StatusBadRequest},
		{usecase.ErrOverheadInvalid, http.StatusBadRequest},
		{usecase.ErrSKUNotFound, http.StatusNotFound},
		{usecase.ErrEditorReadOnly, http.StatusConflict},
		{&usecase.OverheadStepError{Step: usecase.OverheadStepSave, Err: errors.New("x")}, http.StatusBadGateway},
		{stubBackendError{status: http.StatusNotFound}, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapCompositionError(tc.err).HTTPStatus; got != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, got)
		}
	}
}
