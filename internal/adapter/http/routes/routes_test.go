package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rfq_console/internal/adapter/http/handlers"
	"rfq_console/internal/adapter/http/handlers/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPingRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	addPingRoutes(r.Group("/v1"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestCompositionRoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := gin.New()
	v1 := r.Group("/v1")
	addCompositionRoutes(v1, handlers.NewCompositionHandler(mocks.NewMockICompositionUseCase(ctrl)))
	addRawMaterialRoutes(v1, handlers.NewRawMaterialHandler(mocks.NewMockIRawMaterialCatalog(ctrl)))

	want := map[string]bool{
		"POST /v1/rfqs/:rfq_id/workspace":                      true,
		"GET /v1/rfqs/:rfq_id/workspace":                       true,
		"POST /v1/rfqs/:rfq_id/workspace/refresh":              true,
		"POST /v1/rfqs/:rfq_id/skus/:sku_id/editor":            true,
		"PATCH /v1/rfqs/:rfq_id/editor/draft":                  true,
		"POST /v1/rfqs/:rfq_id/editor/save":                    true,
		"DELETE /v1/rfqs/:rfq_id/editor":                       true,
		"DELETE /v1/rfqs/:rfq_id/skus/:sku_id/products/:index": true,
		"PUT /v1/rfqs/:rfq_id/overhead":                        true,
		"GET /v1/rfqs/:rfq_id/cost-sheet":                      true,
		"GET /v1/raw-materials":                                true,
	}
	for _, ri := range r.Routes() {
		delete(want, ri.Method+" "+ri.Path)
	}
	if len(want) != 0 {
		t.Fatalf("missing routes: %v", want)
	}
}
