package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Gunvolt24/coffee_delivery/internal/cache/memory"
	"github.com/Gunvolt24/coffee_delivery/internal/cart"
	"github.com/Gunvolt24/coffee_delivery/internal/catalog"
	"github.com/Gunvolt24/coffee_delivery/internal/confirmation"
	"github.com/Gunvolt24/coffee_delivery/internal/domain"
	rest "github.com/Gunvolt24/coffee_delivery/internal/transport/http"
	"github.com/Gunvolt24/coffee_delivery/internal/usecase"
	"github.com/Gunvolt24/coffee_delivery/pkg/httpx"
	"github.com/Gunvolt24/coffee_delivery/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSession = "5b0f2a40-3c1e-4d7a-9a55-0b8f7c1e2d33"

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func init() { gin.SetMode(gin.TestMode) }

func newStorefront() *usecase.Storefront {
	inbox := confirmation.NewInbox(16, time.Minute)
	sessions := memory.NewLRUCacheTTL[*usecase.Session]("sessions-rest-test", 16, time.Minute)
	return usecase.NewStorefront(catalog.Builtin(), validate.NewCheckoutValidator(), inbox, inbox, sessions, noopLogger{})
}

func newRouter(svc rest.Service) *gin.Engine {
	h := rest.NewHandler(svc, noopLogger{}, 0, time.Hour)
	return rest.NewRouter(h, "", "test")
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(httpx.SessionHeader, testSession)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body=%s", w.Body.String())
	return v
}

func TestPing_OK(t *testing.T) {
	r := newRouter(newStorefront())

	w := do(t, r, http.MethodGet, "/ping", nil)
	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("want 200 pong, got %d %q", w.Code, w.Body.String())
	}
}

func TestMetrics_OK(t *testing.T) {
	r := newRouter(newStorefront())

	w := do(t, r, http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	r := newRouter(newStorefront())

	w := do(t, r, http.MethodGet, "/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/api/products", nil)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d", w.Code)
	}
	if allow := w.Header().Get("Allow"); !strings.Contains(allow, http.MethodGet) {
		t.Fatalf("want Allow with GET, got %q", allow)
	}
}

func TestProducts_LimitOffset(t *testing.T) {
	r := newRouter(newStorefront())

	all := decode[[]map[string]any](t, do(t, r, http.MethodGet, "/api/products", nil))
	require.Len(t, all, len(catalog.Builtin().List()))
	require.Equal(t, "traditionalEspresso", all[0]["key"])
	require.Equal(t, "R$ 9,90", all[0]["price_text"])

	page := decode[[]map[string]any](t, do(t, r, http.MethodGet, "/api/products?limit=2&offset=1", nil))
	require.Len(t, page, 2)
	require.Equal(t, all[1]["key"], page[0]["key"])

	tail := decode[[]map[string]any](t, do(t, r, http.MethodGet, "/api/products?offset=1000", nil))
	require.Empty(t, tail)
}

func TestSession_AssignedWhenAbsent(t *testing.T) {
	r := newRouter(newStorefront())

	req := httptest.NewRequest(http.MethodGet, "/api/cart/badge", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get(httpx.SessionHeader))
	require.Contains(t, w.Header().Get("Set-Cookie"), httpx.SessionCookie+"=")
}

func TestCart_Lifecycle(t *testing.T) {
	r := newRouter(newStorefront())

	w := do(t, r, http.MethodPost, "/api/cart/items", map[string]any{"type": "traditionalEspresso", "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	line := decode[domain.CartItem](t, w)
	require.Equal(t, "19.8", line.Price.String())

	badge := decode[map[string]int](t, do(t, r, http.MethodGet, "/api/cart/badge", nil))
	require.Equal(t, 2, badge["count"])
	require.Equal(t, 1, badge["lines"])

	w = do(t, r, http.MethodPatch, "/api/cart/items/"+line.ID, map[string]any{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode[map[string]any](t, do(t, r, http.MethodGet, "/api/cart", nil))
	require.Equal(t, "R$ 29,70", body["subtotal_text"])

	w = do(t, r, http.MethodPatch, "/api/cart/items/"+line.ID, map[string]any{"quantity": 0})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, r, http.MethodPatch, "/api/cart/items/missing", map[string]any{"quantity": 1})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodDelete, "/api/cart/items/"+line.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	body = decode[map[string]any](t, do(t, r, http.MethodGet, "/api/cart", nil))
	require.Empty(t, body["items"])
}

func TestCart_AddItem_BadRequests(t *testing.T) {
	r := newRouter(newStorefront())

	w := do(t, r, http.MethodPost, "/api/cart/items", "{not json")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/cart/items", map[string]any{"type": "tea", "quantity": 1})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCart_AddItem_QuantityBound(t *testing.T) {
	r := newRouter(newStorefront())

	w := do(t, r, http.MethodPost, "/api/cart/items", map[string]any{"type": "latte", "quantity": math.MaxInt})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/cart/items", map[string]any{"type": "latte", "quantity": cart.MaxLineQuantity})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/cart/items", map[string]any{"type": "latte", "quantity": 1})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	body := decode[struct {
		Fields map[string]string `json:"fields"`
	}](t, w)
	require.Contains(t, body.Fields, "quantity")

	badge := decode[map[string]int](t, do(t, r, http.MethodGet, "/api/cart/badge", nil))
	require.Equal(t, cart.MaxLineQuantity, badge["count"])
	require.Equal(t, 1, badge["lines"])
}

func TestCheckout_EmptyCartConflict(t *testing.T) {
	r := newRouter(newStorefront())

	w := do(t, r, http.MethodPut, "/api/checkout/fields/cep", map[string]string{"value": "01310100"})
	require.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPost, "/api/checkout/submit", nil)
	require.Equal(t, http.StatusConflict, w.Code)

	summary := decode[map[string]any](t, do(t, r, http.MethodGet, "/api/checkout", nil))
	require.Equal(t, true, summary["disabled"])
}

func TestCheckout_SetField_NumericValue(t *testing.T) {
	r := newRouter(newStorefront())

	w := do(t, r, http.MethodPost, "/api/cart/items", map[string]any{"type": "latte", "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodPut, "/api/checkout/fields/number", map[string]any{"value": 1578})
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = do(t, r, http.MethodPut, "/api/checkout/fields/number", map[string]any{"value": true})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	// номер дома из числа проходит проверку: ошибки только у незаполненных полей
	w = do(t, r, http.MethodPost, "/api/checkout/submit", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode[struct {
		Fields map[string]string `json:"fields"`
	}](t, w)
	require.NotContains(t, body.Fields, domain.FieldNumber)
	require.Contains(t, body.Fields, domain.FieldCEP)
}

func TestCheckout_SubmitFlow(t *testing.T) {
	r := newRouter(newStorefront())

	w := do(t, r, http.MethodPost, "/api/cart/items", map[string]any{"type": "latte", "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// пустая форма — 422 со всеми полями
	w = do(t, r, http.MethodPost, "/api/checkout/submit", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode[struct {
		Fields map[string]string `json:"fields"`
	}](t, w)
	require.Equal(t, "CEP is required", body.Fields[domain.FieldCEP])
	require.Contains(t, body.Fields, domain.FieldState)

	for field, value := range map[string]string{
		domain.FieldCEP:           "01310-100",
		domain.FieldStreet:        "Avenida Paulista",
		domain.FieldNumber:        "1578",
		domain.FieldNeighborhood:  "Bela Vista",
		domain.FieldCity:          "São Paulo",
		domain.FieldState:         "sp",
		domain.FieldPaymentMethod: "money",
	} {
		w = do(t, r, http.MethodPut, "/api/checkout/fields/"+field, map[string]string{"value": value})
		require.Equal(t, http.StatusNoContent, w.Code, "%s: %s", field, w.Body.String())
	}

	w = do(t, r, http.MethodPut, "/api/checkout/fields/coupon", map[string]string{"value": "x"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, r, http.MethodPost, "/api/checkout/submit", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decode[map[string]string](t, w)["id"]
	require.NotEmpty(t, id)
	require.Equal(t, "/api/success/"+id, w.Header().Get("Location"))

	// корзина очищена
	badge := decode[map[string]int](t, do(t, r, http.MethodGet, "/api/cart/badge", nil))
	require.Equal(t, 0, badge["count"])

	w = do(t, r, http.MethodGet, "/api/success/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[map[string]any](t, w)
	require.Equal(t, "Dinheiro", view["payment_label"])
	require.Equal(t, "R$ 14,40", view["total_text"])
	require.Equal(t, "R$ 3,50", view["delivery_text"])
	addr := view["address"].(map[string]any)
	require.Equal(t, "01310100", addr["cep"])
	require.Equal(t, "SP", addr["state"])

	// подтверждение одноразовое
	w = do(t, r, http.MethodGet, "/api/success/"+id, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

type failingService struct {
	rest.Service
	err error
}

func (f failingService) Cart(context.Context, string) (domain.CartSnapshot, error) {
	return domain.CartSnapshot{}, f.err
}

func TestCart_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"internal", errors.New("boom"), http.StatusInternalServerError},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"precondition", usecase.ErrSessionRequired, http.StatusConflict},
		{"not found", usecase.ErrConfirmationNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(failingService{err: tt.err})
			w := do(t, r, http.MethodGet, "/api/cart", nil)
			if w.Code != tt.want {
				t.Fatalf("want %d, got %d body=%s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}
