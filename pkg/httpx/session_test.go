package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/coffee_delivery/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func sessionRouter(got *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(httpx.SessionMiddleware(3600))
	r.GET("/", func(c *gin.Context) {
		*got = httpx.SessionID(c)
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestSessionMiddleware_GeneratesWhenMissing(t *testing.T) {
	var got string
	r := sessionRouter(&got)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	sid := w.Header().Get(httpx.SessionHeader)
	if _, err := uuid.Parse(sid); err != nil {
		t.Fatalf("generated session id must be UUID, got=%q", sid)
	}
	if got != sid {
		t.Fatalf("ctx session id %q != header %q", got, sid)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != httpx.SessionCookie || cookies[0].Value != sid || !cookies[0].HttpOnly {
		t.Fatalf("unexpected cookies: %+v", cookies)
	}
}

func TestSessionMiddleware_UsesCookieAndHeader(t *testing.T) {
	var got string
	r := sessionRouter(&got)

	fromCookie := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.AddCookie(&http.Cookie{Name: httpx.SessionCookie, Value: fromCookie})
	r.ServeHTTP(httptest.NewRecorder(), req)
	if got != fromCookie {
		t.Fatalf("cookie session id must be kept: got=%q want=%q", got, fromCookie)
	}

	// заголовок приоритетнее cookie
	fromHeader := uuid.New().String()
	req = httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.AddCookie(&http.Cookie{Name: httpx.SessionCookie, Value: fromCookie})
	req.Header.Set(httpx.SessionHeader, fromHeader)
	r.ServeHTTP(httptest.NewRecorder(), req)
	if got != fromHeader {
		t.Fatalf("header session id must win: got=%q want=%q", got, fromHeader)
	}
}

func TestSessionMiddleware_ReplacesInvalid(t *testing.T) {
	var got string
	r := sessionRouter(&got)

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set(httpx.SessionHeader, "not-a-uuid")
	r.ServeHTTP(httptest.NewRecorder(), req)
	if got == "not-a-uuid" || got == "" {
		t.Fatalf("invalid session id must be replaced, got=%q", got)
	}
}
