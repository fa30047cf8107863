package httpx

import (
	"net/http"

	"github.com/Gunvolt24/coffee_delivery/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "coffee_session"
	SessionHeader = "X-Session-ID"
)

// SessionMiddleware:
// - берёт id сессии из заголовка X-Session-ID или cookie coffee_session
// - невалидный или отсутствующий id заменяется новым UUID
// - кладёт session_id в контекст и возвращает его в cookie и заголовке
func SessionMiddleware(maxAge int) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID, _ = c.Cookie(SessionCookie)
		}
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.New().String()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sessionID, maxAge, "/", "", false, true)
		c.Header(SessionHeader, sessionID)

		ctx := ctxmeta.WithSessionID(c.Request.Context(), sessionID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// SessionID — id сессии текущего запроса (пусто, если middleware не подключён).
func SessionID(c *gin.Context) string {
	sid, _ := ctxmeta.SessionIDFromContext(c.Request.Context())
	return sid
}
