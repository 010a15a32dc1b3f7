package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TestRequestID はRequestIDミドルウェアを検証する。
func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("リクエストIDが生成されてレスポンスヘッダーに付与されること", func(t *testing.T) {
		t.Parallel()

		var gotID string
		router := gin.New()
		router.Use(RequestID())
		router.GET("/", func(c *gin.Context) {
			gotID = GetRequestID(c)
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		router.ServeHTTP(w, req)

		headerID := w.Header().Get("X-Request-ID")
		if headerID == "" {
			t.Fatal("X-Request-IDヘッダーが空")
		}
		if _, err := uuid.Parse(headerID); err != nil {
			t.Errorf("X-Request-IDがUUID形式でない: %v", err)
		}
		if gotID != headerID {
			t.Errorf("コンテキストのID = %q, ヘッダーのID = %q", gotID, headerID)
		}
	})

	t.Run("呼び出し元のX-Request-IDが引き継がれること", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(RequestID())
		router.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "caller-supplied-id")
		router.ServeHTTP(w, req)

		if got := w.Header().Get("X-Request-ID"); got != "caller-supplied-id" {
			t.Errorf("X-Request-ID = %q, want %q", got, "caller-supplied-id")
		}
	})
}
