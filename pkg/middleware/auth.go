package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/pokeapi-gateway/pkg/token"
)

// contextKeySubject はGinコンテキストにトークンのサブジェクトを格納するためのキー。
const contextKeySubject = "subject"

// BearerAuth はAuthorizationヘッダーのベアラートークンを検証するGinミドルウェアを返す。
// 検証に成功した場合、コンテキストにサブジェクト（ユーザー名）を設定する。
// ヘッダーの欠落・形式不正・トークン無効はいずれも401で拒否する。
func BearerAuth(codec *token.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Not authenticated")
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			abortUnauthorized(c, "Not authenticated")
			return
		}

		subject, err := codec.Verify(tokenString)
		if err != nil {
			abortUnauthorized(c, "Could not validate credentials")
			return
		}

		c.Set(contextKeySubject, subject)
		c.Next()
	}
}

// GetSubject はGinコンテキストから認証済みユーザー名を取得する。
// BearerAuthミドルウェアが事前に適用されている必要がある。
func GetSubject(c *gin.Context) string {
	subject, _ := c.Get(contextKeySubject)
	if s, ok := subject.(string); ok {
		return s
	}
	return ""
}

// abortUnauthorized は401レスポンスを返してリクエスト処理を打ち切る。
func abortUnauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
}
