package gateway

// loginRequest はログインエンドポイントのリクエストボディ。
type loginRequest struct {
	// Username はユーザー名。必須。
	Username string `json:"username" binding:"required"`
	// Password はパスワード。必須。
	Password string `json:"password" binding:"required"`
}

// loginResponse はログイン成功時のレスポンスボディ。
type loginResponse struct {
	// AccessToken は発行されたアクセストークン。
	AccessToken string `json:"access_token"`
	// TokenType はトークン種別のラベル（常に"bearer"）。
	TokenType string `json:"token_type"`
}
