package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken はトークンの署名・形式・アルゴリズムが不正な場合のエラー。
var ErrInvalidToken = errors.New("token: invalid token")

// ErrExpiredToken はトークンの有効期限が切れている場合のエラー。
var ErrExpiredToken = errors.New("token: token expired")

// signingMethods は設定で選択可能な署名アルゴリズムの一覧。
var signingMethods = map[string]jwt.SigningMethod{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// Claims はトークンのクレーム（ペイロード）を表す。
// サブジェクト（ユーザー名）、発行時刻、有効期限を保持する。
type Claims struct {
	jwt.RegisteredClaims
}

// Codec はHMAC署名付きの有効期限付きトークンを発行・検証する。
// 秘密鍵と署名アルゴリズムはプロセス起動時に一度だけ設定され、以降は読み取り専用。
type Codec struct {
	// secret はHMAC署名用の秘密鍵。
	secret []byte
	// method はトークン署名に使用するアルゴリズム。
	method jwt.SigningMethod
	// now は現在時刻を返す関数。テストで差し替えるために持つ。
	now func() time.Time
}

// NewCodec は新しいトークンCodecを生成する。
// algorithmにはHS256/HS384/HS512のいずれかを指定する。
func NewCodec(secret, algorithm string) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token: 秘密鍵が設定されていません")
	}
	method, ok := signingMethods[algorithm]
	if !ok {
		return nil, fmt.Errorf("token: 未対応の署名アルゴリズム: %s", algorithm)
	}
	return &Codec{
		secret: []byte(secret),
		method: method,
		now:    time.Now,
	}, nil
}

// Mint はサブジェクトを埋め込んだ署名付きトークンを発行する。
// 有効期限は現在時刻 + ttl。
func (c *Codec) Mint(subject string, ttl time.Duration) (string, error) {
	now := c.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.New().String(),
		},
	}

	signed, err := jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("token: トークンの署名に失敗: %w", err)
	}
	return signed, nil
}

// Verify はトークンを検証し、埋め込まれたサブジェクトを返す。
// 署名不正・形式不正・アルゴリズム不一致はErrInvalidToken、
// 有効期限切れはErrExpiredTokenを返す。
func (c *Codec) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return c.now() }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}
	if !parsed.Valid {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
