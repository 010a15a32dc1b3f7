package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/nao1215/pokeapi-gateway/pkg/token"
)

// TokenType はログイン成功時に返すトークン種別のラベル。
const TokenType = "bearer"

// ErrUserNotFound は資格情報ストアにユーザーが存在しない場合のエラー。
var ErrUserNotFound = errors.New("auth: user not found")

// ErrInvalidCredentials はユーザー名またはパスワードが一致しない場合のエラー。
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// CredentialStore はユーザー名から期待されるパスワードを引く資格情報ストア。
// 現在は固定の1ユーザーのみだが、将来的にデータベース実装に差し替えられる。
type CredentialStore interface {
	// Lookup はユーザー名に対応するパスワードを返す。
	// ユーザーが存在しない場合はErrUserNotFoundを返す。
	Lookup(username string) (string, error)
}

// StaticStore は固定の1ユーザーのみを保持する資格情報ストア。
type StaticStore struct {
	// username は登録済みユーザー名。
	username string
	// password は登録済みパスワード。
	password string
}

// NewStaticStore は指定されたユーザー名とパスワードの組を保持するStaticStoreを生成する。
func NewStaticStore(username, password string) *StaticStore {
	return &StaticStore{username: username, password: password}
}

// Lookup はユーザー名に対応するパスワードを返す。
func (s *StaticStore) Lookup(username string) (string, error) {
	if username != s.username {
		return "", ErrUserNotFound
	}
	return s.password, nil
}

// Authenticator は資格情報を検証し、アクセストークンを発行する。
type Authenticator struct {
	// store は資格情報の参照先ストア。
	store CredentialStore
	// codec はトークンの発行に使用するCodec。
	codec *token.Codec
	// ttl は発行するトークンの有効期間。
	ttl time.Duration
}

// NewAuthenticator は新しいAuthenticatorを生成する。
func NewAuthenticator(store CredentialStore, codec *token.Codec, ttl time.Duration) *Authenticator {
	return &Authenticator{store: store, codec: codec, ttl: ttl}
}

// Authenticate はユーザー名とパスワードを検証し、アクセストークンを発行する。
// 資格情報が一致しない場合はErrInvalidCredentialsを返す。
// ユーザーの存在有無は呼び出し元に区別させない。
func (a *Authenticator) Authenticate(username, password string) (string, error) {
	expected, err := a.store.Lookup(username)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if password != expected {
		return "", ErrInvalidCredentials
	}

	tok, err := a.codec.Mint(username, a.ttl)
	if err != nil {
		return "", fmt.Errorf("auth: トークンの発行に失敗: %w", err)
	}
	return tok, nil
}
