package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config はアプリケーション全体の設定。
// プロセス起動時に環境変数から一度だけ読み込まれ、以降は読み取り専用。
type Config struct {
	// SecretKey はトークン署名用の秘密鍵。必須。
	SecretKey string
	// Algorithm はトークンの署名アルゴリズム（HS256/HS384/HS512）。
	Algorithm string
	// AccessTokenExpireMinutes はアクセストークンの有効期間（分）。
	AccessTokenExpireMinutes int
	// PokeAPIBaseURL は上流PokeAPIのベースURL。
	PokeAPIBaseURL string
	// PokeAPITimeoutSeconds は上流リクエストのタイムアウト（秒）。
	PokeAPITimeoutSeconds int
	// Host はHTTPサーバーのバインドアドレス。
	Host string
	// Port はHTTPサーバーのリッスンポート。
	Port int
	// CORSOrigins はクロスオリジンリクエストを許可するオリジンの一覧。
	CORSOrigins []string
	// AppName はアプリケーション名。
	AppName string
	// AppVersion はアプリケーションのバージョン。
	AppVersion string
	// Debug はデバッグモードの有効フラグ。
	Debug bool
}

// Load は環境変数から設定を読み込む。
// SECRET_KEY以外の項目にはデフォルト値がある。
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ALGORITHM", "HS256")
	v.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	v.SetDefault("POKEAPI_BASE_URL", "https://pokeapi.co/api/v2")
	v.SetDefault("POKEAPI_TIMEOUT", 30)
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 8000)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("APP_NAME", "Pokemon API Gateway")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("DEBUG", false)

	secret := v.GetString("SECRET_KEY")
	if secret == "" {
		return nil, errors.New("config: 環境変数SECRET_KEYが設定されていません")
	}

	cfg := &Config{
		SecretKey:                secret,
		Algorithm:                v.GetString("ALGORITHM"),
		AccessTokenExpireMinutes: v.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES"),
		PokeAPIBaseURL:           v.GetString("POKEAPI_BASE_URL"),
		PokeAPITimeoutSeconds:    v.GetInt("POKEAPI_TIMEOUT"),
		Host:                     v.GetString("HOST"),
		Port:                     v.GetInt("PORT"),
		CORSOrigins:              splitOrigins(v.GetString("CORS_ORIGINS")),
		AppName:                  v.GetString("APP_NAME"),
		AppVersion:               v.GetString("APP_VERSION"),
		Debug:                    v.GetBool("DEBUG"),
	}

	if cfg.AccessTokenExpireMinutes <= 0 {
		return nil, fmt.Errorf("config: ACCESS_TOKEN_EXPIRE_MINUTESは正の整数を指定してください: %d", cfg.AccessTokenExpireMinutes)
	}
	if cfg.PokeAPITimeoutSeconds <= 0 {
		return nil, fmt.Errorf("config: POKEAPI_TIMEOUTは正の整数を指定してください: %d", cfg.PokeAPITimeoutSeconds)
	}
	return cfg, nil
}

// TokenTTL はアクセストークンの有効期間を返す。
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// UpstreamTimeout は上流リクエストのタイムアウトを返す。
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.PokeAPITimeoutSeconds) * time.Second
}

// Addr はHTTPサーバーのリッスンアドレスを返す。
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// splitOrigins はカンマ区切りのオリジン文字列を一覧に分割する。
func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
