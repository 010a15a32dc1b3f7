package config

import (
	"testing"
	"time"
)

// TestLoad はLoad関数を検証する。
// 環境変数を操作するためt.Parallel()は使用しない。
func TestLoad(t *testing.T) {
	t.Run("SECRET_KEYのみ設定した場合はデフォルト値が適用されること", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "test-secret-key")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load()でエラーが発生: %v", err)
		}

		if cfg.SecretKey != "test-secret-key" {
			t.Errorf("SecretKey = %q, want %q", cfg.SecretKey, "test-secret-key")
		}
		if cfg.Algorithm != "HS256" {
			t.Errorf("Algorithm = %q, want %q", cfg.Algorithm, "HS256")
		}
		if cfg.AccessTokenExpireMinutes != 30 {
			t.Errorf("AccessTokenExpireMinutes = %d, want 30", cfg.AccessTokenExpireMinutes)
		}
		if cfg.PokeAPIBaseURL != "https://pokeapi.co/api/v2" {
			t.Errorf("PokeAPIBaseURL = %q, want %q", cfg.PokeAPIBaseURL, "https://pokeapi.co/api/v2")
		}
		if cfg.PokeAPITimeoutSeconds != 30 {
			t.Errorf("PokeAPITimeoutSeconds = %d, want 30", cfg.PokeAPITimeoutSeconds)
		}
		if cfg.Host != "0.0.0.0" {
			t.Errorf("Host = %q, want %q", cfg.Host, "0.0.0.0")
		}
		if cfg.Port != 8000 {
			t.Errorf("Port = %d, want 8000", cfg.Port)
		}
		if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
			t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
		}
		if cfg.Debug {
			t.Error("Debugのデフォルトがtrue")
		}
	})

	t.Run("SECRET_KEYが未設定の場合はエラーになること", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "")

		if _, err := Load(); err == nil {
			t.Error("SECRET_KEY未設定でエラーが発生しなかった")
		}
	})

	t.Run("環境変数がデフォルト値を上書きすること", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "test-secret-key")
		t.Setenv("ALGORITHM", "HS512")
		t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "60")
		t.Setenv("POKEAPI_BASE_URL", "http://localhost:9000/api/v2")
		t.Setenv("POKEAPI_TIMEOUT", "5")
		t.Setenv("PORT", "8080")
		t.Setenv("DEBUG", "true")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load()でエラーが発生: %v", err)
		}

		if cfg.Algorithm != "HS512" {
			t.Errorf("Algorithm = %q, want %q", cfg.Algorithm, "HS512")
		}
		if cfg.AccessTokenExpireMinutes != 60 {
			t.Errorf("AccessTokenExpireMinutes = %d, want 60", cfg.AccessTokenExpireMinutes)
		}
		if cfg.PokeAPIBaseURL != "http://localhost:9000/api/v2" {
			t.Errorf("PokeAPIBaseURL = %q, want %q", cfg.PokeAPIBaseURL, "http://localhost:9000/api/v2")
		}
		if cfg.Port != 8080 {
			t.Errorf("Port = %d, want 8080", cfg.Port)
		}
		if !cfg.Debug {
			t.Error("Debug = false, want true")
		}
	})

	t.Run("カンマ区切りのCORS_ORIGINSが分割されること", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "test-secret-key")
		t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://example.com")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load()でエラーが発生: %v", err)
		}

		want := []string{"http://localhost:3000", "https://example.com"}
		if len(cfg.CORSOrigins) != len(want) {
			t.Fatalf("CORSOrigins = %v, want %v", cfg.CORSOrigins, want)
		}
		for i := range want {
			if cfg.CORSOrigins[i] != want[i] {
				t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.CORSOrigins[i], want[i])
			}
		}
	})

	t.Run("TTLが0以下の場合はエラーになること", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "test-secret-key")
		t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "0")

		if _, err := Load(); err == nil {
			t.Error("TTL=0でエラーが発生しなかった")
		}
	})
}

// TestConfigHelpers は設定値の変換ヘルパーを検証する。
func TestConfigHelpers(t *testing.T) {
	t.Parallel()

	t.Run("TokenTTLが分をDurationに変換すること", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{AccessTokenExpireMinutes: 30}
		if got := cfg.TokenTTL(); got != 30*time.Minute {
			t.Errorf("TokenTTL() = %v, want %v", got, 30*time.Minute)
		}
	})

	t.Run("UpstreamTimeoutが秒をDurationに変換すること", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{PokeAPITimeoutSeconds: 30}
		if got := cfg.UpstreamTimeout(); got != 30*time.Second {
			t.Errorf("UpstreamTimeout() = %v, want %v", got, 30*time.Second)
		}
	})

	t.Run("Addrがホストとポートを結合すること", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{Host: "127.0.0.1", Port: 8000}
		if got := cfg.Addr(); got != "127.0.0.1:8000" {
			t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:8000")
		}
	})
}
