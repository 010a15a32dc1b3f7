package gateway

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/pokeapi-gateway/internal/auth"
	"github.com/nao1215/pokeapi-gateway/internal/config"
	"github.com/nao1215/pokeapi-gateway/internal/pokeapi"
	"github.com/nao1215/pokeapi-gateway/pkg/middleware"
	"github.com/nao1215/pokeapi-gateway/pkg/token"
)

// ゲートウェイに登録する固定ユーザーの資格情報。
// 将来的にユーザーストアへ置き換えるためのプレースホルダ。
const (
	adminUsername = "admin"
	adminPassword = "admin"
)

// ページネーションの既定値と上限。
const (
	defaultOffset = 0
	defaultLimit  = 20
	maxLimit      = 100
)

// Server はPokemon API GatewayのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// cfg はプロセス起動時に読み込まれた設定。
	cfg *config.Config
	// auth は資格情報の検証とトークン発行を行う。
	auth *auth.Authenticator
	// pokeapi は上流PokeAPIへのクライアント。
	pokeapi *pokeapi.Client
}

// NewServer は新しいGatewayサーバーを生成する。
func NewServer(cfg *config.Config) (*Server, error) {
	codec, err := token.NewCodec(cfg.SecretKey, cfg.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("トークンCodecの生成に失敗: %w", err)
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORSOrigins))

	s := &Server{
		router:  router,
		cfg:     cfg,
		auth:    auth.NewAuthenticator(auth.NewStaticStore(adminUsername, adminPassword), codec, cfg.TokenTTL()),
		pokeapi: pokeapi.New(cfg.PokeAPIBaseURL, cfg.UpstreamTimeout()),
	}
	s.setupRoutes(codec)

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(s.cfg.Addr())
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes(codec *token.Codec) {
	// 認証不要のエンドポイント
	s.router.GET("/", s.handleRoot())
	s.router.GET("/health", s.handleHealth())
	s.router.POST("/login", s.handleLogin())

	// 認証必須のエンドポイント
	api := s.router.Group("/")
	api.Use(middleware.BearerAuth(codec))
	{
		api.GET("/pokemons", s.handleListPokemons())
		api.GET("/pokemons/:id", s.handleGetPokemonDetail())
	}
}

// handleRoot はAPI情報を返すハンドラを返す。
func (s *Server) handleRoot() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": s.cfg.AppName,
			"version": s.cfg.AppVersion,
			"status":  "running",
			"endpoints": gin.H{
				"login":          "/login",
				"pokemons":       "/pokemons",
				"pokemon_detail": "/pokemons/{id}",
				"health":         "/health",
			},
		})
	}
}

// handleHealth はヘルスチェック用ハンドラを返す。
func (s *Server) handleHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   s.cfg.AppVersion,
		})
	}
}

// handleLogin は資格情報を検証してアクセストークンを発行するハンドラを返す。
func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Invalid request body: username and password are required"})
			return
		}

		tok, err := s.auth.Authenticate(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				c.Header("WWW-Authenticate", "Bearer")
				c.JSON(http.StatusUnauthorized, gin.H{"detail": "Incorrect username or password"})
				return
			}
			log.Printf("トークン発行エラー: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, loginResponse{
			AccessToken: tok,
			TokenType:   auth.TokenType,
		})
	}
}

// handleListPokemons はページネーション付きのポケモン一覧を返すハンドラを返す。
// 範囲外のoffset/limitは拒否せずにクランプする。
func (s *Server) handleListPokemons() gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, err := strconv.Atoi(c.DefaultQuery("offset", strconv.Itoa(defaultOffset)))
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "offset must be an integer"})
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "limit must be an integer"})
			return
		}
		offset, limit = clampPagination(offset, limit)

		list, err := s.pokeapi.ListPokemons(c.Request.Context(), offset, limit)
		if err != nil {
			s.upstreamError(c, err, "")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// handleGetPokemonDetail は指定されたポケモンの詳細を返すハンドラを返す。
// 上流のJSONをそのまま転送する。
func (s *Server) handleGetPokemonDetail() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		body, err := s.pokeapi.GetPokemon(c.Request.Context(), id)
		if err != nil {
			s.upstreamError(c, err, id)
			return
		}
		c.Data(http.StatusOK, "application/json", body)
	}
}

// upstreamError は上流クライアントのエラーをHTTPステータスに変換して応答する。
func (s *Server) upstreamError(c *gin.Context, err error, id string) {
	switch {
	case errors.Is(err, pokeapi.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("Pokemon '%s' not found", id)})
	case errors.Is(err, pokeapi.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"detail": "PokeAPI request timed out"})
	default:
		log.Printf("上流エラー: request_id=%s user=%s: %v",
			middleware.GetRequestID(c), middleware.GetSubject(c), err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "Error fetching data from PokeAPI"})
	}
}

// clampPagination はページネーションパラメータを有効な範囲に収める。
// offset<0は0、limit<1は既定値20、limit>100は100に補正する。
func clampPagination(offset, limit int) (int, int) {
	if offset < 0 {
		offset = defaultOffset
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return offset, limit
}
