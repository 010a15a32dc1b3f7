package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound は指定されたポケモンが上流に存在しない場合のエラー。
var ErrNotFound = errors.New("pokeapi: pokemon not found")

// ErrTimeout は上流へのリクエストがタイムアウトした場合のエラー。
var ErrTimeout = errors.New("pokeapi: request timed out")

// ErrUnavailable は上流がエラーを返した、または通信に失敗した場合のエラー。
var ErrUnavailable = errors.New("pokeapi: service unavailable")

// Client はPokeAPIとの通信を行うHTTPクライアント。
// タイムアウトはプロセス起動時に一度だけ設定される。
type Client struct {
	// httpClient は内部で使用するHTTPクライアント。
	httpClient *http.Client
	// baseURL は接続先PokeAPIのベースURL（例: "https://pokeapi.co/api/v2"）。
	baseURL string
}

// New は新しいPokeAPIクライアントを生成する。
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// ListPokemons はページネーション付きのポケモン一覧を取得する。
// リトライは行わず、1呼び出しにつき1回だけリクエストする。
// 一覧取得ではエラーステータスを404も含めてすべてErrUnavailableに分類する。
func (c *Client) ListPokemons(ctx context.Context, offset, limit int) (*ListResponse, error) {
	params := url.Values{}
	params.Set("offset", strconv.Itoa(offset))
	params.Set("limit", strconv.Itoa(limit))

	body, status, err := c.get(ctx, "/pokemon?"+params.Encode())
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: status=%d", ErrUnavailable, status)
	}

	var list ListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("%w: レスポンスボディのデシリアライズに失敗: %v", ErrUnavailable, err)
	}
	return &list, nil
}

// GetPokemon は指定されたIDまたは名前のポケモン詳細を取得する。
// 上流のJSONをそのまま返し、内部構造には関知しない。
// 上流が404を返した場合のみErrNotFoundを返す。
func (c *Client) GetPokemon(ctx context.Context, id string) (json.RawMessage, error) {
	body, status, err := c.get(ctx, "/pokemon/"+url.PathEscape(strings.ToLower(id)))
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: status=%d", ErrUnavailable, status)
	}
	return json.RawMessage(body), nil
}

// get は上流へのGETリクエストを実行し、レスポンスボディとステータスコードを返す共通処理。
// トランスポート障害のみをエラーに分類し、HTTPステータスの解釈は呼び出し元が行う。
// 404の意味が一覧取得と詳細取得で異なるため、ここではステータスを変換しない。
func (c *Client) get(ctx context.Context, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: HTTPリクエストの作成に失敗: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, 0, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, 0, fmt.Errorf("%w: HTTPリクエストの送信に失敗: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: レスポンスボディの読み取りに失敗: %v", ErrUnavailable, err)
	}
	return body, resp.StatusCode, nil
}

// isTimeout はトランスポートエラーがタイムアウト起因かどうかを判定する。
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
