// Package pokeapi は外部データプロバイダであるPokeAPIへのHTTPクライアントを提供する。
//
// ポケモン一覧の取得と詳細の取得の2操作のみを持つ読み取り専用クライアント。
// トランスポート障害とHTTPエラーステータスを少数のゲートウェイエラー
// （ErrNotFound / ErrTimeout / ErrUnavailable）に分類する。
// リトライやキャッシュは行わない。
package pokeapi
