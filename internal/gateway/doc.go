// Package gateway はPokemon API GatewayのHTTPサーバーを提供する。
//
// 固定資格情報に対する有効期限付きベアラートークンの発行と、
// 上流PokeAPIへの2つの読み取り操作（一覧・詳細）のプロキシを担当する。
// 上流のエラーは少数のゲートウェイレベルのHTTPステータスに変換される。
// サーバー側に永続状態は持たない。
package gateway
