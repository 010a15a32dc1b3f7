// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// ベアラートークンの検証、CORS設定、パニックリカバリ、
// リクエストIDの付与など、ゲートウェイの全エンドポイントで
// 共通して使用するミドルウェアを含む。
package middleware
