// Package token はHMAC署名付きの有効期限付きベアラートークンを提供する。
//
// トークンはサブジェクト（ユーザー名）・発行時刻・有効期限を含む
// 自己完結型のクレームセットであり、サーバー側にセッション状態を持たない。
// 署名検証に成功し、かつ有効期限内である場合のみトークンは有効とみなされる。
package token
