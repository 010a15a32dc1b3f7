// Package auth は資格情報の検証とアクセストークンの発行を提供する。
//
// 資格情報ストアはインターフェースとして抽象化されており、
// 現在の実装は固定の1ユーザー（admin/admin）のみを保持する。
// 検証に成功するとpkg/tokenのCodecで有効期限付きトークンを発行する。
package auth
