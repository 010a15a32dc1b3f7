// Package config は環境変数からのアプリケーション設定の読み込みを提供する。
//
// 設定はプロセス起動時にmainで一度だけ読み込まれ、
// 各コンポーネントのコンストラクタに値として渡される。
// グローバルな可変状態や暗黙的な再読み込みは行わない。
package config
