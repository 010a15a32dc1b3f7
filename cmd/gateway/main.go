// Pokemon API Gatewayのエントリポイント。
// 固定資格情報に対するトークン発行と、上流PokeAPIへの
// 読み取りリクエストのプロキシを担当する。
package main

import (
	"log"

	"github.com/nao1215/pokeapi-gateway/internal/config"
	"github.com/nao1215/pokeapi-gateway/internal/gateway"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	server, err := gateway.NewServer(cfg)
	if err != nil {
		log.Fatalf("Gatewayサーバーの初期化に失敗: %v", err)
	}

	log.Printf("%s v%s を起動します: %s", cfg.AppName, cfg.AppVersion, cfg.Addr())
	if err := server.Run(); err != nil {
		log.Fatalf("Gatewayサービスの起動に失敗: %v", err)
	}
}
