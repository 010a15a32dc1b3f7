package pokeapi

// ListItem は一覧レスポンスに含まれる1件のポケモン。
type ListItem struct {
	// Name はポケモン名。
	Name string `json:"name"`
	// URL は詳細取得用のURL。
	URL string `json:"url"`
}

// ListResponse はページネーション付きのポケモン一覧。
// 上流のレスポンス構造をそのまま写した型付きエンベロープ。
type ListResponse struct {
	// Count は全件数。
	Count int `json:"count"`
	// Next は次ページのURL。最終ページの場合はnull。
	Next *string `json:"next"`
	// Previous は前ページのURL。先頭ページの場合はnull。
	Previous *string `json:"previous"`
	// Results はポケモンの一覧。
	Results []ListItem `json:"results"`
}
