package common

import (
	"fmt"
	"net/url"
	"time"
)

const MAX_TICKER_LEN = 8
const MAX_PROGRESS = 100

const (
	DEFAULT_LOAD_DELAY   = 800 * time.Millisecond
	DEFAULT_SUBMIT_DELAY = 1000 * time.Millisecond
)

const imageBackground = "0052ff,1652f0,0a3d91"

// ImageURI 根据种子生成代币头像地址，只用于展示
func ImageURI(seed string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/shapes/svg?seed=%s&backgroundColor=%s",
		url.QueryEscape(seed), imageBackground)
}
