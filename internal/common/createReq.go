package common

// CreateTokenReq 创建代币表单提交的内容
type CreateTokenReq struct {
	Name        string `json:"name"`
	Ticker      string `json:"ticker"`
	Description string `json:"description"`
}
