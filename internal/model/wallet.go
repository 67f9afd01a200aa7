package model

// Wallet 模拟的钱包连接状态，地址只是展示用的随机字符串
type Wallet struct {
	Connected bool   `json:"connected"`
	Address   string `json:"address,omitempty"`
}

// Connect 连接钱包
func (w *Wallet) Connect(address string) {
	w.Connected = true
	w.Address = address
}

// Disconnect 断开钱包
func (w *Wallet) Disconnect() {
	w.Connected = false
	w.Address = ""
}
