package catalog

// 启动时生成初始代币所用的固定列表
var seedTokens = []struct {
	Name        string
	Ticker      string
	Description string
}{
	{"Based Pepe", "BPEPE", "the most based frog on base chain"},
	{"Onchain Summer", "SUMMER", "its always summer when youre onchain"},
	{"Blue Chip Ape", "BAPE", "not affiliated with the clothing brand ser"},
	{"Coinbase Dog", "CBDOG", "brians favorite doggo"},
	{"L2 Maxi", "L2MAX", "ethereum but make it fast"},
	{"Base God", "BGOD", "we worship the blue square"},
	{"Degen Mode", "DEGEN", "ape first ask questions never"},
	{"Cope Token", "COPE", "for when you miss the pump"},
	{"Moon Mission", "MOON", "destination: stratosphere"},
	{"Diamond Hands", "DMND", "never selling ever"},
	{"Paper Boy", "PAPER", "sold too early again"},
	{"Rug Pull Insurance", "RUG", "definitely not a rug trust me bro"},
}

// SeedCount 初始代币数量
func SeedCount() int {
	return len(seedTokens)
}
