package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortOption(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SortOption
		wantErr bool
	}{
		{name: "空字符串使用默认值", input: "", want: SORT_BUMP},
		{name: "bump", input: "bump", want: SORT_BUMP},
		{name: "大小写不敏感", input: "MarketCap", want: SORT_MARKET_CAP},
		{name: "短标签mcap", input: "mcap", want: SORT_MARKET_CAP},
		{name: "短标签replies", input: "replies", want: SORT_LAST_REPLY},
		{name: "creation", input: "creation", want: SORT_CREATION},
		{name: "未知排序", input: "volume", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSortOption(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownSortOption)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChain(t *testing.T) {
	got, err := ParseChain("")
	require.NoError(t, err)
	assert.Equal(t, CHAIN_BASE, got)

	got, err = ParseChain(" Solana ")
	require.NoError(t, err)
	assert.Equal(t, CHAIN_SOLANA, got)

	_, err = ParseChain("ethereum")
	assert.ErrorIs(t, err, ErrUnknownChain)
}

func TestImageURI(t *testing.T) {
	uri := ImageURI("BPEPE")
	assert.True(t, strings.HasPrefix(uri, "https://api.dicebear.com/7.x/shapes/svg?seed=BPEPE&"))
	assert.Contains(t, uri, "backgroundColor=0052ff,1652f0,0a3d91")
}
