package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pump_base/internal/common"
	"pump_base/internal/generator"
	"pump_base/internal/model"
)

func TestStore_Initialize(t *testing.T) {
	s := NewStore()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	tokens := s.Initialize(generator.NewSeeded(3, common.CHAIN_BASE), now)

	require.Len(t, tokens, SeedCount())
	assert.Equal(t, 12, s.Len())

	ids := map[string]bool{}
	for i, tok := range tokens {
		require.NoError(t, tok.Validate(), "种子代币 %d 不合法", i)
		assert.False(t, ids[tok.ID], "id重复: %s", tok.ID)
		ids[tok.ID] = true
		assert.False(t, tok.CreatedAt.After(now))
		assert.True(t, tok.CreatedAt.After(now.Add(-72*time.Hour)))
		assert.Equal(t, common.ImageURI(tok.Ticker), tok.Image)
	}
	assert.Equal(t, "token-0", tokens[0].ID)
	assert.Equal(t, "Based Pepe", tokens[0].Name)
	assert.Equal(t, "RUG", tokens[11].Ticker)
}

func TestStore_InitializeReplaces(t *testing.T) {
	s := NewStore()
	gen := generator.NewSeeded(1, common.CHAIN_BASE)
	s.Initialize(gen, time.Now())
	require.NoError(t, s.Prepend(model.Token{ID: "token-x", Ticker: "X"}))
	require.Equal(t, 13, s.Len())

	s.Initialize(gen, time.Now())
	assert.Equal(t, 12, s.Len())
	// 替换后旧id不再占用
	assert.NoError(t, s.Prepend(model.Token{ID: "token-x", Ticker: "X"}))
}

func TestStore_Prepend(t *testing.T) {
	s := NewStore()
	s.Initialize(&generator.Fixed{Address: "0xabc", Cap: 1000}, time.Now())
	before := s.All()

	tok := model.Token{ID: "token-new", Name: "Test", Ticker: "TST", CreatedAt: time.Now()}
	require.NoError(t, s.Prepend(tok))

	after := s.All()
	require.Len(t, after, len(before)+1)
	assert.Equal(t, "token-new", after[0].ID)
	for i := range before {
		assert.Equal(t, before[i].ID, after[i+1].ID, "其余代币顺序应保持不变")
	}
}

func TestStore_PrependRejects(t *testing.T) {
	tests := []struct {
		name    string
		token   model.Token
		wantErr error
	}{
		{name: "重复id", token: model.Token{ID: "token-0", Ticker: "DUP"}, wantErr: ErrDuplicateID},
		{name: "非法ticker", token: model.Token{ID: "token-bad", Ticker: "lower"}, wantErr: model.ErrInvalidToken},
		{name: "空id", token: model.Token{Ticker: "NOID"}, wantErr: model.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			s.Initialize(generator.NewSeeded(5, common.CHAIN_BASE), time.Now())
			err := s.Prepend(tt.token)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 12, s.Len())
		})
	}
}

func TestStore_AllIsSnapshot(t *testing.T) {
	s := NewStore()
	s.Initialize(generator.NewSeeded(9, common.CHAIN_BASE), time.Now())

	snapshot := s.All()
	snapshot[0].Name = "changed"
	assert.NotEqual(t, "changed", s.All()[0].Name)
}
