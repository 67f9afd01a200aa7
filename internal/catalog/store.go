package catalog

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"pump_base/internal/common"
	"pump_base/internal/generator"
	"pump_base/internal/model"
)

var ErrDuplicateID = errors.New("代币id已存在")

// Store 进程内的代币列表，只支持头部插入和整体读取
type Store struct {
	tokens []model.Token
	ids    map[string]struct{}
	mutex  sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		tokens: make([]model.Token, 0),
		ids:    make(map[string]struct{}),
	}
}

// Initialize 用固定列表和随机数据生成初始代币，替换现有内容
func (s *Store) Initialize(gen generator.Generator, now time.Time) []model.Token {
	tokens := make([]model.Token, 0, len(seedTokens))
	for i, seed := range seedTokens {
		tokens = append(tokens, model.Token{
			ID:          fmt.Sprintf("token-%d", i),
			Name:        seed.Name,
			Ticker:      seed.Ticker,
			Image:       common.ImageURI(seed.Ticker),
			Creator:     gen.CreatorAddress(),
			MarketCap:   gen.MarketCap(),
			Replies:     gen.Replies(),
			Progress:    gen.Progress(),
			CreatedAt:   now.Add(-gen.Age()),
			Description: seed.Description,
		})
	}

	s.mutex.Lock()
	s.tokens = tokens
	s.ids = make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		s.ids[t.ID] = struct{}{}
	}
	s.mutex.Unlock()

	return s.All()
}

// Prepend 将代币插入到列表头部，其余代币相对顺序不变
func (s *Store) Prepend(token model.Token) error {
	if err := token.Validate(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.ids[token.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, token.ID)
	}
	tokens := make([]model.Token, 0, len(s.tokens)+1)
	tokens = append(tokens, token)
	tokens = append(tokens, s.tokens...)
	s.tokens = tokens
	s.ids[token.ID] = struct{}{}
	return nil
}

// All 返回当前列表的副本
func (s *Store) All() []model.Token {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]model.Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}

func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.tokens)
}
