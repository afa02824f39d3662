package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"xiangqi/internal/xiangqi"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrNotYourTurn  = errors.New("piece does not belong to the side to move")
)

// Manager 内存里的对局表；棋盘只在持锁时修改
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

func (m *Manager) NewGame() *GameState {
	return m.add(xiangqi.NewBoard(), xiangqi.Red)
}

// NewGameFromFEN 从 FEN 开一局（没有历史）
func (m *Manager) NewGameFromFEN(fen string) (*GameState, error) {
	b, side, err := xiangqi.Decode(fen)
	if err != nil {
		return nil, err
	}
	return m.add(b, side), nil
}

func (m *Manager) add(b *xiangqi.Board, toMove xiangqi.Side) *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Board:     b,
		ToMove:    toMove,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[g.ID] = g
	return g
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// Play 校验走子方后走一步；非法时棋盘不变
func (m *Manager) Play(id string, from, to xiangqi.Pos) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return ErrGameNotFound
	}
	if !g.Board.HasFriendAt(g.ToMove, from) {
		return &xiangqi.IllegalMoveError{From: from, To: to, Reason: ErrNotYourTurn}
	}
	if err := g.Board.ApplyChecked(from, to); err != nil {
		return err
	}
	g.ToMove = g.ToMove.Other()
	g.UpdatedAt = time.Now()
	return nil
}

func (m *Manager) Undo(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return ErrGameNotFound
	}
	if err := g.Board.Undo(); err != nil {
		return err
	}
	g.ToMove = g.ToMove.Other()
	g.UpdatedAt = time.Now()
	return nil
}

// Snapshot 返回棋盘副本，供后台 AI 思考时使用
func (m *Manager) Snapshot(id string) (*xiangqi.Board, xiangqi.Side, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, xiangqi.NoSide, ErrGameNotFound
	}
	return g.Board.Clone(), g.ToMove, nil
}

func (m *Manager) Status(id string) (Status, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return "", ErrGameNotFound
	}
	return g.status(), nil
}

// FEN 当前局面的 FEN
func (m *Manager) FEN(id string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return "", ErrGameNotFound
	}
	return xiangqi.Encode(g.Board, g.ToMove), nil
}

func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
}
