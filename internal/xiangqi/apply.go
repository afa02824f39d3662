package xiangqi

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrEmptyHistory = errors.New("no move to undo")
)

// IllegalMoveError 带上尝试的坐标，方便交互层回显
type IllegalMoveError struct {
	From, To Pos
	Reason   error // 可选的具体原因，nil 时只表示不在合法落点里
}

func (e *IllegalMoveError) Error() string {
	if e.Reason != nil {
		return fmt.Sprintf("illegal move %v->%v: %v", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("illegal move %v->%v", e.From, e.To)
}

func (e *IllegalMoveError) Unwrap() []error {
	if e.Reason != nil {
		return []error{ErrIllegalMove, e.Reason}
	}
	return []error{ErrIllegalMove}
}

var errGameFinished = errors.New("game already finished")

// ApplyUnchecked 不做合法性检查直接走子（搜索里先用 LegalDestinations 过滤过）
func (b *Board) ApplyUnchecked(from, to Pos) {
	fi, ti := mustIndex(from), mustIndex(to)
	moved := b.squares[fi]
	captured := b.squares[ti]

	b.history = append(b.history, UndoRecord{
		From:     from,
		Moved:    moved,
		To:       to,
		Captured: captured,
	})

	if captured != 0 {
		b.pieces--
		if captured.Kind() == KindGeneral {
			b.finished = true
			b.winner = moved.Side()
		}
	}

	b.moveCount++
	if b.moveCount >= MaxPlies {
		b.finished = true
	}

	b.squares[ti] = moved
	b.squares[fi] = 0
}

// ApplyChecked 只接受 LegalDestinations(from) 里的落点
func (b *Board) ApplyChecked(from, to Pos) error {
	if b.finished {
		return &IllegalMoveError{From: from, To: to, Reason: errGameFinished}
	}
	if !b.IsLegal(from, to) {
		return &IllegalMoveError{From: from, To: to}
	}
	b.ApplyUnchecked(from, to)
	return nil
}

// Undo 悔一步。终局标记无条件清除：终结的那一步被撤回后局面不可能仍是终局
func (b *Board) Undo() error {
	n := len(b.history)
	if n == 0 {
		return ErrEmptyHistory
	}
	rec := b.history[n-1]
	b.history = b.history[:n-1]

	b.squares[mustIndex(rec.From)] = rec.Moved
	b.squares[mustIndex(rec.To)] = rec.Captured
	if rec.Captured != 0 {
		b.pieces++
	}
	b.moveCount--
	b.finished = false
	b.winner = NoSide
	return nil
}

// LastMove 最近一步，没有历史时返回 false
func (b *Board) LastMove() (UndoRecord, bool) {
	if len(b.history) == 0 {
		return UndoRecord{}, false
	}
	return b.history[len(b.history)-1], true
}
