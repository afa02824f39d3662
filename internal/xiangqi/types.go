package xiangqi

import "fmt"

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

// Other 返回对手
func (s Side) Other() Side {
	switch s {
	case Red:
		return Black
	case Black:
		return Red
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return "none"
}

// PieceKind 的数值同时是“棋子身份分”（RelativeID），不参与子力估值
type PieceKind int8

const (
	KindNone     PieceKind = iota
	KindSoldier            // 兵 / 卒
	KindAdvisor            // 仕 / 士
	KindElephant           // 相 / 象
	KindCannon             // 炮
	KindHorse              // 马
	KindChariot            // 车
	KindGeneral            // 帅 / 将
)

func (k PieceKind) String() string {
	switch k {
	case KindSoldier:
		return "soldier"
	case KindAdvisor:
		return "advisor"
	case KindElephant:
		return "elephant"
	case KindCannon:
		return "cannon"
	case KindHorse:
		return "horse"
	case KindChariot:
		return "chariot"
	case KindGeneral:
		return "general"
	}
	return "none"
}

type Piece int8 // 0=空；>0 红；<0 黑；abs=PieceKind

const NoPiece Piece = 0

func MakePiece(side Side, k PieceKind) Piece {
	if k == KindNone || side == NoSide {
		return NoPiece
	}
	if side == Red {
		return Piece(k)
	}
	return -Piece(k)
}

func (p Piece) Kind() PieceKind {
	if p < 0 {
		return PieceKind(-p)
	}
	return PieceKind(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return Red
	}
	return Black
}

func (p Piece) Empty() bool { return p == NoPiece }

// RelativeID 从 side 视角的身份分：己方为正，对方为负，空为 0
func (p Piece) RelativeID(side Side) int {
	if p == 0 {
		return 0
	}
	v := int(p.Kind())
	if p.Side() != side {
		return -v
	}
	return v
}

func (p Piece) String() string {
	if p == 0 {
		return "empty"
	}
	return p.Side().String() + " " + p.Kind().String()
}

// Pos 以 (file, rank) 表示格子：file 0..8 从左到右，rank 0..9 从红方底线到黑方底线
type Pos struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

func (p Pos) OnBoard() bool { return onBoard(p.File, p.Rank) }

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.File, p.Rank) }

type Move struct {
	From Pos `json:"from"`
	To   Pos `json:"to"`
}

func (m Move) String() string { return m.From.String() + "->" + m.To.String() }

// UndoRecord 记录一步棋前两个格子的原内容，悔棋时原样放回
type UndoRecord struct {
	From     Pos
	Moved    Piece
	To       Pos
	Captured Piece
}

func (r UndoRecord) Move() Move { return Move{From: r.From, To: r.To} }
