package xiangqi

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	Files      = 9
	Ranks      = 10
	NumSquares = Files * Ranks

	// 红方在 0..4，黑方在 5..9，河界在 4 与 5 之间
	RiverRank = 5

	// 达到该步数强制终局（不判胜负）
	MaxPlies = 2000
)

// 按 file 优先排列：file*Ranks + rank，遍历顺序即 (0,0),(0,1)...(8,9)
func indexOf(file, rank int) int { return file*Ranks + rank }
func fileOf(sq int) int          { return sq / Ranks }
func rankOf(sq int) int          { return sq % Ranks }
func posOf(sq int) Pos           { return Pos{File: fileOf(sq), Rank: rankOf(sq)} }

func onBoard(file, rank int) bool {
	return file >= 0 && file < Files && rank >= 0 && rank < Ranks
}

// 越界访问是内部逻辑错误，直接 panic
func mustIndex(p Pos) int {
	if !onBoard(p.File, p.Rank) {
		panic(fmt.Sprintf("xiangqi: position %v outside the board", p))
	}
	return indexOf(p.File, p.Rank)
}

// 兵的前进方向：红向上(+1)，黑向下(-1)
func soldierDir(side Side) int {
	if side == Red {
		return +1
	}
	if side == Black {
		return -1
	}
	return 0
}

// 是否已经过河
func crossedRiver(side Side, rank int) bool {
	if side == Red {
		return rank >= RiverRank
	}
	if side == Black {
		return rank < RiverRank
	}
	return false
}

// 是否在己方半场（象不能过河）
func ownHalf(side Side, rank int) bool {
	if side == Red {
		return rank < RiverRank
	}
	if side == Black {
		return rank >= RiverRank
	}
	return false
}

// 是否在九宫
func inPalace(side Side, file, rank int) bool {
	if file < 3 || file > 5 {
		return false
	}
	if side == Red {
		return rank >= 0 && rank <= 2
	}
	if side == Black {
		return rank >= Ranks-3 && rank <= Ranks-1
	}
	return false
}

var letterToKind = map[rune]PieceKind{
	'r': KindChariot,  // 车
	'n': KindHorse,    // 马
	'b': KindElephant, // 相
	'a': KindAdvisor,  // 仕
	'k': KindGeneral,  // 帅
	'c': KindCannon,   // 炮
	'p': KindSoldier,  // 兵
}

var kindToLetter = map[PieceKind]rune{
	KindChariot:  'r',
	KindHorse:    'n',
	KindElephant: 'b',
	KindAdvisor:  'a',
	KindGeneral:  'k',
	KindCannon:   'c',
	KindSoldier:  'p',
}

func pieceToChar(p Piece) rune {
	if p == 0 {
		return '.'
	}
	base, ok := kindToLetter[p.Kind()]
	if !ok {
		return '.'
	}
	if p.Side() == Red {
		return unicode.ToUpper(base)
	}
	return base
}

func charToPiece(ch rune) (Piece, bool) {
	k, ok := letterToKind[unicode.ToLower(ch)]
	if !ok {
		return NoPiece, false
	}
	side := Black
	if unicode.IsUpper(ch) {
		side = Red
	}
	return MakePiece(side, k), true
}

// 标准开局，第一行是 rank 9（黑方底线），最后一行是 rank 0（红方底线）
const initialBoardString = `rnbakabnr
.........
.c.....c.
p.p.p.p.p
.........
.........
P.P.P.P.P
.C.....C.
.........
RNBAKABNR`

// Board 是一局棋唯一的可变状态：格子、悔棋栈、步数、终局缓存、子数缓存
type Board struct {
	squares   [NumSquares]Piece
	history   []UndoRecord
	moveCount int
	finished  bool
	winner    Side
	pieces    int
}

func NewEmptyBoard() *Board {
	return &Board{winner: NoSide}
}

func NewBoard() *Board {
	b := NewEmptyBoard()
	lines := make([]string, 0, Ranks)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Ranks {
		panic("initialBoardString 行数不为 10")
	}
	for i, line := range lines {
		if len(line) != Files {
			panic("initialBoardString 列数不为 9")
		}
		rank := Ranks - 1 - i
		for file, ch := range line {
			if ch == '.' {
				continue
			}
			pc, ok := charToPiece(ch)
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			b.squares[indexOf(file, rank)] = pc
		}
	}
	b.pieces = b.ScanPieceCount()
	return b
}

// Place 直接摆子（用于构造局面），不记入历史
func (b *Board) Place(p Pos, pc Piece) {
	i := mustIndex(p)
	if b.squares[i] != 0 {
		b.pieces--
	}
	if pc != 0 {
		b.pieces++
	}
	b.squares[i] = pc
}

func (b *Board) At(p Pos) Piece { return b.squares[mustIndex(p)] }

func (b *Board) HasFriendAt(side Side, p Pos) bool {
	if !p.OnBoard() {
		return false
	}
	pc := b.squares[indexOf(p.File, p.Rank)]
	return pc != 0 && pc.Side() == side
}

// PieceCount 返回缓存的棋子数（增量维护）
func (b *Board) PieceCount() int { return b.pieces }

// ScanPieceCount 全盘扫描计数，只在构造和校验时使用
func (b *Board) ScanPieceCount() int {
	n := 0
	for _, pc := range b.squares {
		if pc != 0 {
			n++
		}
	}
	return n
}

func (b *Board) MoveCount() int { return b.moveCount }

func (b *Board) Finished() bool { return b.finished }

func (b *Board) Winner() (Side, bool) {
	if b.winner == NoSide {
		return NoSide, false
	}
	return b.winner, true
}

// History 返回悔棋栈的副本，最早的在前
func (b *Board) History() []UndoRecord {
	out := make([]UndoRecord, len(b.history))
	copy(out, b.history)
	return out
}

func (b *Board) Clone() *Board {
	nb := *b
	nb.history = make([]UndoRecord, len(b.history), len(b.history)+64)
	copy(nb.history, b.history)
	return &nb
}

// String 纯文本盘面，rank 9 在上
func (b *Board) String() string {
	var sb strings.Builder
	for rank := Ranks - 1; rank >= 0; rank-- {
		sb.WriteByte(byte('0' + rank))
		sb.WriteByte(' ')
		for file := 0; file < Files; file++ {
			sb.WriteRune(pieceToChar(b.squares[indexOf(file, rank)]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  012345678\n")
	return sb.String()
}
