package xiangqi

import (
	"errors"
	"strings"
)

var ErrInvalidFEN = errors.New("invalid FEN")

// Encode 标准象棋 FEN：rank 9 在前，“/”分隔，空位用数字压缩；空格后 w/b 表示轮到谁
func Encode(b *Board, toMove Side) string {
	var sb strings.Builder
	for rank := Ranks - 1; rank >= 0; rank-- {
		if rank < Ranks-1 {
			sb.WriteByte('/')
		}
		empty := 0
		for file := 0; file < Files; file++ {
			pc := b.squares[indexOf(file, rank)]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if toMove == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	return sb.String()
}

// Decode 解析 FEN，得到没有历史的新盘面。多余的字段（回合数等）忽略
func Decode(fen string) (*Board, Side, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, NoSide, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Ranks {
		return nil, NoSide, ErrInvalidFEN
	}
	b := NewEmptyBoard()
	for i, row := range rows {
		rank := Ranks - 1 - i
		file := 0
		for _, ch := range row {
			if file >= Files {
				return nil, NoSide, ErrInvalidFEN
			}
			if ch >= '1' && ch <= '9' {
				file += int(ch - '0')
				continue
			}
			pc, ok := charToPiece(ch)
			if !ok {
				return nil, NoSide, ErrInvalidFEN
			}
			b.squares[indexOf(file, rank)] = pc
			file++
		}
		if file != Files {
			return nil, NoSide, ErrInvalidFEN
		}
	}
	b.pieces = b.ScanPieceCount()

	stm := Red
	if len(parts) > 1 {
		switch parts[1] {
		case "w", "r":
			stm = Red
		case "b":
			stm = Black
		default:
			return nil, NoSide, ErrInvalidFEN
		}
	}
	return b, stm, nil
}
