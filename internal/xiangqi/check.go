package xiangqi

// GeneralPos 找到 side 的帅/将
func (b *Board) GeneralPos(side Side) (Pos, bool) {
	for sq, pc := range b.squares {
		if pc != 0 && pc.Side() == side && pc.Kind() == KindGeneral {
			return posOf(sq), true
		}
	}
	return Pos{}, false
}

// IsAttacked 判断 bySide 是否有一步合法走法落在 p 上
func (b *Board) IsAttacked(p Pos, bySide Side) bool {
	target := mustIndex(p)
	for sq := 0; sq < NumSquares; sq++ {
		pc := b.squares[sq]
		if pc == 0 || pc.Side() != bySide {
			continue
		}
		if containsSquare(b.destinations(sq), target) {
			return true
		}
	}
	return false
}

// InCheck 对方下一步能否直接吃掉 side 的帅
func (b *Board) InCheck(side Side) bool {
	gp, ok := b.GeneralPos(side)
	if !ok {
		return false
	}
	return b.IsAttacked(gp, side.Other())
}
