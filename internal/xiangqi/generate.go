package xiangqi

// 不做重复检查的原始走法
func (b *Board) rawDestinations(from int) []int {
	pc := b.squares[from]
	if pc == 0 {
		return nil
	}
	out := make([]int, 0, 17)
	switch pc.Kind() {
	case KindSoldier:
		genSoldierMoves(b, from, &out)
	case KindAdvisor:
		genAdvisorMoves(b, from, &out)
	case KindElephant:
		genElephantMoves(b, from, &out)
	case KindCannon:
		genCannonMoves(b, from, &out)
	case KindHorse:
		genHorseMoves(b, from, &out)
	case KindChariot:
		genChariotMoves(b, from, &out)
	case KindGeneral:
		genGeneralMoves(b, from, &out)
	}
	return out
}

// repeatedMove 检查最近四步是否是完整的来回（都不吃子，-4 与 -2 互逆，-3 与 -1 互逆）。
// 是的话返回 -4 那一步，再走它就回到四步前的局面。
// 只看最近四步，更长周期的循环不处理。
func (b *Board) repeatedMove() (UndoRecord, bool) {
	n := len(b.history)
	if n < 4 {
		return UndoRecord{}, false
	}
	h := b.history[n-4:]
	for _, rec := range h {
		if rec.Captured != 0 {
			return UndoRecord{}, false
		}
	}
	inverse := func(a, c UndoRecord) bool {
		return a.From == c.To && a.To == c.From
	}
	if !inverse(h[0], h[2]) || !inverse(h[1], h[3]) {
		return UndoRecord{}, false
	}
	return h[0], true
}

func (b *Board) destinations(from int) []int {
	out := b.rawDestinations(from)
	if len(out) == 0 {
		return out
	}
	rep, ok := b.repeatedMove()
	if !ok || mustIndex(rep.From) != from {
		return out
	}
	banned := mustIndex(rep.To)
	for i, to := range out {
		if to == banned {
			return append(out[:i], out[i+1:]...)
		}
	}
	return out
}

// LegalDestinations 返回 origin 上棋子的合法落点；没有棋子（或越界）时返回空
func (b *Board) LegalDestinations(origin Pos) []Pos {
	if !origin.OnBoard() {
		return nil
	}
	sqs := b.destinations(mustIndex(origin))
	out := make([]Pos, len(sqs))
	for i, sq := range sqs {
		out[i] = posOf(sq)
	}
	return out
}

// IsLegal 判断 to 是否在 from 的合法落点里
func (b *Board) IsLegal(from, to Pos) bool {
	if !from.OnBoard() || !to.OnBoard() {
		return false
	}
	return containsSquare(b.destinations(mustIndex(from)), mustIndex(to))
}

// LegalMoves 按格子顺序生成 side 的全部合法走法
func (b *Board) LegalMoves(side Side) []Move {
	var moves []Move
	for sq := 0; sq < NumSquares; sq++ {
		pc := b.squares[sq]
		if pc == 0 || pc.Side() != side {
			continue
		}
		from := posOf(sq)
		for _, to := range b.destinations(sq) {
			moves = append(moves, Move{From: from, To: posOf(to)})
		}
	}
	return moves
}

func (b *Board) HasLegalMove(side Side) bool {
	for sq := 0; sq < NumSquares; sq++ {
		pc := b.squares[sq]
		if pc == 0 || pc.Side() != side {
			continue
		}
		if len(b.destinations(sq)) > 0 {
			return true
		}
	}
	return false
}
