package xiangqi

var orthoDirs = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
var diagDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// CountPieces 统计以 low、high 为对角的矩形（含边界）内的棋子数
func (b *Board) CountPieces(low, high Pos) int {
	f0, f1 := low.File, high.File
	if f0 > f1 {
		f0, f1 = f1, f0
	}
	r0, r1 := low.Rank, high.Rank
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	n := 0
	for f := f0; f <= f1; f++ {
		for r := r0; r <= r1; r++ {
			if b.squares[mustIndex(Pos{File: f, Rank: r})] != 0 {
				n++
			}
		}
	}
	return n
}

// 两格之间（不含两端）的棋子数，调用方保证同行或同列
func (b *Board) piecesBetween(from, to int) int {
	n := b.CountPieces(posOf(from), posOf(to))
	if b.squares[from] != 0 {
		n--
	}
	if b.squares[to] != 0 {
		n--
	}
	return n
}

// 同一条直线上的所有格子（同列 + 同行），不含自身
func lineSquares(from int) []int {
	file, rank := fileOf(from), rankOf(from)
	out := make([]int, 0, Files+Ranks-2)
	for r := 0; r < Ranks; r++ {
		if r != rank {
			out = append(out, indexOf(file, r))
		}
	}
	for f := 0; f < Files; f++ {
		if f != file {
			out = append(out, indexOf(f, rank))
		}
	}
	return out
}

// 车：路径上没有子，终点为空或敌子
func genChariotMoves(b *Board, from int, out *[]int) {
	side := b.squares[from].Side()
	for _, to := range lineSquares(from) {
		if b.piecesBetween(from, to) != 0 {
			continue
		}
		dst := b.squares[to]
		if dst == 0 || dst.Side() != side {
			*out = append(*out, to)
		}
	}
}

// 炮：空走同车，吃子必须隔恰好一个炮架
func genCannonMoves(b *Board, from int, out *[]int) {
	side := b.squares[from].Side()
	for _, to := range lineSquares(from) {
		n := b.piecesBetween(from, to)
		dst := b.squares[to]
		switch {
		case dst == 0 && n == 0:
			*out = append(*out, to)
		case dst != 0 && dst.Side() != side && n == 1:
			*out = append(*out, to)
		}
	}
}

// 相：田字，塞象眼不能走，不过河
func genElephantMoves(b *Board, from int, out *[]int) {
	file, rank := fileOf(from), rankOf(from)
	side := b.squares[from].Side()
	for _, d := range diagDirs {
		f, r := file+2*d[0], rank+2*d[1]
		if !onBoard(f, r) || !ownHalf(side, r) {
			continue
		}
		if b.squares[indexOf(file+d[0], rank+d[1])] != 0 {
			continue // 象眼
		}
		to := indexOf(f, r)
		dst := b.squares[to]
		if dst == 0 || dst.Side() != side {
			*out = append(*out, to)
		}
	}
}

// 仕：九宫内斜走一格
func genAdvisorMoves(b *Board, from int, out *[]int) {
	file, rank := fileOf(from), rankOf(from)
	side := b.squares[from].Side()
	for _, d := range diagDirs {
		f, r := file+d[0], rank+d[1]
		if !onBoard(f, r) || !inPalace(side, f, r) {
			continue
		}
		to := indexOf(f, r)
		dst := b.squares[to]
		if dst == 0 || dst.Side() != side {
			*out = append(*out, to)
		}
	}
}

// 帅：九宫内上下左右一格；另加“飞将”：同线无遮挡可直接吃对方帅
func genGeneralMoves(b *Board, from int, out *[]int) {
	file, rank := fileOf(from), rankOf(from)
	side := b.squares[from].Side()
	for _, d := range orthoDirs {
		f, r := file+d[0], rank+d[1]
		if !onBoard(f, r) || !inPalace(side, f, r) {
			continue
		}
		to := indexOf(f, r)
		dst := b.squares[to]
		if dst == 0 || dst.Side() != side {
			*out = append(*out, to)
		}
	}

	for _, to := range lineSquares(from) {
		dst := b.squares[to]
		if dst == 0 || dst.Side() == side || dst.Kind() != KindGeneral {
			continue
		}
		if b.piecesBetween(from, to) != 0 {
			continue
		}
		if containsSquare(*out, to) {
			continue // 九宫内相邻时已经加过
		}
		*out = append(*out, to)
	}
}

func containsSquare(sqs []int, sq int) bool {
	for _, s := range sqs {
		if s == sq {
			return true
		}
	}
	return false
}
