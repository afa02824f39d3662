package xiangqi

// 马 8 种“日”字：终点 + 马腿
var horseLegMoves = [8]struct {
	Df, Dr int // 终点
	Lf, Lr int // 马腿
}{
	{-1, +2, 0, +1},
	{+1, +2, 0, +1},
	{-2, +1, -1, 0},
	{+2, +1, +1, 0},
	{-2, -1, -1, 0},
	{+2, -1, +1, 0},
	{-1, -2, 0, -1},
	{+1, -2, 0, -1},
}

func genHorseMoves(b *Board, from int, out *[]int) {
	file, rank := fileOf(from), rankOf(from)
	side := b.squares[from].Side()
	for _, m := range horseLegMoves {
		f, r := file+m.Df, rank+m.Dr
		if !onBoard(f, r) {
			continue
		}
		if b.squares[indexOf(file+m.Lf, rank+m.Lr)] != 0 {
			continue // 憋马腿
		}
		to := indexOf(f, r)
		dst := b.squares[to]
		if dst == 0 || dst.Side() != side {
			*out = append(*out, to)
		}
	}
}
