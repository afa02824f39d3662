package xiangqi

// 兵：未过河只能前进一格；过河后可再左右一格。不能后退
func genSoldierMoves(b *Board, from int, out *[]int) {
	file, rank := fileOf(from), rankOf(from)
	side := b.squares[from].Side()

	try := func(f, r int) {
		if !onBoard(f, r) {
			return
		}
		to := indexOf(f, r)
		dst := b.squares[to]
		if dst == 0 || dst.Side() != side {
			*out = append(*out, to)
		}
	}

	try(file, rank+soldierDir(side))
	if crossedRiver(side, rank) {
		try(file-1, rank)
		try(file+1, rank)
	}
}
