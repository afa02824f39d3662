package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"xiangqi/internal/xiangqi"
)

var (
	redGlyphs = map[xiangqi.PieceKind]string{
		xiangqi.KindSoldier:  "兵",
		xiangqi.KindAdvisor:  "仕",
		xiangqi.KindElephant: "相",
		xiangqi.KindCannon:   "炮",
		xiangqi.KindHorse:    "马",
		xiangqi.KindChariot:  "车",
		xiangqi.KindGeneral:  "帅",
	}
	blackGlyphs = map[xiangqi.PieceKind]string{
		xiangqi.KindSoldier:  "卒",
		xiangqi.KindAdvisor:  "士",
		xiangqi.KindElephant: "象",
		xiangqi.KindCannon:   "砲",
		xiangqi.KindHorse:    "馬",
		xiangqi.KindChariot:  "車",
		xiangqi.KindGeneral:  "将",
	}

	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	blackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	lastStyle  = lipgloss.NewStyle().Underline(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Glyph 单个棋子的汉字，空格子返回全角点
func Glyph(pc xiangqi.Piece) string {
	if pc.Empty() {
		return "．"
	}
	if pc.Side() == xiangqi.Red {
		return redGlyphs[pc.Kind()]
	}
	return blackGlyphs[pc.Kind()]
}

func cell(pc xiangqi.Piece, highlight bool) string {
	var st lipgloss.Style
	switch pc.Side() {
	case xiangqi.Red:
		st = redStyle
	case xiangqi.Black:
		st = blackStyle
	default:
		st = emptyStyle
	}
	if highlight {
		st = st.Inherit(lastStyle)
	}
	return st.Render(Glyph(pc))
}

// RenderBoard 只读盘面：rank 9 在上，左侧 rank 标号，底部 file 标号；上一步的起止格加下划线
func RenderBoard(b *xiangqi.Board) string {
	last, hasLast := b.LastMove()

	var sb strings.Builder
	for rank := xiangqi.Ranks - 1; rank >= 0; rank-- {
		sb.WriteString(labelStyle.Render(string(rune('0' + rank))))
		sb.WriteString(" ")
		for file := 0; file < xiangqi.Files; file++ {
			p := xiangqi.Pos{File: file, Rank: rank}
			hl := hasLast && (p == last.From || p == last.To)
			sb.WriteString(cell(b.At(p), hl))
			if file < xiangqi.Files-1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
		if rank == xiangqi.RiverRank {
			sb.WriteString("  " + labelStyle.Render("    楚 河        汉 界") + "\n")
		}
	}
	sb.WriteString("  ")
	for file := 0; file < xiangqi.Files; file++ {
		sb.WriteString(labelStyle.Render(string(rune('0' + file))))
		if file < xiangqi.Files-1 {
			sb.WriteString("  ")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}
