package tui

import (
	"strings"
	"testing"

	"xiangqi/internal/config"
	"xiangqi/internal/xiangqi"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Red = config.ControllerHuman
	cfg.Black = config.ControllerRandom
	cfg.NodeLimit = 2000
	cfg.MaxDepth = 2
	return cfg
}

func lastLog(m Model) string {
	if len(m.logLines) == 0 {
		return ""
	}
	return m.logLines[len(m.logLines)-1]
}

func TestMoveInputPattern(t *testing.T) {
	for _, s := range []string{"1242", "1 2 4 2", "12 42", "1,2-4,2"} {
		if reMoveInput.FindStringSubmatch(s) == nil {
			t.Errorf("%q should parse as a move", s)
		}
	}
	for _, s := range []string{"124", "12a2", "undo", "12345"} {
		if reMoveInput.FindStringSubmatch(s) != nil {
			t.Errorf("%q should not parse as a move", s)
		}
	}
}

func TestHumanMoveThenEngineReply(t *testing.T) {
	m := NewModel(testConfig())
	tm, cmd := m.execCommand("1242")
	m = tm.(Model)
	g, _ := m.games.Get(m.id)
	if g.Board.At(xiangqi.Pos{File: 4, Rank: 2}) != xiangqi.MakePiece(xiangqi.Red, xiangqi.KindCannon) {
		t.Fatalf("cannon not moved:\n%s", g.Board)
	}
	if cmd == nil || !m.thinking {
		t.Fatalf("black is an engine, expected a think command")
	}

	msg, ok := cmd().(aiMoveMsg)
	if !ok || !msg.ok || msg.side != xiangqi.Black {
		t.Fatalf("unexpected engine message: %#v", msg)
	}
	tm, _ = m.Update(msg)
	m = tm.(Model)
	if m.thinking {
		t.Fatalf("thinking flag must clear after the reply")
	}
	if g.ToMove != xiangqi.Red || g.Board.MoveCount() != 2 {
		t.Fatalf("engine reply not applied: ply=%d to move=%v", g.Board.MoveCount(), g.ToMove)
	}
}

func TestIllegalMoveReportsAndKeepsState(t *testing.T) {
	m := NewModel(testConfig())
	tm, cmd := m.execCommand("0005")
	m = tm.(Model)
	if cmd != nil {
		t.Fatalf("illegal move must not trigger the engine")
	}
	if !strings.Contains(lastLog(m), "illegal move (0,0) -> (0,5)") {
		t.Fatalf("log should report the attempted coordinates, got %q", lastLog(m))
	}
	g, _ := m.games.Get(m.id)
	if g.Board.MoveCount() != 0 || g.ToMove != xiangqi.Red {
		t.Fatalf("illegal move mutated the game")
	}
}

func TestUndoAndFenCommands(t *testing.T) {
	cfg := testConfig()
	cfg.Black = config.ControllerHuman
	m := NewModel(cfg)

	tm, _ := m.execCommand("undo")
	m = tm.(Model)
	if !strings.Contains(lastLog(m), "undo failed") {
		t.Fatalf("undo on a fresh game should fail gracefully, got %q", lastLog(m))
	}

	tm, _ = m.execCommand("0304")
	m = tm.(Model)
	tm, _ = m.execCommand("undo")
	m = tm.(Model)
	tm, _ = m.execCommand("fen")
	m = tm.(Model)
	if lastLog(m) != "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w" {
		t.Fatalf("fen after undo: %q", lastLog(m))
	}
}

func TestRenderBoardShowsPieces(t *testing.T) {
	b := xiangqi.NewBoard()
	out := RenderBoard(b)
	for _, g := range []string{"帅", "将", "车", "車", "兵", "卒", "楚 河"} {
		if !strings.Contains(out, g) {
			t.Fatalf("rendered board misses %q:\n%s", g, out)
		}
	}
	if Glyph(xiangqi.NoPiece) != "．" {
		t.Fatalf("empty glyph")
	}
}

func TestUndoAgainstEngineReturnsToHuman(t *testing.T) {
	m := NewModel(testConfig())
	tm, cmd := m.execCommand("1242")
	m = tm.(Model)
	tm, _ = m.Update(cmd())
	m = tm.(Model)
	g, _ := m.games.Get(m.id)
	if g.Board.MoveCount() != 2 {
		t.Fatalf("engine reply missing: ply=%d", g.Board.MoveCount())
	}

	tm, cmd = m.execCommand("undo")
	m = tm.(Model)
	if g.Board.MoveCount() != 0 || g.ToMove != xiangqi.Red {
		t.Fatalf("undo should take back both plies: ply=%d to move=%v", g.Board.MoveCount(), g.ToMove)
	}
	if cmd != nil || m.thinking {
		t.Fatalf("human is to move, engine must stay idle")
	}

	// 人类可以立刻重新走棋
	tm, _ = m.execCommand("0304")
	m = tm.(Model)
	if g.Board.MoveCount() != 1 {
		t.Fatalf("human move after undo rejected: %q", lastLog(m))
	}
}
