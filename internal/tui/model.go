package tui

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"xiangqi/internal/config"
	"xiangqi/internal/engine"
	"xiangqi/internal/game"
	"xiangqi/internal/xiangqi"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

// aiMoveMsg 后台思考结束
type aiMoveMsg struct {
	gameID string
	side   xiangqi.Side
	move   xiangqi.Move
	ok     bool
}

type Model struct {
	cfg   config.Config
	games *game.Manager
	id    string

	// 按 Side 下标；nil 表示人类
	ctrls  [2]engine.Controller
	helper engine.Controller // “ai” 命令给人类一方代走

	thinking bool

	m        mode
	input    textinput.Model
	logLines []string

	width  int
	height int
}

// 原始坐标：file rank file rank，各一位数字，可用空格/逗号/横线分隔
var reMoveInput = regexp.MustCompile(`^(\d)[\s,\-]*(\d)[\s,\-]*(\d)[\s,\-]*(\d)$`)

func NewModel(cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "1217 / undo / ai / new / fen / q"
	ti.Prompt = "> "
	ti.CharLimit = 120
	ti.Width = 60

	m := Model{
		cfg:    cfg,
		games:  game.NewManager(),
		m:      modeNormal,
		input:  ti,
		helper: cfg.Controller(config.ControllerAI, cfg.Seed),
	}
	m.ctrls[xiangqi.Red] = cfg.Controller(cfg.Red, cfg.Seed)
	m.ctrls[xiangqi.Black] = cfg.Controller(cfg.Black, cfg.Seed+1)
	m.id = m.games.NewGame().ID
	m.appendLog("ready (press i to input command)")
	return m
}

// Init 如果红方是电脑，直接开始思考
func (m Model) Init() tea.Cmd {
	return m.nextTurn()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = min(80, max(30, m.width-4))
		return m, nil

	case aiMoveMsg:
		return m.onAIMove(msg)

	case tea.KeyMsg:
		switch m.m {
		case modeNormal:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "i":
				m.m = modeInput
				m.input.SetValue("")
				m.input.Focus()
				return m, nil
			}
			return m, nil

		case modeInput:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.m = modeNormal
				m.input.Blur()
				return m, nil
			case "enter":
				line := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				if line == "" {
					return m, nil
				}
				return m.execCommand(line)
			}

			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) execCommand(line string) (tea.Model, tea.Cmd) {
	m.appendLog("> " + line)

	if sm := reMoveInput.FindStringSubmatch(line); sm != nil {
		return m.execMove(sm[1:])
	}

	switch strings.Fields(line)[0] {
	case "q", "quit", "exit":
		return m, tea.Quit

	case "new", "reset":
		m.games.Remove(m.id)
		m.id = m.games.NewGame().ID
		m.thinking = false
		m.appendLog("new game " + m.id)
		return m, m.nextTurn()

	case "undo":
		if m.thinking {
			m.appendLog("engine is thinking, try again later")
			return m, nil
		}
		if err := m.games.Undo(m.id); err != nil {
			m.appendLog(fmt.Sprintf("undo failed: %v", err))
			return m, nil
		}
		// 对手是电脑时连它的上一步一起悔，回到人类走棋
		if g, err := m.games.Get(m.id); err == nil &&
			m.ctrls[g.ToMove] != nil && m.ctrls[g.ToMove.Other()] == nil {
			if err := m.games.Undo(m.id); err == nil {
				m.appendLog("undone (2 plies)")
				return m, m.nextTurn()
			}
		}
		m.appendLog("undone")
		return m, m.nextTurn()

	case "fen":
		fen, err := m.games.FEN(m.id)
		if err != nil {
			m.appendLog(err.Error())
			return m, nil
		}
		m.appendLog(fen)
		return m, nil

	case "ai":
		if m.thinking {
			m.appendLog("engine is already thinking")
			return m, nil
		}
		return m, m.think(m.helper)

	case "help":
		m.appendLog("moves: <file><rank><file><rank>, e.g. 1242 (cannon to the centre)")
		m.appendLog("commands: undo, ai, new, fen, q")
		return m, nil
	}

	m.appendLog(fmt.Sprintf("unknown command: %s", line))
	return m, nil
}

func (m Model) execMove(digits []string) (tea.Model, tea.Cmd) {
	if m.thinking {
		m.appendLog("engine is thinking, wait for its move")
		return m, nil
	}
	if g, err := m.games.Get(m.id); err == nil && m.ctrls[g.ToMove] != nil {
		m.appendLog(fmt.Sprintf("%v is played by the engine", g.ToMove))
		return m, nil
	}
	n := make([]int, 4)
	for i, d := range digits {
		n[i], _ = strconv.Atoi(d)
	}
	from := xiangqi.Pos{File: n[0], Rank: n[1]}
	to := xiangqi.Pos{File: n[2], Rank: n[3]}

	if err := m.games.Play(m.id, from, to); err != nil {
		var ime *xiangqi.IllegalMoveError
		if errors.As(err, &ime) {
			m.appendLog(fmt.Sprintf("illegal move %v -> %v, try again", ime.From, ime.To))
		} else {
			m.appendLog(fmt.Sprintf("move failed: %v", err))
		}
		return m, nil
	}
	m.appendLog(fmt.Sprintf("move %v -> %v", from, to))
	return m, m.nextTurn()
}

// nextTurn 对局没结束且轮到电脑时，返回思考命令
func (m *Model) nextTurn() tea.Cmd {
	st, err := m.games.Status(m.id)
	if err != nil {
		return nil
	}
	if st != game.StatusOngoing {
		m.appendLog("game over: " + string(st))
		return nil
	}
	g, err := m.games.Get(m.id)
	if err != nil {
		return nil
	}
	ctrl := m.ctrls[g.ToMove]
	if ctrl == nil {
		return nil
	}
	return m.think(ctrl)
}

// think 在快照上思考，不碰正在显示的棋盘
func (m *Model) think(ctrl engine.Controller) tea.Cmd {
	b, side, err := m.games.Snapshot(m.id)
	if err != nil || ctrl == nil {
		return nil
	}
	m.thinking = true
	m.appendLog(fmt.Sprintf("%v is thinking...", side))
	id := m.id
	return func() tea.Msg {
		mv, ok := ctrl.Decide(side, b)
		return aiMoveMsg{gameID: id, side: side, move: mv, ok: ok}
	}
}

func (m Model) onAIMove(msg aiMoveMsg) (tea.Model, tea.Cmd) {
	if msg.gameID != m.id {
		return m, nil // 旧对局的结果
	}
	m.thinking = false
	if !msg.ok {
		m.appendLog(fmt.Sprintf("%v: no decision (game over, no legal move or search budget exceeded)", msg.side))
		return m, nil
	}
	if err := m.games.Play(m.id, msg.move.From, msg.move.To); err != nil {
		m.appendLog(fmt.Sprintf("%v engine move %v rejected: %v", msg.side, msg.move, err))
		return m, nil
	}
	m.appendLog(fmt.Sprintf("%v plays %v -> %v", msg.side, msg.move.From, msg.move.To))
	return m, m.nextTurn()
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > 200 {
		m.logLines = m.logLines[len(m.logLines)-200:]
	}
}

func (m Model) statusLine() string {
	g, err := m.games.Get(m.id)
	if err != nil {
		return err.Error()
	}
	st, _ := m.games.Status(m.id)
	s := fmt.Sprintf("ply %d  to move: %v  status: %s", g.Board.MoveCount(), g.ToMove, st)
	if st == game.StatusOngoing && g.Board.InCheck(g.ToMove) {
		s += "  将军!"
	}
	if m.thinking {
		s += "  (thinking)"
	}
	return s
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	modeStr := "NORMAL"
	if m.m == modeInput {
		modeStr = "INPUT"
	}
	header := titleStyle.Render(fmt.Sprintf("xiangqi  [%s]  mode:%s", shortID(m.id), modeStr))

	var boardView string
	if g, err := m.games.Get(m.id); err == nil {
		boardView = RenderBoard(g.Board)
	}
	boardBox := boxStyle.Render(boardView + "\n" + m.statusLine())

	logHeight := max(5, m.height-lipgloss.Height(boardBox)-6)
	logStart := max(0, len(m.logLines)-logHeight)
	logBody := strings.Join(m.logLines[logStart:], "\n")
	logBox := boxStyle.Width(max(20, m.width-2)).Height(logHeight).Render(logBody)

	var inputLine string
	if m.m == modeInput {
		inputLine = m.input.View()
	} else {
		inputLine = "press i to enter a move or command, q to quit"
	}
	inputBox := boxStyle.Width(max(20, m.width-2)).Render(inputLine)

	return header + "\n" + boardBox + "\n" + logBox + "\n" + inputBox + "\n"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
