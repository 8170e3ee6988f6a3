package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/keydrill/internal/keyboard"
	"github.com/verte-zerg/keydrill/internal/model"
	"github.com/verte-zerg/keydrill/internal/session"
	"github.com/verte-zerg/keydrill/internal/text"
)

const (
	tickInterval = 100 * time.Millisecond
	limitStep    = 15 * time.Second
)

type tickMsg time.Time

// commitMsg runs the second phase of an auto-commit. The buffer mutation
// was observed in the previous update cycle, so the commit never acts on
// state that changed under it.
type commitMsg struct{}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	promptStyle      = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#C89A3A")).
				Padding(1, 2)
)

// Model implements the Bubble Tea typing UI.
type Model struct {
	cfg    model.Config
	sess   *session.Session
	mirror *keyboard.Mirror

	width  int
	height int
	now    time.Time

	ticking bool

	results     table.Model
	haveResults bool

	pathMode  bool
	pathInput textinput.Model

	summary *model.Summary
}

// NewModel constructs a typing TUI model.
func NewModel(cfg model.Config, sess *session.Session) *Model {
	input := textinput.New()
	input.Placeholder = "path/to/text.txt"
	input.CharLimit = 512
	input.Width = 40
	return &Model{
		cfg:       cfg,
		sess:      sess,
		mirror:    keyboard.NewMirror(),
		now:       time.Now(),
		pathInput: input,
	}
}

// Summary returns the snapshot taken when the run ended, or nil when
// nothing was committed.
func (m *Model) Summary() *model.Summary {
	if m.summary == nil || len(m.summary.Segments) == 0 {
		return nil
	}
	return m.summary
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.ticking = true
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func autoCommitCmd() tea.Cmd {
	return func() tea.Msg {
		return commitMsg{}
	}
}

// resumeTick restarts the tick loop unless one is already in flight.
func (m *Model) resumeTick() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tickCmd()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		now := time.Time(msg)
		m.now = now
		m.mirror.Expire(now)
		if m.sess.Active() {
			m.sess.Tick(now)
			if m.sess.Finished() {
				m.finishRun(now)
			}
		}
		if m.sess.Finished() {
			m.ticking = false
			return m, nil
		}
		return m, tickCmd()
	case commitMsg:
		m.commit(time.Now())
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	m.now = now

	if m.pathMode {
		return m.handlePathKey(msg)
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		m.snapshotSummary(now)
		return m, tea.Quit
	case tea.KeyCtrlO:
		m.pathMode = true
		m.pathInput.SetValue("")
		m.pathInput.Focus()
		return m, textinput.Blink
	case tea.KeyEscape:
		if m.sess.Active() {
			m.sess.End(now)
			m.finishRun(now)
			return m, nil
		}
		m.snapshotSummary(now)
		return m, tea.Quit
	case tea.KeyTab:
		// Consumed so it never reaches the buffer.
		return m, nil
	case tea.KeyEnter:
		if m.sess.Active() {
			if len(m.sess.Buffer()) > 0 {
				m.mirror.Press("Enter", now)
				m.commit(now)
			}
			return m, nil
		}
		if m.sess.Finished() {
			return m, m.restart()
		}
		return m, nil
	case tea.KeyBackspace, tea.KeyDelete:
		if m.sess.Active() {
			m.mirror.Press("Backspace", now)
			m.sess.Backspace()
		}
		return m, nil
	case tea.KeySpace:
		return m, m.handleRunes([]rune{' '}, now)
	case tea.KeyRunes:
		if msg.Alt {
			return m, nil
		}
		if m.sess.Finished() {
			switch string(msg.Runes) {
			case "r":
				return m, m.restart()
			case "q":
				m.snapshotSummary(now)
				return m, tea.Quit
			}
			return m, nil
		}
		return m, m.handleRunes(msg.Runes, now)
	default:
		switch msg.String() {
		case "f2":
			m.changeLimit(now, -limitStep)
		case "f3":
			m.changeLimit(now, limitStep)
		default:
			if m.sess.Finished() && m.haveResults {
				var cmd tea.Cmd
				m.results, cmd = m.results.Update(msg)
				return m, cmd
			}
		}
		return m, nil
	}
}

func (m *Model) handlePathKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.snapshotSummary(m.now)
		return m, tea.Quit
	case tea.KeyEscape:
		m.pathMode = false
		m.pathInput.Blur()
		return m, nil
	case tea.KeyEnter:
		return m, m.loadPath()
	default:
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd
	}
}

// loadPath loads a text file into a fresh fixed-text session. A missing,
// unreadable, or empty file leaves the previous target set untouched.
func (m *Model) loadPath() tea.Cmd {
	path := strings.TrimSpace(m.pathInput.Value())
	m.pathMode = false
	m.pathInput.Blur()
	if path == "" {
		return nil
	}
	paragraphs, err := text.LoadFile(path)
	if err != nil || len(paragraphs) == 0 {
		return nil
	}
	m.sess.Replace(model.ModeText, text.New(paragraphs))
	m.haveResults = false
	m.summary = nil
	m.mirror.Clear()
	return m.resumeTick()
}

func (m *Model) handleRunes(runes []rune, now time.Time) tea.Cmd {
	for _, r := range runes {
		if m.sess.Finished() {
			return nil
		}
		if !m.sess.Started() {
			m.sess.Start(now)
		}
		m.mirror.Press(string(r), now)
		if m.sess.Type(r) {
			// Phase two runs on the next update cycle.
			return autoCommitCmd()
		}
	}
	return nil
}

func (m *Model) commit(now time.Time) {
	if !m.sess.Active() {
		return
	}
	m.sess.Commit(now)
	if m.cfg.BonusSec > 0 {
		m.sess.AddBonus(m.cfg.BonusSec)
	}
	if m.sess.Finished() {
		m.finishRun(now)
	}
}

func (m *Model) changeLimit(now time.Time, delta time.Duration) {
	m.sess.ChangeLimit(now, m.sess.Limit()+delta)
	if m.sess.Finished() {
		m.finishRun(now)
	}
}

func (m *Model) finishRun(now time.Time) {
	m.snapshotSummary(now)
	m.buildResults()
}

func (m *Model) snapshotSummary(now time.Time) {
	sum := m.sess.Summary(now)
	m.summary = &sum
}

func (m *Model) restart() tea.Cmd {
	m.sess.Reset()
	m.haveResults = false
	m.summary = nil
	m.mirror.Clear()
	return m.resumeTick()
}

func (m *Model) buildResults() {
	columns := []table.Column{
		{Title: "Segment", Width: 8},
		{Title: "Chars", Width: 6},
		{Title: "Correct", Width: 8},
		{Title: "Accuracy", Width: 9},
		{Title: "Words", Width: 6},
	}
	segments := m.sess.Results()
	rows := make([]table.Row, 0, len(segments))
	for _, seg := range segments {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", seg.Index+1),
			fmt.Sprintf("%d", seg.CharsTyped),
			fmt.Sprintf("%d", seg.CharsCorrect),
			fmt.Sprintf("%d%%", seg.Accuracy),
			fmt.Sprintf("%d", seg.WordsTyped),
		})
	}
	height := len(rows) + 1
	if height > 12 {
		height = 12
	}
	m.results = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithFocused(true),
	)
	m.haveResults = true
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.pathMode {
		return m.pathView()
	}
	if m.sess.Finished() && m.haveResults {
		return m.resultsView()
	}
	return m.typingView()
}

func (m *Model) typingView() string {
	target := m.sess.Target()
	input := m.sess.Buffer()
	caret := -1
	if len(input) < len(target) {
		caret = len(input)
	}
	cells := buildCells(target, input, caret)
	if m.width == 0 || m.height == 0 {
		return renderCells(cells)
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapCells(cells, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	body := lipgloss.JoinVertical(lipgloss.Center, content, "", m.mirror.View())
	footer := m.renderFooter()
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	bodyHeight := m.height - 1
	placed := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return placed + "\n" + footerLine
}

func (m *Model) renderFooter() string {
	if !m.sess.Started() && !m.sess.Finished() {
		return footerStyle.Render(fmt.Sprintf(
			"Type to start · limit %ds · F2/F3 limit · Ctrl+O text file · Esc end",
			int(m.sess.Limit().Seconds())))
	}
	segments := []string{
		fmt.Sprintf("Time %.1fs", m.sess.Remaining(m.now).Seconds()),
		fmt.Sprintf("WPM %d", m.sess.WPM(m.now)),
		fmt.Sprintf("Acc %d%%", m.sess.TotalAccuracy()),
		fmt.Sprintf("Seg %d%%", m.sess.SegmentAccuracy()),
		fmt.Sprintf("Done %d", len(m.sess.Results())),
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) resultsView() string {
	totals := m.sess.Totals()
	header := titleStyle.Render("Session complete")
	line := footerStyle.Render(fmt.Sprintf(
		"Words %d  WPM %d  Accuracy %d%%",
		totals.WordsTyped, m.sess.WPM(m.now), m.sess.TotalAccuracy()))
	help := footerStyle.Render("Enter/r restart · Ctrl+O text file · q quit")
	body := lipgloss.JoinVertical(lipgloss.Center, header, "", line, "", m.results.View(), "", help)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m *Model) pathView() string {
	body := promptStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Load text file"),
		"",
		m.pathInput.View(),
		"",
		footerStyle.Render("Enter load · Esc cancel"),
	))
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
