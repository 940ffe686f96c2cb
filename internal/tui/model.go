// Package tui provides the Bubble Tea watch face.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/verte-zerg/dozwatch/internal/dozenal"
	"github.com/verte-zerg/dozwatch/internal/model"
)

// DefaultAccent colours the time line when no accent is configured.
const DefaultAccent = "#C89A3A"

type tickMsg time.Time

// Model implements the Bubble Tea watch face. It recomputes the dozenal
// strings on start, on every bucket boundary and on demand.
type Model struct {
	config    model.WatchConfig
	formatter dozenal.Formatter
	clock     Clock
	logger    *log.Logger
	keys      keyMap
	help      help.Model

	width  int
	height int

	now       time.Time
	output    model.Output
	err       error
	refreshes int

	timeStyle lipgloss.Style
}

var (
	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	dateStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs the watch face and performs the initial refresh.
func NewModel(cfg model.WatchConfig, clock Clock, logger *log.Logger) (*Model, error) {
	mode, err := dozenal.ParseMode(cfg.MinuteMode)
	if err != nil {
		return nil, err
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Accent == "" {
		cfg.Accent = DefaultAccent
	}
	if clock == nil {
		clock = RealClock{}
	}
	if logger == nil {
		logger = log.Default()
	}
	m := &Model{
		config:    cfg,
		formatter: dozenal.NewFormatter(dozenal.Options{Mode: mode, Info: cfg.Info}),
		clock:     clock,
		logger:    logger,
		keys:      defaultKeyMap(),
		help:      help.New(),
		timeStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Accent)).Bold(true),
	}
	m.refresh(clock.Now())
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		m.handleTick(time.Time(msg))
		return m, tick()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.refresh(m.now)
		case key.Matches(msg, m.keys.Mode):
			opts := m.formatter.Options()
			opts.Mode = opts.Mode.Next()
			m.formatter = dozenal.NewFormatter(opts)
			m.logger.Debug("minute mode changed", "mode", opts.Mode)
			m.refresh(m.now)
		case key.Matches(msg, m.keys.Big):
			m.config.Big = !m.config.Big
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handleTick(t time.Time) {
	t = t.In(m.config.Location)
	m.now = t
	if dozenal.ShouldRefresh(t.Minute(), t.Second()) {
		m.refresh(t)
	}
}

func (m *Model) refresh(t time.Time) {
	t = t.In(m.config.Location)
	m.now = t
	out, err := m.formatter.Format(model.CivilTimeFrom(t))
	if err != nil {
		m.err = err
		m.logger.Error("failed to convert time", "at", t.Format(time.RFC3339), "err", err)
		return
	}
	m.err = nil
	m.output = out
	m.refreshes++
	m.logger.Debug("refreshed", "time", out.Time, "date", out.Date, "year", out.Year)
}

// View implements tea.Model.
func (m *Model) View() string {
	face := m.renderFace()
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return face + "\n\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, face)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, face)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderFace() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("conversion failed: %v", m.err))
	}
	timeText := m.output.Time
	if m.config.Big {
		timeText = renderBig(timeText)
	}
	timeLine := m.timeStyle.Render(timeText)
	width := lipgloss.Width(timeLine)
	for _, s := range []string{m.output.Date, m.output.Year, m.output.Info} {
		if w := lipgloss.Width(s); w > width {
			width = w
		}
	}
	divider := dividerStyle.Render(strings.Repeat("─", width))
	return lipgloss.JoinVertical(lipgloss.Center,
		timeLine,
		divider,
		dateStyle.Render(m.output.Date),
		dateStyle.Render(m.output.Year),
		"",
		infoStyle.Render(m.output.Info),
	)
}

func (m *Model) renderFooter() string {
	segments := []string{fmt.Sprintf("mode %s", m.formatter.Options().Mode)}
	if m.config.Seconds && !m.now.IsZero() {
		segments = append(segments, fmt.Sprintf("next %ds", secondsUntilRefresh(m.now)))
	}
	segments = append(segments, m.help.View(m.keys))
	return footerStyle.Render(strings.Join(segments, "  "))
}

// secondsUntilRefresh counts down to the next bucket boundary.
func secondsUntilRefresh(t time.Time) int {
	elapsed := (t.Minute()*60 + t.Second()) % dozenal.TickSeconds
	return dozenal.TickSeconds - elapsed
}
