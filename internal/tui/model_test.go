package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/verte-zerg/dozwatch/internal/dozenal"
	"github.com/verte-zerg/dozwatch/internal/model"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

func newTestModel(t *testing.T, at time.Time, cfg model.WatchConfig) *Model {
	t.Helper()
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	m, err := NewModel(cfg, fixedClock{t: at}, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func sendKey(m *Model, r rune) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return cmd
}

func TestNewModelRefreshesImmediately(t *testing.T) {
	m := newTestModel(t, time.Date(2023, time.December, 25, 13, 5, 0, 0, time.UTC), model.WatchConfig{})

	want := model.Output{Time: "11:06", Date: "21/10", Year: "1207", Info: dozenal.DefaultInfo}
	if m.output != want {
		t.Fatalf("unexpected output: %+v", m.output)
	}
	if m.refreshes != 1 {
		t.Fatalf("expected 1 refresh, got %d", m.refreshes)
	}
}

func TestTickRefreshesOnlyOnBucketBoundary(t *testing.T) {
	start := time.Date(2023, time.December, 25, 13, 5, 0, 0, time.UTC)
	m := newTestModel(t, start, model.WatchConfig{})

	_, cmd := m.Update(tickMsg(start.Add(30 * time.Second)))
	if cmd == nil {
		t.Fatalf("expected next tick to be scheduled")
	}
	if m.refreshes != 1 || m.output.Time != "11:06" {
		t.Fatalf("unexpected refresh mid-bucket: %d %q", m.refreshes, m.output.Time)
	}

	m.Update(tickMsg(start.Add(50 * time.Second)))
	if m.refreshes != 2 {
		t.Fatalf("expected refresh at bucket boundary, got %d", m.refreshes)
	}
	if m.output.Time != "11:07" {
		t.Fatalf("expected 11:07, got %q", m.output.Time)
	}
}

func TestTickConvertsToConfiguredLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	start := time.Date(2023, time.December, 31, 23, 0, 0, 0, time.UTC)
	m := newTestModel(t, start, model.WatchConfig{Location: loc})

	if m.output.Time != "01:00" || m.output.Date != "01/01" || m.output.Year != "1208" {
		t.Fatalf("unexpected output in UTC+2: %+v", m.output)
	}
}

func TestModeKeyTogglesMinuteField(t *testing.T) {
	m := newTestModel(t, time.Date(2023, time.December, 25, 13, 15, 0, 0, time.UTC), model.WatchConfig{})
	if m.output.Time != "11:06" {
		t.Fatalf("expected cyclic 11:06, got %q", m.output.Time)
	}

	sendKey(m, 'm')
	if m.output.Time != "11:16" {
		t.Fatalf("expected hour mode 11:16, got %q", m.output.Time)
	}

	sendKey(m, 'm')
	if m.output.Time != "11:06" {
		t.Fatalf("expected cyclic 11:06 again, got %q", m.output.Time)
	}
}

func TestRefreshKeyRecomputes(t *testing.T) {
	m := newTestModel(t, time.Date(2023, time.December, 25, 13, 5, 0, 0, time.UTC), model.WatchConfig{})
	sendKey(m, 'r')
	if m.refreshes != 2 {
		t.Fatalf("expected forced refresh, got %d", m.refreshes)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, time.Date(2023, time.December, 25, 13, 5, 0, 0, time.UTC), model.WatchConfig{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if cmd := sendKey(m, 'q'); cmd == nil {
		t.Fatalf("expected quit command for q")
	}
}

func TestNewModelRejectsUnknownMode(t *testing.T) {
	_, err := NewModel(model.WatchConfig{MinuteMode: "decimal"}, fixedClock{}, log.New(io.Discard))
	if err == nil {
		t.Fatalf("expected error for unknown minute mode")
	}
}

func TestViewShowsFace(t *testing.T) {
	m := newTestModel(t, time.Date(2023, time.December, 25, 13, 5, 0, 0, time.UTC), model.WatchConfig{Info: "dozens"})

	out := m.View()
	if !containsAll(out, []string{"11:06", "21/10", "1207", "dozens", "─", "mode cyclic"}) {
		t.Fatalf("view missing expected segments: %s", out)
	}

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	out = m.View()
	if lines := strings.Split(out, "\n"); len(lines) != 12 {
		t.Fatalf("expected 12 lines, got %d", len(lines))
	}
	if !strings.Contains(out, "11:06") {
		t.Fatalf("placed view missing time: %s", out)
	}
}

func TestViewBigDigits(t *testing.T) {
	m := newTestModel(t, time.Date(2023, time.December, 25, 13, 5, 0, 0, time.UTC), model.WatchConfig{Big: true})

	out := m.renderFace()
	if strings.Contains(out, "11:06") {
		t.Fatalf("expected block glyphs instead of plain time: %s", out)
	}
	if !strings.Contains(out, "▄█ ") {
		t.Fatalf("expected glyph rows in face: %s", out)
	}

	sendKey(m, 'b')
	if !strings.Contains(m.renderFace(), "11:06") {
		t.Fatalf("expected plain time after toggling big digits")
	}
}

func TestViewShowsConversionError(t *testing.T) {
	m := newTestModel(t, time.Date(-5, time.January, 1, 0, 0, 0, 0, time.UTC), model.WatchConfig{})

	if m.err == nil {
		t.Fatalf("expected conversion error for negative year")
	}
	if !strings.Contains(m.View(), "conversion failed") {
		t.Fatalf("expected error in view")
	}
}

func TestRenderFooterCountdown(t *testing.T) {
	m := newTestModel(t, time.Date(2023, time.December, 25, 13, 5, 30, 0, time.UTC), model.WatchConfig{Seconds: true})

	out := m.renderFooter()
	if !containsAll(out, []string{"mode cyclic", "next 20s", "quit"}) {
		t.Fatalf("footer missing expected segments: %s", out)
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
