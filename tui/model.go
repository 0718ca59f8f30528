package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/phanxgames/slidebutton"
	"github.com/phanxgames/slidebutton/internal/anim"
)

// frameInterval is the animation tick. Every tick advances the engine and
// the button by exactly this much.
const frameInterval = time.Second / 30

type frameMsg struct{}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

var (
	frameStyle  = lipgloss.NewStyle().Padding(1, 2)
	statusStyle = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger shared by the model, its engine and its button.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithZoneManager uses zones for mouse hit testing. The model does not close
// a manager it did not create.
func WithZoneManager(zones *zone.Manager) Option {
	return func(m *Model) { m.zones = zones }
}

// WithEventStore forwards the button's SlideEvents to store.
func WithEventStore(store slidebutton.EventStore) Option {
	return func(m *Model) { m.store = store }
}

// Model is a Bubble Tea model hosting one slide button on a terminal row.
// Mouse presses inside the row capture the gesture until release or focus
// loss.
type Model struct {
	view   *CellView
	engine *anim.Player
	button *slidebutton.Button
	logger *slog.Logger
	store  slidebutton.EventStore

	zones     *zone.Manager
	ownsZones bool
	zoneID    string
	captured  bool

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	status   string
	errCount int
	lastErr  error
	quitting bool
}

var _ tea.Model = (*Model)(nil)

// NewModel builds the view, the engine and the button for cfg.
func NewModel(style CellStyle, cfg slidebutton.Config, opts ...Option) (*Model, error) {
	m := &Model{
		view:   NewCellView(style),
		logger: slog.Default(),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.zones == nil {
		m.zones = zone.New()
		m.ownsZones = true
	}
	m.zoneID = m.zones.NewPrefix() + "slide"
	m.spinner = spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(m.view.SpinnerStyle()),
	)
	m.engine = NewEngine(m.view, m.logger)

	b, err := slidebutton.New(m.view, m.engine, cfg,
		slidebutton.WithLogger(m.logger),
		slidebutton.WithEventStore(m),
	)
	if err != nil {
		m.Close()
		return nil, err
	}
	m.button = b
	m.engine.EndTransitions()
	return m, nil
}

// Button returns the hosted button.
func (m *Model) Button() *slidebutton.Button { return m.button }

// Engine returns the animation engine.
func (m *Model) Engine() *anim.Player { return m.engine }

// ListenerErrors returns how many listener failures were logged and the most
// recent one.
func (m *Model) ListenerErrors() (int, error) { return m.errCount, m.lastErr }

// Close stops the zone manager if the model created it.
func (m *Model) Close() {
	if m.ownsZones {
		m.zones.Close()
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(), m.spinner.Tick)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.advance(float32(frameInterval.Seconds()))
		return m, frameCmd()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.BlurMsg:
		// The release will never arrive.
		m.cancelCaptured()
	}
	return m, nil
}

func (m *Model) advance(dt float32) {
	m.engine.Update(dt)
	m.button.Update(dt)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Reset):
		m.button.Reset()
	case key.Matches(msg, m.keys.Loading):
		m.cancelCaptured()
		m.button.ShowLoadingButton()
	case key.Matches(msg, m.keys.Toggle):
		m.button.SetEnabled(!m.button.Enabled())
		if !m.button.Enabled() {
			m.captured = false
		}
	}
	return nil
}

// handleMouse converts terminal cells to widget-local x at the cell center.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	zi := m.zones.Get(m.zoneID)
	if zi.IsZero() {
		return
	}
	x := float64(msg.X-zi.StartX) + 0.5

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.captured || !zi.InBounds(msg) {
			return
		}
		if m.deliver(slidebutton.PointerDown, x) {
			m.captured = true
		}
	case tea.MouseActionMotion:
		if m.captured {
			m.deliver(slidebutton.PointerMove, x)
		}
	case tea.MouseActionRelease:
		if m.captured {
			m.captured = false
			m.deliver(slidebutton.PointerUp, x)
		}
	}
}

func (m *Model) cancelCaptured() {
	if !m.captured {
		return
	}
	m.captured = false
	m.deliver(slidebutton.PointerCancel, 0)
}

// deliver hands one pointer event to the button and logs listener failures.
func (m *Model) deliver(action slidebutton.PointerAction, x float64) bool {
	handled, err := m.button.HandlePointer(slidebutton.PointerEvent{Action: action, X: x, Y: 0.5})
	if err != nil {
		m.errCount++
		m.lastErr = err
		m.logger.Error("slide listener failed", "err", err)
	}
	return handled
}

// EmitEvent records the latest outcome for the status line and forwards it.
func (m *Model) EmitEvent(ev slidebutton.SlideEvent) {
	switch ev.Type {
	case slidebutton.EventConfirmed, slidebutton.EventAborted:
		m.status = fmt.Sprintf("%s at %.0f%%", ev.Type, ev.Progress*100)
	default:
		m.status = ev.Type.String()
	}
	if m.store != nil {
		m.store.EmitEvent(ev)
	}
}

// Status returns the last outcome shown on the status line.
func (m *Model) Status() string { return m.status }

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	state := m.button.State().String()
	if m.button.Locked() {
		state = "locked"
	}
	line := state
	if m.status != "" {
		line += " · " + m.status
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.zones.Mark(m.zoneID, m.view.Render(m.spinner.View())),
		statusStyle.Render(line),
		m.help.View(m.keys),
	)
	return m.zones.Scan(frameStyle.Render(body))
}

// Run drives m as a full-screen program with mouse motion and focus reports
// until the user quits or ctx is done.
func Run(ctx context.Context, m *Model) error {
	defer m.Close()
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
