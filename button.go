package slidebutton

import (
	"fmt"
	"log/slog"
)

// Option configures a Button at construction.
type Option func(*Button)

// WithLogger sets the logger used for state-transition debug output.
func WithLogger(l *slog.Logger) Option {
	return func(b *Button) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithEventStore forwards every SlideEvent to store.
func WithEventStore(store EventStore) Option {
	return func(b *Button) { b.store = store }
}

// Button is a slide-to-confirm control. It owns the gesture state, the
// captured geometry and the listener list; drawing and animation are
// delegated to the Layout and AnimationEngine it was built with.
//
// A Button is not safe for concurrent use. Feed it pointer events and call
// Update from the same loop.
type Button struct {
	layout Layout
	engine AnimationEngine
	logger *slog.Logger
	store  EventStore

	geom    Geometry
	state   State
	enabled bool
	pressed bool // a press reached the widget and has not been released

	ratio     float64
	content   Content
	listeners ListenerRegistry
	scheduler Scheduler
	coord     *Coordinator
}

// New builds a Button over layout and engine and applies the idle scene.
func New(layout Layout, engine AnimationEngine, cfg Config, opts ...Option) (*Button, error) {
	if layout == nil || engine == nil {
		return nil, fmt.Errorf("new slide button: layout and engine are required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new slide button: %w", err)
	}
	b := &Button{
		layout:  layout,
		engine:  engine,
		logger:  slog.Default(),
		enabled: true,
		ratio:   cfg.AcceptanceRatio,
		content: cfg.Content(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.coord = newCoordinator(engine, layout, &b.scheduler, &b.content, cfg)
	b.coord.ToIdleScene(b.enabled)
	return b, nil
}

// SetText sets the label shown in the idle scene.
func (b *Button) SetText(text string) {
	b.content.Text = text
	b.layout.ApplyContent(b.content)
}

// Text returns the idle label.
func (b *Button) Text() string {
	return b.content.Text
}

// ShowLoadingButton locks the widget in the loading scene right away, for
// actions triggered outside the gesture (a retry, for example).
func (b *Button) ShowLoadingButton() {
	b.dropGesture()
	b.coord.ToLoadingScene()
	b.logger.Debug("slide button loading", "text", b.content.Text)
	b.emit(SlideEvent{Type: EventLoading})
}

// Reset returns the widget to the idle scene after the reset delay. Input is
// accepted again if the widget is enabled.
func (b *Button) Reset() {
	b.coord.ScheduleReset(b.resetNow)
}

func (b *Button) resetNow() {
	b.dropGesture()
	b.coord.ToIdleScene(b.enabled)
	b.logger.Debug("slide button reset", "enabled", b.enabled)
	b.emit(SlideEvent{Type: EventReset})
}

// AddOnSlideListener registers listeners in order. Duplicates are kept.
func (b *Button) AddOnSlideListener(listeners ...Listener) {
	b.listeners.Add(listeners...)
}

// RemoveOnSlideListener removes the first registration of l.
func (b *Button) RemoveOnSlideListener(l Listener) bool {
	return b.listeners.Remove(l)
}

// ClearOnSlideListeners removes every listener.
func (b *Button) ClearOnSlideListeners() {
	b.listeners.Clear()
}

// SetEnabled toggles gesture input and the dimmed affordance. The locked
// loading scene is not affected.
func (b *Button) SetEnabled(enabled bool) {
	if b.enabled == enabled {
		return
	}
	b.enabled = enabled
	if !enabled {
		b.dropGesture()
	}
	b.coord.ApplyEnabled(enabled)
}

// Enabled reports whether gesture input is accepted.
func (b *Button) Enabled() bool {
	return b.enabled
}

// State returns the gesture state. A disabled Button reports StateDisabled.
func (b *Button) State() State {
	if !b.enabled {
		return StateDisabled
	}
	return b.state
}

// Locked reports whether the loading scene holds the widget.
func (b *Button) Locked() bool {
	return b.coord.Locked()
}

// Geometry returns a copy of the captured geometry.
func (b *Button) Geometry() Geometry {
	return b.geom
}

// ListenerCount returns the number of listener registrations.
func (b *Button) ListenerCount() int {
	return b.listeners.Len()
}

// PendingResets returns the number of resets waiting for their delay.
func (b *Button) PendingResets() int {
	return b.coord.PendingResets()
}

// SetEventStore sets the optional SlideEvent sink.
func (b *Button) SetEventStore(store EventStore) {
	b.store = store
}

// Update advances deferred work by dt seconds. Call it once per frame.
func (b *Button) Update(dt float32) {
	b.scheduler.Update(dt)
}

func (b *Button) emit(ev SlideEvent) {
	if b.store == nil {
		return
	}
	ev.Button = b
	b.store.EmitEvent(ev)
}
