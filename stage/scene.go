package stage

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/slidebutton"
)

// Option configures a Scene.
type Option func(*Scene)

// WithLogger sets the logger shared by the scene, its engine and its button.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scene) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPosition places the control's top-left corner at (x, y) on screen.
func WithPosition(x, y float64) Option {
	return func(s *Scene) {
		s.view.Root.X, s.view.Root.Y = x, y
	}
}

// WithBackground sets the clear color used by Draw.
func WithBackground(c slidebutton.Color) Option {
	return func(s *Scene) { s.background = c }
}

// WithEventStore forwards the button's SlideEvents to store.
func WithEventStore(store slidebutton.EventStore) Option {
	return func(s *Scene) { s.store = store }
}

// Scene hosts one slide button: it owns the view tree, the animation engine,
// pointer routing and the frame loop.
type Scene struct {
	view   *SlideView
	engine *Engine
	button *slidebutton.Button
	logger *slog.Logger
	store  slidebutton.EventStore
	debug  bool

	background slidebutton.Color
	frame      int

	// Input state. live enables polling of the real mouse, touch and focus;
	// scripted and test scenes only see injected events.
	live         bool
	pointers     [maxPointers]pointerState
	captured     int
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	testRunner   *TestRunner

	// Draw state.
	white    *ebiten.Image
	textBuf  *ebiten.Image
	lastErr  error
	errCount int
}

// NewScene builds the view, the engine and the button for cfg.
func NewScene(style ViewStyle, cfg slidebutton.Config, opts ...Option) (*Scene, error) {
	s := &Scene{
		view:       NewSlideView(style),
		logger:     slog.Default(),
		captured:   noPointer,
		background: slidebutton.Color{R: 0.96, G: 0.96, B: 0.96, A: 1},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = NewEngine(s.view, s.logger)

	bopts := []slidebutton.Option{slidebutton.WithLogger(s.logger)}
	if s.store != nil {
		bopts = append(bopts, slidebutton.WithEventStore(s.store))
	}
	b, err := slidebutton.New(s.view, s.engine, cfg, bopts...)
	if err != nil {
		return nil, err
	}
	s.button = b
	// The construction scene lands immediately.
	s.engine.EndTransitions()
	return s, nil
}

// Button returns the hosted button.
func (s *Scene) Button() *slidebutton.Button { return s.button }

// View returns the view tree.
func (s *Scene) View() *SlideView { return s.view }

// Engine returns the animation engine.
func (s *Scene) Engine() *Engine { return s.engine }

// Frame returns the number of frames updated so far.
func (s *Scene) Frame() int { return s.frame }

// SetDebugMode enables per-frame debug logging of draw timings.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update advances one frame at the engine's tick rate.
func (s *Scene) Update() {
	s.UpdateDT(float32(1.0 / float64(ebiten.TPS())))
}

// UpdateDT advances one frame of dt seconds: the test runner steps, input is
// routed to the button, then animations and the deferred reset advance.
func (s *Scene) UpdateDT(dt float32) {
	s.frame++
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	s.engine.Update(dt)
	s.button.Update(dt)
}

// ListenerErrors returns how many listener failures were logged and the most
// recent one.
func (s *Scene) ListenerErrors() (int, error) {
	return s.errCount, s.lastErr
}

// handle delivers ev to the button and logs listener failures.
func (s *Scene) handle(ev slidebutton.PointerEvent) bool {
	handled, err := s.button.HandlePointer(ev)
	if err != nil {
		s.lastErr = err
		s.errCount++
		s.logger.Error("slide listener failed", "err", err)
	}
	return handled
}
