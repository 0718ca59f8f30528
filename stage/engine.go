package stage

import (
	"log/slog"
	"time"

	"github.com/phanxgames/slidebutton"
	"github.com/phanxgames/slidebutton/internal/anim"
)

// Transition lengths. Unknown transitions apply their scene instantly.
var transitionDurations = map[slidebutton.TransitionID]time.Duration{
	slidebutton.TransitionReset:     250 * time.Millisecond,
	slidebutton.TransitionToLoading: 300 * time.Millisecond,
}

// idleScene is the resting layout: full-width track, handle at the leading
// edge, label shown unclipped and no spinner.
func idleScene(v *SlideView) []anim.Target {
	s := v.style
	return []anim.Target{
		{Field: &v.Track.X, To: 0},
		{Field: &v.Track.Width, To: s.Width},
		{Field: &v.Handle.X, To: s.LeadingMargin},
		{Field: &v.Label.Fade, To: 1},
		{Field: &v.Label.ClipLeft, To: 0},
		{Field: &v.Label.ClipRight, To: s.Width},
		{Field: &v.Handle.Fade, To: 1},
		{Field: &v.Spinner.Fade, To: 0},
	}
}

// loadingScene collapses the track around the centered handle and swaps the
// label and handle for the spinner.
func loadingScene(v *SlideView) []anim.Target {
	s := v.style
	collapsed := s.HandleWidth + s.LeadingMargin + s.TrailingMargin
	left := (s.Width - collapsed) / 2
	return []anim.Target{
		{Field: &v.Track.X, To: left},
		{Field: &v.Track.Width, To: collapsed},
		{Field: &v.Handle.X, To: left + s.LeadingMargin},
		{Field: &v.Label.Fade, To: 0},
		{Field: &v.Handle.Fade, To: 0},
		{Field: &v.Spinner.Fade, To: 1},
	}
}

// Engine plays scene transitions and tease translations on a SlideView. It
// implements slidebutton.AnimationEngine.
type Engine struct {
	player *anim.Player
}

var _ slidebutton.AnimationEngine = (*Engine)(nil)

// NewEngine creates an engine animating view. A nil logger uses slog.Default.
func NewEngine(view *SlideView, logger *slog.Logger) *Engine {
	scenes := map[slidebutton.SceneID]anim.SceneFunc{
		slidebutton.SceneIdle:    func() []anim.Target { return idleScene(view) },
		slidebutton.SceneLoading: func() []anim.Target { return loadingScene(view) },
	}
	offset := func(p slidebutton.Part) *float64 { return &view.Part(p).OffsetX }
	return &Engine{player: anim.NewPlayer(scenes, transitionDurations, offset, logger)}
}

// ApplyScene starts a transition to scene from whatever is on screen.
func (e *Engine) ApplyScene(scene slidebutton.SceneID, transition slidebutton.TransitionID) {
	e.player.ApplyScene(scene, transition)
}

// EndTransitions force-completes every animation in flight.
func (e *Engine) EndTransitions() { e.player.EndTransitions() }

// Translate eases part horizontally through offsets over d.
func (e *Engine) Translate(part slidebutton.Part, offsets [3]float64, d time.Duration) {
	e.player.Translate(part, offsets, d)
}

// Update advances every animation by dt seconds.
func (e *Engine) Update(dt float32) { e.player.Update(dt) }

// Scene returns the last scene applied.
func (e *Engine) Scene() slidebutton.SceneID { return e.player.Scene() }

// Busy reports whether any animation is in flight.
func (e *Engine) Busy() bool { return e.player.Busy() }
