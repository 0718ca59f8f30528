package tui

import (
	"log/slog"
	"time"

	"github.com/phanxgames/slidebutton"
	"github.com/phanxgames/slidebutton/internal/anim"
)

var transitionDurations = map[slidebutton.TransitionID]time.Duration{
	slidebutton.TransitionReset:     250 * time.Millisecond,
	slidebutton.TransitionToLoading: 300 * time.Millisecond,
}

// NewEngine returns the animation engine for v: the idle and loading scenes
// and the handle tease.
func NewEngine(v *CellView, logger *slog.Logger) *anim.Player {
	scenes := map[slidebutton.SceneID]anim.SceneFunc{
		slidebutton.SceneIdle:    v.idleScene,
		slidebutton.SceneLoading: v.loadingScene,
	}
	return anim.NewPlayer(scenes, transitionDurations, v.offset, logger)
}

func (v *CellView) idleScene() []anim.Target {
	w := float64(v.style.Width)
	return []anim.Target{
		{Field: &v.trackX, To: 0},
		{Field: &v.trackWidth, To: w},
		{Field: &v.handleX, To: float64(v.style.LeadingMargin)},
		{Field: &v.labelFade, To: 1},
		{Field: &v.clipLeft, To: 0},
		{Field: &v.clipRight, To: w},
		{Field: &v.handleFade, To: 1},
		{Field: &v.spinnerFade, To: 0},
	}
}

// loadingScene shrinks the track around the centered handle and swaps the
// label and handle for the spinner.
func (v *CellView) loadingScene() []anim.Target {
	s := v.style
	collapsed := float64(s.HandleWidth + s.LeadingMargin + s.TrailingMargin)
	left := (float64(s.Width) - collapsed) / 2
	return []anim.Target{
		{Field: &v.trackX, To: left},
		{Field: &v.trackWidth, To: collapsed},
		{Field: &v.handleX, To: left + float64(s.LeadingMargin)},
		{Field: &v.labelFade, To: 0},
		{Field: &v.handleFade, To: 0},
		{Field: &v.spinnerFade, To: 1},
	}
}
