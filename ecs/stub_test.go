package ecs

import (
	"time"

	"github.com/phanxgames/slidebutton"
)

// stubLayout is a resting 300-wide track with the handle at x=0.
type stubLayout struct {
	width, handleW float64
}

func (l *stubLayout) HandleX() float64 { return 0 }
func (l *stubLayout) HandleWidth() float64 { return l.handleW }
func (l *stubLayout) HandleMargins() (float64, float64) { return 0, 0 }
func (l *stubLayout) TrackBounds() (float64, float64) { return 0, l.width }
func (l *stubLayout) Width() float64 { return l.width }
func (l *stubLayout) SetTrackWidth(float64) {}
func (l *stubLayout) SetLabelClip(float64, float64) {}
func (l *stubLayout) SetLabelAlpha(float64) {}
func (l *stubLayout) SetHandleAlpha(float64) {}
func (l *stubLayout) SetTrackEnabled(bool) {}
func (l *stubLayout) ApplyContent(slidebutton.Content) {}

type stubEngine struct{}

func (stubEngine) ApplyScene(slidebutton.SceneID, slidebutton.TransitionID) {}
func (stubEngine) EndTransitions() {}
func (stubEngine) Translate(slidebutton.Part, [3]float64, time.Duration) {}
