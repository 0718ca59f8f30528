package slidebutton

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Tunables shared by the gesture core and its hosts.
const (
	// DefaultAcceptanceRatio is the fraction of the available travel a drag
	// must exceed to confirm.
	DefaultAcceptanceRatio = 0.85

	// DefaultTeaseRatio is the share of the widget width the handle slides
	// during the tease animation.
	DefaultTeaseRatio = 0.15

	// DefaultTeaseDuration is the length of the full tease (out and back).
	DefaultTeaseDuration = 200 * time.Millisecond

	// DefaultResetDelay defers Reset so an in-flight loading transition can
	// land before the idle scene is applied.
	DefaultResetDelay = 200 * time.Millisecond

	labelFadeCap  = 0.8 // label alpha while dragging never exceeds this
	dimmedAlpha   = 0.5 // handle and label alpha while disabled
	undimmedAlpha = 1.0
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the default label color.
var ColorBlack = Color{0, 0, 0, 1}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" (the leading '#' is optional).
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// PointerAction identifies a kind of pointer event.
type PointerAction uint8

const (
	PointerDown   PointerAction = iota // pointer pressed
	PointerMove                        // pointer moved while pressed
	PointerUp                          // pointer released
	PointerCancel                      // gesture taken away by the host
)

func (a PointerAction) String() string {
	switch a {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is a single pointer sample in widget-local coordinates.
type PointerEvent struct {
	Action    PointerAction
	X, Y      float64
	PointerID int
}

// State is the gesture state of a Button.
type State uint8

const (
	StateIdle     State = iota // waiting for a press
	StateArmed                 // pressed on the handle, no motion yet
	StateDragging              // handle follows the pointer
	StateDisabled              // input is not accepted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateDragging:
		return "dragging"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// SceneID names a visual scene known to the AnimationEngine.
type SceneID string

// TransitionID names a transition known to the AnimationEngine.
type TransitionID string

const (
	SceneIdle    SceneID = "idle"
	SceneLoading SceneID = "loading"

	TransitionReset     TransitionID = "reset"
	TransitionToLoading TransitionID = "to-loading"
)

// Part identifies a view of the widget for primitive property animations.
type Part uint8

const (
	PartHandle Part = iota
	PartTrack
	PartLabel
)

// Content is the label and icon content re-applied after every scene change.
type Content struct {
	Icon      string
	Text      string
	TextColor Color
}

// Layout is the view tree a Button measures and resizes. All positions are in
// widget-local coordinates.
type Layout interface {
	HandleX() float64
	HandleWidth() float64
	HandleMargins() (leading, trailing float64)
	TrackBounds() (left, width float64)
	Width() float64

	SetTrackWidth(w float64)
	// SetLabelClip limits the visible label to the horizontal span [left, right].
	SetLabelClip(left, right float64)
	SetLabelAlpha(a float64)
	SetHandleAlpha(a float64)
	SetTrackEnabled(enabled bool)
	ApplyContent(c Content)
}

// AnimationEngine plays scene transitions and one-shot property animations.
// ApplyScene is asynchronous: it returns before the scene is fully applied.
type AnimationEngine interface {
	ApplyScene(scene SceneID, transition TransitionID)
	// EndTransitions force-completes every transition in flight.
	EndTransitions()
	// Translate moves part horizontally through the three offsets over d with
	// ease-in-ease-out timing.
	Translate(part Part, offsets [3]float64, d time.Duration)
}

// EventType identifies a SlideEvent.
type EventType uint8

const (
	EventConfirmed EventType = iota // drag released past the threshold
	EventAborted                    // drag released short of the threshold
	EventTease                      // tap without a drag
	EventCancelled                  // host cancelled the gesture
	EventLoading                    // loading scene requested
	EventReset                      // idle scene restored by Reset
)

func (t EventType) String() string {
	switch t {
	case EventConfirmed:
		return "confirmed"
	case EventAborted:
		return "aborted"
	case EventTease:
		return "tease"
	case EventCancelled:
		return "cancelled"
	case EventLoading:
		return "loading"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// SlideEvent describes an outcome of the gesture core for observers.
type SlideEvent struct {
	Type   EventType
	Button *Button
	TouchX float64
	// Progress is the dragged share of the available travel, unclamped.
	Progress float64
}

// EventStore is the interface for optional outcome forwarding (for example an
// ECS world). When set on a Button, every SlideEvent is emitted to it.
type EventStore interface {
	EmitEvent(event SlideEvent)
}
