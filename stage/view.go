package stage

import "github.com/phanxgames/slidebutton"

// ViewStyle sizes and colors a SlideView.
type ViewStyle struct {
	Width, Height  float64
	HandleWidth    float64
	LeadingMargin  float64
	TrailingMargin float64

	TrackColor         slidebutton.Color
	TrackDisabledColor slidebutton.Color
	HandleColor        slidebutton.Color
	SpinnerColor       slidebutton.Color
}

// DefaultViewStyle returns a 320x56 control with a square handle.
func DefaultViewStyle() ViewStyle {
	return ViewStyle{
		Width:              320,
		Height:             56,
		HandleWidth:        48,
		LeadingMargin:      4,
		TrailingMargin:     4,
		TrackColor:         slidebutton.Color{R: 0.13, G: 0.59, B: 0.95, A: 1},
		TrackDisabledColor: slidebutton.Color{R: 0.62, G: 0.62, B: 0.62, A: 1},
		HandleColor:        slidebutton.Color{R: 1, G: 1, B: 1, A: 1},
		SpinnerColor:       slidebutton.Color{R: 1, G: 1, B: 1, A: 1},
	}
}

// defaultIcon is drawn on the handle when the content has no icon.
const defaultIcon = ">>"

// SlideView is the view tree of the control. It implements
// slidebutton.Layout: the track keeps its right edge at the end of the widget
// and the handle rides on the track's left edge.
type SlideView struct {
	style ViewStyle

	Root    *Node
	Track   *Node
	Handle  *Node
	Icon    *Node
	Label   *Node
	Spinner *Node

	trackEnabled bool
}

var _ slidebutton.Layout = (*SlideView)(nil)

// NewSlideView builds the view tree in its resting layout.
func NewSlideView(style ViewStyle) *SlideView {
	v := &SlideView{style: style, trackEnabled: true}

	v.Root = NewContainer("slide", style.Width, style.Height)
	v.Track = NewRect("track", style.Width, style.Height, style.TrackColor)
	v.Label = NewText("label", "", slidebutton.ColorBlack)
	v.Label.Width, v.Label.Height = style.Width, style.Height
	v.Handle = NewRect("handle", style.HandleWidth, style.HandleWidth, style.HandleColor)
	v.Handle.X = style.LeadingMargin
	v.Handle.Y = (style.Height - style.HandleWidth) / 2
	v.Icon = NewText("icon", defaultIcon, slidebutton.ColorBlack)
	v.Icon.Width, v.Icon.Height = style.HandleWidth, style.HandleWidth

	side := style.Height / 2
	v.Spinner = NewRect("spinner", side, side, style.SpinnerColor)
	v.Spinner.X = (style.Width - side) / 2
	v.Spinner.Y = (style.Height - side) / 2
	v.Spinner.Fade = 0

	v.Root.AddChild(v.Track)
	v.Root.AddChild(v.Label)
	v.Root.AddChild(v.Handle)
	v.Handle.AddChild(v.Icon)
	v.Root.AddChild(v.Spinner)
	return v
}

// Style returns the style the view was built with.
func (v *SlideView) Style() ViewStyle { return v.style }

// HandleX returns the handle's left edge, including any tease offset.
func (v *SlideView) HandleX() float64 { return v.Handle.X + v.Handle.OffsetX }

func (v *SlideView) HandleWidth() float64 { return v.Handle.Width }

func (v *SlideView) HandleMargins() (leading, trailing float64) {
	return v.style.LeadingMargin, v.style.TrailingMargin
}

func (v *SlideView) TrackBounds() (left, width float64) { return v.Track.X, v.Track.Width }

func (v *SlideView) Width() float64 { return v.Root.Width }

// SetTrackWidth resizes the track from its left edge and moves the handle
// with it.
func (v *SlideView) SetTrackWidth(w float64) {
	v.Track.Width = w
	v.Track.X = v.style.Width - w
	v.Handle.X = v.Track.X + v.style.LeadingMargin
}

func (v *SlideView) SetLabelClip(left, right float64) {
	v.Label.Clipped = true
	v.Label.ClipLeft, v.Label.ClipRight = left, right
}

func (v *SlideView) SetLabelAlpha(a float64) { v.Label.Alpha = a }

func (v *SlideView) SetHandleAlpha(a float64) { v.Handle.Alpha = a }

func (v *SlideView) SetTrackEnabled(enabled bool) {
	v.trackEnabled = enabled
	if enabled {
		v.Track.Color = v.style.TrackColor
	} else {
		v.Track.Color = v.style.TrackDisabledColor
	}
}

// TrackEnabled reports the last value passed to SetTrackEnabled.
func (v *SlideView) TrackEnabled() bool { return v.trackEnabled }

func (v *SlideView) ApplyContent(c slidebutton.Content) {
	v.Label.Text = c.Text
	v.Label.Color = c.TextColor
	v.Icon.Text = c.Icon
	if v.Icon.Text == "" {
		v.Icon.Text = defaultIcon
	}
}

// Part returns the node animated for p.
func (v *SlideView) Part(p slidebutton.Part) *Node {
	switch p {
	case slidebutton.PartTrack:
		return v.Track
	case slidebutton.PartLabel:
		return v.Label
	default:
		return v.Handle
	}
}
