package stage

import (
	"testing"

	"github.com/phanxgames/slidebutton"
)

func TestSlideViewRestingLayout(t *testing.T) {
	v := NewSlideView(DefaultViewStyle())

	if v.HandleX() != 4 || v.HandleWidth() != 48 {
		t.Errorf("handle = %v/%v, want 4/48", v.HandleX(), v.HandleWidth())
	}
	if left, width := v.TrackBounds(); left != 0 || width != 320 {
		t.Errorf("TrackBounds = %v, %v", left, width)
	}
	if l, r := v.HandleMargins(); l != 4 || r != 4 {
		t.Errorf("HandleMargins = %v, %v", l, r)
	}
	if v.Width() != 320 {
		t.Errorf("Width = %v", v.Width())
	}
	if v.Spinner.Fade != 0 {
		t.Error("spinner visible at rest")
	}
}

func TestSlideViewSetTrackWidth(t *testing.T) {
	v := NewSlideView(DefaultViewStyle())
	v.SetTrackWidth(200)

	if v.Track.X != 120 || v.Track.Width != 200 {
		t.Errorf("track = x %v w %v, want x 120 w 200", v.Track.X, v.Track.Width)
	}
	if v.Handle.X != 124 {
		t.Errorf("handle x = %v, want 124", v.Handle.X)
	}
}

func TestSlideViewAffordance(t *testing.T) {
	style := DefaultViewStyle()
	v := NewSlideView(style)

	v.SetTrackEnabled(false)
	if v.TrackEnabled() || v.Track.Color != style.TrackDisabledColor {
		t.Error("disabled track color not applied")
	}
	v.SetTrackEnabled(true)
	if v.Track.Color != style.TrackColor {
		t.Error("enabled track color not restored")
	}

	v.SetLabelClip(60, 320)
	if !v.Label.Clipped || v.Label.ClipLeft != 60 || v.Label.ClipRight != 320 {
		t.Errorf("clip = %v [%v, %v]", v.Label.Clipped, v.Label.ClipLeft, v.Label.ClipRight)
	}

	red := slidebutton.Color{R: 1, A: 1}
	v.ApplyContent(slidebutton.Content{Text: "Pay", TextColor: red})
	if v.Label.Text != "Pay" || v.Label.Color != red || v.Icon.Text != defaultIcon {
		t.Errorf("content: label %q %v icon %q", v.Label.Text, v.Label.Color, v.Icon.Text)
	}
	v.ApplyContent(slidebutton.Content{Icon: "$"})
	if v.Icon.Text != "$" {
		t.Errorf("icon = %q", v.Icon.Text)
	}

	if v.Part(slidebutton.PartHandle) != v.Handle || v.Part(slidebutton.PartTrack) != v.Track || v.Part(slidebutton.PartLabel) != v.Label {
		t.Error("Part mapping wrong")
	}
}
