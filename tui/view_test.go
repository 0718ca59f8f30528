package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/phanxgames/slidebutton"
)

func plain(v *CellView, spinner string) string {
	return ansi.Strip(v.Render(spinner))
}

func TestCellViewRestingRow(t *testing.T) {
	v := NewCellView(DefaultCellStyle())
	v.ApplyContent(slidebutton.Content{Text: "Slide", TextColor: slidebutton.ColorBlack})

	out := plain(v, "")
	if len(out) != 40 {
		t.Fatalf("row is %d cells, want 40: %q", len(out), out)
	}
	if got := out[2:4]; got != ">>" {
		t.Errorf("icon cells = %q, want >>", got)
	}
	if got := out[17:22]; got != "Slide" {
		t.Errorf("label cells = %q, want Slide", got)
	}
	if x := v.HandleX(); x != 1 {
		t.Errorf("HandleX = %v, want 1", x)
	}
}

func TestCellViewTrackWidth(t *testing.T) {
	v := NewCellView(DefaultCellStyle())
	v.ApplyContent(slidebutton.Content{Icon: "@", Text: "Slide"})

	v.SetTrackWidth(20)
	left, width := v.TrackBounds()
	if left != 20 || width != 20 || v.HandleX() != 21 {
		t.Errorf("track %v/%v handle %v, want 20/20 21", left, width, v.HandleX())
	}

	// The label is revealed only right of the handle.
	v.SetLabelClip(27, 40)
	out := plain(v, "")
	if strings.Contains(out, "S") {
		t.Errorf("clipped label still drawn: %q", out)
	}
	if got := out[23:24]; got != "@" {
		t.Errorf("icon cell = %q in %q", got, out)
	}
}

func TestCellViewHiddenLabel(t *testing.T) {
	v := NewCellView(DefaultCellStyle())
	v.ApplyContent(slidebutton.Content{Text: "Slide"})
	v.SetLabelAlpha(0)
	if strings.Contains(plain(v, ""), "Slide") {
		t.Error("transparent label drawn")
	}
}

func TestCellViewLoadingScene(t *testing.T) {
	v := NewCellView(DefaultCellStyle())
	v.ApplyContent(slidebutton.Content{Text: "Slide"})
	e := NewEngine(v, nil)

	e.ApplyScene(slidebutton.SceneLoading, slidebutton.TransitionToLoading)
	e.EndTransitions()

	left, width := v.TrackBounds()
	if left != 16.5 || width != 7 {
		t.Errorf("track %v/%v, want 16.5/7", left, width)
	}
	out := plain(v, "*")
	if out[20:21] != "*" {
		t.Errorf("spinner missing: %q", out)
	}
	if strings.Contains(out, "Slide") || strings.Contains(out, ">>") {
		t.Errorf("label or handle drawn while loading: %q", out)
	}

	e.ApplyScene(slidebutton.SceneIdle, slidebutton.TransitionReset)
	e.EndTransitions()
	out = plain(v, "*")
	if strings.Contains(out, "*") || !strings.Contains(out, "Slide") {
		t.Errorf("idle row = %q", out)
	}
}

func TestCellViewTeaseMovesHandle(t *testing.T) {
	v := NewCellView(DefaultCellStyle())
	e := NewEngine(v, nil)

	e.Translate(slidebutton.PartHandle, [3]float64{0, 6, 0}, 200*time.Millisecond)
	e.Update(0.1)
	if x := v.HandleX(); x < 6.99 || x > 7.01 {
		t.Errorf("HandleX at peak = %v, want 7", x)
	}
	e.Update(0.1)
	if v.HandleX() != 1 {
		t.Errorf("HandleX after tease = %v, want 1", v.HandleX())
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		in   slidebutton.Color
		want string
	}{
		{slidebutton.ColorBlack, "#000000"},
		{slidebutton.Color{R: 1, G: 0.5, B: 0, A: 1}, "#ff8000"},
		{slidebutton.Color{R: 2, G: -1, B: 1, A: 1}, "#ff00ff"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := string(hexColor(tt.in)); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}
