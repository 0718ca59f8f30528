package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/slidebutton"
)

// CellStyle sizes and colors a CellView. Sizes are in terminal cells.
type CellStyle struct {
	Width          int
	HandleWidth    int
	LeadingMargin  int
	TrailingMargin int

	TrackColor         lipgloss.Color
	TrackDisabledColor lipgloss.Color
	HandleColor        lipgloss.Color
}

// DefaultCellStyle returns a 40-cell control with a 5-cell handle.
func DefaultCellStyle() CellStyle {
	return CellStyle{
		Width:              40,
		HandleWidth:        5,
		LeadingMargin:      1,
		TrailingMargin:     1,
		TrackColor:         lipgloss.Color("#2196F3"),
		TrackDisabledColor: lipgloss.Color("#9E9E9E"),
		HandleColor:        lipgloss.Color("#FFFFFF"),
	}
}

const defaultIcon = ">>"

// visibleAlpha is the alpha below which a part is not drawn at all.
const visibleAlpha = 0.05

// CellView is a one-row slidebutton.Layout drawn with lipgloss. Positions are
// kept as float64 so animations move smoothly between cells; Render rounds
// them.
type CellView struct {
	style CellStyle

	trackX      float64
	trackWidth  float64
	handleX     float64
	handleShift float64 // tease offset
	labelAlpha  float64
	labelFade   float64
	handleAlpha float64
	handleFade  float64
	spinnerFade float64

	clipped             bool
	clipLeft, clipRight float64

	trackEnabled bool
	content      slidebutton.Content
}

var _ slidebutton.Layout = (*CellView)(nil)

// NewCellView returns a view in its resting layout.
func NewCellView(style CellStyle) *CellView {
	return &CellView{
		style:        style,
		trackWidth:   float64(style.Width),
		handleX:      float64(style.LeadingMargin),
		labelAlpha:   1,
		labelFade:    1,
		handleAlpha:  1,
		handleFade:   1,
		trackEnabled: true,
		content:      slidebutton.Content{TextColor: slidebutton.ColorBlack},
	}
}

func (v *CellView) HandleX() float64 { return v.handleX + v.handleShift }

func (v *CellView) HandleWidth() float64 { return float64(v.style.HandleWidth) }

func (v *CellView) HandleMargins() (leading, trailing float64) {
	return float64(v.style.LeadingMargin), float64(v.style.TrailingMargin)
}

func (v *CellView) TrackBounds() (left, width float64) { return v.trackX, v.trackWidth }

func (v *CellView) Width() float64 { return float64(v.style.Width) }

// SetTrackWidth keeps the track's right edge and moves the handle with its
// left edge.
func (v *CellView) SetTrackWidth(w float64) {
	v.trackWidth = w
	v.trackX = float64(v.style.Width) - w
	v.handleX = v.trackX + float64(v.style.LeadingMargin)
}

func (v *CellView) SetLabelClip(left, right float64) {
	v.clipped = true
	v.clipLeft, v.clipRight = left, right
}

func (v *CellView) SetLabelAlpha(a float64) { v.labelAlpha = a }

func (v *CellView) SetHandleAlpha(a float64) { v.handleAlpha = a }

func (v *CellView) SetTrackEnabled(enabled bool) { v.trackEnabled = enabled }

func (v *CellView) ApplyContent(c slidebutton.Content) { v.content = c }

// offset returns the property a translation of p moves. Only the handle can
// be translated.
func (v *CellView) offset(p slidebutton.Part) *float64 {
	if p == slidebutton.PartHandle {
		return &v.handleShift
	}
	return nil
}

type cellKind uint8

const (
	cellBlank cellKind = iota
	cellTrack
	cellLabel
	cellLabelFaint
	cellHandle
	cellHandleFaint
	cellSpinner // pre-styled
)

type cell struct {
	s    string
	kind cellKind
}

// Render draws the row. spinner is the pre-styled spinner frame shown while
// the loading scene is up.
func (v *CellView) Render(spinner string) string {
	w := v.style.Width
	cells := make([]cell, w)
	for i := range cells {
		cells[i] = cell{" ", cellBlank}
	}

	left := round(v.trackX)
	for i := max(left, 0); i < min(round(v.trackX+v.trackWidth), w); i++ {
		cells[i].kind = cellTrack
	}

	if a := v.labelAlpha * v.labelFade; a > visibleAlpha && v.content.Text != "" {
		kind := cellLabel
		if a < 1 {
			kind = cellLabelFaint
		}
		clipL, clipR := 0, w
		if v.clipped {
			clipL, clipR = round(v.clipLeft), round(v.clipRight)
		}
		text := []rune(v.content.Text)
		start := (w - len(text)) / 2
		for j, r := range text {
			x := start + j
			if x < 0 || x >= w || x < clipL || x >= clipR {
				continue
			}
			cells[x] = cell{string(r), kind}
		}
	}

	if a := v.handleAlpha * v.handleFade; a > visibleAlpha {
		kind := cellHandle
		if a < 1 {
			kind = cellHandleFaint
		}
		hx := round(v.HandleX())
		icon := []rune(v.content.Icon)
		if len(icon) == 0 {
			icon = []rune(defaultIcon)
		}
		iconStart := hx + (v.style.HandleWidth-len(icon))/2
		for x := hx; x < hx+v.style.HandleWidth; x++ {
			if x < 0 || x >= w {
				continue
			}
			s := " "
			if j := x - iconStart; j >= 0 && j < len(icon) {
				s = string(icon[j])
			}
			cells[x] = cell{s, kind}
		}
	}

	if v.spinnerFade > 0.5 && spinner != "" {
		cells[w/2] = cell{spinner, cellSpinner}
	}

	var b strings.Builder
	for i := 0; i < len(cells); {
		kind := cells[i].kind
		var run strings.Builder
		j := i
		for ; j < len(cells) && cells[j].kind == kind; j++ {
			run.WriteString(cells[j].s)
		}
		if kind == cellSpinner {
			b.WriteString(run.String())
		} else {
			b.WriteString(v.styleFor(kind).Render(run.String()))
		}
		i = j
	}
	return b.String()
}

func (v *CellView) styleFor(kind cellKind) lipgloss.Style {
	track := v.style.TrackColor
	if !v.trackEnabled {
		track = v.style.TrackDisabledColor
	}
	switch kind {
	case cellTrack:
		return lipgloss.NewStyle().Background(track)
	case cellLabel, cellLabelFaint:
		return lipgloss.NewStyle().
			Background(track).
			Foreground(hexColor(v.content.TextColor)).
			Faint(kind == cellLabelFaint)
	case cellHandle, cellHandleFaint:
		return lipgloss.NewStyle().
			Background(v.style.HandleColor).
			Foreground(track).
			Bold(true).
			Faint(kind == cellHandleFaint)
	default:
		return lipgloss.NewStyle()
	}
}

// SpinnerStyle returns the style the loading spinner is drawn with.
func (v *CellView) SpinnerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Background(v.style.TrackColor).Foreground(v.style.HandleColor)
}

func hexColor(c slidebutton.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B)))
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func round(x float64) int { return int(math.Round(x)) }
