// Package anim drives the property animations of the slide button hosts with
// gween tweens. Time only advances through Update.
package anim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Target pairs a property with the value a transition ends on.
type Target struct {
	Field *float64
	To    float64
}

// Group animates any number of float64 properties together. Call Update(dt)
// each frame until Done.
type Group struct {
	tweens []*gween.Tween
	fields []*float64
	ends   []float64
	Done   bool
}

// NewGroup starts every target from its current value.
func NewGroup(targets []Target, duration float32, fn ease.TweenFunc) *Group {
	g := &Group{
		tweens: make([]*gween.Tween, len(targets)),
		fields: make([]*float64, len(targets)),
		ends:   make([]float64, len(targets)),
	}
	for i, t := range targets {
		g.tweens[i] = gween.New(float32(*t.Field), float32(t.To), duration, fn)
		g.fields[i] = t.Field
		g.ends[i] = t.To
	}
	return g
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. Finished fields are written their exact end value.
func (g *Group) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i, tw := range g.tweens {
		val, finished := tw.Update(dt)
		if finished {
			*g.fields[i] = g.ends[i]
			continue
		}
		*g.fields[i] = float64(val)
		allDone = false
	}
	g.Done = allDone
}

// Finish jumps every field to its end value.
func (g *Group) Finish() {
	if g.Done {
		return
	}
	for i, f := range g.fields {
		*f = g.ends[i]
	}
	g.Done = true
}

// Keyframes eases one property through a list of values, one leg per
// consecutive pair.
type Keyframes struct {
	field *float64
	seq   *gween.Sequence
	last  float64
	done  bool
}

// NewKeyframes splits duration evenly between the legs and writes the first
// value immediately.
func NewKeyframes(field *float64, values []float64, duration float32, fn ease.TweenFunc) *Keyframes {
	k := &Keyframes{field: field, seq: gween.NewSequence()}
	legs := len(values) - 1
	if legs < 1 {
		k.done = true
		return k
	}
	per := duration / float32(legs)
	for i := 0; i < legs; i++ {
		k.seq.Add(gween.New(float32(values[i]), float32(values[i+1]), per, fn))
	}
	k.last = values[legs]
	*field = values[0]
	return k
}

// Update advances the sequence by dt seconds.
func (k *Keyframes) Update(dt float32) {
	if k.done {
		return
	}
	val, _, complete := k.seq.Update(dt)
	if complete {
		k.Finish()
		return
	}
	*k.field = float64(val)
}

// Finish jumps to the last value.
func (k *Keyframes) Finish() {
	if k.done {
		return
	}
	*k.field = k.last
	k.done = true
}

// Done reports whether the last value has been reached.
func (k *Keyframes) Done() bool {
	return k.done
}
